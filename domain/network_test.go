package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNetwork_OrDefault(t *testing.T) {
	req := require.New(t)

	var nilNetwork *Network
	req.Equal(Mainnet(), nilNetwork.OrDefault())

	staging := &Network{
		Name:            "staging",
		ChainId:         11155111,
		RegistryAddress: "0x1111111111111111111111111111111111111111",
	}
	got := staging.OrDefault()
	req.Equal(Address("0x1111111111111111111111111111111111111111"), got.RegistryAddress)
	req.Equal(EnsRegistrarControllerAddress, got.RegistrarControllerAddress)
	req.Equal(ChainId(11155111), got.ChainId)
	// receiver untouched
	req.True(staging.RegistrarControllerAddress.IsEmpty())

	req.Equal(MainnetChainId, (&Network{}).OrDefault().ChainId)
}

func TestWellKnownNetwork(t *testing.T) {
	req := require.New(t)
	n, ok := WellKnownNetwork("Mainnet")
	req.True(ok)
	req.Equal(MainnetChainId, n.ChainId)

	_, ok = WellKnownNetwork("moonbase")
	req.False(ok)
}
