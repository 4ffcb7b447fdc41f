package domain

import (
	"strings"
)

const (
	// EnsRegistryAddress is the ENS registry, deployed at the same address on mainnet and testnets
	EnsRegistryAddress = Address("0x00000000000C2E074eC69A0dFb2997BA6C7d2e1e")
	// EnsRegistrarControllerAddress emits NameRegistered for .eth registrations
	EnsRegistrarControllerAddress = Address("0x283Af0B28c62C092C9727F1Ee09c02CA627EB7F5")

	MainnetChainId = ChainId(1)
)

// Network selects the chain an operation runs against. A nil *Network means
// mainnet. Empty contract addresses fall back to the mainnet deployment, an
// empty RpcUrl is filled from configuration by the client provider.
type Network struct {
	Name                       string  `json:"name" mapstructure:"name"`
	ChainId                    ChainId `json:"chainId" mapstructure:"chainId"`
	RpcUrl                     string  `json:"-" mapstructure:"rpcUrl"`
	RegistryAddress            Address `json:"registry" mapstructure:"registry"`
	RegistrarControllerAddress Address `json:"registrarController" mapstructure:"registrarController"`
	// MaxConcurrent bounds in-flight rpc requests, 0 means unbounded
	MaxConcurrent int `json:"-" mapstructure:"maxConcurrent"`
}

// Mainnet returns the ethereum mainnet descriptor, without rpc.
func Mainnet() *Network {
	return &Network{
		Name:                       "mainnet",
		ChainId:                    MainnetChainId,
		RegistryAddress:            EnsRegistryAddress,
		RegistrarControllerAddress: EnsRegistrarControllerAddress,
	}
}

var wellKnownNetworks = map[string]func() *Network{
	"mainnet":   Mainnet,
	"ethereum":  Mainnet,
	"homestead": Mainnet,
}

// WellKnownNetwork looks up a network by identifier, e.g. "mainnet".
func WellKnownNetwork(name string) (*Network, bool) {
	f, ok := wellKnownNetworks[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	return f(), true
}

// OrDefault resolves the selector: nil becomes mainnet and missing contract
// addresses are taken from mainnet. The receiver is never modified.
func (n *Network) OrDefault() *Network {
	if n == nil {
		return Mainnet()
	}
	res := *n
	if res.RegistryAddress.IsEmpty() {
		res.RegistryAddress = EnsRegistryAddress
	}
	if res.RegistrarControllerAddress.IsEmpty() {
		res.RegistrarControllerAddress = EnsRegistrarControllerAddress
	}
	if res.ChainId == 0 && res.Name == "" {
		res.ChainId = MainnetChainId
		res.Name = "mainnet"
	}
	return &res
}
