package domain

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

const (
	// RegistrationWindow is how many blocks back from head are scanned for registrations
	RegistrationWindow = uint64(10000)
	// DefaultRegistrationCount is used when the caller asks for zero or fewer registrations
	DefaultRegistrationCount = 10
	// EthTld is appended to the label carried by NameRegistered
	EthTld = "eth"
)

type TextRecord struct {
	Name string `json:"name"`
	Key  string `json:"key"`
	// nil means the record is not set
	Value *string `json:"value"`
}

type AddressRecord struct {
	Name string `json:"name"`
	// nil clears the record
	Address *Address `json:"address"`
}

// Registration is rebuilt from a NameRegistered event, it is never stored.
type Registration struct {
	Name             string      `json:"name"`
	Label            string      `json:"label"`
	Owner            Address     `json:"owner"`
	OwnerPrimaryName *string     `json:"ownerPrimaryName,omitempty"`
	BlockNumber      BlockNumber `json:"blockNumber"`
	TxHash           TxHash      `json:"transactionHash"`
	Cost             *big.Int    `json:"cost"`
	CostEth          string      `json:"costEth"`
	Expires          time.Time   `json:"expires"`
}

// RegistrationLog is a NameRegistered log as handed over by the chain client.
// Pointer fields are nil when the node or the decoder could not provide them.
type RegistrationLog struct {
	BlockNumber *uint64
	TxHash      *common.Hash
	LogIndex    uint
	Name        *string
	Label       common.Hash
	Owner       *common.Address
	Cost        *big.Int
	Expires     *big.Int
}

// IsComplete reports whether the log carries everything a Registration needs.
func (l *RegistrationLog) IsComplete() bool {
	return l != nil &&
		l.BlockNumber != nil &&
		l.TxHash != nil &&
		l.Owner != nil &&
		l.Name != nil && *l.Name != ""
}
