package domain

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	bCtx "github.com/x-xyz/ensrecords/base/ctx"
)

// EnsReader is the read capability of a chain client. Names handed over are
// already normalized.
type EnsReader interface {
	// GetText returns nil when the name has no resolver or the record is unset
	GetText(ctx bCtx.Ctx, name string, key string) (*string, error)
	// GetResolver returns nil when no resolver is configured
	GetResolver(ctx bCtx.Ctx, name string) (*common.Address, error)
	// GetAddress returns nil when the name has no resolver or the addr record is unset
	GetAddress(ctx bCtx.Ctx, name string) (*common.Address, error)
	BlockNumber(ctx bCtx.Ctx) (uint64, error)
	// GetRegistrationLogs returns NameRegistered logs of controller in [from, to],
	// in chain order. Logs whose arguments do not decode are not returned.
	GetRegistrationLogs(ctx bCtx.Ctx, controller common.Address, from, to uint64) ([]*RegistrationLog, error)
	// GetPrimaryName returns nil when addr has no reverse record; atBlock nil means latest
	GetPrimaryName(ctx bCtx.Ctx, addr common.Address, atBlock *uint64) (*string, error)
}

// EnsWriter is the write capability of a chain client.
type EnsWriter interface {
	// Account returns the signing account, false when none is configured
	Account() (common.Address, bool)
	SubmitContractCall(ctx bCtx.Ctx, to common.Address, contractAbi abi.ABI, method string, args ...interface{}) (common.Hash, error)
	WaitReceipt(ctx bCtx.Ctx, hash common.Hash) (*types.Receipt, error)
}

// EnsClientProvider hands out the clients of a network.
type EnsClientProvider interface {
	// Network resolves a well-known or configured network identifier
	Network(name string) (*Network, error)
	Reader(ctx bCtx.Ctx, network *Network) (EnsReader, error)
	Writer(ctx bCtx.Ctx, network *Network) (EnsWriter, error)
}
