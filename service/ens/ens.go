package ens

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/x-xyz/ensrecords/base/ctx"
	"github.com/x-xyz/ensrecords/domain"
)

// Service reads and writes ENS records. A nil network selects mainnet.
// Every error returned is a *domain.Error.
type Service interface {
	// GetTextRecord returns nil when the record is not set
	GetTextRecord(c ctx.Ctx, name, key string, network *domain.Network) (*string, error)
	// SetTextRecord submits setText and returns without waiting for it to be
	// mined. A nil value clears the record.
	SetTextRecord(c ctx.Ctx, name, key string, value *string, network *domain.Network) (common.Hash, error)
	SetTextRecordAndWait(c ctx.Ctx, name, key string, value *string, network *domain.Network) (*types.Receipt, error)
	// SetAddressRecord submits setAddr and waits for the receipt. A nil
	// address writes the zero address.
	SetAddressRecord(c ctx.Ctx, name string, address *string, network *domain.Network) (*types.Receipt, error)
	SubmitAddressRecord(c ctx.Ctx, name string, address *string, network *domain.Network) (common.Hash, error)
	// GetRecentRegistrations returns up to count registrations of the last
	// domain.RegistrationWindow blocks, most recent first
	GetRecentRegistrations(c ctx.Ctx, count int, network *domain.Network, opts ...RegistrationOption) ([]*domain.Registration, error)
	// Resolve returns the addr record of name, Address is nil when unset
	Resolve(c ctx.Ctx, name string, network *domain.Network) (*domain.AddressRecord, error)
	// ReverseResolve returns the primary name of address, nil when it has
	// none or the name does not resolve back to address
	ReverseResolve(c ctx.Ctx, address string, network *domain.Network) (*string, error)
}

type registrationOptions struct {
	primaryNames bool
}

type RegistrationOption func(*registrationOptions)

// WithPrimaryNames also resolves the primary name of every owner at the
// registration block.
func WithPrimaryNames() RegistrationOption {
	return func(o *registrationOptions) {
		o.primaryNames = true
	}
}
