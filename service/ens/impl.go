package ens

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	baseabi "github.com/x-xyz/ensrecords/base/abi"
	"github.com/x-xyz/ensrecords/base/ctx"
	"github.com/x-xyz/ensrecords/base/log"
	"github.com/x-xyz/ensrecords/base/metrics"
	"github.com/x-xyz/ensrecords/base/ptr"
	"github.com/x-xyz/ensrecords/base/validator"
	"github.com/x-xyz/ensrecords/domain"
	"github.com/x-xyz/ensrecords/service/cache"
)

const (
	defaultMaxConcurrent = 8
)

type ServiceCfg struct {
	Provider domain.EnsClientProvider
	// Cache holds resolved primary names, optional
	Cache cache.Service
	// ResolveCache holds forward and reverse resolutions, optional
	ResolveCache cache.Service
	Metrics      metrics.Service
	// MaxConcurrent bounds the primary name lookups of one call
	MaxConcurrent int
}

type impl struct {
	provider      domain.EnsClientProvider
	cache         cache.Service
	resolveCache  cache.Service
	met           metrics.Service
	maxConcurrent int
}

func New(cfg *ServiceCfg) Service {
	im := &impl{
		provider:      cfg.Provider,
		cache:         cfg.Cache,
		resolveCache:  cfg.ResolveCache,
		met:           cfg.Metrics,
		maxConcurrent: cfg.MaxConcurrent,
	}
	if im.met == nil {
		im.met = metrics.New("ens")
	}
	if im.maxConcurrent <= 0 {
		im.maxConcurrent = defaultMaxConcurrent
	}
	return im
}

func (im *impl) GetTextRecord(c ctx.Ctx, name, key string, network *domain.Network) (*string, error) {
	const op = "get_text_record"
	defer im.met.BumpTime(op + ".time").End()

	normalized, err := Normalize(name)
	if err != nil {
		return nil, im.fail(c, op, domain.ErrKindGetTextRecord, "", err)
	}
	msg := fmt.Sprintf("get text record %q of %s", key, normalized)

	reader, err := im.provider.Reader(c, network)
	if err != nil {
		return nil, im.fail(c, op, domain.ErrKindGetTextRecord, msg, err)
	}
	value, err := reader.GetText(c, normalized, key)
	if err != nil {
		return nil, im.fail(c, op, domain.ErrKindGetTextRecord, msg, err)
	}
	return value, nil
}

func (im *impl) SetTextRecord(c ctx.Ctx, name, key string, value *string, network *domain.Network) (common.Hash, error) {
	const op = "set_text_record"
	defer im.met.BumpTime(op + ".time").End()

	_, hash, err := im.submitText(c, name, key, value, network)
	if err != nil {
		return common.Hash{}, im.fail(c, op, domain.ErrKindSetTextRecord, "", err)
	}
	return hash, nil
}

func (im *impl) SetTextRecordAndWait(c ctx.Ctx, name, key string, value *string, network *domain.Network) (*types.Receipt, error) {
	const op = "set_text_record_and_wait"
	defer im.met.BumpTime(op + ".time").End()

	writer, hash, err := im.submitText(c, name, key, value, network)
	if err != nil {
		return nil, im.fail(c, op, domain.ErrKindSetTextRecord, "", err)
	}
	receipt, err := writer.WaitReceipt(c, hash)
	if err != nil {
		return nil, im.fail(c, op, domain.ErrKindSetTextRecord, "wait for setText "+hash.Hex(), err)
	}
	return receipt, nil
}

// submitText returns errors already tagged with the SetTextRecord kind family.
func (im *impl) submitText(c ctx.Ctx, name, key string, value *string, network *domain.Network) (domain.EnsWriter, common.Hash, error) {
	normalized, node, err := NameHash(name)
	if err != nil {
		return nil, common.Hash{}, err
	}
	msg := fmt.Sprintf("set text record %q of %s", key, normalized)
	tag := func(err error) error {
		return tagError(domain.ErrKindSetTextRecord, msg, err)
	}

	reader, err := im.provider.Reader(c, network)
	if err != nil {
		return nil, common.Hash{}, tag(err)
	}
	resolver, err := reader.GetResolver(c, normalized)
	if err != nil {
		return nil, common.Hash{}, tag(err)
	}
	if resolver == nil || *resolver == (common.Address{}) {
		return nil, common.Hash{}, tag(domain.ErrResolverNotFound)
	}

	writer, err := im.provider.Writer(c, network)
	if err != nil {
		return nil, common.Hash{}, tag(err)
	}
	if _, ok := writer.Account(); !ok {
		return nil, common.Hash{}, tag(domain.ErrNoAccount)
	}

	// the resolver has no notion of unset, clearing writes ""
	hash, err := writer.SubmitContractCall(c, *resolver, baseabi.PublicResolverABI, "setText", node, key, ptr.StringValue(value))
	if err != nil {
		return nil, common.Hash{}, tag(err)
	}
	c.WithFields(log.Fields{"name": normalized, "key": key, "txHash": hash.Hex()}).Info("setText submitted")
	return writer, hash, nil
}

func (im *impl) SetAddressRecord(c ctx.Ctx, name string, address *string, network *domain.Network) (*types.Receipt, error) {
	const op = "set_address_record"
	defer im.met.BumpTime(op + ".time").End()

	writer, hash, err := im.submitAddress(c, name, address, network)
	if err != nil {
		return nil, im.fail(c, op, domain.ErrKindSetAddressRecord, "", err)
	}
	receipt, err := writer.WaitReceipt(c, hash)
	if err != nil {
		return nil, im.fail(c, op, domain.ErrKindSetAddressRecord, "wait for setAddr "+hash.Hex(), err)
	}
	return receipt, nil
}

func (im *impl) SubmitAddressRecord(c ctx.Ctx, name string, address *string, network *domain.Network) (common.Hash, error) {
	const op = "submit_address_record"
	defer im.met.BumpTime(op + ".time").End()

	_, hash, err := im.submitAddress(c, name, address, network)
	if err != nil {
		return common.Hash{}, im.fail(c, op, domain.ErrKindSetAddressRecord, "", err)
	}
	return hash, nil
}

func (im *impl) submitAddress(c ctx.Ctx, name string, address *string, network *domain.Network) (domain.EnsWriter, common.Hash, error) {
	target := domain.EmptyAddress.ToCommon()
	if address != nil {
		if !validator.IsValidAddress(*address) {
			return nil, common.Hash{}, domain.NewError(
				domain.ErrKindInvalidAddress,
				fmt.Sprintf("parse address %q", *address),
				domain.ErrInvalidAddress,
			)
		}
		target = common.HexToAddress(*address)
	}

	normalized, node, err := NameHash(name)
	if err != nil {
		return nil, common.Hash{}, err
	}
	msg := fmt.Sprintf("set address record of %s", normalized)
	tag := func(err error) error {
		return tagError(domain.ErrKindSetAddressRecord, msg, err)
	}

	network = network.OrDefault()
	writer, err := im.provider.Writer(c, network)
	if err != nil {
		return nil, common.Hash{}, tag(err)
	}
	if _, ok := writer.Account(); !ok {
		return nil, common.Hash{}, tag(domain.ErrNoAccount)
	}

	hash, err := writer.SubmitContractCall(c, network.RegistryAddress.ToCommon(), baseabi.PublicResolverABI, "setAddr", node, target)
	if err != nil {
		return nil, common.Hash{}, tag(err)
	}
	c.WithFields(log.Fields{"name": normalized, "address": target.Hex(), "txHash": hash.Hex()}).Info("setAddr submitted")
	return writer, hash, nil
}

// fail tags err unless it already is, bumps the error metric and logs it once.
func (im *impl) fail(c ctx.Ctx, op string, kind domain.ErrKind, msg string, err error) error {
	tagged := tagError(kind, msg, err)
	k := domain.ErrKindOf(tagged)
	im.met.BumpSum(op+".err", 1, "kind", string(k))
	c.WithFields(log.Fields{"err": tagged, "kind": k}).Warn(op + " failed")
	return tagged
}

// tagError maps known causes to their own kind, anything else gets kind.
func tagError(kind domain.ErrKind, msg string, err error) error {
	var e *domain.Error
	if errors.As(err, &e) {
		return err
	}
	switch {
	case errors.Is(err, domain.ErrResolverNotFound):
		kind = domain.ErrKindResolverNotFound
	case errors.Is(err, domain.ErrNoAccount):
		kind = domain.ErrKindNoAccount
	case errors.Is(err, domain.ErrInvalidAddress):
		kind = domain.ErrKindInvalidAddress
	case errors.Is(err, domain.ErrInvalidName):
		kind = domain.ErrKindInvalidName
	}
	if msg == "" {
		msg = "unexpected failure"
	}
	return domain.NewError(kind, msg, err)
}
