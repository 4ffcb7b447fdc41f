package chain

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	goens "github.com/wealdtech/go-ens/v3"
	"golang.org/x/xerrors"

	baseabi "github.com/x-xyz/ensrecords/base/abi"
	bCtx "github.com/x-xyz/ensrecords/base/ctx"
	bEthereum "github.com/x-xyz/ensrecords/base/ethereum"
	"github.com/x-xyz/ensrecords/base/log"
	"github.com/x-xyz/ensrecords/base/ptr"
	"github.com/x-xyz/ensrecords/domain"
)

type reader struct {
	backend  bEthereum.Backend
	registry common.Address
	binding  *goens.Registry
}

// NewReader returns an EnsReader over backend, using the registry of network.
func NewReader(backend bEthereum.Backend, network *domain.Network) (domain.EnsReader, error) {
	network = network.OrDefault()
	registry := network.RegistryAddress.ToCommon()
	binding, err := goens.NewRegistryAt(backend, registry)
	if err != nil {
		return nil, xerrors.Errorf("goens.NewRegistryAt(%s): %w", registry.Hex(), err)
	}
	return &reader{
		backend:  backend,
		registry: registry,
		binding:  binding,
	}, nil
}

func (r *reader) BlockNumber(ctx bCtx.Ctx) (uint64, error) {
	blk, err := r.backend.BlockNumber(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("backend.BlockNumber failed")
		return 0, err
	}
	return blk, nil
}

func (r *reader) GetResolver(ctx bCtx.Ctx, name string) (*common.Address, error) {
	addr, err := r.binding.ResolverAddress(name)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "name": name}).Error("registry.ResolverAddress failed")
		return nil, err
	}
	if addr == (common.Address{}) {
		return nil, nil
	}
	return &addr, nil
}

func (r *reader) GetText(ctx bCtx.Ctx, name string, key string) (*string, error) {
	node, err := goens.NameHash(name)
	if err != nil {
		return nil, xerrors.Errorf("goens.NameHash(%s): %w", name, err)
	}
	resolver, err := r.resolverAt(ctx, node, nil)
	if err != nil {
		return nil, err
	}
	if resolver == nil {
		return nil, nil
	}
	unpacked, err := r.call(ctx, *resolver, nil, baseabi.PublicResolverABI, "text", node, key)
	if err != nil {
		return nil, err
	}
	value, ok := unpacked[0].(string)
	if !ok {
		return nil, xerrors.Errorf("unexpected text output %T", unpacked[0])
	}
	// on chain an unset record reads as ""
	return ptr.NonEmptyString(value), nil
}

func (r *reader) GetAddress(ctx bCtx.Ctx, name string) (*common.Address, error) {
	node, err := goens.NameHash(name)
	if err != nil {
		return nil, xerrors.Errorf("goens.NameHash(%s): %w", name, err)
	}
	resolver, err := r.resolverAt(ctx, node, nil)
	if err != nil || resolver == nil {
		return nil, err
	}
	unpacked, err := r.call(ctx, *resolver, nil, baseabi.PublicResolverABI, "addr", node)
	if err != nil {
		return nil, err
	}
	addr, ok := unpacked[0].(common.Address)
	if !ok {
		return nil, xerrors.Errorf("unexpected addr output %T", unpacked[0])
	}
	if addr == (common.Address{}) {
		return nil, nil
	}
	return &addr, nil
}

func (r *reader) GetPrimaryName(ctx bCtx.Ctx, addr common.Address, atBlock *uint64) (*string, error) {
	var blk *big.Int
	if atBlock != nil {
		blk = new(big.Int).SetUint64(*atBlock)
	}
	reverseNode, err := goens.NameHash(reverseName(addr))
	if err != nil {
		return nil, xerrors.Errorf("goens.NameHash: %w", err)
	}
	resolver, err := r.resolverAt(ctx, reverseNode, blk)
	if err != nil || resolver == nil {
		return nil, err
	}
	unpacked, err := r.call(ctx, *resolver, blk, baseabi.PublicResolverABI, "name", reverseNode)
	if err != nil {
		return nil, err
	}
	name, ok := unpacked[0].(string)
	if !ok || name == "" {
		return nil, nil
	}

	// a reverse record is only trusted when the name resolves back to addr
	node, err := goens.NameHash(name)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "name": name}).Warn("reverse record is not a valid name")
		return nil, nil
	}
	forwardResolver, err := r.resolverAt(ctx, node, blk)
	if err != nil || forwardResolver == nil {
		return nil, err
	}
	unpacked, err = r.call(ctx, *forwardResolver, blk, baseabi.PublicResolverABI, "addr", node)
	if err != nil {
		return nil, err
	}
	if resolved, ok := unpacked[0].(common.Address); !ok || resolved != addr {
		return nil, nil
	}
	return &name, nil
}

func (r *reader) GetRegistrationLogs(ctx bCtx.Ctx, controller common.Address, from, to uint64) ([]*domain.RegistrationLog, error) {
	logs, err := r.filterLogs(ctx, controller, newBlockRange(from, to))
	if err != nil {
		return nil, err
	}
	res := make([]*domain.RegistrationLog, 0, len(logs))
	for _, l := range logs {
		if l.Removed {
			continue
		}
		decoded, err := baseabi.ToNameRegisteredLog(&l)
		if err != nil {
			ctx.WithFields(log.Fields{
				"err":    err,
				"txHash": l.TxHash.Hex(),
				"index":  l.Index,
			}).Debug("skip undecodable NameRegistered log")
			continue
		}
		entry := &domain.RegistrationLog{
			LogIndex: l.Index,
			Name:     ptr.NonEmptyString(decoded.Name),
			Label:    decoded.Label,
			Owner:    &decoded.Owner,
			Cost:     decoded.Cost,
			Expires:  decoded.Expires,
		}
		// pending logs come without block and tx
		if l.BlockHash != (common.Hash{}) {
			entry.BlockNumber = ptr.Uint64(l.BlockNumber)
		}
		if l.TxHash != (common.Hash{}) {
			txHash := l.TxHash
			entry.TxHash = &txHash
		}
		res = append(res, entry)
	}
	return res, nil
}

// filterLogs splits the range in halves while the node refuses it as too large.
func (r *reader) filterLogs(ctx bCtx.Ctx, controller common.Address, rng *blockRange) ([]types.Log, error) {
	logs, err := r.backend.FilterLogs(ctx, ethereum.FilterQuery{
		FromBlock: rng.begin,
		ToBlock:   rng.end,
		Addresses: []common.Address{controller},
		Topics:    [][]common.Hash{{baseabi.NameRegisteredSig}},
	})
	if err == nil {
		return logs, nil
	}
	if !isTooManyLogs(err) || rng.isSingle() {
		ctx.WithFields(log.Fields{"err": err, "range": rng.String()}).Error("backend.FilterLogs failed")
		return nil, err
	}

	ctx.WithFields(log.Fields{"err": err, "range": rng.String()}).Info("too many logs, splitting range")
	first, second := rng.split()
	firstLogs, err := r.filterLogs(ctx, controller, first)
	if err != nil {
		return nil, err
	}
	secondLogs, err := r.filterLogs(ctx, controller, second)
	if err != nil {
		return nil, err
	}
	return append(firstLogs, secondLogs...), nil
}

func (r *reader) resolverAt(ctx bCtx.Ctx, node [32]byte, blk *big.Int) (*common.Address, error) {
	unpacked, err := r.call(ctx, r.registry, blk, baseabi.RegistryABI, "resolver", node)
	if err != nil {
		return nil, err
	}
	addr, ok := unpacked[0].(common.Address)
	if !ok {
		return nil, xerrors.Errorf("unexpected resolver output %T", unpacked[0])
	}
	if addr == (common.Address{}) {
		return nil, nil
	}
	return &addr, nil
}

func (r *reader) call(ctx bCtx.Ctx, addr common.Address, blk *big.Int, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		To:   &addr,
		Data: data,
	}
	res, err := r.backend.CallContract(ctx, msg, blk)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "method": method, "to": addr.Hex()}).Error("backend.CallContract failed")
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "method": method, "to": addr.Hex()}).Error("abi.Unpack failed")
		return nil, err
	}
	if len(unpacked) == 0 {
		return nil, xerrors.Errorf("%s returned nothing", method)
	}
	return unpacked, nil
}

func reverseName(addr common.Address) string {
	return fmt.Sprintf("%s.addr.reverse", strings.ToLower(addr.Hex()[2:]))
}
