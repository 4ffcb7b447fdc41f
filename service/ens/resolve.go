package ens

import (
	"fmt"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/xerrors"

	"github.com/x-xyz/ensrecords/base/ctx"
	"github.com/x-xyz/ensrecords/base/validator"
	"github.com/x-xyz/ensrecords/domain"
	"github.com/x-xyz/ensrecords/domain/keys"
)

type cachedAddress struct {
	Address *domain.Address `json:"address"`
}

func (im *impl) Resolve(c ctx.Ctx, name string, network *domain.Network) (*domain.AddressRecord, error) {
	const op = "resolve"
	defer im.met.BumpTime(op + ".time").End()

	normalized, err := Normalize(name)
	if err != nil {
		return nil, im.fail(c, op, domain.ErrKindResolve, "", err)
	}
	network = network.OrDefault()
	msg := "resolve " + normalized

	load := func() (interface{}, error) {
		reader, err := im.provider.Reader(c, network)
		if err != nil {
			return nil, err
		}
		addr, err := reader.GetAddress(c, normalized)
		if err != nil {
			return nil, err
		}
		res := &cachedAddress{}
		if addr != nil {
			a := domain.ToAddress(*addr)
			res.Address = &a
		}
		return res, nil
	}

	res := cachedAddress{}
	key := keys.RedisKey("forward", chainKey(network), normalized)
	if err := im.lookup(c, key, &res, load); err != nil {
		return nil, im.fail(c, op, domain.ErrKindResolve, msg, err)
	}
	return &domain.AddressRecord{Name: normalized, Address: res.Address}, nil
}

func (im *impl) ReverseResolve(c ctx.Ctx, address string, network *domain.Network) (*string, error) {
	const op = "reverse_resolve"
	defer im.met.BumpTime(op + ".time").End()

	if !validator.IsValidAddress(address) {
		return nil, im.fail(c, op, domain.ErrKindReverseResolve, "", domain.NewError(
			domain.ErrKindInvalidAddress,
			fmt.Sprintf("parse address %q", address),
			domain.ErrInvalidAddress,
		))
	}
	addr := common.HexToAddress(address)
	network = network.OrDefault()
	msg := "reverse resolve " + addr.Hex()

	load := func() (interface{}, error) {
		reader, err := im.provider.Reader(c, network)
		if err != nil {
			return nil, err
		}
		name, err := reader.GetPrimaryName(c, addr, nil)
		if err != nil {
			return nil, err
		}
		return &cachedPrimaryName{Name: name}, nil
	}

	res := cachedPrimaryName{}
	key := keys.RedisKey("reverse", chainKey(network), domain.ToAddress(addr).ToLowerStr())
	if err := im.lookup(c, key, &res, load); err != nil {
		return nil, im.fail(c, op, domain.ErrKindReverseResolve, msg, err)
	}
	return res.Name, nil
}

// lookup goes through the resolve cache when one is configured. container
// must point to the type load returns a pointer of.
func (im *impl) lookup(c ctx.Ctx, key string, container interface{}, load func() (interface{}, error)) error {
	if im.resolveCache != nil {
		return im.resolveCache.GetByFunc(c, key, container, load)
	}
	val, err := load()
	if err != nil {
		return err
	}
	switch dst := container.(type) {
	case *cachedAddress:
		*dst = *val.(*cachedAddress)
	case *cachedPrimaryName:
		*dst = *val.(*cachedPrimaryName)
	default:
		return xerrors.Errorf("unsupported container %T", container)
	}
	return nil
}

func chainKey(network *domain.Network) string {
	return strconv.FormatInt(int64(network.ChainId), 10)
}
