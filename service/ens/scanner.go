package ens

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/viney-shih/goroutines"

	"github.com/x-xyz/ensrecords/base/ctx"
	"github.com/x-xyz/ensrecords/base/log"
	"github.com/x-xyz/ensrecords/domain"
	"github.com/x-xyz/ensrecords/domain/keys"
)

const weiDecimals = 18

func (im *impl) GetRecentRegistrations(c ctx.Ctx, count int, network *domain.Network, opts ...RegistrationOption) ([]*domain.Registration, error) {
	const op = "get_recent_registrations"
	defer im.met.BumpTime(op + ".time").End()

	o := registrationOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if count <= 0 {
		count = domain.DefaultRegistrationCount
	}
	network = network.OrDefault()
	fail := func(msg string, err error) error {
		return im.fail(c, op, domain.ErrKindGetRecentRegistrations, msg, err)
	}

	reader, err := im.provider.Reader(c, network)
	if err != nil {
		return nil, fail("get reader of "+network.Name, err)
	}
	head, err := reader.BlockNumber(c)
	if err != nil {
		return nil, fail("get head block", err)
	}
	from := uint64(0)
	if head > domain.RegistrationWindow {
		from = head - domain.RegistrationWindow
	}

	logs, err := reader.GetRegistrationLogs(c, network.RegistrarControllerAddress.ToCommon(), from, head)
	if err != nil {
		return nil, fail("get registration logs from "+strconv.FormatUint(from, 10), err)
	}

	complete := make([]*domain.RegistrationLog, 0, len(logs))
	for _, l := range logs {
		if l.IsComplete() {
			complete = append(complete, l)
		}
	}
	if len(complete) > count {
		complete = complete[len(complete)-count:]
	}

	res := make([]*domain.Registration, 0, len(complete))
	for i := len(complete) - 1; i >= 0; i-- {
		res = append(res, toRegistration(complete[i]))
	}

	if o.primaryNames && len(res) > 0 {
		im.fillPrimaryNames(c, reader, network, res)
	}
	return res, nil
}

func toRegistration(l *domain.RegistrationLog) *domain.Registration {
	r := &domain.Registration{
		Name:        *l.Name + "." + domain.EthTld,
		Label:       *l.Name,
		Owner:       domain.ToAddress(*l.Owner),
		BlockNumber: domain.BlockNumber(*l.BlockNumber),
		TxHash:      domain.ToTxHash(*l.TxHash),
		Cost:        l.Cost,
	}
	if l.Cost != nil {
		r.CostEth = decimal.NewFromBigInt(l.Cost, -weiDecimals).String()
	}
	if l.Expires != nil {
		r.Expires = time.Unix(l.Expires.Int64(), 0).UTC()
	}
	return r
}

// fillPrimaryNames leaves OwnerPrimaryName nil where the lookup fails.
func (im *impl) fillPrimaryNames(c ctx.Ctx, reader domain.EnsReader, network *domain.Network, regs []*domain.Registration) {
	b := goroutines.NewBatch(im.maxConcurrent, goroutines.WithBatchSize(len(regs)))
	defer b.Close()
	for i := range regs {
		reg := regs[i]
		b.Queue(func() (interface{}, error) {
			name, err := im.primaryName(c, reader, network, reg.Owner, uint64(reg.BlockNumber))
			if err != nil {
				c.WithFields(log.Fields{"err": err, "owner": reg.Owner}).Warn("primary name lookup failed")
				return nil, err
			}
			reg.OwnerPrimaryName = name
			return nil, nil
		})
	}
	b.QueueComplete()

	failed := 0
	for ret := range b.Results() {
		if ret.Error() != nil {
			failed++
		}
	}
	if failed > 0 {
		im.met.BumpSum("primary_name.err", float64(failed))
	}
}

type cachedPrimaryName struct {
	Name *string `json:"name"`
}

func (im *impl) primaryName(c ctx.Ctx, reader domain.EnsReader, network *domain.Network, owner domain.Address, blk uint64) (*string, error) {
	load := func() (interface{}, error) {
		name, err := reader.GetPrimaryName(c, owner.ToCommon(), &blk)
		if err != nil {
			return nil, err
		}
		return &cachedPrimaryName{Name: name}, nil
	}
	if im.cache == nil {
		val, err := load()
		if err != nil {
			return nil, err
		}
		return val.(*cachedPrimaryName).Name, nil
	}

	res := cachedPrimaryName{}
	key := keys.RedisKey(strconv.FormatInt(int64(network.ChainId), 10), owner.ToLowerStr(), strconv.FormatUint(blk, 10))
	if err := im.cache.GetByFunc(c, key, &res, load); err != nil {
		return nil, err
	}
	return res.Name, nil
}
