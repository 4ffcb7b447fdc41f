package chain

import (
	"errors"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/xerrors"

	"github.com/x-xyz/ensrecords/base/backoff"
	bCtx "github.com/x-xyz/ensrecords/base/ctx"
	bEthereum "github.com/x-xyz/ensrecords/base/ethereum"
	"github.com/x-xyz/ensrecords/base/log"
	"github.com/x-xyz/ensrecords/domain"
)

var (
	ErrTxReverted = errors.New("transaction reverted")

	// gas estimates get 20% headroom
	gasLimitNumerator   = uint64(120)
	gasLimitDenominator = uint64(100)
)

const (
	defaultPollInterval = 2 * time.Second
	defaultMaxInterval  = 15 * time.Second
)

type WriterCfg struct {
	Backend bEthereum.Backend
	// Account may be nil, submissions then fail with domain.ErrNoAccount
	Account             *bEthereum.Account
	ChainId             domain.ChainId
	ReceiptPollInterval time.Duration
	ReceiptMaxInterval  time.Duration
}

type writer struct {
	backend      bEthereum.Backend
	account      *bEthereum.Account
	chainIdMu    sync.Mutex
	chainId      *big.Int
	pollInterval time.Duration
	maxInterval  time.Duration
}

func NewWriter(cfg *WriterCfg) domain.EnsWriter {
	w := &writer{
		backend:      cfg.Backend,
		account:      cfg.Account,
		pollInterval: cfg.ReceiptPollInterval,
		maxInterval:  cfg.ReceiptMaxInterval,
	}
	if cfg.ChainId != 0 {
		w.chainId = big.NewInt(int64(cfg.ChainId))
	}
	if w.pollInterval <= 0 {
		w.pollInterval = defaultPollInterval
	}
	if w.maxInterval <= 0 {
		w.maxInterval = defaultMaxInterval
	}
	return w
}

func (w *writer) Account() (common.Address, bool) {
	if w.account == nil {
		return common.Address{}, false
	}
	return w.account.Address(), true
}

func (w *writer) SubmitContractCall(ctx bCtx.Ctx, to common.Address, contractAbi abi.ABI, method string, args ...interface{}) (common.Hash, error) {
	if w.account == nil {
		return common.Hash{}, domain.ErrNoAccount
	}
	from := w.account.Address()
	ctx = bCtx.WithLogFields(ctx, log.Fields{"from": from.Hex(), "to": to.Hex(), "method": method})

	data, err := contractAbi.Pack(method, args...)
	if err != nil {
		ctx.WithField("err", err).Error("abi.Pack failed")
		return common.Hash{}, err
	}

	chainId, err := w.getChainId(ctx)
	if err != nil {
		return common.Hash{}, err
	}

	nonce, err := w.backend.PendingNonceAt(ctx, from)
	if err != nil {
		ctx.WithField("err", err).Error("backend.PendingNonceAt failed")
		return common.Hash{}, err
	}

	gas, err := w.backend.EstimateGas(ctx, ethereum.CallMsg{From: from, To: &to, Data: data})
	if err != nil {
		ctx.WithField("err", err).Error("backend.EstimateGas failed")
		return common.Hash{}, err
	}
	gas = gas * gasLimitNumerator / gasLimitDenominator

	tx, err := w.buildTx(ctx, chainId, nonce, to, gas, data)
	if err != nil {
		return common.Hash{}, err
	}

	signed, err := w.account.SignTx(tx, chainId)
	if err != nil {
		ctx.WithField("err", err).Error("account.SignTx failed")
		return common.Hash{}, err
	}

	if err := w.backend.SendTransaction(ctx, signed); err != nil {
		ctx.WithField("err", err).Error("backend.SendTransaction failed")
		return common.Hash{}, err
	}

	ctx.WithFields(log.Fields{"txHash": signed.Hash().Hex(), "nonce": nonce}).Info("transaction submitted")
	return signed.Hash(), nil
}

// buildTx prefers a dynamic fee tx, falling back to legacy pricing on chains
// without a base fee.
func (w *writer) buildTx(ctx bCtx.Ctx, chainId *big.Int, nonce uint64, to common.Address, gas uint64, data []byte) (*types.Transaction, error) {
	head, err := w.backend.HeaderByNumber(ctx, nil)
	if err != nil {
		ctx.WithField("err", err).Error("backend.HeaderByNumber failed")
		return nil, err
	}

	if head.BaseFee == nil {
		gasPrice, err := w.backend.SuggestGasPrice(ctx)
		if err != nil {
			ctx.WithField("err", err).Error("backend.SuggestGasPrice failed")
			return nil, err
		}
		return types.NewTx(&types.LegacyTx{
			Nonce:    nonce,
			GasPrice: gasPrice,
			Gas:      gas,
			To:       &to,
			Data:     data,
		}), nil
	}

	tip, err := w.backend.SuggestGasTipCap(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("backend.SuggestGasTipCap failed")
		return nil, err
	}
	feeCap := new(big.Int).Add(tip, new(big.Int).Mul(head.BaseFee, big2))
	return types.NewTx(&types.DynamicFeeTx{
		ChainID:   chainId,
		Nonce:     nonce,
		GasTipCap: tip,
		GasFeeCap: feeCap,
		Gas:       gas,
		To:        &to,
		Data:      data,
	}), nil
}

func (w *writer) getChainId(ctx bCtx.Ctx) (*big.Int, error) {
	w.chainIdMu.Lock()
	defer w.chainIdMu.Unlock()
	if w.chainId != nil {
		return w.chainId, nil
	}
	chainId, err := w.backend.ChainID(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("backend.ChainID failed")
		return nil, err
	}
	w.chainId = chainId
	return chainId, nil
}

// WaitReceipt polls until the transaction is mined or ctx ends.
func (w *writer) WaitReceipt(ctx bCtx.Ctx, hash common.Hash) (*types.Receipt, error) {
	ctx = bCtx.WithLogFields(ctx, log.Fields{"txHash": hash.Hex()})
	b := backoff.NewExponential(w.pollInterval, w.maxInterval)
	for {
		receipt, err := w.backend.TransactionReceipt(ctx, hash)
		if err == nil && receipt != nil {
			if receipt.Status != types.ReceiptStatusSuccessful {
				ctx.WithField("blockNumber", receipt.BlockNumber).Warn("transaction reverted")
				return receipt, xerrors.Errorf("%s: %w", hash.Hex(), ErrTxReverted)
			}
			return receipt, nil
		}
		if err != nil && !errors.Is(err, ethereum.NotFound) {
			ctx.WithField("err", err).Error("backend.TransactionReceipt failed")
			return nil, err
		}

		if err := b.Wait(ctx); err != nil {
			ctx.WithFields(log.Fields{"err": err, "polls": b.Count()}).Warn("stop waiting for receipt")
			return nil, err
		}
	}
}
