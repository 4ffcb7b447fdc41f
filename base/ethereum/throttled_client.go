package ethereum

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/x-xyz/ensrecords/base/log"
)

// ThrottledClient bounds the number of in-flight requests of the wrapped backend.
type ThrottledClient struct {
	Backend
	tokens chan int
}

func NewThrottledClient(backend Backend, n int) *ThrottledClient {
	tokens := make(chan int, n)
	for i := 0; i < n; i++ {
		tokens <- i + 1
	}
	return &ThrottledClient{
		Backend: backend,
		tokens:  tokens,
	}
}

func (c *ThrottledClient) BlockNumber(ctx context.Context) (uint64, error) {
	token := c.before(ctx)
	defer c.after(token)
	return c.Backend.BlockNumber(ctx)
}

func (c *ThrottledClient) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	token := c.before(ctx)
	defer c.after(token)
	return c.Backend.HeaderByNumber(ctx, number)
}

func (c *ThrottledClient) FilterLogs(ctx context.Context, filter ethereum.FilterQuery) ([]types.Log, error) {
	token := c.before(ctx)
	defer c.after(token)
	return c.Backend.FilterLogs(ctx, filter)
}

func (c *ThrottledClient) CodeAt(ctx context.Context, address common.Address, number *big.Int) ([]byte, error) {
	token := c.before(ctx)
	defer c.after(token)
	return c.Backend.CodeAt(ctx, address, number)
}

func (c *ThrottledClient) CallContract(ctx context.Context, msg ethereum.CallMsg, number *big.Int) ([]byte, error) {
	token := c.before(ctx)
	defer c.after(token)
	return c.Backend.CallContract(ctx, msg, number)
}

func (c *ThrottledClient) TransactionReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	token := c.before(ctx)
	defer c.after(token)
	return c.Backend.TransactionReceipt(ctx, hash)
}

func (c *ThrottledClient) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	token := c.before(ctx)
	defer c.after(token)
	return c.Backend.SendTransaction(ctx, tx)
}

func (c *ThrottledClient) PendingCodeAt(ctx context.Context, account common.Address) ([]byte, error) {
	token := c.before(ctx)
	defer c.after(token)
	return c.Backend.PendingCodeAt(ctx, account)
}

func (c *ThrottledClient) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	token := c.before(ctx)
	defer c.after(token)
	return c.Backend.PendingNonceAt(ctx, account)
}

func (c *ThrottledClient) EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error) {
	token := c.before(ctx)
	defer c.after(token)
	return c.Backend.EstimateGas(ctx, call)
}

func (c *ThrottledClient) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	token := c.before(ctx)
	defer c.after(token)
	return c.Backend.SuggestGasTipCap(ctx)
}

func (c *ThrottledClient) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	token := c.before(ctx)
	defer c.after(token)
	return c.Backend.SuggestGasPrice(ctx)
}

func (c *ThrottledClient) ChainID(ctx context.Context) (*big.Int, error) {
	token := c.before(ctx)
	defer c.after(token)
	return c.Backend.ChainID(ctx)
}

// SubscribeFilterLogs is not throttled, a subscription would hold its token
// for its whole lifetime.

// before returns 0 when ctx ends while waiting, the wrapped call then fails on ctx itself
func (c *ThrottledClient) before(ctx context.Context) int {
	now := time.Now()
	select {
	case <-ctx.Done():
		log.Log().WithField("waited", time.Since(now)).Debug("throttle ctx done")
		return 0
	case token := <-c.tokens:
		log.Log().WithFields(log.Fields{"token": token, "len": len(c.tokens), "waited": time.Since(now)}).Debug("throttle")
		return token
	}
}

func (c *ThrottledClient) after(token int) {
	if token != 0 {
		c.tokens <- token
	}
}
