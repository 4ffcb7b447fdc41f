package chain

import (
	"context"
	"errors"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	goens "github.com/wealdtech/go-ens/v3"

	baseabi "github.com/x-xyz/ensrecords/base/abi"
	bEthereum "github.com/x-xyz/ensrecords/base/ethereum"
	"github.com/x-xyz/ensrecords/domain"
)

// fakeBackend answers registry and resolver calls from in-memory records.
// Unset methods panic through the nil embedded Backend.
type fakeBackend struct {
	bEthereum.Backend

	mu        sync.Mutex
	registry  common.Address
	resolvers map[[32]byte]common.Address
	texts     map[[32]byte]map[string]string
	names     map[[32]byte]string
	addrs     map[[32]byte]common.Address
	callBlks  []*big.Int

	head       uint64
	filterLogs func(q ethereum.FilterQuery) ([]types.Log, error)
	queries    []ethereum.FilterQuery

	nonce    uint64
	gas      uint64
	tip      *big.Int
	gasPrice *big.Int
	baseFee  *big.Int
	chainId  *big.Int
	sent     []*types.Transaction
	receipts func(hash common.Hash) (*types.Receipt, error)
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		registry:  domain.EnsRegistryAddress.ToCommon(),
		resolvers: make(map[[32]byte]common.Address),
		texts:     make(map[[32]byte]map[string]string),
		names:     make(map[[32]byte]string),
		addrs:     make(map[[32]byte]common.Address),
		nonce:     7,
		gas:       100000,
		tip:       big.NewInt(2),
		gasPrice:  big.NewInt(30),
		baseFee:   big.NewInt(10),
		chainId:   big.NewInt(1),
	}
}

func mustNameHash(name string) [32]byte {
	node, err := goens.NameHash(name)
	if err != nil {
		panic(err)
	}
	return node
}

func (b *fakeBackend) setResolver(name string, resolver common.Address) {
	b.resolvers[mustNameHash(name)] = resolver
}

func (b *fakeBackend) setText(name, key, value string) {
	node := mustNameHash(name)
	if b.texts[node] == nil {
		b.texts[node] = make(map[string]string)
	}
	b.texts[node][key] = value
}

func (b *fakeBackend) CallContract(ctx context.Context, msg ethereum.CallMsg, blk *big.Int) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.callBlks = append(b.callBlks, blk)

	contract := baseabi.PublicResolverABI
	if *msg.To == b.registry {
		contract = baseabi.RegistryABI
	}
	method, err := contract.MethodById(msg.Data[:4])
	if err != nil {
		return nil, err
	}
	args, err := method.Inputs.Unpack(msg.Data[4:])
	if err != nil {
		return nil, err
	}
	node := args[0].([32]byte)
	return b.answer(method, node, args)
}

func (b *fakeBackend) answer(method *abi.Method, node [32]byte, args []interface{}) ([]byte, error) {
	switch method.Name {
	case "resolver":
		return method.Outputs.Pack(b.resolvers[node])
	case "text":
		return method.Outputs.Pack(b.texts[node][args[1].(string)])
	case "name":
		return method.Outputs.Pack(b.names[node])
	case "addr":
		return method.Outputs.Pack(b.addrs[node])
	}
	return nil, errors.New("unexpected method " + method.Name)
}

func (b *fakeBackend) CodeAt(ctx context.Context, addr common.Address, blk *big.Int) ([]byte, error) {
	return []byte{0x1}, nil
}

func (b *fakeBackend) BlockNumber(ctx context.Context) (uint64, error) {
	return b.head, nil
}

func (b *fakeBackend) FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error) {
	b.mu.Lock()
	b.queries = append(b.queries, q)
	b.mu.Unlock()
	return b.filterLogs(q)
}

func (b *fakeBackend) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	return b.nonce, nil
}

func (b *fakeBackend) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	return b.gas, nil
}

func (b *fakeBackend) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	return b.tip, nil
}

func (b *fakeBackend) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	return b.gasPrice, nil
}

func (b *fakeBackend) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	return &types.Header{Number: new(big.Int).SetUint64(b.head), BaseFee: b.baseFee}, nil
}

func (b *fakeBackend) ChainID(ctx context.Context) (*big.Int, error) {
	return b.chainId, nil
}

func (b *fakeBackend) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sent = append(b.sent, tx)
	return nil
}

func (b *fakeBackend) TransactionReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	return b.receipts(hash)
}
