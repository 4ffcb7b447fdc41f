package chain

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/ensrecords/base/ctx"
	bEthereum "github.com/x-xyz/ensrecords/base/ethereum"
	"github.com/x-xyz/ensrecords/base/log"
	"github.com/x-xyz/ensrecords/domain"
)

type DialFunc func(ctx context.Context, rpcUrl string) (bEthereum.Backend, error)

type ProviderCfg struct {
	// Networks is keyed by network identifier, e.g. "mainnet"
	Networks map[string]*domain.Network
	// PrivateKey is optional, without it every submission fails with domain.ErrNoAccount
	PrivateKey          string
	ReceiptPollInterval time.Duration
	ReceiptMaxInterval  time.Duration
	// Dial defaults to ethclient.DialContext
	Dial DialFunc
}

type provider struct {
	networks     map[string]*domain.Network
	account      *bEthereum.Account
	pollInterval time.Duration
	maxInterval  time.Duration
	dial         DialFunc

	mu       sync.Mutex
	backends map[string]bEthereum.Backend
	readers  map[string]domain.EnsReader
	writers  map[string]domain.EnsWriter
}

func NewProvider(cfg *ProviderCfg) (domain.EnsClientProvider, error) {
	p := &provider{
		networks:     make(map[string]*domain.Network),
		pollInterval: cfg.ReceiptPollInterval,
		maxInterval:  cfg.ReceiptMaxInterval,
		dial:         cfg.Dial,
		backends:     make(map[string]bEthereum.Backend),
		readers:      make(map[string]domain.EnsReader),
		writers:      make(map[string]domain.EnsWriter),
	}
	for name, network := range cfg.Networks {
		if network == nil {
			continue
		}
		n := *network
		n.Name = strings.ToLower(name)
		p.networks[n.Name] = &n
	}
	if cfg.PrivateKey != "" {
		account, err := bEthereum.NewAccountFromHex(cfg.PrivateKey)
		if err != nil {
			return nil, err
		}
		p.account = account
	}
	if p.dial == nil {
		p.dial = dialEthclient
	}
	return p, nil
}

func dialEthclient(ctx context.Context, rpcUrl string) (bEthereum.Backend, error) {
	return ethclient.DialContext(ctx, rpcUrl)
}

// Network resolves configured networks first, then well-known ones. An empty
// name selects mainnet.
func (p *provider) Network(name string) (*domain.Network, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = "mainnet"
	}
	if n, ok := p.networks[key]; ok {
		return n.OrDefault(), nil
	}
	if n, ok := domain.WellKnownNetwork(key); ok {
		if configured, ok := p.networks[n.Name]; ok {
			return configured.OrDefault(), nil
		}
		return n, nil
	}
	return nil, xerrors.Errorf("%s: %w", name, domain.ErrUnsupportedNetwork)
}

func (p *provider) Reader(ctx bCtx.Ctx, network *domain.Network) (domain.EnsReader, error) {
	network, err := p.complete(network)
	if err != nil {
		return nil, err
	}
	key := network.RpcUrl + "|" + network.RegistryAddress.ToLowerStr()

	p.mu.Lock()
	defer p.mu.Unlock()
	if r, ok := p.readers[key]; ok {
		return r, nil
	}
	backend, err := p.backendLocked(ctx, network)
	if err != nil {
		return nil, err
	}
	r, err := NewReader(backend, network)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "network": network.Name}).Error("NewReader failed")
		return nil, err
	}
	p.readers[key] = r
	return r, nil
}

func (p *provider) Writer(ctx bCtx.Ctx, network *domain.Network) (domain.EnsWriter, error) {
	network, err := p.complete(network)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if w, ok := p.writers[network.RpcUrl]; ok {
		return w, nil
	}
	backend, err := p.backendLocked(ctx, network)
	if err != nil {
		return nil, err
	}
	w := NewWriter(&WriterCfg{
		Backend:             backend,
		Account:             p.account,
		ChainId:             network.ChainId,
		ReceiptPollInterval: p.pollInterval,
		ReceiptMaxInterval:  p.maxInterval,
	})
	p.writers[network.RpcUrl] = w
	return w, nil
}

// complete fills defaults and the rpc url of a caller supplied selector.
func (p *provider) complete(network *domain.Network) (*domain.Network, error) {
	network = network.OrDefault()
	if network.RpcUrl != "" {
		return network, nil
	}
	if configured, ok := p.networks[strings.ToLower(network.Name)]; ok && configured.RpcUrl != "" {
		network.RpcUrl = configured.RpcUrl
		if network.MaxConcurrent == 0 {
			network.MaxConcurrent = configured.MaxConcurrent
		}
		return network, nil
	}
	for _, configured := range p.networks {
		if network.ChainId != 0 && configured.ChainId == network.ChainId && configured.RpcUrl != "" {
			network.RpcUrl = configured.RpcUrl
			if network.MaxConcurrent == 0 {
				network.MaxConcurrent = configured.MaxConcurrent
			}
			return network, nil
		}
	}
	return nil, xerrors.Errorf("no rpc url for network %q: %w", network.Name, domain.ErrUnsupportedNetwork)
}

func (p *provider) backendLocked(ctx bCtx.Ctx, network *domain.Network) (bEthereum.Backend, error) {
	if b, ok := p.backends[network.RpcUrl]; ok {
		return b, nil
	}
	backend, err := p.dial(ctx, network.RpcUrl)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "network": network.Name}).Error("dial rpc failed")
		return nil, err
	}
	if network.MaxConcurrent > 0 {
		backend = bEthereum.NewThrottledClient(backend, network.MaxConcurrent)
	}
	p.backends[network.RpcUrl] = backend
	return backend, nil
}
