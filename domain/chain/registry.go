package chain

import (
	"github.com/lootex/goaggregator/domain"
)

// Config is the static on-chain deployment info for one chain. No dynamic
// discovery: these are deployed contract addresses and must match the
// aggregator's wire contract.
type Config struct {
	ChainId           domain.ChainId
	Name              string
	AggregatorAddress domain.Address
	ExchangeAddress   domain.Address
	ConduitAddress    domain.Address
	NativeSymbol      string
	NativeDecimals    uint8
}

// Registry is an immutable chain id -> Config table injected at startup.
type Registry struct {
	configs map[domain.ChainId]Config
}

func NewRegistry(configs []Config) *Registry {
	m := make(map[domain.ChainId]Config, len(configs))
	for _, cfg := range configs {
		m[cfg.ChainId] = cfg
	}
	return &Registry{configs: m}
}

// Get fails loudly for unknown chains instead of returning a zero Config
func (r *Registry) Get(chainId domain.ChainId) (Config, error) {
	cfg, ok := r.configs[chainId]
	if !ok {
		return Config{}, domain.ErrUnsupportedChain
	}
	return cfg, nil
}

// AggregatorAddress returns the aggregator proxy deployment for the chain
func (r *Registry) AggregatorAddress(chainId domain.ChainId) (domain.Address, error) {
	cfg, err := r.Get(chainId)
	if err != nil {
		return "", err
	}
	if cfg.AggregatorAddress.IsEmpty() {
		return "", domain.ErrMissingAggregatorAddress
	}
	return cfg.AggregatorAddress, nil
}

// ExchangeAddress returns the seaport deployment for the chain
func (r *Registry) ExchangeAddress(chainId domain.ChainId) (domain.Address, error) {
	cfg, err := r.Get(chainId)
	if err != nil {
		return "", err
	}
	if cfg.ExchangeAddress.IsEmpty() {
		return "", domain.ErrMissingExchangeAddress
	}
	return cfg.ExchangeAddress, nil
}

// seaport 1.6 is deployed at one cross-chain address
const crossChainExchangeAddress = domain.Address("0x0000000000000068f116a894984e2db1123eb395")

// DefaultConfigs covers the chains the marketplace is live on. Aggregator
// addresses can be overridden per environment, see LoadConfigs.
func DefaultConfigs() []Config {
	mk := func(chainId domain.ChainId, name, symbol string, aggregator domain.Address) Config {
		return Config{
			ChainId:           chainId,
			Name:              name,
			AggregatorAddress: aggregator,
			ExchangeAddress:   crossChainExchangeAddress,
			NativeSymbol:      symbol,
			NativeDecimals:    18,
		}
	}
	return []Config{
		mk(1, "ethereum", "ETH", "0x69cf8871f61fb03f540bc519dd1f1d4682ea0bf6"),
		mk(56, "bsc", "BNB", "0x69cf8871f61fb03f540bc519dd1f1d4682ea0bf6"),
		mk(137, "polygon", "POL", "0x69cf8871f61fb03f540bc519dd1f1d4682ea0bf6"),
		mk(5000, "mantle", "MNT", "0x69cf8871f61fb03f540bc519dd1f1d4682ea0bf6"),
		mk(8453, "base", "ETH", "0x69cf8871f61fb03f540bc519dd1f1d4682ea0bf6"),
		mk(42161, "arbitrum", "ETH", "0x69cf8871f61fb03f540bc519dd1f1d4682ea0bf6"),
		mk(43114, "avalanche", "AVAX", "0x69cf8871f61fb03f540bc519dd1f1d4682ea0bf6"),
	}
}
