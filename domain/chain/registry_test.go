package chain

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/lootex/goaggregator/domain"
)

func TestRegistryGet(t *testing.T) {
	req := require.New(t)

	registry := NewRegistry(DefaultConfigs())

	cfg, err := registry.Get(137)
	req.NoError(err)
	req.Equal("polygon", cfg.Name)
	req.Equal("POL", cfg.NativeSymbol)

	_, err = registry.Get(999999)
	req.ErrorIs(err, domain.ErrUnsupportedChain)
}

func TestRegistryAggregatorAddress(t *testing.T) {
	req := require.New(t)

	registry := NewRegistry([]Config{
		{ChainId: 1, AggregatorAddress: "0x69cf8871f61fb03f540bc519dd1f1d4682ea0bf6"},
		{ChainId: 2},
	})

	addr, err := registry.AggregatorAddress(1)
	req.NoError(err)
	req.Equal(domain.Address("0x69cf8871f61fb03f540bc519dd1f1d4682ea0bf6"), addr)

	_, err = registry.AggregatorAddress(2)
	req.ErrorIs(err, domain.ErrMissingAggregatorAddress)

	_, err = registry.AggregatorAddress(3)
	req.ErrorIs(err, domain.ErrUnsupportedChain)
}

func TestLoadConfigsOverride(t *testing.T) {
	req := require.New(t)

	v := viper.New()
	v.Set("chains.137.aggregatorAddress", "0xAAA7fF6491EAacf49A5BBbeE2fB651FD1Ab3b0de")

	registry := NewRegistry(LoadConfigs(v))
	addr, err := registry.AggregatorAddress(137)
	req.NoError(err)
	req.Equal(domain.Address("0xaaa7ff6491eaacf49a5bbbee2fb651fd1ab3b0de"), addr)

	// untouched chains keep defaults
	cfg, err := registry.Get(1)
	req.NoError(err)
	req.Equal(domain.Address("0x69cf8871f61fb03f540bc519dd1f1d4682ea0bf6"), cfg.AggregatorAddress)
}
