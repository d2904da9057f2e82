package chain

import (
	"strconv"

	"github.com/spf13/viper"

	"github.com/lootex/goaggregator/domain"
)

// LoadConfigs starts from DefaultConfigs and applies per-chain overrides
// from viper keys of the form chains.<chainId>.<field>, e.g.
//
//	chains:
//	  137:
//	    aggregatorAddress: "0x..."
//	    exchangeAddress: "0x..."
func LoadConfigs(v *viper.Viper) []Config {
	configs := DefaultConfigs()
	for i, cfg := range configs {
		prefix := "chains." + strconv.Itoa(int(cfg.ChainId)) + "."
		if addr := v.GetString(prefix + "aggregatorAddress"); addr != "" {
			configs[i].AggregatorAddress = domain.Address(addr).ToLower()
		}
		if addr := v.GetString(prefix + "exchangeAddress"); addr != "" {
			configs[i].ExchangeAddress = domain.Address(addr).ToLower()
		}
		if addr := v.GetString(prefix + "conduitAddress"); addr != "" {
			configs[i].ConduitAddress = domain.Address(addr).ToLower()
		}
	}
	return configs
}
