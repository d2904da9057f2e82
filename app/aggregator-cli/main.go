package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"os"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	bCtx "github.com/lootex/goaggregator/base/ctx"
	"github.com/lootex/goaggregator/base/ethereum"
	"github.com/lootex/goaggregator/base/log"
	"github.com/lootex/goaggregator/domain"
	"github.com/lootex/goaggregator/domain/chain"
	"github.com/lootex/goaggregator/domain/marketplace"
	"github.com/lootex/goaggregator/service/orderbook"
	marketplaceUseCase "github.com/lootex/goaggregator/stores/marketplace/usecase"
)

var (
	configFile = pflag.String("config", "infra/configs/config.yaml", "config file path")
	action     = pflag.String("action", "", "create | fulfill | cancel")
	inputFile  = pflag.String("input", "", "params json file")
)

func init() {
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configFile)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.SetDebug(true)
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func newReaderGetter(ctx bCtx.Ctx, configs []chain.Config) domain.EthReaderGetter {
	maxConcurrency := viper.GetInt("rpc.maxConcurrency")
	if maxConcurrency == 0 {
		maxConcurrency = 8
	}

	readers := map[domain.ChainId]domain.EthReader{}
	for _, cfg := range configs {
		url := viper.GetString(fmt.Sprintf("rpc.%d.url", cfg.ChainId))
		if url == "" {
			continue
		}
		client, err := ethclient.Dial(url)
		if err != nil {
			ctx.WithFields(log.Fields{
				"chainId": cfg.ChainId,
				"err":     err,
			}).Panic("ethclient.Dial failed")
		}
		readers[cfg.ChainId] = ethereum.NewThrottledReader(client, maxConcurrency)
	}

	return func(chainId domain.ChainId) (domain.EthReader, error) {
		reader, ok := readers[chainId]
		if !ok {
			return nil, domain.ErrUnsupportedChain
		}
		return reader, nil
	}
}

func readParams(path string, out interface{}) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		panic(err)
	}
}

func main() {
	ctx := bCtx.Background()

	configs := chain.LoadConfigs(viper.GetViper())
	registry := chain.NewRegistry(configs)

	ob := orderbook.NewClient(&orderbook.ClientCfg{
		HttpClient: http.Client{},
		BaseUrl:    viper.GetString("orderbook.baseUrl"),
		Timeout:    viper.GetDuration("orderbook.timeout"),
		Apikey:     viper.GetString("orderbook.apikey"),
	})

	uc := marketplaceUseCase.New(&marketplaceUseCase.MarketplaceUseCaseCfg{
		ChainRegistry:   registry,
		Orderbook:       ob,
		EthReaderGetter: newReaderGetter(ctx, configs),
		SignaturePacing: viper.GetDuration("orderbook.signaturePacing"),
	})

	var plan *marketplace.Plan
	var err error
	switch *action {
	case "create":
		params := &marketplace.CreateOrdersParams{}
		readParams(*inputFile, params)
		plan, err = uc.CreateOrders(ctx, params)
	case "fulfill":
		params := &marketplace.FulfillOrdersParams{}
		readParams(*inputFile, params)
		plan, err = uc.FulfillOrders(ctx, params)
	case "cancel":
		params := &marketplace.CancelOrdersParams{}
		readParams(*inputFile, params)
		plan, err = uc.CancelOrders(ctx, params)
	default:
		fmt.Fprintln(os.Stderr, "unknown action, expect create | fulfill | cancel")
		os.Exit(1)
	}
	if err != nil {
		ctx.WithFields(log.Fields{
			"action": *action,
			"err":    err,
		}).Panic("plan failed")
	}

	out, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		panic(err)
	}
	fmt.Println(string(out))
}
