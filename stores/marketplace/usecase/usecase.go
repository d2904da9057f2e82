package usecase

import (
	"time"

	bCtx "github.com/lootex/goaggregator/base/ctx"
	"github.com/lootex/goaggregator/base/validator"
	"github.com/lootex/goaggregator/domain"
	"github.com/lootex/goaggregator/domain/chain"
	"github.com/lootex/goaggregator/domain/marketplace"
	"github.com/lootex/goaggregator/service/orderbook"
)

const (
	defaultSignaturePacing  = 500 * time.Millisecond
	defaultSignatureWorkers = 4
)

type MarketplaceUseCaseCfg struct {
	ChainRegistry   *chain.Registry
	Orderbook       orderbook.Client
	EthReaderGetter domain.EthReaderGetter
	// pacing delay per signature fetch, upstream rate limit backpressure
	SignaturePacing  time.Duration
	SignatureWorkers int
}

type impl struct {
	chains           *chain.Registry
	orderbook        orderbook.Client
	readerGetter     domain.EthReaderGetter
	signaturePacing  time.Duration
	signatureWorkers int
}

func New(cfg *MarketplaceUseCaseCfg) marketplace.UseCase {
	pacing := cfg.SignaturePacing
	if pacing == 0 {
		pacing = defaultSignaturePacing
	}
	workers := cfg.SignatureWorkers
	if workers == 0 {
		workers = defaultSignatureWorkers
	}
	return &impl{
		chains:           cfg.ChainRegistry,
		orderbook:        cfg.Orderbook,
		readerGetter:     cfg.EthReaderGetter,
		signaturePacing:  pacing,
		signatureWorkers: workers,
	}
}

func (im *impl) SyncTxHash(ctx bCtx.Ctx, txHash domain.TxHash, hashes []domain.OrderHash) error {
	return im.orderbook.SyncTxHash(ctx, orderbook.SyncTxHashPayload{
		TxHash: txHash,
		Hashes: hashes,
	})
}

func validateParams(params interface{}) error {
	if err := validator.Struct(params); err != nil {
		return domain.ErrBadParamInput
	}
	return nil
}
