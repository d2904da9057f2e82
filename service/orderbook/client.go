package orderbook

import (
	"errors"
	"net/http"
	"time"

	bCtx "github.com/lootex/goaggregator/base/ctx"
	"github.com/lootex/goaggregator/domain"
	"github.com/lootex/goaggregator/domain/seaport"
)

var ErrStatusCodeNotOk = errors.New("http.status != 200")

// SignatureRequest asks the orderbook to fetch a third-party marketplace
// signature for a stored order
type SignatureRequest struct {
	OrderHash domain.OrderHash `json:"orderHash"`
	ChainId   domain.ChainId   `json:"chainId"`
	// upstream api field name, not a typo on our side
	ExchangeAddress  domain.Address `json:"exChangeAddress"`
	FulfillerAddress domain.Address `json:"fulfillerAddress"`
}

type SignatureResponse struct {
	OrderHash domain.OrderHash `json:"orderHash"`
	Signature string           `json:"signature"`
}

// PostOrderPayload is one signed (or bulk-signed) order submitted for
// off-chain storage
type PostOrderPayload struct {
	seaport.OrderComponents
	Category        string           `json:"category"`
	ExchangeAddress domain.Address   `json:"exchangeAddress"`
	ChainId         string           `json:"chainId"`
	Hash            domain.OrderHash `json:"hash"`
	Proof           []string         `json:"proof,omitempty"`
	Signature       string           `json:"signature"`
}

type SyncTxHashPayload struct {
	TxHash domain.TxHash      `json:"txHash"`
	Hashes []domain.OrderHash `json:"hashes"`
}

// PlatformFee is a marketplace fee schedule entry for one collection
type PlatformFee struct {
	Percentage float64        `json:"percentage"`
	Recipient  domain.Address `json:"recipient"`
}

type Client interface {
	GetOpenseaSignatures(ctx bCtx.Ctx, reqs []SignatureRequest) ([]SignatureResponse, error)
	GetPlatformFeeInfo(ctx bCtx.Ctx, chainId domain.ChainId, collection domain.Address) ([]PlatformFee, error)
	// PostOrders and SyncOrder are never called while planning. Plans only
	// carry the post action's endpoint and body; the caller executes it
	// with these once the orders are signed.
	PostOrders(ctx bCtx.Ctx, orders []PostOrderPayload) error
	SyncOrder(ctx bCtx.Ctx, hash domain.OrderHash) error
	SyncTxHash(ctx bCtx.Ctx, payload SyncTxHashPayload) error
}

type ClientCfg struct {
	HttpClient http.Client
	BaseUrl    string
	Timeout    time.Duration
	Apikey     string
}
