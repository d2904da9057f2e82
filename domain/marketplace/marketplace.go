package marketplace

import (
	bCtx "github.com/lootex/goaggregator/base/ctx"
	"github.com/lootex/goaggregator/domain"
	"github.com/lootex/goaggregator/domain/order"
)

type TokenKind string

const (
	TokenKindErc721  TokenKind = "ERC721"
	TokenKindErc1155 TokenKind = "ERC1155"
)

// CreateOrderItem describes one order to create. TokenId is empty for
// collection offers, which match any id in the collection.
type CreateOrderItem struct {
	TokenAddress domain.Address `json:"tokenAddress" validate:"required"`
	TokenKind    TokenKind      `json:"tokenKind"`
	TokenId      string         `json:"tokenId"`
	UnitPrice    string         `json:"unitPrice" validate:"required"`
	Quantity     string         `json:"quantity"`
	Currency     domain.Address `json:"currency"`
	StartTime    int64          `json:"startTime"`
	EndTime      int64          `json:"endTime"`
	Fees         []Fee          `json:"fees"`
}

type CreateOrdersParams struct {
	ChainId         domain.ChainId    `json:"chainId" validate:"required"`
	Category        order.Category    `json:"category" validate:"required"`
	AccountAddress  domain.Address    `json:"accountAddress" validate:"required"`
	Orders          []CreateOrderItem `json:"orders" validate:"required,min=1,dive"`
	EnableBulkOrder bool              `json:"enableBulkOrder"`
}

type FulfillOrdersParams struct {
	ChainId        domain.ChainId `json:"chainId" validate:"required"`
	AccountAddress domain.Address `json:"accountAddress" validate:"required"`
	Orders         []*order.Order `json:"orders" validate:"required,min=1"`
	// Operator defaults to the chain's aggregator contract
	Operator       domain.Address `json:"operator"`
	MaxOrdersPerTx int            `json:"maxOrdersPerTx"`
}

type CancelOrdersParams struct {
	ChainId        domain.ChainId `json:"chainId" validate:"required"`
	AccountAddress domain.Address `json:"accountAddress" validate:"required"`
	Orders         []*order.Order `json:"orders" validate:"required,min=1"`
}

// SignatureResolution partitions a batch after off-chain signature
// back-fill. Unsigned orders are skipped, not fatal.
type SignatureResolution struct {
	OrdersWithSignature    []*order.Order
	OrdersWithoutSignature []*order.Order
}

type UseCase interface {
	CreateOrders(ctx bCtx.Ctx, params *CreateOrdersParams) (*Plan, error)
	FulfillOrders(ctx bCtx.Ctx, params *FulfillOrdersParams) (*Plan, error)
	CancelOrders(ctx bCtx.Ctx, params *CancelOrdersParams) (*Plan, error)
	ResolveSignatures(ctx bCtx.Ctx, orders []*order.Order) (*SignatureResolution, error)
	SyncTxHash(ctx bCtx.Ctx, txHash domain.TxHash, hashes []domain.OrderHash) error
}
