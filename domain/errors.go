package domain

import "errors"

var (
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput       = errors.New("Given Param is not valid")
	ErrInvalidNumberFormat = errors.New("invalid number format")
	ErrInvalidChainId      = errors.New("invalid chain id")
	ErrInvalidAddress      = errors.New("Invalid address")
	ErrInvalidSignature    = errors.New("Invalid signature")

	// configuration errors are fatal and never retried
	ErrUnsupportedChain         = errors.New("unsupported chain id")
	ErrMissingAggregatorAddress = errors.New("missing aggregator address for chain")
	ErrMissingExchangeAddress   = errors.New("missing exchange address for chain")
	ErrTokenNotFound            = errors.New("token not found for symbol and chain")

	// ErrCurrencyMismatch is a programming error, amounts of different
	// tokens must never be combined
	ErrCurrencyMismatch = errors.New("currency mismatch")

	// ErrMissingFulfillmentParams fails a multi-order batch before any
	// network call is attempted
	ErrMissingFulfillmentParams = errors.New("missing fulfillment params for batch fulfillment")

	ErrNoOrders             = errors.New("no orders")
	ErrInvalidOrderCategory = errors.New("invalid order category")
	ErrInvalidOfferType     = errors.New("invalid offer type")
	ErrMissingTokenId       = errors.New("token id is required for listing")
	ErrInsufficientBalance  = errors.New("insufficient balance")
	ErrSignatureNotFound    = errors.New("order signature not found")
)
