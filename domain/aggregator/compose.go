package aggregator

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/lootex/goaggregator/domain"
	"github.com/lootex/goaggregator/domain/order"
	"github.com/lootex/goaggregator/domain/seaport"
	"golang.org/x/xerrors"
)

const (
	marketplaceIdWidth = 2
	continueFlagWidth  = 1
	ethValueWidth      = 21
	payloadLenWidth    = 4
)

// ComposeSeaportData encodes the exchange calldata for a batch, the single
// order entry point for one order, the advanced batch entry point otherwise
func ComposeSeaportData(orders []*order.Order, fulfillerConduitKey string, recipient domain.Address) ([]byte, error) {
	if len(orders) == 0 {
		return nil, domain.ErrNoOrders
	}

	advancedOrders, err := GetAdvancedOrders(orders)
	if err != nil {
		return nil, err
	}
	criteriaResolvers := GetCriteriaResolvers(orders)

	if len(advancedOrders) > 1 {
		params := GetAdvancedAvailableParams(orders)
		if params.MaximumFulfilled == 0 || len(params.OfferFulfillments) == 0 || len(params.ConsiderationFulfillments) == 0 {
			return nil, domain.ErrMissingFulfillmentParams
		}
		return seaport.EncodeFulfillAvailableAdvancedOrders(
			advancedOrders,
			criteriaResolvers,
			params.OfferFulfillments,
			params.ConsiderationFulfillments,
			fulfillerConduitKey,
			recipient,
			params.MaximumFulfilled,
		)
	}

	return seaport.EncodeFulfillAdvancedOrder(&advancedOrders[0], criteriaResolvers, fulfillerConduitKey, recipient)
}

// ComposeByteData wraps the exchange calldata in the aggregator envelope:
// marketplace id (2 bytes) || continue-if-failed (1 byte) || native value
// (21 bytes) || payload byte length (4 bytes) || payload, all big endian.
// The layout must match the deployed aggregator byte for byte.
func ComposeByteData(orders []*order.Order, marketplaceId int, accountAddress, aggregatorAddress domain.Address) ([]byte, error) {
	if aggregatorAddress.IsEmpty() {
		return nil, domain.ErrMissingAggregatorAddress
	}
	if len(orders) == 0 {
		return nil, domain.ErrNoOrders
	}

	isAcceptOffer := orders[0].Category.IsOffer()

	summary, err := order.SummarizeTokens(orders)
	if err != nil {
		return nil, err
	}
	nativeTotal, err := order.NativeTotal(orders[0].ChainId, summary)
	if err != nil {
		return nil, err
	}

	fulfillerConduitKey := seaport.ZeroConduitKey
	if marketplaceId == order.PlatformOpensea.MarketplaceId() {
		fulfillerConduitKey = seaport.OpenseaConduitKey
	}

	recipient := accountAddress
	if isAcceptOffer {
		recipient = aggregatorAddress
	}

	seaportData, err := ComposeSeaportData(orders, fulfillerConduitKey, recipient)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, marketplaceIdWidth+continueFlagWidth+ethValueWidth+payloadLenWidth+len(seaportData))
	out = append(out, byte(marketplaceId>>8), byte(marketplaceId))
	out = append(out, 1)
	value := nativeTotal.Quotient().Bytes()
	if len(value) > ethValueWidth {
		return nil, xerrors.Errorf("native value overflows %d bytes", ethValueWidth)
	}
	out = append(out, common.LeftPadBytes(value, ethValueWidth)...)
	payloadLen := len(seaportData)
	out = append(out, byte(payloadLen>>24), byte(payloadLen>>16), byte(payloadLen>>8), byte(payloadLen))
	out = append(out, seaportData...)
	return out, nil
}
