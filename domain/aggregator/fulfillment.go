package aggregator

import (
	"github.com/lootex/goaggregator/domain/order"
	"github.com/lootex/goaggregator/domain/seaport"
)

// AdvancedAvailableParams feeds the batched seaport entry point, one
// fulfillment component per item so the contract matches items positionally
// against the advanced orders array
type AdvancedAvailableParams struct {
	OfferFulfillments         [][]seaport.FulfillmentComponent
	ConsiderationFulfillments [][]seaport.FulfillmentComponent
	MaximumFulfilled          int
}

// GetAdvancedAvailableParams emits components in input order, one singleton
// group per offer and consideration item. Emission order is part of the
// wire behavior, the exchange resolves indices against the order array as
// given.
func GetAdvancedAvailableParams(orders []*order.Order) AdvancedAvailableParams {
	params := AdvancedAvailableParams{
		OfferFulfillments:         [][]seaport.FulfillmentComponent{},
		ConsiderationFulfillments: [][]seaport.FulfillmentComponent{},
		MaximumFulfilled:          len(orders),
	}
	for orderIndex, o := range orders {
		for itemIndex := range o.SeaportOrder.Parameters.Offer {
			params.OfferFulfillments = append(params.OfferFulfillments, []seaport.FulfillmentComponent{
				{OrderIndex: orderIndex, ItemIndex: itemIndex},
			})
		}
		for itemIndex := range o.SeaportOrder.Parameters.Consideration {
			params.ConsiderationFulfillments = append(params.ConsiderationFulfillments, []seaport.FulfillmentComponent{
				{OrderIndex: orderIndex, ItemIndex: itemIndex},
			})
		}
	}
	return params
}
