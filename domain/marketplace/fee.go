package marketplace

import (
	"github.com/lootex/goaggregator/base/fraction"
	"github.com/lootex/goaggregator/domain"
	"github.com/lootex/goaggregator/domain/seaport"
	"github.com/lootex/goaggregator/domain/token"
)

// Fee is a percentage cut routed to a recipient, e.g. 2.5 for 2.5%
type Fee struct {
	Percentage float64        `json:"percentage"`
	Recipient  domain.Address `json:"recipient"`
}

// FormatFeeConsiderations turns fee entries into consideration items over
// the order's currency. Each fee rounds down independently, matching the
// on-chain split, so the leftover dust stays with the main consideration.
// Percentage sums are not validated here.
func FormatFeeConsiderations(fees []Fee, totalPrice token.CurrencyAmount) []seaport.ConsiderationItem {
	itemType := seaport.ItemTypeErc20
	currencyAddress := totalPrice.Currency.Address
	if totalPrice.Currency.IsNative() {
		itemType = seaport.ItemTypeNative
		currencyAddress = domain.EmptyAddress
	}

	items := []seaport.ConsiderationItem{}
	for _, fee := range fees {
		rate := fraction.FromFloat(fee.Percentage).Div(fraction.FromInt64(100))
		amount := totalPrice.Multiply(rate).Quotient().String()
		items = append(items, seaport.ConsiderationItem{
			ItemType:             itemType,
			Token:                currencyAddress,
			IdentifierOrCriteria: "0",
			StartAmount:          amount,
			EndAmount:            amount,
			Recipient:            fee.Recipient,
		})
	}
	return items
}
