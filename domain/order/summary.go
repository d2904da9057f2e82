package order

import (
	"github.com/lootex/goaggregator/base/fraction"
	"github.com/lootex/goaggregator/domain"
	"github.com/lootex/goaggregator/domain/seaport"
	"github.com/lootex/goaggregator/domain/token"
)

// fillFraction is unitsToFill over the order's total size, 1/1 when no
// partial fill is requested
func fillFraction(o *Order) (fraction.Fraction, error) {
	if o.UnitsToFill == "" || o.UnitsToFill == "0" {
		return fraction.FromInt64(1), nil
	}
	units, err := fraction.FromDecimalString(o.UnitsToFill)
	if err != nil {
		return fraction.Fraction{}, err
	}
	total := fraction.FromBig(o.Quantity())
	return units.Div(total), nil
}

func (o *Order) resolveCurrency(address domain.Address) token.Token {
	if address.IsEmpty() || address.Equals(domain.EmptyAddress) {
		if native, err := token.Native(o.ChainId); err == nil {
			return native
		}
	}
	for _, currency := range o.Currencies {
		if currency.Address.Equals(address) {
			return currency
		}
	}
	return token.Token{ChainId: o.ChainId, Address: address.ToLower(), Decimals: 18}
}

func (o *Order) currencyItems() []seaport.OfferItem {
	if o.Category.IsOffer() {
		items := []seaport.OfferItem{}
		for _, item := range o.SeaportOrder.Parameters.Offer {
			if item.ItemType.IsCurrency() {
				items = append(items, item)
			}
		}
		return items
	}
	items := []seaport.OfferItem{}
	for _, item := range o.SeaportOrder.Parameters.Consideration {
		if item.ItemType.IsCurrency() {
			items = append(items, seaport.OfferItem{
				ItemType:             item.ItemType,
				Token:                item.Token,
				IdentifierOrCriteria: item.IdentifierOrCriteria,
				StartAmount:          item.StartAmount,
				EndAmount:            item.EndAmount,
			})
		}
	}
	return items
}

// SummarizeTokens totals the currency legs across orders, scaling each
// order by its fill fraction and merging amounts of the same token. Output
// follows first appearance order.
func SummarizeTokens(orders []*Order) ([]token.CurrencyAmount, error) {
	type key struct {
		chainId domain.ChainId
		address domain.Address
	}
	totals := map[key]token.CurrencyAmount{}
	keys := []key{}

	for _, o := range orders {
		fill, err := fillFraction(o)
		if err != nil {
			return nil, err
		}
		for _, item := range o.currencyItems() {
			currency := o.resolveCurrency(item.Token)
			amount, err := token.FromRawAmountString(currency, item.StartAmount)
			if err != nil {
				return nil, err
			}
			scaled := amount.Multiply(fill)

			k := key{chainId: currency.ChainId, address: currency.Address.ToLower()}
			if existing, ok := totals[k]; ok {
				merged, err := existing.Add(scaled)
				if err != nil {
					return nil, err
				}
				totals[k] = merged
			} else {
				totals[k] = scaled
				keys = append(keys, k)
			}
		}
	}

	out := make([]token.CurrencyAmount, 0, len(keys))
	for _, k := range keys {
		out = append(out, totals[k])
	}
	return out, nil
}

// NativeTotal picks the native leg out of a token summary, zero native
// amount when absent
func NativeTotal(chainId domain.ChainId, summary []token.CurrencyAmount) (token.CurrencyAmount, error) {
	for _, amount := range summary {
		if amount.Currency.IsNative() {
			return amount, nil
		}
	}
	native, err := token.Native(chainId)
	if err != nil {
		return token.CurrencyAmount{}, err
	}
	return token.FromRawAmountString(native, "0")
}

// Erc20Total picks the first erc20 leg out of a token summary
func Erc20Total(summary []token.CurrencyAmount) (token.CurrencyAmount, bool) {
	for _, amount := range summary {
		if !amount.Currency.IsNative() {
			return amount, true
		}
	}
	return token.CurrencyAmount{}, false
}
