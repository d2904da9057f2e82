package aggregator

import (
	"math/big"
	"sort"

	"github.com/lootex/goaggregator/domain"
	"github.com/lootex/goaggregator/domain/order"
	"github.com/lootex/goaggregator/domain/seaport"
)

// opensea's fee collector has to come right after the main consideration
// item or their validation rejects the fulfillment
const openseaFeeCollector = domain.Address("0x0000a26b00c1f0df003000390027140000faa719")

// fillNumeratorDenominator reduces unitsToFill over totalSize by their gcd,
// defaulting to 1/1 for full fills
func fillNumeratorDenominator(totalSize *big.Int, unitsToFill string) (string, string, error) {
	if unitsToFill == "" || unitsToFill == "0" {
		return "1", "1", nil
	}
	units, ok := new(big.Int).SetString(unitsToFill, 10)
	if !ok {
		return "", "", domain.ErrInvalidNumberFormat
	}
	gcd := new(big.Int).GCD(nil, nil, units, totalSize)
	numerator := new(big.Int).Quo(units, gcd)
	denominator := new(big.Int).Quo(totalSize, gcd)
	return numerator.String(), denominator.String(), nil
}

func sortOpenseaConsiderations(o *order.Order) []seaport.ConsiderationItem {
	considerations := o.SeaportOrder.Parameters.Consideration
	if !o.IsOpenseaOrder() || len(considerations) < 2 {
		return considerations
	}
	sorted := make([]seaport.ConsiderationItem, len(considerations))
	copy(sorted, considerations)
	rest := sorted[1:]
	sort.SliceStable(rest, func(i, j int) bool {
		return rest[i].Recipient.Equals(openseaFeeCollector) && !rest[j].Recipient.Equals(openseaFeeCollector)
	})
	return sorted
}

// GetAdvancedOrder converts a marketplace order into seaport's advanced
// form, carrying the partial fill fraction
func GetAdvancedOrder(o *order.Order) (seaport.AdvancedOrder, error) {
	numerator, denominator, err := fillNumeratorDenominator(o.Quantity(), o.UnitsToFill)
	if err != nil {
		return seaport.AdvancedOrder{}, err
	}
	parameters := o.SeaportOrder.Parameters.OrderParameters
	parameters.Consideration = sortOpenseaConsiderations(o)
	return seaport.AdvancedOrder{
		Parameters:  parameters,
		Numerator:   numerator,
		Denominator: denominator,
		Signature:   o.SeaportOrder.Signature,
		ExtraData:   "0x",
	}, nil
}

func GetAdvancedOrders(orders []*order.Order) ([]seaport.AdvancedOrder, error) {
	out := make([]seaport.AdvancedOrder, 0, len(orders))
	for _, o := range orders {
		advanced, err := GetAdvancedOrder(o)
		if err != nil {
			return nil, err
		}
		out = append(out, advanced)
	}
	return out, nil
}
