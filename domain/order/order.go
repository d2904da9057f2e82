package order

import (
	"math/big"

	"github.com/lootex/goaggregator/domain"
	"github.com/lootex/goaggregator/domain/seaport"
	"github.com/lootex/goaggregator/domain/token"
)

type Category string

const (
	CategoryListing         Category = "listing"
	CategoryOffer           Category = "offer"
	CategoryCollectionOffer Category = "collection-offer"
)

func ToCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryListing, CategoryOffer, CategoryCollectionOffer:
		return Category(s), nil
	}
	return "", domain.ErrInvalidOrderCategory
}

// IsOffer covers both targeted and collection-wide offers
func (c Category) IsOffer() bool {
	return c == CategoryOffer || c == CategoryCollectionOffer
}

type OfferType string

const (
	OfferTypeSingle     OfferType = "Single"
	OfferTypeCollection OfferType = "Collection"
)

func ToOfferType(s string) (OfferType, error) {
	switch OfferType(s) {
	case OfferTypeSingle, OfferTypeCollection:
		return OfferType(s), nil
	}
	return "", domain.ErrInvalidOfferType
}

type PlatformType int

const (
	PlatformLootex PlatformType = iota
	PlatformOpensea
)

func (p PlatformType) Name() string {
	switch p {
	case PlatformLootex:
		return "Lootex"
	case PlatformOpensea:
		return "OpenSea"
	}
	return "Unknown"
}

// MarketplaceId is the marketplace tag the aggregator contract dispatches on
func (p PlatformType) MarketplaceId() int {
	if p == PlatformOpensea {
		return 1
	}
	return 0
}

// Order is a marketplace order: seaport parameters plus the metadata the
// aggregation layer needs to batch, price and sign it
type Order struct {
	Hash                  domain.OrderHash        `json:"hash"`
	ChainId               domain.ChainId          `json:"chainId"`
	Category              Category                `json:"category"`
	OfferType             OfferType               `json:"offerType"`
	Offerer               domain.Address          `json:"offerer"`
	ExchangeAddress       domain.Address          `json:"exchangeAddress"`
	PlatformType          PlatformType            `json:"platformType"`
	UnitsToFill           string                  `json:"unitsToFill"`
	SeaportOrder          seaport.Order           `json:"seaportOrder"`
	Currencies            []token.Token           `json:"currencies"`
	ConsiderationCriteria []seaport.InputCriteria `json:"considerationCriteria"`
}

func (o *Order) IsOpenseaOrder() bool {
	return o.PlatformType == PlatformOpensea
}

func (o *Order) HasSignature() bool {
	return o.SeaportOrder.Signature != "" && o.SeaportOrder.Signature != "0x"
}

// Quantity is the order's total fillable size. Listings count the nft leg
// being sold, offers the nft leg being bought.
func (o *Order) Quantity() *big.Int {
	items := o.SeaportOrder.Parameters.Offer
	if o.Category.IsOffer() {
		consideration := o.SeaportOrder.Parameters.Consideration
		for i := range consideration {
			if !consideration[i].ItemType.IsCurrency() {
				if n, ok := new(big.Int).SetString(consideration[i].StartAmount, 10); ok {
					return n
				}
			}
		}
		return big.NewInt(1)
	}
	for i := range items {
		if !items[i].ItemType.IsCurrency() {
			if n, ok := new(big.Int).SetString(items[i].StartAmount, 10); ok {
				return n
			}
		}
	}
	return big.NewInt(1)
}

// WithSignature returns a copy of the order carrying the signature, leaving
// the receiver untouched so concurrent resolution never races
func (o *Order) WithSignature(signature string) *Order {
	copied := *o
	copied.SeaportOrder.Signature = signature
	return &copied
}
