package order

import (
	"testing"

	"github.com/lootex/goaggregator/domain"
	"github.com/lootex/goaggregator/domain/seaport"
	"github.com/lootex/goaggregator/domain/token"
	"github.com/stretchr/testify/require"
)

const (
	offerer   = domain.Address("0x1111111111111111111111111111111111111111")
	nftToken  = domain.Address("0x2222222222222222222222222222222222222222")
	erc20Addr = domain.Address("0x3333333333333333333333333333333333333333")
)

func makeListing(price string) *Order {
	return &Order{
		Hash:            "0xaaaa000000000000000000000000000000000000000000000000000000000001",
		ChainId:         1,
		Category:        CategoryListing,
		OfferType:       OfferTypeSingle,
		Offerer:         offerer,
		ExchangeAddress: seaport.CrossChainExchangeAddress,
		SeaportOrder: seaport.Order{
			Parameters: seaport.OrderComponents{
				OrderParameters: seaport.OrderParameters{
					Offerer: offerer,
					Offer: []seaport.OfferItem{
						{ItemType: seaport.ItemTypeErc721, Token: nftToken, IdentifierOrCriteria: "42", StartAmount: "1", EndAmount: "1"},
					},
					Consideration: []seaport.ConsiderationItem{
						{ItemType: seaport.ItemTypeNative, Token: domain.EmptyAddress, IdentifierOrCriteria: "0", StartAmount: price, EndAmount: price, Recipient: offerer},
					},
				},
			},
			Signature: "0xsig",
		},
	}
}

func makeOffer(amount, quantity, unitsToFill string) *Order {
	weth, _ := token.Wrapped(1)
	return &Order{
		Hash:            "0xaaaa000000000000000000000000000000000000000000000000000000000002",
		ChainId:         1,
		Category:        CategoryOffer,
		OfferType:       OfferTypeSingle,
		Offerer:         offerer,
		ExchangeAddress: seaport.CrossChainExchangeAddress,
		UnitsToFill:     unitsToFill,
		Currencies:      []token.Token{weth},
		SeaportOrder: seaport.Order{
			Parameters: seaport.OrderComponents{
				OrderParameters: seaport.OrderParameters{
					Offerer: offerer,
					Offer: []seaport.OfferItem{
						{ItemType: seaport.ItemTypeErc20, Token: weth.Address, IdentifierOrCriteria: "0", StartAmount: amount, EndAmount: amount},
					},
					Consideration: []seaport.ConsiderationItem{
						{ItemType: seaport.ItemTypeErc1155, Token: nftToken, IdentifierOrCriteria: "7", StartAmount: quantity, EndAmount: quantity, Recipient: offerer},
					},
				},
			},
			Signature: "0xsig",
		},
	}
}

func TestToCategory(t *testing.T) {
	c, err := ToCategory("listing")
	require.NoError(t, err)
	require.Equal(t, CategoryListing, c)
	require.False(t, c.IsOffer())

	c, err = ToCategory("collection-offer")
	require.NoError(t, err)
	require.True(t, c.IsOffer())

	_, err = ToCategory("auction")
	require.ErrorIs(t, err, domain.ErrInvalidOrderCategory)
}

func TestToOfferType(t *testing.T) {
	ot, err := ToOfferType("Collection")
	require.NoError(t, err)
	require.Equal(t, OfferTypeCollection, ot)

	_, err = ToOfferType("Bundle")
	require.ErrorIs(t, err, domain.ErrInvalidOfferType)
}

func TestPlatformType(t *testing.T) {
	require.Equal(t, "Lootex", PlatformLootex.Name())
	require.Equal(t, "OpenSea", PlatformOpensea.Name())
	require.Equal(t, "Unknown", PlatformType(9).Name())
	require.Equal(t, 0, PlatformLootex.MarketplaceId())
	require.Equal(t, 1, PlatformOpensea.MarketplaceId())
}

func TestQuantity(t *testing.T) {
	listing := makeListing("1000")
	require.Equal(t, "1", listing.Quantity().String())

	offer := makeOffer("1000", "5", "2")
	require.Equal(t, "5", offer.Quantity().String())
}

func TestWithSignature(t *testing.T) {
	o := makeListing("1000")
	o.SeaportOrder.Signature = ""
	require.False(t, o.HasSignature())

	signed := o.WithSignature("0xdeadbeef")
	require.True(t, signed.HasSignature())
	require.False(t, o.HasSignature())
	require.Equal(t, o.Hash, signed.Hash)
}

func TestSummarizeTokensListings(t *testing.T) {
	orders := []*Order{
		makeListing("1000000000000000000"),
		makeListing("500000000000000000"),
	}
	summary, err := SummarizeTokens(orders)
	require.NoError(t, err)
	require.Len(t, summary, 1)
	require.True(t, summary[0].Currency.IsNative())
	require.Equal(t, "1500000000000000000", summary[0].Quotient().String())

	native, err := NativeTotal(1, summary)
	require.NoError(t, err)
	require.Equal(t, "1500000000000000000", native.Quotient().String())

	_, ok := Erc20Total(summary)
	require.False(t, ok)
}

func TestSummarizeTokensPartialFillOffer(t *testing.T) {
	// 2 of 5 units of a 1000 wei offer, floor(1000*2/5) = 400
	orders := []*Order{makeOffer("1000", "5", "2")}
	summary, err := SummarizeTokens(orders)
	require.NoError(t, err)
	require.Len(t, summary, 1)
	require.False(t, summary[0].Currency.IsNative())
	require.Equal(t, "400", summary[0].Quotient().String())

	erc20, ok := Erc20Total(summary)
	require.True(t, ok)
	require.Equal(t, "WETH", erc20.Currency.Symbol)

	native, err := NativeTotal(1, summary)
	require.NoError(t, err)
	require.Equal(t, "0", native.Quotient().String())
}
