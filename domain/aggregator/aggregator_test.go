package aggregator

import (
	"encoding/binary"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/lootex/goaggregator/domain"
	"github.com/lootex/goaggregator/domain/order"
	"github.com/lootex/goaggregator/domain/seaport"
	"github.com/lootex/goaggregator/domain/token"
	"github.com/stretchr/testify/require"
)

const (
	buyer      = domain.Address("0x1111111111111111111111111111111111111111")
	seller     = domain.Address("0x5555555555555555555555555555555555555555")
	nftAddress = domain.Address("0x2222222222222222222222222222222222222222")
	aggregator = domain.Address("0x69cf8871f61fb03f540bc519dd1f1d4682ea0bf6")
)

func newBigFromBytes(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

func listingOrder(price, salt string) *order.Order {
	return &order.Order{
		Hash:            "0xaaaa000000000000000000000000000000000000000000000000000000000001",
		ChainId:         1,
		Category:        order.CategoryListing,
		OfferType:       order.OfferTypeSingle,
		Offerer:         seller,
		ExchangeAddress: seaport.CrossChainExchangeAddress,
		SeaportOrder: seaport.Order{
			Parameters: seaport.OrderComponents{
				OrderParameters: seaport.OrderParameters{
					Offerer: seller,
					Zone:    domain.EmptyAddress,
					Offer: []seaport.OfferItem{
						{ItemType: seaport.ItemTypeErc721, Token: nftAddress, IdentifierOrCriteria: "42", StartAmount: "1", EndAmount: "1"},
					},
					Consideration: []seaport.ConsiderationItem{
						{ItemType: seaport.ItemTypeNative, Token: domain.EmptyAddress, IdentifierOrCriteria: "0", StartAmount: price, EndAmount: price, Recipient: seller},
					},
					StartTime:                       "1690000000",
					EndTime:                         "1690086400",
					ZoneHash:                        seaport.ZeroHash,
					Salt:                            salt,
					ConduitKey:                      seaport.ZeroConduitKey,
					TotalOriginalConsiderationItems: 1,
				},
				Counter: "0",
			},
			Signature: "0xabcd",
		},
	}
}

func offerOrder(amount, quantity, unitsToFill string, offerType order.OfferType) *order.Order {
	weth, _ := token.Wrapped(1)
	o := &order.Order{
		Hash:            "0xaaaa000000000000000000000000000000000000000000000000000000000002",
		ChainId:         1,
		Category:        order.CategoryOffer,
		OfferType:       offerType,
		Offerer:         seller,
		ExchangeAddress: seaport.CrossChainExchangeAddress,
		UnitsToFill:     unitsToFill,
		Currencies:      []token.Token{weth},
		SeaportOrder: seaport.Order{
			Parameters: seaport.OrderComponents{
				OrderParameters: seaport.OrderParameters{
					Offerer: seller,
					Offer: []seaport.OfferItem{
						{ItemType: seaport.ItemTypeErc20, Token: weth.Address, IdentifierOrCriteria: "0", StartAmount: amount, EndAmount: amount},
					},
					Consideration: []seaport.ConsiderationItem{
						{ItemType: seaport.ItemTypeErc1155, Token: nftAddress, IdentifierOrCriteria: "7", StartAmount: quantity, EndAmount: quantity, Recipient: seller},
					},
					StartTime:                       "1690000000",
					EndTime:                         "1690086400",
					ZoneHash:                        seaport.ZeroHash,
					Salt:                            "1",
					ConduitKey:                      seaport.ZeroConduitKey,
					TotalOriginalConsiderationItems: 1,
				},
				Counter: "0",
			},
			Signature: "0xabcd",
		},
	}
	if offerType == order.OfferTypeCollection {
		o.SeaportOrder.Parameters.Consideration[0].ItemType = seaport.ItemTypeErc1155WithCriteria
		o.ConsiderationCriteria = []seaport.InputCriteria{{Identifier: "9", Proof: []string{}}}
	}
	return o
}

func TestGetAdvancedAvailableParams(t *testing.T) {
	orders := []*order.Order{
		listingOrder("100", "1"),
		listingOrder("200", "2"),
		listingOrder("300", "3"),
	}
	params := GetAdvancedAvailableParams(orders)
	require.Len(t, params.OfferFulfillments, 3)
	require.Len(t, params.ConsiderationFulfillments, 3)
	require.Equal(t, 3, params.MaximumFulfilled)
	require.Equal(t, seaport.FulfillmentComponent{OrderIndex: 1, ItemIndex: 0}, params.OfferFulfillments[1][0])
	require.Equal(t, seaport.FulfillmentComponent{OrderIndex: 2, ItemIndex: 0}, params.ConsiderationFulfillments[2][0])
}

func TestGetAdvancedAvailableParamsEmpty(t *testing.T) {
	params := GetAdvancedAvailableParams(nil)
	require.Empty(t, params.OfferFulfillments)
	require.Empty(t, params.ConsiderationFulfillments)
	require.Zero(t, params.MaximumFulfilled)
}

func TestGetCriteriaResolvers(t *testing.T) {
	// first order decides, non collection batches resolve nothing
	orders := []*order.Order{
		offerOrder("1000", "1", "", order.OfferTypeSingle),
		offerOrder("1000", "1", "", order.OfferTypeCollection),
	}
	require.Empty(t, GetCriteriaResolvers(orders))

	collection := []*order.Order{
		offerOrder("1000", "1", "", order.OfferTypeCollection),
		offerOrder("2000", "1", "", order.OfferTypeCollection),
	}
	resolvers := GetCriteriaResolvers(collection)
	require.Len(t, resolvers, 2)
	require.Equal(t, seaport.SideConsideration, resolvers[0].Side)
	require.Equal(t, 1, resolvers[1].OrderIndex)
	require.Equal(t, "9", resolvers[0].Identifier)
	require.Empty(t, resolvers[0].CriteriaProof)
}

func TestGetAdvancedOrderFillFraction(t *testing.T) {
	full, err := GetAdvancedOrder(listingOrder("100", "1"))
	require.NoError(t, err)
	require.Equal(t, "1", full.Numerator)
	require.Equal(t, "1", full.Denominator)

	partial, err := GetAdvancedOrder(offerOrder("1000", "4", "2", order.OfferTypeSingle))
	require.NoError(t, err)
	require.Equal(t, "1", partial.Numerator)
	require.Equal(t, "2", partial.Denominator)
	require.Equal(t, "0x", partial.ExtraData)
}

func TestSortOpenseaConsiderations(t *testing.T) {
	o := listingOrder("1000", "1")
	o.PlatformType = order.PlatformOpensea
	o.SeaportOrder.Parameters.Consideration = []seaport.ConsiderationItem{
		{ItemType: seaport.ItemTypeNative, StartAmount: "900", EndAmount: "900", Recipient: seller},
		{ItemType: seaport.ItemTypeNative, StartAmount: "50", EndAmount: "50", Recipient: "0x9999999999999999999999999999999999999999"},
		{ItemType: seaport.ItemTypeNative, StartAmount: "50", EndAmount: "50", Recipient: openseaFeeCollector},
	}

	sorted := sortOpenseaConsiderations(o)
	require.Equal(t, seller, sorted[0].Recipient)
	require.Equal(t, openseaFeeCollector, sorted[1].Recipient)

	// untouched for lootex orders
	o.PlatformType = order.PlatformLootex
	unsorted := sortOpenseaConsiderations(o)
	require.Equal(t, openseaFeeCollector, unsorted[2].Recipient)
}

func TestComposeSeaportDataSelectsEntryPoint(t *testing.T) {
	single, err := ComposeSeaportData([]*order.Order{listingOrder("100", "1")}, seaport.ZeroConduitKey, buyer)
	require.NoError(t, err)
	require.Equal(t, seaport.SeaportABI.Methods["fulfillAdvancedOrder"].ID, single[:4])

	batch, err := ComposeSeaportData([]*order.Order{listingOrder("100", "1"), listingOrder("200", "2")}, seaport.ZeroConduitKey, buyer)
	require.NoError(t, err)
	require.Equal(t, seaport.SeaportABI.Methods["fulfillAvailableAdvancedOrders"].ID, batch[:4])

	_, err = ComposeSeaportData(nil, seaport.ZeroConduitKey, buyer)
	require.ErrorIs(t, err, domain.ErrNoOrders)
}

// Envelopes recorded against the deployed aggregator layout. Any encoder
// change that alters these blobs breaks on-chain dispatch, so they are
// compared byte for byte, not re-derived.
const (
	listingEnvelopeFixture = "0x000101000000000000000000000000000de0b6b3a7640000000004a4e7acab24000000000000000000000000000000000000000000000000000000000000008000000000000000000000000000000000000000000000000000000000000004800000007b02230091a7ed01230072f7006a004d60a8d4e71d599b8104250f0000000000000000000000000000111111111111111111111111111111111111111100000000000000000000000000000000000000000000000000000000000000a00000000000000000000000000000000000000000000000000000000000000001000000000000000000000000000000000000000000000000000000000000000100000000000000000000000000000000000000000000000000000000000003a000000000000000000000000000000000000000000000000000000000000003e0000000000000000000000000555555555555555555555555555555555555555500000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000160000000000000000000000000000000000000000000000000000000000000022000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000064bb5a800000000000000000000000000000000000000000000000000000000064bcac000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000100000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000001000000000000000000000000000000000000000000000000000000000000000100000000000000000000000000000000000000000000000000000000000000020000000000000000000000002222222222222222222222222222222222222222000000000000000000000000000000000000000000000000000000000000002a0000000000000000000000000000000000000000000000000000000000000001000000000000000000000000000000000000000000000000000000000000000100000000000000000000000000000000000000000000000000000000000000010000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000de0b6b3a76400000000000000000000000000000000000000000000000000000de0b6b3a764000000000000000000000000000055555555555555555555555555555555555555550000000000000000000000000000000000000000000000000000000000000002abcd00000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000"
	offerEnvelopeFixture   = "0x000101000000000000000000000000000000000000000000000004a4e7acab24000000000000000000000000000000000000000000000000000000000000008000000000000000000000000000000000000000000000000000000000000004800000007b02230091a7ed01230072f7006a004d60a8d4e71d599b8104250f000000000000000000000000000069cf8871f61fb03f540bc519dd1f1d4682ea0bf600000000000000000000000000000000000000000000000000000000000000a00000000000000000000000000000000000000000000000000000000000000001000000000000000000000000000000000000000000000000000000000000000100000000000000000000000000000000000000000000000000000000000003a000000000000000000000000000000000000000000000000000000000000003e0000000000000000000000000555555555555555555555555555555555555555500000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000160000000000000000000000000000000000000000000000000000000000000022000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000064bb5a800000000000000000000000000000000000000000000000000000000064bcac00000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000010000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000100000000000000000000000000000000000000000000000000000000000000010000000000000000000000000000000000000000000000000000000000000001000000000000000000000000c02aaa39b223fe8d0a0e5c4f27ead9083c756cc2000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000003e800000000000000000000000000000000000000000000000000000000000003e800000000000000000000000000000000000000000000000000000000000000010000000000000000000000000000000000000000000000000000000000000003000000000000000000000000222222222222222222222222222222222222222200000000000000000000000000000000000000000000000000000000000000070000000000000000000000000000000000000000000000000000000000000001000000000000000000000000000000000000000000000000000000000000000100000000000000000000000055555555555555555555555555555555555555550000000000000000000000000000000000000000000000000000000000000002abcd00000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000"
)

func TestComposeByteDataEnvelope(t *testing.T) {
	orders := []*order.Order{listingOrder("1000000000000000000", "1")}
	data, err := ComposeByteData(orders, 1, buyer, aggregator)
	require.NoError(t, err)

	// marketplace id, 2 bytes
	require.Equal(t, []byte{0x00, 0x01}, data[0:2])
	// continue-if-failed, 1 byte, always set
	require.Equal(t, byte(0x01), data[2])
	// native value, 21 bytes
	require.Equal(t, "1000000000000000000", newBigFromBytes(data[3:24]).String())
	// payload length, 4 bytes
	require.Equal(t, uint32(len(data)-28), binary.BigEndian.Uint32(data[24:28]))
	require.Equal(t, seaport.SeaportABI.Methods["fulfillAdvancedOrder"].ID, data[28:32])

	require.Equal(t, listingEnvelopeFixture, hexutil.Encode(data))
}

func TestComposeByteDataZeroValueFixture(t *testing.T) {
	orders := []*order.Order{offerOrder("1000", "1", "", order.OfferTypeSingle)}
	data, err := ComposeByteData(orders, 1, buyer, aggregator)
	require.NoError(t, err)

	require.Equal(t, make([]byte, 21), data[3:24])
	require.Equal(t, offerEnvelopeFixture, hexutil.Encode(data))
}

func TestComposeByteDataErrors(t *testing.T) {
	orders := []*order.Order{listingOrder("100", "1")}
	_, err := ComposeByteData(orders, 0, buyer, domain.Address(""))
	require.ErrorIs(t, err, domain.ErrMissingAggregatorAddress)

	_, err = ComposeByteData(nil, 0, buyer, aggregator)
	require.ErrorIs(t, err, domain.ErrNoOrders)
}

func TestBuildFulfillTransactionBatchBuyWithETH(t *testing.T) {
	orders := []*order.Order{
		listingOrder("1000000000000000000", "1"),
		listingOrder("500000000000000000", "2"),
	}
	tx, err := BuildFulfillTransaction(orders, buyer, aggregator)
	require.NoError(t, err)
	require.Equal(t, aggregator, tx.To)
	require.Equal(t, AggregatorABI.Methods["batchBuyWithETH"].ID, tx.Data[:4])
	require.Equal(t, "1500000000000000000", tx.Value.String())
}

func TestBuildFulfillTransactionAcceptOffer(t *testing.T) {
	orders := []*order.Order{offerOrder("1000", "1", "", order.OfferTypeSingle)}
	tx, err := BuildFulfillTransaction(orders, buyer, aggregator)
	require.NoError(t, err)
	require.Equal(t, AggregatorABI.Methods["acceptWithERC1155"].ID, tx.Data[:4])
	require.Equal(t, "0", tx.Value.String())
}

func TestBuildFulfillTransactionCollectionOffer(t *testing.T) {
	orders := []*order.Order{offerOrder("1000", "1", "", order.OfferTypeCollection)}
	tx, err := BuildFulfillTransaction(orders, buyer, aggregator)
	require.NoError(t, err)
	require.Equal(t, AggregatorABI.Methods["acceptWithERC1155"].ID, tx.Data[:4])

	orders[0].ConsiderationCriteria = nil
	_, err = BuildFulfillTransaction(orders, buyer, aggregator)
	require.ErrorIs(t, err, domain.ErrMissingTokenId)
}

func TestBuildFulfillTransactionErrors(t *testing.T) {
	_, err := BuildFulfillTransaction(nil, buyer, aggregator)
	require.ErrorIs(t, err, domain.ErrNoOrders)

	_, err = BuildFulfillTransaction([]*order.Order{listingOrder("100", "1")}, buyer, domain.Address(""))
	require.ErrorIs(t, err, domain.ErrMissingAggregatorAddress)
}

func TestEncodeApproveDelegation(t *testing.T) {
	data, err := EncodeApproveDelegation(seaport.ItemTypeErc721, nftAddress, seaport.CrossChainExchangeAddress)
	require.NoError(t, err)
	require.Equal(t, AggregatorABI.Methods["approveERC721"].ID, data[:4])

	data, err = EncodeApproveDelegation(seaport.ItemTypeErc1155WithCriteria, nftAddress, seaport.CrossChainExchangeAddress)
	require.NoError(t, err)
	require.Equal(t, AggregatorABI.Methods["approveERC1155"].ID, data[:4])
}
