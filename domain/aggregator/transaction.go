package aggregator

import (
	"math/big"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/lootex/goaggregator/domain"
	"github.com/lootex/goaggregator/domain/order"
	"github.com/lootex/goaggregator/domain/seaport"
)

var AggregatorABI abi.ABI

var aggregatorABI = `[{"type":"function","name":"batchBuyWithETH","stateMutability":"payable","inputs":[{"name":"tradeBytes","type":"bytes"}],"outputs":[]},{"type":"function","name":"batchBuyWithERC20s","stateMutability":"payable","inputs":[{"name":"erc20Details","type":"tuple[]","components":[{"name":"token","type":"address"},{"name":"amount","type":"uint256"}]},{"name":"tradeBytes","type":"bytes"},{"name":"dustTokens","type":"address[]"}],"outputs":[]},{"type":"function","name":"acceptWithERC721","stateMutability":"nonpayable","inputs":[{"name":"tokens","type":"tuple[]","components":[{"name":"nft","type":"address"},{"name":"id","type":"uint256"}]},{"name":"dustTokenIds","type":"uint256[]"},{"name":"dustTokens","type":"address[]"},{"name":"tradeBytes","type":"bytes"}],"outputs":[]},{"type":"function","name":"acceptWithERC1155","stateMutability":"nonpayable","inputs":[{"name":"tokens","type":"tuple[]","components":[{"name":"nft","type":"address"},{"name":"id","type":"uint256"},{"name":"amount","type":"uint256"}]},{"name":"dustTokenIds","type":"uint256[]"},{"name":"dustTokens","type":"address[]"},{"name":"tradeBytes","type":"bytes"}],"outputs":[]},{"type":"function","name":"approveERC721","stateMutability":"nonpayable","inputs":[{"name":"token","type":"address"},{"name":"operator","type":"address"},{"name":"approved","type":"bool"}],"outputs":[]},{"type":"function","name":"approveERC1155","stateMutability":"nonpayable","inputs":[{"name":"token","type":"address"},{"name":"operator","type":"address"},{"name":"approved","type":"bool"}],"outputs":[]}]`

func init() {
	_abi, err := abi.JSON(strings.NewReader(aggregatorABI))
	if err != nil {
		panic("Failed to parse aggregator abi")
	}
	AggregatorABI = _abi
}

type abiErc20Detail struct {
	Token  common.Address
	Amount *big.Int
}

type abiErc721Item struct {
	Nft common.Address
	Id  *big.Int
}

type abiErc1155Item struct {
	Nft    common.Address
	Id     *big.Int
	Amount *big.Int
}

// Transaction is an unsigned call ready to hand to a wallet
type Transaction struct {
	To    domain.Address
	Data  []byte
	Value *big.Int
}

// EncodeApproveDelegation packs the aggregator call that lets the exchange
// move nfts held through the aggregator, for accept offer flows
func EncodeApproveDelegation(itemType seaport.ItemType, token, operator domain.Address) ([]byte, error) {
	method := "approveERC1155"
	if itemType.IsErc721() {
		method = "approveERC721"
	}
	return AggregatorABI.Pack(
		method,
		common.HexToAddress(token.ToLowerStr()),
		common.HexToAddress(operator.ToLowerStr()),
		true,
	)
}

func acceptTokenId(o *order.Order, item seaport.ConsiderationItem) (string, error) {
	if o.OfferType == order.OfferTypeCollection {
		if len(o.ConsiderationCriteria) == 0 {
			return "", domain.ErrMissingTokenId
		}
		return o.ConsiderationCriteria[0].Identifier, nil
	}
	return item.IdentifierOrCriteria, nil
}

func buildAcceptCall(orders []*order.Order, byteData []byte, payToken domain.Address) ([]byte, error) {
	nftItem := orders[0].SeaportOrder.Parameters.Consideration[0]
	payTokens := []common.Address{common.HexToAddress(payToken.ToLowerStr())}

	if nftItem.ItemType.IsErc721() {
		items := []abiErc721Item{}
		for _, o := range orders {
			item := o.SeaportOrder.Parameters.Consideration[0]
			tokenId, err := acceptTokenId(o, item)
			if err != nil {
				return nil, err
			}
			id, err := parseTokenId(tokenId)
			if err != nil {
				return nil, err
			}
			items = append(items, abiErc721Item{
				Nft: common.HexToAddress(item.Token.ToLowerStr()),
				Id:  id,
			})
		}
		return AggregatorABI.Pack("acceptWithERC721", items, []*big.Int{}, payTokens, byteData)
	}

	items := []abiErc1155Item{}
	for _, o := range orders {
		item := o.SeaportOrder.Parameters.Consideration[0]
		tokenId, err := acceptTokenId(o, item)
		if err != nil {
			return nil, err
		}
		id, err := parseTokenId(tokenId)
		if err != nil {
			return nil, err
		}
		units := o.UnitsToFill
		if units == "" || units == "0" {
			units = "1"
		}
		amount, ok := new(big.Int).SetString(units, 10)
		if !ok {
			return nil, domain.ErrInvalidNumberFormat
		}
		items = append(items, abiErc1155Item{
			Nft:    common.HexToAddress(item.Token.ToLowerStr()),
			Id:     id,
			Amount: amount,
		})
	}
	return AggregatorABI.Pack("acceptWithERC1155", items, []*big.Int{}, payTokens, byteData)
}

func parseTokenId(s string) (*big.Int, error) {
	if s == "" {
		return nil, domain.ErrMissingTokenId
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, domain.ErrInvalidNumberFormat
	}
	return n, nil
}

// BuildFulfillTransaction groups orders by marketplace, wraps each group in
// the byte envelope and picks the aggregator entry point from the batch
// shape: accept calls for offers, erc20 or native batch buys for listings
func BuildFulfillTransaction(orders []*order.Order, accountAddress, aggregatorAddress domain.Address) (*Transaction, error) {
	if len(orders) == 0 {
		return nil, domain.ErrNoOrders
	}
	if aggregatorAddress.IsEmpty() {
		return nil, domain.ErrMissingAggregatorAddress
	}

	groups := map[int][]*order.Order{}
	marketplaceIds := []int{}
	for _, o := range orders {
		id := o.PlatformType.MarketplaceId()
		if _, ok := groups[id]; !ok {
			marketplaceIds = append(marketplaceIds, id)
		}
		groups[id] = append(groups[id], o)
	}
	sort.Ints(marketplaceIds)

	byteData := []byte{}
	for _, id := range marketplaceIds {
		data, err := ComposeByteData(groups[id], id, accountAddress, aggregatorAddress)
		if err != nil {
			return nil, err
		}
		byteData = append(byteData, data...)
	}

	summary, err := order.SummarizeTokens(orders)
	if err != nil {
		return nil, err
	}
	nativeTotal, err := order.NativeTotal(orders[0].ChainId, summary)
	if err != nil {
		return nil, err
	}

	var data []byte
	if orders[0].Category.IsOffer() {
		payToken := domain.EmptyAddress
		if erc20Total, ok := order.Erc20Total(summary); ok {
			payToken = erc20Total.Currency.Address
		}
		data, err = buildAcceptCall(orders, byteData, payToken)
	} else if erc20Total, ok := order.Erc20Total(summary); ok {
		details := []abiErc20Detail{
			{
				Token:  common.HexToAddress(erc20Total.Currency.Address.ToLowerStr()),
				Amount: erc20Total.Quotient(),
			},
		}
		dustTokens := []common.Address{common.HexToAddress(erc20Total.Currency.Address.ToLowerStr())}
		data, err = AggregatorABI.Pack("batchBuyWithERC20s", details, byteData, dustTokens)
	} else {
		data, err = AggregatorABI.Pack("batchBuyWithETH", byteData)
	}
	if err != nil {
		return nil, err
	}

	return &Transaction{
		To:    aggregatorAddress,
		Data:  data,
		Value: nativeTotal.Quotient(),
	}, nil
}
