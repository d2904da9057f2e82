package seaport

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/lootex/goaggregator/domain"
)

var SeaportABI abi.ABI

var seaportABI = `[{"type":"function","name":"fulfillAdvancedOrder","stateMutability":"payable","inputs":[{"name":"advancedOrder","type":"tuple","components":[{"name":"parameters","type":"tuple","components":[{"name":"offerer","type":"address"},{"name":"zone","type":"address"},{"name":"offer","type":"tuple[]","components":[{"name":"itemType","type":"uint8"},{"name":"token","type":"address"},{"name":"identifierOrCriteria","type":"uint256"},{"name":"startAmount","type":"uint256"},{"name":"endAmount","type":"uint256"}]},{"name":"consideration","type":"tuple[]","components":[{"name":"itemType","type":"uint8"},{"name":"token","type":"address"},{"name":"identifierOrCriteria","type":"uint256"},{"name":"startAmount","type":"uint256"},{"name":"endAmount","type":"uint256"},{"name":"recipient","type":"address"}]},{"name":"orderType","type":"uint8"},{"name":"startTime","type":"uint256"},{"name":"endTime","type":"uint256"},{"name":"zoneHash","type":"bytes32"},{"name":"salt","type":"uint256"},{"name":"conduitKey","type":"bytes32"},{"name":"totalOriginalConsiderationItems","type":"uint256"}]},{"name":"numerator","type":"uint120"},{"name":"denominator","type":"uint120"},{"name":"signature","type":"bytes"},{"name":"extraData","type":"bytes"}]},{"name":"criteriaResolvers","type":"tuple[]","components":[{"name":"orderIndex","type":"uint256"},{"name":"side","type":"uint8"},{"name":"index","type":"uint256"},{"name":"identifier","type":"uint256"},{"name":"criteriaProof","type":"bytes32[]"}]},{"name":"fulfillerConduitKey","type":"bytes32"},{"name":"recipient","type":"address"}],"outputs":[{"name":"fulfilled","type":"bool"}]},{"type":"function","name":"fulfillAvailableAdvancedOrders","stateMutability":"payable","inputs":[{"name":"advancedOrders","type":"tuple[]","components":[{"name":"parameters","type":"tuple","components":[{"name":"offerer","type":"address"},{"name":"zone","type":"address"},{"name":"offer","type":"tuple[]","components":[{"name":"itemType","type":"uint8"},{"name":"token","type":"address"},{"name":"identifierOrCriteria","type":"uint256"},{"name":"startAmount","type":"uint256"},{"name":"endAmount","type":"uint256"}]},{"name":"consideration","type":"tuple[]","components":[{"name":"itemType","type":"uint8"},{"name":"token","type":"address"},{"name":"identifierOrCriteria","type":"uint256"},{"name":"startAmount","type":"uint256"},{"name":"endAmount","type":"uint256"},{"name":"recipient","type":"address"}]},{"name":"orderType","type":"uint8"},{"name":"startTime","type":"uint256"},{"name":"endTime","type":"uint256"},{"name":"zoneHash","type":"bytes32"},{"name":"salt","type":"uint256"},{"name":"conduitKey","type":"bytes32"},{"name":"totalOriginalConsiderationItems","type":"uint256"}]},{"name":"numerator","type":"uint120"},{"name":"denominator","type":"uint120"},{"name":"signature","type":"bytes"},{"name":"extraData","type":"bytes"}]},{"name":"criteriaResolvers","type":"tuple[]","components":[{"name":"orderIndex","type":"uint256"},{"name":"side","type":"uint8"},{"name":"index","type":"uint256"},{"name":"identifier","type":"uint256"},{"name":"criteriaProof","type":"bytes32[]"}]},{"name":"offerFulfillments","type":"tuple[][]","components":[{"name":"orderIndex","type":"uint256"},{"name":"itemIndex","type":"uint256"}]},{"name":"considerationFulfillments","type":"tuple[][]","components":[{"name":"orderIndex","type":"uint256"},{"name":"itemIndex","type":"uint256"}]},{"name":"fulfillerConduitKey","type":"bytes32"},{"name":"recipient","type":"address"},{"name":"maximumFulfilled","type":"uint256"}],"outputs":[{"name":"availableOrders","type":"bool[]"}]},{"type":"function","name":"cancel","stateMutability":"nonpayable","inputs":[{"name":"orders","type":"tuple[]","components":[{"name":"offerer","type":"address"},{"name":"zone","type":"address"},{"name":"offer","type":"tuple[]","components":[{"name":"itemType","type":"uint8"},{"name":"token","type":"address"},{"name":"identifierOrCriteria","type":"uint256"},{"name":"startAmount","type":"uint256"},{"name":"endAmount","type":"uint256"}]},{"name":"consideration","type":"tuple[]","components":[{"name":"itemType","type":"uint8"},{"name":"token","type":"address"},{"name":"identifierOrCriteria","type":"uint256"},{"name":"startAmount","type":"uint256"},{"name":"endAmount","type":"uint256"},{"name":"recipient","type":"address"}]},{"name":"orderType","type":"uint8"},{"name":"startTime","type":"uint256"},{"name":"endTime","type":"uint256"},{"name":"zoneHash","type":"bytes32"},{"name":"salt","type":"uint256"},{"name":"conduitKey","type":"bytes32"},{"name":"counter","type":"uint256"}]}],"outputs":[{"name":"cancelled","type":"bool"}]},{"type":"function","name":"getCounter","stateMutability":"view","inputs":[{"name":"offerer","type":"address"}],"outputs":[{"name":"counter","type":"uint256"}]},{"type":"function","name":"getOrderStatus","stateMutability":"view","inputs":[{"name":"orderHash","type":"bytes32"}],"outputs":[{"name":"isValidated","type":"bool"},{"name":"isCancelled","type":"bool"},{"name":"totalFilled","type":"uint256"},{"name":"totalSize","type":"uint256"}]}]`

func init() {
	_abi, err := abi.JSON(strings.NewReader(seaportABI))
	if err != nil {
		panic("Failed to parse seaport abi")
	}
	SeaportABI = _abi
}

type abiOfferItem struct {
	ItemType             uint8
	Token                common.Address
	IdentifierOrCriteria *big.Int
	StartAmount          *big.Int
	EndAmount            *big.Int
}

type abiConsiderationItem struct {
	ItemType             uint8
	Token                common.Address
	IdentifierOrCriteria *big.Int
	StartAmount          *big.Int
	EndAmount            *big.Int
	Recipient            common.Address
}

type abiOrderParameters struct {
	Offerer                         common.Address
	Zone                            common.Address
	Offer                           []abiOfferItem
	Consideration                   []abiConsiderationItem
	OrderType                       uint8
	StartTime                       *big.Int
	EndTime                         *big.Int
	ZoneHash                        [32]byte
	Salt                            *big.Int
	ConduitKey                      [32]byte
	TotalOriginalConsiderationItems *big.Int
}

type abiOrderComponents struct {
	Offerer       common.Address
	Zone          common.Address
	Offer         []abiOfferItem
	Consideration []abiConsiderationItem
	OrderType     uint8
	StartTime     *big.Int
	EndTime       *big.Int
	ZoneHash      [32]byte
	Salt          *big.Int
	ConduitKey    [32]byte
	Counter       *big.Int
}

type abiAdvancedOrder struct {
	Parameters  abiOrderParameters
	Numerator   *big.Int
	Denominator *big.Int
	Signature   []byte
	ExtraData   []byte
}

type abiCriteriaResolver struct {
	OrderIndex    *big.Int
	Side          uint8
	Index         *big.Int
	Identifier    *big.Int
	CriteriaProof [][32]byte
}

type abiFulfillmentComponent struct {
	OrderIndex *big.Int
	ItemIndex  *big.Int
}

func parseUint(s string) (*big.Int, error) {
	if s == "" {
		return big.NewInt(0), nil
	}
	n, ok := math.ParseBig256(s)
	if !ok {
		return nil, domain.ErrInvalidNumberFormat
	}
	return n, nil
}

func parseBytes32(s string) ([32]byte, error) {
	var out [32]byte
	if s == "" {
		return out, nil
	}
	raw, err := hexutil.Decode(s)
	if err != nil {
		return out, err
	}
	copy(out[32-len(raw):], raw)
	return out, nil
}

func parseBytes(s string) ([]byte, error) {
	if s == "" || s == "0x" {
		return []byte{}, nil
	}
	return hexutil.Decode(s)
}

func (i *OfferItem) toAbi() (abiOfferItem, error) {
	nums, err := domain.ToBigInt([]string{i.IdentifierOrCriteria, i.StartAmount, i.EndAmount})
	if err != nil {
		return abiOfferItem{}, err
	}
	return abiOfferItem{
		ItemType:             uint8(i.ItemType),
		Token:                common.HexToAddress(i.Token.ToLowerStr()),
		IdentifierOrCriteria: nums[0],
		StartAmount:          nums[1],
		EndAmount:            nums[2],
	}, nil
}

func (i *ConsiderationItem) toAbi() (abiConsiderationItem, error) {
	nums, err := domain.ToBigInt([]string{i.IdentifierOrCriteria, i.StartAmount, i.EndAmount})
	if err != nil {
		return abiConsiderationItem{}, err
	}
	return abiConsiderationItem{
		ItemType:             uint8(i.ItemType),
		Token:                common.HexToAddress(i.Token.ToLowerStr()),
		IdentifierOrCriteria: nums[0],
		StartAmount:          nums[1],
		EndAmount:            nums[2],
		Recipient:            common.HexToAddress(i.Recipient.ToLowerStr()),
	}, nil
}

func (p *OrderParameters) toAbi() (abiOrderParameters, error) {
	out := abiOrderParameters{
		Offerer:                         common.HexToAddress(p.Offerer.ToLowerStr()),
		Zone:                            common.HexToAddress(p.Zone.ToLowerStr()),
		OrderType:                       uint8(p.OrderType),
		TotalOriginalConsiderationItems: big.NewInt(int64(p.TotalOriginalConsiderationItems)),
	}
	for i := range p.Offer {
		item, err := p.Offer[i].toAbi()
		if err != nil {
			return out, err
		}
		out.Offer = append(out.Offer, item)
	}
	for i := range p.Consideration {
		item, err := p.Consideration[i].toAbi()
		if err != nil {
			return out, err
		}
		out.Consideration = append(out.Consideration, item)
	}
	var err error
	if out.StartTime, err = parseUint(p.StartTime); err != nil {
		return out, err
	}
	if out.EndTime, err = parseUint(p.EndTime); err != nil {
		return out, err
	}
	if out.Salt, err = parseUint(p.Salt); err != nil {
		return out, err
	}
	if out.ZoneHash, err = parseBytes32(p.ZoneHash); err != nil {
		return out, err
	}
	if out.ConduitKey, err = parseBytes32(p.ConduitKey); err != nil {
		return out, err
	}
	if out.Offer == nil {
		out.Offer = []abiOfferItem{}
	}
	if out.Consideration == nil {
		out.Consideration = []abiConsiderationItem{}
	}
	return out, nil
}

func (c *OrderComponents) toAbi() (abiOrderComponents, error) {
	params, err := c.OrderParameters.toAbi()
	if err != nil {
		return abiOrderComponents{}, err
	}
	counter, err := parseUint(c.Counter)
	if err != nil {
		return abiOrderComponents{}, err
	}
	return abiOrderComponents{
		Offerer:       params.Offerer,
		Zone:          params.Zone,
		Offer:         params.Offer,
		Consideration: params.Consideration,
		OrderType:     params.OrderType,
		StartTime:     params.StartTime,
		EndTime:       params.EndTime,
		ZoneHash:      params.ZoneHash,
		Salt:          params.Salt,
		ConduitKey:    params.ConduitKey,
		Counter:       counter,
	}, nil
}

func (o *AdvancedOrder) toAbi() (abiAdvancedOrder, error) {
	params, err := o.Parameters.toAbi()
	if err != nil {
		return abiAdvancedOrder{}, err
	}
	nums, err := domain.ToBigInt([]string{o.Numerator, o.Denominator})
	if err != nil {
		return abiAdvancedOrder{}, err
	}
	sig, err := parseBytes(o.Signature)
	if err != nil {
		return abiAdvancedOrder{}, err
	}
	extra, err := parseBytes(o.ExtraData)
	if err != nil {
		return abiAdvancedOrder{}, err
	}
	return abiAdvancedOrder{
		Parameters:  params,
		Numerator:   nums[0],
		Denominator: nums[1],
		Signature:   sig,
		ExtraData:   extra,
	}, nil
}

func (r *CriteriaResolver) toAbi() (abiCriteriaResolver, error) {
	identifier, err := parseUint(r.Identifier)
	if err != nil {
		return abiCriteriaResolver{}, err
	}
	proof := [][32]byte{}
	for _, p := range r.CriteriaProof {
		node, err := parseBytes32(p)
		if err != nil {
			return abiCriteriaResolver{}, err
		}
		proof = append(proof, node)
	}
	return abiCriteriaResolver{
		OrderIndex:    big.NewInt(int64(r.OrderIndex)),
		Side:          uint8(r.Side),
		Index:         big.NewInt(int64(r.Index)),
		Identifier:    identifier,
		CriteriaProof: proof,
	}, nil
}

func toAbiResolvers(resolvers []CriteriaResolver) ([]abiCriteriaResolver, error) {
	out := []abiCriteriaResolver{}
	for i := range resolvers {
		r, err := resolvers[i].toAbi()
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func toAbiFulfillments(groups [][]FulfillmentComponent) [][]abiFulfillmentComponent {
	out := [][]abiFulfillmentComponent{}
	for _, group := range groups {
		components := []abiFulfillmentComponent{}
		for _, c := range group {
			components = append(components, abiFulfillmentComponent{
				OrderIndex: big.NewInt(int64(c.OrderIndex)),
				ItemIndex:  big.NewInt(int64(c.ItemIndex)),
			})
		}
		out = append(out, components)
	}
	return out
}

// EncodeFulfillAdvancedOrder packs calldata for the single order entry point
func EncodeFulfillAdvancedOrder(order *AdvancedOrder, resolvers []CriteriaResolver, fulfillerConduitKey string, recipient domain.Address) ([]byte, error) {
	abiOrder, err := order.toAbi()
	if err != nil {
		return nil, err
	}
	abiResolvers, err := toAbiResolvers(resolvers)
	if err != nil {
		return nil, err
	}
	conduitKey, err := parseBytes32(fulfillerConduitKey)
	if err != nil {
		return nil, err
	}
	return SeaportABI.Pack("fulfillAdvancedOrder", abiOrder, abiResolvers, conduitKey, common.HexToAddress(recipient.ToLowerStr()))
}

// EncodeFulfillAvailableAdvancedOrders packs calldata for the batched entry
// point, skipping unavailable orders up to maximumFulfilled
func EncodeFulfillAvailableAdvancedOrders(orders []AdvancedOrder, resolvers []CriteriaResolver, offerFulfillments, considerationFulfillments [][]FulfillmentComponent, fulfillerConduitKey string, recipient domain.Address, maximumFulfilled int) ([]byte, error) {
	abiOrders := []abiAdvancedOrder{}
	for i := range orders {
		order, err := orders[i].toAbi()
		if err != nil {
			return nil, err
		}
		abiOrders = append(abiOrders, order)
	}
	abiResolvers, err := toAbiResolvers(resolvers)
	if err != nil {
		return nil, err
	}
	conduitKey, err := parseBytes32(fulfillerConduitKey)
	if err != nil {
		return nil, err
	}
	return SeaportABI.Pack(
		"fulfillAvailableAdvancedOrders",
		abiOrders,
		abiResolvers,
		toAbiFulfillments(offerFulfillments),
		toAbiFulfillments(considerationFulfillments),
		conduitKey,
		common.HexToAddress(recipient.ToLowerStr()),
		big.NewInt(int64(maximumFulfilled)),
	)
}

// EncodeCancel packs calldata cancelling the given orders on-chain
func EncodeCancel(components []OrderComponents) ([]byte, error) {
	abiComponents := []abiOrderComponents{}
	for i := range components {
		c, err := components[i].toAbi()
		if err != nil {
			return nil, err
		}
		abiComponents = append(abiComponents, c)
	}
	return SeaportABI.Pack("cancel", abiComponents)
}

func EncodeGetCounter(offerer domain.Address) ([]byte, error) {
	return SeaportABI.Pack("getCounter", common.HexToAddress(offerer.ToLowerStr()))
}

func DecodeCounter(data []byte) (*big.Int, error) {
	values, err := SeaportABI.Unpack("getCounter", data)
	if err != nil {
		return nil, err
	}
	return values[0].(*big.Int), nil
}

func EncodeGetOrderStatus(hash domain.OrderHash) ([]byte, error) {
	raw, err := parseBytes32(string(hash))
	if err != nil {
		return nil, err
	}
	return SeaportABI.Pack("getOrderStatus", raw)
}

func DecodeOrderStatus(data []byte) (*OrderStatus, error) {
	values, err := SeaportABI.Unpack("getOrderStatus", data)
	if err != nil {
		return nil, err
	}
	return &OrderStatus{
		IsValidated: values[0].(bool),
		IsCancelled: values[1].(bool),
		TotalFilled: values[2].(*big.Int).String(),
		TotalSize:   values[3].(*big.Int).String(),
	}, nil
}
