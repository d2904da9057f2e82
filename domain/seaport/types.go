package seaport

import (
	"github.com/lootex/goaggregator/domain"
)

const (
	ContractName    = "Seaport"
	ContractVersion = "1.6"
)

const (
	// seaport 1.6 cross chain deployment
	CrossChainExchangeAddress = domain.Address("0x0000000000000068f116a894984e2db1123eb395")

	OpenseaConduitKey     = "0x0000007b02230091a7ed01230072f7006a004d60a8d4e71d599b8104250f0000"
	OpenseaConduitAddress = domain.Address("0x1e0049783f008a0085193e00003d00cd54003c71")

	ZeroConduitKey = "0x0000000000000000000000000000000000000000000000000000000000000000"
	ZeroHash       = "0x0000000000000000000000000000000000000000000000000000000000000000"
)

type ItemType int

const (
	ItemTypeNative ItemType = iota
	ItemTypeErc20
	ItemTypeErc721
	ItemTypeErc1155
	ItemTypeErc721WithCriteria
	ItemTypeErc1155WithCriteria
)

// IsCurrency reports whether the item is a payment leg (native or erc20)
func (t ItemType) IsCurrency() bool {
	return t == ItemTypeNative || t == ItemTypeErc20
}

func (t ItemType) IsErc721() bool {
	return t == ItemTypeErc721 || t == ItemTypeErc721WithCriteria
}

func (t ItemType) IsErc1155() bool {
	return t == ItemTypeErc1155 || t == ItemTypeErc1155WithCriteria
}

// IsCriteria reports whether the item matches by criteria instead of a
// concrete token id
func (t ItemType) IsCriteria() bool {
	return t == ItemTypeErc721WithCriteria || t == ItemTypeErc1155WithCriteria
}

// WithCriteria converts a concrete nft item type into its criteria-based
// counterpart
func (t ItemType) WithCriteria() ItemType {
	switch t {
	case ItemTypeErc721:
		return ItemTypeErc721WithCriteria
	case ItemTypeErc1155:
		return ItemTypeErc1155WithCriteria
	}
	return t
}

type OrderType int

const (
	OrderTypeFullOpen OrderType = iota
	OrderTypePartialOpen
	OrderTypeFullRestricted
	OrderTypePartialRestricted
)

// CanBePartiallyFilled reports whether the order type supports partial fills
func (t OrderType) CanBePartiallyFilled() bool {
	return t == OrderTypePartialOpen || t == OrderTypePartialRestricted
}

type Side int

const (
	SideOffer Side = iota
	SideConsideration
)

// OfferItem is one "what is given" leg of an order. Amounts are decimal
// strings to survive JSON round trips without precision loss.
type OfferItem struct {
	ItemType             ItemType       `json:"itemType"`
	Token                domain.Address `json:"token"`
	IdentifierOrCriteria string         `json:"identifierOrCriteria"`
	StartAmount          string         `json:"startAmount"`
	EndAmount            string         `json:"endAmount"`
}

// ConsiderationItem is one "what is required in return" leg
type ConsiderationItem struct {
	ItemType             ItemType       `json:"itemType"`
	Token                domain.Address `json:"token"`
	IdentifierOrCriteria string         `json:"identifierOrCriteria"`
	StartAmount          string         `json:"startAmount"`
	EndAmount            string         `json:"endAmount"`
	Recipient            domain.Address `json:"recipient"`
}

type OrderParameters struct {
	Offerer                         domain.Address      `json:"offerer"`
	Zone                            domain.Address      `json:"zone"`
	Offer                           []OfferItem         `json:"offer"`
	Consideration                   []ConsiderationItem `json:"consideration"`
	OrderType                       OrderType           `json:"orderType"`
	StartTime                       string              `json:"startTime"`
	EndTime                         string              `json:"endTime"`
	ZoneHash                        string              `json:"zoneHash"`
	Salt                            string              `json:"salt"`
	ConduitKey                      string              `json:"conduitKey"`
	TotalOriginalConsiderationItems int                 `json:"totalOriginalConsiderationItems"`
}

// OrderComponents is OrderParameters plus the offerer's counter, the
// struct that gets signed
type OrderComponents struct {
	OrderParameters
	Counter string `json:"counter"`
}

// Order is a signed order ready for on-chain use
type Order struct {
	Parameters OrderComponents `json:"parameters"`
	Signature  string          `json:"signature"`
}

// AdvancedOrder adds the partial-fill fraction and extra data required by
// the advanced fulfillment entry points
type AdvancedOrder struct {
	Parameters  OrderParameters
	Numerator   string
	Denominator string
	Signature   string
	ExtraData   string
}

// FulfillmentComponent points at a single offer or consideration item
// inside a batch, by order index and item index
type FulfillmentComponent struct {
	OrderIndex int `json:"orderIndex"`
	ItemIndex  int `json:"itemIndex"`
}

// CriteriaResolver binds a criteria-based item to a concrete identifier at
// fulfillment time
type CriteriaResolver struct {
	OrderIndex    int      `json:"orderIndex"`
	Side          Side     `json:"side"`
	Index         int      `json:"index"`
	Identifier    string   `json:"identifier"`
	CriteriaProof []string `json:"criteriaProof"`
}

// InputCriteria carries the concrete identifier chosen for a wildcard
// criteria item
type InputCriteria struct {
	Identifier string   `json:"identifier"`
	Proof      []string `json:"proof"`
}

// OrderStatus mirrors getOrderStatus return values
type OrderStatus struct {
	IsValidated bool
	IsCancelled bool
	TotalFilled string
	TotalSize   string
}
