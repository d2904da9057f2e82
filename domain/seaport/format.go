package seaport

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sort"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/lootex/goaggregator/domain"
)

// CreateInputItem describes one offer or consideration leg before it is
// normalized into seaport item form. A zero ItemType with an empty token is
// treated as native currency.
type CreateInputItem struct {
	ItemType   ItemType
	Token      domain.Address
	Identifier string
	// WithCriteria switches the item to criteria mode, matching any id in
	// the collection
	WithCriteria bool
	Amount       string
	EndAmount    string
	Recipient    domain.Address
	IsCurrency   bool
}

// FormatOrderInput carries everything needed to assemble unsigned order
// components
type FormatOrderInput struct {
	Offerer           domain.Address
	Zone              domain.Address
	ZoneHash          string
	ConduitKey        string
	StartTime         string
	EndTime           string
	Offer             []CreateInputItem
	Consideration     []CreateInputItem
	Counter           string
	AllowPartialFills bool
	RestrictedByZone  bool
	Domain            string
	Salt              string
}

// GenerateRandomSalt returns a 32-byte salt. With a domain tag the first
// four bytes are keccak256(domain) so orders can be attributed to a
// frontend, followed by 20 zero bytes and 8 random bytes.
func GenerateRandomSalt(domainTag string) (string, error) {
	entropy := make([]byte, 8)
	if _, err := rand.Read(entropy); err != nil {
		return "", err
	}
	salt := make([]byte, 32)
	if domainTag != "" {
		tag := crypto.Keccak256([]byte(domainTag))
		copy(salt[:4], tag[:4])
	}
	copy(salt[24:], entropy)
	return fmt.Sprintf("0x%064x", new(big.Int).SetBytes(salt)), nil
}

// MapInputItemToOfferItem normalizes a creation input into a seaport offer
// item. Items carrying identifiers become criteria-based, currency items get
// identifier zero.
func MapInputItemToOfferItem(item CreateInputItem) OfferItem {
	if item.IsCurrency {
		itemType := ItemTypeErc20
		if item.Token.IsEmpty() || item.Token.Equals(domain.EmptyAddress) {
			itemType = ItemTypeNative
		}
		token := item.Token
		if token.IsEmpty() {
			token = domain.EmptyAddress
		}
		amount := item.Amount
		endAmount := item.EndAmount
		if endAmount == "" {
			endAmount = amount
		}
		return OfferItem{
			ItemType:             itemType,
			Token:                token,
			IdentifierOrCriteria: "0",
			StartAmount:          amount,
			EndAmount:            endAmount,
		}
	}

	amount := item.Amount
	if amount == "" {
		amount = "1"
	}
	endAmount := item.EndAmount
	if endAmount == "" {
		endAmount = amount
	}

	if item.WithCriteria {
		return OfferItem{
			ItemType:             item.ItemType.WithCriteria(),
			Token:                item.Token,
			IdentifierOrCriteria: "0",
			StartAmount:          amount,
			EndAmount:            endAmount,
		}
	}

	identifier := item.Identifier
	if identifier == "" {
		identifier = "0"
	}
	return OfferItem{
		ItemType:             item.ItemType,
		Token:                item.Token,
		IdentifierOrCriteria: identifier,
		StartAmount:          amount,
		EndAmount:            endAmount,
	}
}

// SortConsiderations orders consideration inputs so nft legs come before
// currency legs and bigger amounts come first, keeping order assembly
// deterministic for identical inputs
func SortConsiderations(considerations []CreateInputItem) []CreateInputItem {
	sorted := make([]CreateInputItem, len(considerations))
	copy(sorted, considerations)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.ItemType != b.ItemType {
			return a.ItemType > b.ItemType
		}
		aAmount, aOk := new(big.Int).SetString(zeroIfEmpty(a.Amount), 10)
		bAmount, bOk := new(big.Int).SetString(zeroIfEmpty(b.Amount), 10)
		if aOk && bOk && aAmount.Cmp(bAmount) != 0 {
			return aAmount.Cmp(bAmount) > 0
		}
		return a.Recipient.ToLowerStr() < b.Recipient.ToLowerStr()
	})
	return sorted
}

func zeroIfEmpty(s string) string {
	if s == "" {
		return "0"
	}
	return s
}

func orderTypeFromOptions(allowPartialFills, restrictedByZone bool) OrderType {
	if allowPartialFills {
		if restrictedByZone {
			return OrderTypePartialRestricted
		}
		return OrderTypePartialOpen
	}
	if restrictedByZone {
		return OrderTypeFullRestricted
	}
	return OrderTypeFullOpen
}

// FormatOrder assembles unsigned order components from creation inputs,
// filling defaults for zone, times, conduit key and salt
func FormatOrder(input FormatOrderInput) (*OrderComponents, error) {
	offer := []OfferItem{}
	for _, item := range input.Offer {
		offer = append(offer, MapInputItemToOfferItem(item))
	}

	consideration := []ConsiderationItem{}
	for _, item := range input.Consideration {
		offerItem := MapInputItemToOfferItem(item)
		recipient := item.Recipient
		if recipient.IsEmpty() {
			recipient = input.Offerer
		}
		consideration = append(consideration, ConsiderationItem{
			ItemType:             offerItem.ItemType,
			Token:                offerItem.Token,
			IdentifierOrCriteria: offerItem.IdentifierOrCriteria,
			StartAmount:          offerItem.StartAmount,
			EndAmount:            offerItem.EndAmount,
			Recipient:            recipient,
		})
	}

	zone := input.Zone
	if zone.IsEmpty() {
		zone = domain.EmptyAddress
	}
	zoneHash := input.ZoneHash
	if zoneHash == "" {
		zoneHash = ZeroHash
	}
	conduitKey := input.ConduitKey
	if conduitKey == "" {
		conduitKey = ZeroConduitKey
	}
	startTime := input.StartTime
	if startTime == "" {
		startTime = strconv.FormatInt(time.Now().Unix(), 10)
	}
	endTime := input.EndTime
	if endTime == "" {
		endTime = strconv.FormatInt(time.Now().Add(24*time.Hour).Unix(), 10)
	}

	salt := input.Salt
	if salt == "" {
		var err error
		if salt, err = GenerateRandomSalt(input.Domain); err != nil {
			return nil, err
		}
	}

	return &OrderComponents{
		OrderParameters: OrderParameters{
			Offerer:                         input.Offerer,
			Zone:                            zone,
			Offer:                           offer,
			Consideration:                   consideration,
			OrderType:                       orderTypeFromOptions(input.AllowPartialFills, input.RestrictedByZone),
			StartTime:                       startTime,
			EndTime:                         endTime,
			ZoneHash:                        zoneHash,
			Salt:                            salt,
			ConduitKey:                      conduitKey,
			TotalOriginalConsiderationItems: len(consideration),
		},
		Counter: input.Counter,
	}, nil
}
