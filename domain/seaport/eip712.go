package seaport

import (
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
	"github.com/lootex/goaggregator/domain"
)

const (
	PrimaryType     = "OrderComponents"
	BulkPrimaryType = "BulkOrder"
)

func GetDomainSeparator(chainId domain.ChainId, exchange domain.Address) apitypes.TypedDataDomain {
	return apitypes.TypedDataDomain{
		Name:              ContractName,
		Version:           ContractVersion,
		ChainId:           math.NewHexOrDecimal256(int64(chainId)),
		VerifyingContract: exchange.ToLowerStr(),
	}
}

var OrderTypes = apitypes.Types{
	"OrderComponents": {
		{Name: "offerer", Type: "address"},
		{Name: "zone", Type: "address"},
		{Name: "offer", Type: "OfferItem[]"},
		{Name: "consideration", Type: "ConsiderationItem[]"},
		{Name: "orderType", Type: "uint8"},
		{Name: "startTime", Type: "uint256"},
		{Name: "endTime", Type: "uint256"},
		{Name: "zoneHash", Type: "bytes32"},
		{Name: "salt", Type: "uint256"},
		{Name: "conduitKey", Type: "bytes32"},
		{Name: "counter", Type: "uint256"},
	},
	"OfferItem": {
		{Name: "itemType", Type: "uint8"},
		{Name: "token", Type: "address"},
		{Name: "identifierOrCriteria", Type: "uint256"},
		{Name: "startAmount", Type: "uint256"},
		{Name: "endAmount", Type: "uint256"},
	},
	"ConsiderationItem": {
		{Name: "itemType", Type: "uint8"},
		{Name: "token", Type: "address"},
		{Name: "identifierOrCriteria", Type: "uint256"},
		{Name: "startAmount", Type: "uint256"},
		{Name: "endAmount", Type: "uint256"},
		{Name: "recipient", Type: "address"},
	},
	"EIP712Domain": {
		{Name: "name", Type: "string"},
		{Name: "version", Type: "string"},
		{Name: "chainId", Type: "uint256"},
		{Name: "verifyingContract", Type: "address"},
	},
}

// BulkOrderTypes returns the typed-data tables for a bulk order tree of the
// given height, e.g. height 2 signs over OrderComponents[2][2]
func BulkOrderTypes(height int) apitypes.Types {
	types := apitypes.Types{}
	for name, fields := range OrderTypes {
		types[name] = fields
	}
	treeType := "OrderComponents" + strings.Repeat("[2]", height)
	types[BulkPrimaryType] = []apitypes.Type{
		{Name: "tree", Type: treeType},
	}
	return types
}

func (i *OfferItem) ToMessage() apitypes.TypedDataMessage {
	return apitypes.TypedDataMessage{
		"itemType":             strconv.Itoa(int(i.ItemType)),
		"token":                i.Token.ToLowerStr(),
		"identifierOrCriteria": i.IdentifierOrCriteria,
		"startAmount":          i.StartAmount,
		"endAmount":            i.EndAmount,
	}
}

func (i *ConsiderationItem) ToMessage() apitypes.TypedDataMessage {
	return apitypes.TypedDataMessage{
		"itemType":             strconv.Itoa(int(i.ItemType)),
		"token":                i.Token.ToLowerStr(),
		"identifierOrCriteria": i.IdentifierOrCriteria,
		"startAmount":          i.StartAmount,
		"endAmount":            i.EndAmount,
		"recipient":            i.Recipient.ToLowerStr(),
	}
}

func (c *OrderComponents) ToMessage() apitypes.TypedDataMessage {
	offer := []interface{}{}
	for i := range c.Offer {
		offer = append(offer, c.Offer[i].ToMessage())
	}
	consideration := []interface{}{}
	for i := range c.Consideration {
		consideration = append(consideration, c.Consideration[i].ToMessage())
	}
	return apitypes.TypedDataMessage{
		"offerer":       c.Offerer.ToLowerStr(),
		"zone":          c.Zone.ToLowerStr(),
		"offer":         offer,
		"consideration": consideration,
		"orderType":     strconv.Itoa(int(c.OrderType)),
		"startTime":     c.StartTime,
		"endTime":       c.EndTime,
		"zoneHash":      c.ZoneHash,
		"salt":          c.Salt,
		"conduitKey":    c.ConduitKey,
		"counter":       c.Counter,
	}
}
