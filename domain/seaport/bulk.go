package seaport

import (
	"math/bits"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
	"github.com/lootex/goaggregator/domain"
	"golang.org/x/xerrors"
)

// MaxBulkOrderHeight caps the tree at 2^7 orders per bulk signature
const MaxBulkOrderHeight = 7

var ErrTooManyBulkOrders = xerrors.New("too many orders for one bulk signature")

// nullOrderComponents pads the tree up to a power of two
var nullOrderComponents = OrderComponents{
	OrderParameters: OrderParameters{
		Offerer:       domain.EmptyAddress,
		Zone:          domain.EmptyAddress,
		Offer:         []OfferItem{},
		Consideration: []ConsiderationItem{},
		OrderType:     OrderTypeFullOpen,
		StartTime:     "0",
		EndTime:       "0",
		ZoneHash:      ZeroHash,
		Salt:          "0",
		ConduitKey:    ZeroConduitKey,
	},
	Counter: "0",
}

// BulkOrderTree is a complete binary tree of order components. Signing its
// root lets one wallet prompt cover every order in the tree, each order
// later proving membership with its merkle path.
type BulkOrderTree struct {
	height int
	orders []OrderComponents
}

func NewBulkOrderTree(components []OrderComponents) (*BulkOrderTree, error) {
	if len(components) == 0 {
		return nil, domain.ErrNoOrders
	}
	height := 1
	if len(components) > 2 {
		height = bits.Len(uint(len(components) - 1))
	}
	if height > MaxBulkOrderHeight {
		return nil, ErrTooManyBulkOrders
	}
	size := 1 << height
	orders := make([]OrderComponents, size)
	copy(orders, components)
	for i := len(components); i < size; i++ {
		orders[i] = nullOrderComponents
	}
	return &BulkOrderTree{height: height, orders: orders}, nil
}

func (t *BulkOrderTree) Height() int {
	return t.height
}

func (t *BulkOrderTree) Types() apitypes.Types {
	return BulkOrderTypes(t.height)
}

// GetDataToSign nests the order messages into the [2][2]... shape the bulk
// order typed data expects
func (t *BulkOrderTree) GetDataToSign() apitypes.TypedDataMessage {
	leaves := make([]interface{}, len(t.orders))
	for i := range t.orders {
		leaves[i] = t.orders[i].ToMessage()
	}
	for len(leaves) > 1 {
		paired := make([]interface{}, 0, len(leaves)/2)
		for i := 0; i < len(leaves); i += 2 {
			paired = append(paired, []interface{}{leaves[i], leaves[i+1]})
		}
		leaves = paired
	}
	return apitypes.TypedDataMessage{"tree": leaves[0]}
}

// SignablePayload assembles the typed data a wallet signs once to cover the
// whole tree
func (t *BulkOrderTree) SignablePayload(chainId domain.ChainId, exchange domain.Address) apitypes.TypedData {
	return apitypes.TypedData{
		Types:       t.Types(),
		PrimaryType: BulkPrimaryType,
		Domain:      GetDomainSeparator(chainId, exchange),
		Message:     t.GetDataToSign(),
	}
}

func (t *BulkOrderTree) leafHashes() ([][]byte, error) {
	hashes := make([][]byte, len(t.orders))
	for i := range t.orders {
		typedData := apitypes.TypedData{
			Types:       OrderTypes,
			PrimaryType: PrimaryType,
			Domain:      GetDomainSeparator(1, domain.EmptyAddress), // dummy, not part of the struct hash; HashStruct refuses an empty domain
			Message:     t.orders[i].ToMessage(),
		}
		hash, err := typedData.HashStruct(typedData.PrimaryType, typedData.Message)
		if err != nil {
			return nil, err
		}
		hashes[i] = hash
	}
	return hashes, nil
}

// GetProof returns the leaf's position key and its merkle path of sibling
// hashes, bottom up
func (t *BulkOrderTree) GetProof(index int) (int, []string, error) {
	if index < 0 || index >= len(t.orders) {
		return 0, nil, xerrors.Errorf("order index %d out of range", index)
	}
	level, err := t.leafHashes()
	if err != nil {
		return 0, nil, err
	}
	proof := []string{}
	i := index
	for len(level) > 1 {
		proof = append(proof, hexutil.Encode(level[i^1]))
		next := make([][]byte, 0, len(level)/2)
		for j := 0; j < len(level); j += 2 {
			next = append(next, crypto.Keccak256(level[j], level[j+1]))
		}
		level = next
		i /= 2
	}
	return index, proof, nil
}

// EncodeBulkOrderSignature appends the order's tree position and merkle
// path to the root signature: signature || key (3 bytes) || proof encoded
// as a static uint256[n]
func EncodeBulkOrderSignature(key int, proof []string, signature string) (string, error) {
	sig, err := parseBytes(signature)
	if err != nil {
		return "", err
	}
	out := make([]byte, 0, len(sig)+3+32*len(proof))
	out = append(out, sig...)
	out = append(out, byte(key>>16), byte(key>>8), byte(key))
	// uint256[n] is a static type, its abi encoding is the bare
	// concatenation of 32-byte words
	for _, node := range proof {
		word, err := parseBytes32(node)
		if err != nil {
			return "", err
		}
		out = append(out, word[:]...)
	}
	return hexutil.Encode(out), nil
}
