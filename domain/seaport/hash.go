package seaport

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
	"github.com/lootex/goaggregator/domain"
)

// GetOrderHash derives the canonical hash of the signed components,
// keccak256 of the EIP-712 struct encoding
func GetOrderHash(components *OrderComponents) (domain.OrderHash, error) {
	typedData := apitypes.TypedData{
		Types:       OrderTypes,
		PrimaryType: PrimaryType,
		Domain:      GetDomainSeparator(1, domain.EmptyAddress), // dummy, not part of the struct hash; HashStruct refuses an empty domain
		Message:     components.ToMessage(),
	}
	hash, err := typedData.HashStruct(typedData.PrimaryType, typedData.Message)
	if err != nil {
		return "", err
	}
	return domain.OrderHash(hexutil.Encode(hash)), nil
}

// SignableOrderData assembles the full typed-data payload a wallet signs to
// create a single order
func SignableOrderData(chainId domain.ChainId, exchange domain.Address, components *OrderComponents) apitypes.TypedData {
	return apitypes.TypedData{
		Types:       OrderTypes,
		PrimaryType: PrimaryType,
		Domain:      GetDomainSeparator(chainId, exchange),
		Message:     components.ToMessage(),
	}
}
