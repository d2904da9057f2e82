package token

import (
	"github.com/lootex/goaggregator/domain"
)

// Token is a fungible token on one chain. The zero address marks the
// chain's native asset.
type Token struct {
	ChainId  domain.ChainId `json:"chainId"`
	Address  domain.Address `json:"address"`
	Decimals uint8          `json:"decimals"`
	Symbol   string         `json:"symbol"`
}

// USD is a pseudo token used only for aggregate price display. It has no
// chain and no address and must never reach on-chain execution.
var USD = Token{Decimals: 6, Symbol: "USD"}

func (t Token) IsNative() bool {
	return t.Address.IsEmpty()
}

// Equals compares by chain id and address; symbols may be renamed
func (t Token) Equals(other Token) bool {
	return t.ChainId == other.ChainId && t.Address.Equals(other.Address)
}

var nativeTokens = map[domain.ChainId]Token{
	1:     {ChainId: 1, Address: domain.EmptyAddress, Decimals: 18, Symbol: "ETH"},
	56:    {ChainId: 56, Address: domain.EmptyAddress, Decimals: 18, Symbol: "BNB"},
	137:   {ChainId: 137, Address: domain.EmptyAddress, Decimals: 18, Symbol: "POL"},
	5000:  {ChainId: 5000, Address: domain.EmptyAddress, Decimals: 18, Symbol: "MNT"},
	8453:  {ChainId: 8453, Address: domain.EmptyAddress, Decimals: 18, Symbol: "ETH"},
	42161: {ChainId: 42161, Address: domain.EmptyAddress, Decimals: 18, Symbol: "ETH"},
	43114: {ChainId: 43114, Address: domain.EmptyAddress, Decimals: 18, Symbol: "AVAX"},
}

var wrappedTokens = map[domain.ChainId]Token{
	1:     {ChainId: 1, Address: "0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2", Decimals: 18, Symbol: "WETH"},
	56:    {ChainId: 56, Address: "0xbb4cdb9cbd36b01bd1cbaebf2de08d9173bc095c", Decimals: 18, Symbol: "WBNB"},
	137:   {ChainId: 137, Address: "0x0d500b1d8e8ef31e21c99d1db9a6444d3adf1270", Decimals: 18, Symbol: "WPOL"},
	5000:  {ChainId: 5000, Address: "0x78c1b0c915c4faa5fffa6cabf0219da63d7f4cb8", Decimals: 18, Symbol: "WMNT"},
	8453:  {ChainId: 8453, Address: "0x4200000000000000000000000000000000000006", Decimals: 18, Symbol: "WETH"},
	42161: {ChainId: 42161, Address: "0x82af49447d8a07e3bd95bd0d56f35241523fbab1", Decimals: 18, Symbol: "WETH"},
	43114: {ChainId: 43114, Address: "0xb31f66aa3c1e785363f0875a1b74e27b85fd66c7", Decimals: 18, Symbol: "WAVAX"},
}

// Native returns the chain's native asset
func Native(chainId domain.ChainId) (Token, error) {
	t, ok := nativeTokens[chainId]
	if !ok {
		return Token{}, domain.ErrTokenNotFound
	}
	return t, nil
}

// Wrapped returns the canonical wrapped native token of the chain
func Wrapped(chainId domain.ChainId) (Token, error) {
	t, ok := wrappedTokens[chainId]
	if !ok {
		return Token{}, domain.ErrTokenNotFound
	}
	return t, nil
}

// Resolve maps an on-chain currency address to a known token. Only native
// and wrapped-native currencies participate in aggregate price math.
func Resolve(chainId domain.ChainId, address domain.Address) (Token, error) {
	if address.IsEmpty() {
		return Native(chainId)
	}
	wrapped, err := Wrapped(chainId)
	if err != nil {
		return Token{}, err
	}
	if wrapped.Address.Equals(address) {
		return wrapped, nil
	}
	return Token{}, domain.ErrTokenNotFound
}
