package token

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lootex/goaggregator/base/fraction"
	"github.com/lootex/goaggregator/domain"
)

func TestAddSameCurrency(t *testing.T) {
	req := require.New(t)

	weth, err := Wrapped(1)
	req.NoError(err)

	a := FromRawAmount(weth, big.NewInt(100))
	b := FromRawAmount(weth, big.NewInt(23))

	sum, err := a.Add(b)
	req.NoError(err)
	req.Equal("123", sum.Quotient().String())

	// commutative
	sum2, err := b.Add(a)
	req.NoError(err)
	req.Equal(sum.Quotient().String(), sum2.Quotient().String())

	// associative
	c := FromRawAmount(weth, big.NewInt(7))
	lhs, _ := sum.Add(c)
	bc, _ := b.Add(c)
	rhs, _ := a.Add(bc)
	req.Equal(lhs.Quotient().String(), rhs.Quotient().String())
}

func TestAddCurrencyMismatch(t *testing.T) {
	req := require.New(t)

	weth, _ := Wrapped(1)
	usdc := Token{ChainId: 1, Address: "0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48", Decimals: 6, Symbol: "USDC"}

	_, err := FromRawAmount(usdc, big.NewInt(1)).Add(FromRawAmount(weth, big.NewInt(1)))
	req.ErrorIs(err, domain.ErrCurrencyMismatch)

	// same symbol on a different chain is still a mismatch
	weth137 := Token{ChainId: 137, Address: weth.Address, Decimals: 18, Symbol: "WETH"}
	_, err = FromRawAmount(weth, big.NewInt(1)).Add(FromRawAmount(weth137, big.NewInt(1)))
	req.ErrorIs(err, domain.ErrCurrencyMismatch)
}

func TestMultiplyByPercentage(t *testing.T) {
	req := require.New(t)

	weth, _ := Wrapped(1)
	raw, _ := new(big.Int).SetString("1000000000000000000", 10)
	amount := FromRawAmount(weth, raw)

	got := amount.Multiply(fraction.FromFloat(0.025)).Quotient()
	req.Equal("25000000000000000", got.String())
}

func TestFromFormattedAmount(t *testing.T) {
	req := require.New(t)

	weth, _ := Wrapped(1)
	amount, err := FromFormattedAmount(weth, "1.5")
	req.NoError(err)
	req.Equal("1500000000000000000", amount.Quotient().String())
	req.Equal("1.50", amount.ToFixed(2))
}

func TestResolve(t *testing.T) {
	req := require.New(t)

	native, err := Resolve(137, domain.EmptyAddress)
	req.NoError(err)
	req.Equal("POL", native.Symbol)
	req.True(native.IsNative())

	wrapped, err := Resolve(137, "0x0d500B1d8E8eF31E21C99d1Db9A6444d3ADf1270")
	req.NoError(err)
	req.Equal("WPOL", wrapped.Symbol)

	_, err = Resolve(137, "0x000000000000000000000000000000000000dead")
	req.ErrorIs(err, domain.ErrTokenNotFound)

	_, err = Native(424242)
	req.ErrorIs(err, domain.ErrTokenNotFound)
}

func TestUsdPseudoToken(t *testing.T) {
	req := require.New(t)
	req.Equal(uint8(6), USD.Decimals)
	req.True(USD.Address.IsEmpty())
	req.Equal(domain.ChainId(0), USD.ChainId)
}
