package token

import (
	"math/big"

	"github.com/lootex/goaggregator/base/fraction"
	"github.com/lootex/goaggregator/domain"
)

// CurrencyAmount pairs a token with an exact amount in the token's
// smallest unit. All arithmetic is rational, nothing is rounded until
// Quotient.
type CurrencyAmount struct {
	Currency Token
	amount   fraction.Fraction
}

func FromRawAmount(currency Token, raw *big.Int) CurrencyAmount {
	return CurrencyAmount{
		Currency: currency,
		amount:   fraction.FromBig(raw),
	}
}

func FromRawAmountString(currency Token, raw string) (CurrencyAmount, error) {
	n, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return CurrencyAmount{}, domain.ErrInvalidNumberFormat
	}
	return FromRawAmount(currency, n), nil
}

// FromFormattedAmount converts a human readable amount, e.g. "1.5" WETH,
// into the raw fractional amount 15e17
func FromFormattedAmount(currency Token, formatted string) (CurrencyAmount, error) {
	f, err := fraction.FromDecimalString(formatted)
	if err != nil {
		return CurrencyAmount{}, err
	}
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(currency.Decimals)), nil)
	return CurrencyAmount{
		Currency: currency,
		amount:   f.Mul(fraction.FromBig(scale)),
	}, nil
}

// Add fails with ErrCurrencyMismatch when the tokens differ; amounts of
// different currencies are never silently coerced.
func (a CurrencyAmount) Add(other CurrencyAmount) (CurrencyAmount, error) {
	if a.Currency.Symbol != other.Currency.Symbol || a.Currency.ChainId != other.Currency.ChainId {
		return CurrencyAmount{}, domain.ErrCurrencyMismatch
	}
	return CurrencyAmount{
		Currency: a.Currency,
		amount:   a.amount.Add(other.amount),
	}, nil
}

func (a CurrencyAmount) Sub(other CurrencyAmount) (CurrencyAmount, error) {
	if a.Currency.Symbol != other.Currency.Symbol || a.Currency.ChainId != other.Currency.ChainId {
		return CurrencyAmount{}, domain.ErrCurrencyMismatch
	}
	return CurrencyAmount{
		Currency: a.Currency,
		amount:   a.amount.Sub(other.amount),
	}, nil
}

func (a CurrencyAmount) Multiply(f fraction.Fraction) CurrencyAmount {
	return CurrencyAmount{
		Currency: a.Currency,
		amount:   a.amount.Mul(f),
	}
}

// Quotient returns the integer raw amount, floor-divided, matching
// on-chain integer division semantics
func (a CurrencyAmount) Quotient() *big.Int {
	return a.amount.Quotient()
}

// ToFixed renders a display amount scaled down by the token's decimals
func (a CurrencyAmount) ToFixed(decimalPlaces int32) string {
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(a.Currency.Decimals)), nil)
	return a.amount.Div(fraction.FromBig(scale)).ToFixed(decimalPlaces)
}
