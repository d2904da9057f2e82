package fraction

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromFloatExact(t *testing.T) {
	req := require.New(t)

	f := FromFloat(0.025)
	req.Equal("25", f.Numerator.String())
	req.Equal("1000", f.Denominator.String())

	// 2.5% of 1e18 must be exactly 25e15
	raw, _ := new(big.Int).SetString("1000000000000000000", 10)
	got := f.Mul(FromBig(raw)).Quotient()
	req.Equal("25000000000000000", got.String())
}

func TestFromDecimalString(t *testing.T) {
	req := require.New(t)

	f, err := FromDecimalString("1.5")
	req.NoError(err)
	req.Equal("15", f.Numerator.String())
	req.Equal("10", f.Denominator.String())

	f, err = FromDecimalString("2.5e-2")
	req.NoError(err)
	req.True(f.EqualTo(FromFloat(0.025)))

	_, err = FromDecimalString("not a number")
	req.ErrorIs(err, ErrInvalidDecimal)
}

func TestAddSub(t *testing.T) {
	req := require.New(t)

	a, _ := New(big.NewInt(1), big.NewInt(3))
	b, _ := New(big.NewInt(1), big.NewInt(6))

	sum := a.Add(b)
	half, _ := New(big.NewInt(1), big.NewInt(2))
	req.True(sum.EqualTo(half))

	diff := a.Sub(b)
	sixth, _ := New(big.NewInt(1), big.NewInt(6))
	req.True(diff.EqualTo(sixth))
}

func TestQuotientTruncates(t *testing.T) {
	req := require.New(t)

	f, _ := New(big.NewInt(7), big.NewInt(2))
	req.Equal("3", f.Quotient().String())

	f, _ = New(big.NewInt(1999), big.NewInt(1000))
	req.Equal("1", f.Quotient().String())
}

func TestCompare(t *testing.T) {
	req := require.New(t)

	a, _ := New(big.NewInt(1), big.NewInt(2))
	b, _ := New(big.NewInt(2), big.NewInt(3))
	req.True(a.LessThan(b))
	req.True(b.GreaterThan(a))

	c, _ := New(big.NewInt(2), big.NewInt(4))
	req.True(a.EqualTo(c))
}

func TestReduce(t *testing.T) {
	req := require.New(t)

	f, _ := New(big.NewInt(25), big.NewInt(1000))
	r := f.Reduce()
	req.Equal("1", r.Numerator.String())
	req.Equal("40", r.Denominator.String())
}

func TestZeroDenominator(t *testing.T) {
	req := require.New(t)
	_, err := New(big.NewInt(1), big.NewInt(0))
	req.ErrorIs(err, ErrZeroDenominator)
}

func TestToFixed(t *testing.T) {
	req := require.New(t)
	f, _ := New(big.NewInt(1), big.NewInt(3))
	req.Equal("0.3333", f.ToFixed(4))
}
