package fraction

import (
	"math/big"

	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"
)

var (
	ErrZeroDenominator = xerrors.New("fraction: zero denominator")
	ErrInvalidDecimal  = xerrors.New("fraction: invalid decimal string")
	bigOne             = big.NewInt(1)
	bigTen             = big.NewInt(10)
)

// Fraction is an exact rational number. All currency math goes through
// Fraction so no binary floating point ever touches an on-chain amount.
type Fraction struct {
	Numerator   *big.Int
	Denominator *big.Int
}

func New(numerator, denominator *big.Int) (Fraction, error) {
	if denominator.Sign() == 0 {
		return Fraction{}, ErrZeroDenominator
	}
	return Fraction{
		Numerator:   new(big.Int).Set(numerator),
		Denominator: new(big.Int).Set(denominator),
	}, nil
}

// FromBig returns n/1
func FromBig(n *big.Int) Fraction {
	return Fraction{
		Numerator:   new(big.Int).Set(n),
		Denominator: new(big.Int).Set(bigOne),
	}
}

func FromInt64(n int64) Fraction {
	return FromBig(big.NewInt(n))
}

// FromDecimalString converts a decimal string, e.g. "0.025", into an exact
// fraction 25/1000. Scientific notation is accepted.
func FromDecimalString(s string) (Fraction, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Fraction{}, ErrInvalidDecimal
	}
	return fromDecimal(d), nil
}

// FromFloat converts a float ratio into an exact fraction by way of its
// shortest decimal representation, so 0.025 becomes exactly 25/1000 rather
// than the nearest binary float.
func FromFloat(f float64) Fraction {
	return fromDecimal(decimal.NewFromFloat(f))
}

func fromDecimal(d decimal.Decimal) Fraction {
	exp := int64(d.Exponent())
	if exp >= 0 {
		scale := new(big.Int).Exp(bigTen, big.NewInt(exp), nil)
		return Fraction{
			Numerator:   new(big.Int).Mul(d.Coefficient(), scale),
			Denominator: new(big.Int).Set(bigOne),
		}
	}
	return Fraction{
		Numerator:   new(big.Int).Set(d.Coefficient()),
		Denominator: new(big.Int).Exp(bigTen, big.NewInt(-exp), nil),
	}
}

func (f Fraction) Add(other Fraction) Fraction {
	if f.Denominator.Cmp(other.Denominator) == 0 {
		return Fraction{
			Numerator:   new(big.Int).Add(f.Numerator, other.Numerator),
			Denominator: new(big.Int).Set(f.Denominator),
		}
	}
	return Fraction{
		Numerator: new(big.Int).Add(
			new(big.Int).Mul(f.Numerator, other.Denominator),
			new(big.Int).Mul(other.Numerator, f.Denominator),
		),
		Denominator: new(big.Int).Mul(f.Denominator, other.Denominator),
	}
}

func (f Fraction) Sub(other Fraction) Fraction {
	if f.Denominator.Cmp(other.Denominator) == 0 {
		return Fraction{
			Numerator:   new(big.Int).Sub(f.Numerator, other.Numerator),
			Denominator: new(big.Int).Set(f.Denominator),
		}
	}
	return Fraction{
		Numerator: new(big.Int).Sub(
			new(big.Int).Mul(f.Numerator, other.Denominator),
			new(big.Int).Mul(other.Numerator, f.Denominator),
		),
		Denominator: new(big.Int).Mul(f.Denominator, other.Denominator),
	}
}

func (f Fraction) Mul(other Fraction) Fraction {
	return Fraction{
		Numerator:   new(big.Int).Mul(f.Numerator, other.Numerator),
		Denominator: new(big.Int).Mul(f.Denominator, other.Denominator),
	}
}

func (f Fraction) Div(other Fraction) Fraction {
	return Fraction{
		Numerator:   new(big.Int).Mul(f.Numerator, other.Denominator),
		Denominator: new(big.Int).Mul(f.Denominator, other.Numerator),
	}
}

func (f Fraction) Invert() Fraction {
	return Fraction{
		Numerator:   new(big.Int).Set(f.Denominator),
		Denominator: new(big.Int).Set(f.Numerator),
	}
}

// Quotient returns the integer part, floor-divided. The fractional remainder
// is truncated, never rounded, to match on-chain integer division.
func (f Fraction) Quotient() *big.Int {
	q := new(big.Int)
	m := new(big.Int)
	q.DivMod(f.Numerator, f.Denominator, m)
	return q
}

func (f Fraction) Cmp(other Fraction) int {
	lhs := new(big.Int).Mul(f.Numerator, other.Denominator)
	rhs := new(big.Int).Mul(other.Numerator, f.Denominator)
	return lhs.Cmp(rhs)
}

func (f Fraction) LessThan(other Fraction) bool {
	return f.Cmp(other) < 0
}

func (f Fraction) GreaterThan(other Fraction) bool {
	return f.Cmp(other) > 0
}

func (f Fraction) EqualTo(other Fraction) bool {
	return f.Cmp(other) == 0
}

// Reduce divides out the gcd of numerator and denominator
func (f Fraction) Reduce() Fraction {
	gcd := new(big.Int).GCD(nil, nil, new(big.Int).Abs(f.Numerator), new(big.Int).Abs(f.Denominator))
	if gcd.Sign() == 0 {
		return f
	}
	return Fraction{
		Numerator:   new(big.Int).Div(new(big.Int).Set(f.Numerator), gcd),
		Denominator: new(big.Int).Div(new(big.Int).Set(f.Denominator), gcd),
	}
}

// ToFixed renders with the given decimal places, half-up rounded, for
// display only
func (f Fraction) ToFixed(decimalPlaces int32) string {
	d := decimal.NewFromBigInt(f.Numerator, 0).
		Div(decimal.NewFromBigInt(f.Denominator, 0))
	return d.StringFixed(decimalPlaces)
}
