package pricing

import (
	"errors"

	"github.com/shopspring/decimal"
)

// MinorUnitPlaces is the number of decimals of the smallest currency unit (paise).
const MinorUnitPlaces = 2

var ErrInvalidAmount = errors.New("invalid money amount")

var hundred = decimal.NewFromInt(100)

// Money is a fixed-point currency amount in major units (rupees).
type Money struct {
	amount decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{amount: d}
}

func MoneyFromInt(v int64) Money {
	return Money{amount: decimal.NewFromInt(v)}
}

func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	return Money{amount: d}, nil
}

func (m Money) Decimal() decimal.Decimal { return m.amount }

func (m Money) Add(o Money) Money { return Money{amount: m.amount.Add(o.amount)} }
func (m Money) Sub(o Money) Money { return Money{amount: m.amount.Sub(o.amount)} }

func (m Money) Times(n int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(n)))}
}

// Percent returns m * p / 100 without rounding.
func (m Money) Percent(p decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(p).Shift(-2)}
}

// RoundMinorUnit rounds half-up to paise. Amounts reaching here are never negative,
// so decimal's half-away-from-zero rounding is the same rule.
func (m Money) RoundMinorUnit() Money {
	return Money{amount: m.amount.Round(MinorUnitPlaces)}
}

func (m Money) Cmp(o Money) int          { return m.amount.Cmp(o.amount) }
func (m Money) Equal(o Money) bool       { return m.amount.Equal(o.amount) }
func (m Money) LessThan(o Money) bool    { return m.amount.LessThan(o.amount) }
func (m Money) GreaterThan(o Money) bool { return m.amount.GreaterThan(o.amount) }
func (m Money) IsZero() bool             { return m.amount.IsZero() }
func (m Money) IsNegative() bool         { return m.amount.IsNegative() }

func MinMoney(a, b Money) Money {
	if b.LessThan(a) {
		return b
	}
	return a
}

func (m Money) String() string { return m.amount.String() }

// MarshalJSON renders the exact amount as a JSON number with at least two
// decimals. Sub-paise discounts keep their digits so that the serialized
// fields still add up to the total.
func (m Money) MarshalJSON() ([]byte, error) {
	places := int32(MinorUnitPlaces)
	if exp := -m.amount.Exponent(); exp > places {
		places = exp
	}
	return []byte(m.amount.StringFixed(places)), nil
}

func (m *Money) UnmarshalJSON(b []byte) error {
	return m.amount.UnmarshalJSON(b)
}

func isValidPercent(p decimal.Decimal) bool {
	return !p.IsNegative() && !p.GreaterThan(hundred)
}
