package jsonnum

import "github.com/shopspring/decimal"

// Decimal is written to JSON as a number. decimal.Decimal alone is a quoted string.
type Decimal struct {
	decimal.Decimal
}

func New(d decimal.Decimal) Decimal {
	return Decimal{Decimal: d}
}

func Ptr(d *decimal.Decimal) *Decimal {
	if d == nil {
		return nil
	}
	n := New(*d)
	return &n
}

func (n Decimal) MarshalJSON() ([]byte, error) {
	return []byte(n.Decimal.String()), nil
}

// UnmarshalJSON accepts both numbers and quoted strings.
func (n *Decimal) UnmarshalJSON(b []byte) error {
	return n.Decimal.UnmarshalJSON(b)
}
