package cryptofolio

import "github.com/shopspring/decimal"

// Quantity represents an amount of coins held. Crypto quantities are routinely
// fractional (0.0042 BTC), hence the exact decimal representation.
type Quantity struct {
	value decimal.Decimal
}

// Q creates a Quantity from a float constant.
func Q(value float64) Quantity { return Quantity{value: decimal.NewFromFloat(value)} }

// ParseQuantity parses a user-entered coin amount like "0.5".
func ParseQuantity(s string) (Quantity, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{value: d}, nil
}

func (q Quantity) Equal(p Quantity) bool   { return q.value.Equal(p.value) }
func (q Quantity) IsZero() bool            { return q.value.IsZero() }
func (q Quantity) IsPositive() bool        { return q.value.IsPositive() }
func (q Quantity) IsNegative() bool        { return q.value.IsNegative() }
func (q Quantity) Add(p Quantity) Quantity { return Quantity{value: q.value.Add(p.value)} }
func (q Quantity) String() string          { return q.value.String() }

// MarshalJSON implements json.Marshaler. Values round-trip as decimal strings
// so the file never loses precision.
func (q Quantity) MarshalJSON() ([]byte, error) { return q.value.MarshalJSON() }

// UnmarshalJSON implements json.Unmarshaler.
func (q *Quantity) UnmarshalJSON(data []byte) error { return q.value.UnmarshalJSON(data) }
