package cryptofolio

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a USD monetary value.
//
// The whole tracker reports in USD (buy prices, current prices, valuations),
// so Money carries no currency attribute, only an exact decimal amount.
type Money struct {
	value decimal.Decimal
}

// M creates a Money from a float constant, mostly useful in tests and prompts.
func M(value float64) Money { return Money{value: decimal.NewFromFloat(value)} }

// ParseMoney parses a user-entered amount like "1234.56".
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{value: d}, nil
}

func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsPositive() bool         { return m.value.IsPositive() }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool    { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool { return m.value.GreaterThan(n.value) }
func (m Money) Add(n Money) Money        { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money        { return Money{value: m.value.Sub(n.value)} }
func (m Money) Neg() Money               { return Money{value: m.value.Neg()} }

// Mul scales the money value by a quantity of coins.
func (m Money) Mul(q Quantity) Money { return Money{value: m.value.Mul(q.value)} }

// PercentOf returns m as a percentage of n. The caller is expected to guard
// against a zero n; dividing by a zero decimal panics.
func (m Money) PercentOf(n Money) Percent {
	return Percent(m.value.Div(n.value).Mul(decimal.NewFromInt(100)).InexactFloat64())
}

// String formats the value as USD, e.g. "$1,234.56".
func (m Money) String() string {
	cur := money.GetCurrency(money.USD)
	minor := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.IntPart())
}

// SignedString is like String but with an explicit leading sign for gains.
func (m Money) SignedString() string {
	if m.IsNegative() {
		return "-" + m.Neg().String()
	}
	return "+" + m.String()
}

// AsFloat returns an inexact float64 view, for the JSON API only.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// MarshalJSON implements json.Marshaler. Values round-trip as decimal strings
// so the file never loses precision.
func (m Money) MarshalJSON() ([]byte, error) { return m.value.MarshalJSON() }

// UnmarshalJSON implements json.Unmarshaler.
func (m *Money) UnmarshalJSON(data []byte) error { return m.value.UnmarshalJSON(data) }
