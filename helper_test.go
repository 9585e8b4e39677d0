package cryptofolio

import (
	"testing"
	"time"
)

var testNow = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

// mustHolding is a helper for tests to create a validated holding.
func mustHolding(t *testing.T, coinID, name, symbol string, amount, buyPrice float64) Holding {
	t.Helper()
	h, err := NewHolding(coinID, name, symbol, Q(amount), M(buyPrice))
	if err != nil {
		t.Fatalf("NewHolding(%q) failed: %v", coinID, err)
	}
	return h
}

// staticQuotes is a helper lookup serving quotes from a map; coins absent
// from the map report an absent quote.
func staticQuotes(m map[string]Quote) QuoteFunc {
	return func(coinID string) (Quote, bool) {
		q, ok := m[coinID]
		return q, ok
	}
}
