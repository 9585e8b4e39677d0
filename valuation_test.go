package cryptofolio

import "testing"

func TestValuate_EmptyPortfolio(t *testing.T) {
	v := Valuate(NewPortfolio(), staticQuotes(nil))

	if len(v.Holdings) != 0 {
		t.Errorf("Valuate() produced %d rows, want 0", len(v.Holdings))
	}
	if !v.TotalValue.IsZero() || !v.TotalInvested.IsZero() || !v.TotalProfitLoss.IsZero() {
		t.Errorf("Valuate() totals = %s/%s/%s, want all zero", v.TotalValue, v.TotalInvested, v.TotalProfitLoss)
	}
	if !v.TotalProfitLossPct.Equal(0) {
		t.Errorf("Valuate() total pct = %s, want 0", v.TotalProfitLossPct)
	}
}

func TestValuate_SingleHolding(t *testing.T) {
	p := NewPortfolio().Add(mustHolding(t, "bitcoin", "Bitcoin", "btc", 2, 100), testNow)
	lookup := staticQuotes(map[string]Quote{
		"bitcoin": {USD: M(150), Change24h: 2.5},
	})

	v := Valuate(p, lookup)

	if len(v.Holdings) != 1 {
		t.Fatalf("Valuate() produced %d rows, want 1", len(v.Holdings))
	}
	row := v.Holdings[0]
	if !row.CurrentValue.Equal(M(300)) {
		t.Errorf("current value = %s, want $300.00", row.CurrentValue)
	}
	if !row.Invested.Equal(M(200)) {
		t.Errorf("invested = %s, want $200.00", row.Invested)
	}
	if !row.ProfitLoss.Equal(M(100)) {
		t.Errorf("profit/loss = %s, want $100.00", row.ProfitLoss)
	}
	if !row.ProfitLossPct.Equal(50) {
		t.Errorf("profit/loss pct = %s, want 50%%", row.ProfitLossPct)
	}
	if !row.Change24h.Equal(2.5) {
		t.Errorf("24h change = %s, want 2.5%%", row.Change24h)
	}
	if row.Symbol != "BTC" {
		t.Errorf("symbol = %q, want BTC", row.Symbol)
	}
	if !v.TotalValue.Equal(M(300)) || !v.TotalInvested.Equal(M(200)) {
		t.Errorf("totals = %s/%s, want $300.00/$200.00", v.TotalValue, v.TotalInvested)
	}
}

func TestValuate_SkipsUnpricedHoldings(t *testing.T) {
	p := NewPortfolio().
		Add(mustHolding(t, "bitcoin", "Bitcoin", "btc", 1, 100), testNow).
		Add(mustHolding(t, "unreachable-coin", "Unreachable", "unr", 1000, 1), testNow).
		Add(mustHolding(t, "ethereum", "Ethereum", "eth", 10, 20), testNow)
	lookup := staticQuotes(map[string]Quote{
		"bitcoin":  {USD: M(150)},
		"ethereum": {USD: M(25)},
	})

	v := Valuate(p, lookup)

	// The unpriced holding produces no row and contributes nothing to the
	// totals, not even its invested amount.
	if len(v.Holdings) != 2 {
		t.Fatalf("Valuate() produced %d rows, want 2", len(v.Holdings))
	}
	if v.Holdings[0].Symbol != "BTC" || v.Holdings[1].Symbol != "ETH" {
		t.Errorf("row order = %s, %s, want BTC, ETH", v.Holdings[0].Symbol, v.Holdings[1].Symbol)
	}
	if !v.TotalValue.Equal(M(400)) {
		t.Errorf("total value = %s, want $400.00", v.TotalValue)
	}
	if !v.TotalInvested.Equal(M(300)) {
		t.Errorf("total invested = %s, want $300.00", v.TotalInvested)
	}
	if !v.TotalProfitLoss.Equal(M(100)) {
		t.Errorf("total profit/loss = %s, want $100.00", v.TotalProfitLoss)
	}
}

func TestValuate_ZeroBuyPrice(t *testing.T) {
	// A zero buy price (airdrop) must not divide by zero; the percent is 0.
	p := NewPortfolio().Add(mustHolding(t, "airdropped", "Airdropped", "air", 100, 0), testNow)
	lookup := staticQuotes(map[string]Quote{
		"airdropped": {USD: M(3)},
	})

	v := Valuate(p, lookup)

	if len(v.Holdings) != 1 {
		t.Fatalf("Valuate() produced %d rows, want 1", len(v.Holdings))
	}
	row := v.Holdings[0]
	if !row.ProfitLoss.Equal(M(300)) {
		t.Errorf("profit/loss = %s, want $300.00", row.ProfitLoss)
	}
	if !row.ProfitLossPct.Equal(0) {
		t.Errorf("profit/loss pct = %s, want 0", row.ProfitLossPct)
	}
	if !v.TotalProfitLossPct.Equal(0) {
		t.Errorf("total profit/loss pct = %s, want 0", v.TotalProfitLossPct)
	}
}

func TestValuate_DuplicateCoinsStayDistinct(t *testing.T) {
	// Two buys of the same coin are two rows, never merged.
	p := NewPortfolio().
		Add(mustHolding(t, "bitcoin", "Bitcoin", "btc", 1, 100), testNow).
		Add(mustHolding(t, "bitcoin", "Bitcoin", "btc", 2, 200), testNow)
	lookup := staticQuotes(map[string]Quote{
		"bitcoin": {USD: M(150)},
	})

	v := Valuate(p, lookup)

	if len(v.Holdings) != 2 {
		t.Fatalf("Valuate() produced %d rows, want 2", len(v.Holdings))
	}
	if !v.Holdings[0].ProfitLoss.Equal(M(50)) {
		t.Errorf("first row profit/loss = %s, want $50.00", v.Holdings[0].ProfitLoss)
	}
	if !v.Holdings[1].ProfitLoss.Equal(M(-100)) {
		t.Errorf("second row profit/loss = %s, want -$100.00", v.Holdings[1].ProfitLoss)
	}
	if !v.TotalValue.Equal(M(450)) {
		t.Errorf("total value = %s, want $450.00", v.TotalValue)
	}
}

func TestValuate_RowCountNeverExceedsHoldings(t *testing.T) {
	p := NewPortfolio().
		Add(mustHolding(t, "a", "A", "a", 1, 1), testNow).
		Add(mustHolding(t, "b", "B", "b", 1, 1), testNow)

	testCases := []struct {
		name     string
		quotes   map[string]Quote
		wantRows int
	}{
		{name: "no quote resolves", quotes: nil, wantRows: 0},
		{name: "one quote resolves", quotes: map[string]Quote{"a": {USD: M(1)}}, wantRows: 1},
		{name: "every quote resolves", quotes: map[string]Quote{"a": {USD: M(1)}, "b": {USD: M(1)}}, wantRows: 2},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := Valuate(p, staticQuotes(tc.quotes))
			if len(v.Holdings) != tc.wantRows {
				t.Errorf("Valuate() produced %d rows, want %d", len(v.Holdings), tc.wantRows)
			}
		})
	}
}
