package cryptofolio

// Quote is an ephemeral price snapshot for one coin, fetched per valuation
// and never persisted.
type Quote struct {
	USD       Money   `json:"usd"`
	Change24h Percent `json:"usd_24h_change"`
	MarketCap Money   `json:"usd_market_cap"`
}

// QuoteFunc looks up the current quote for a coin id. The boolean reports
// whether a quote could be obtained; an unreachable price is "absent", never
// a zero quote.
type QuoteFunc func(coinID string) (Quote, bool)

// ValuationRow is the valued view of a single holding.
type ValuationRow struct {
	Symbol        string   `json:"symbol"`
	CoinName      string   `json:"coin_name"`
	Amount        Quantity `json:"amount"`
	BuyPrice      Money    `json:"buy_price"`
	CurrentPrice  Money    `json:"current_price"`
	CurrentValue  Money    `json:"current_value"`
	Invested      Money    `json:"invested"`
	ProfitLoss    Money    `json:"profit_loss"`
	ProfitLossPct Percent  `json:"profit_loss_pct"`
	Change24h     Percent  `json:"change_24h"`
}

// Valuation is the valued view of the whole portfolio. It is computed on
// demand and discarded after display.
type Valuation struct {
	TotalValue         Money          `json:"total_value"`
	TotalInvested      Money          `json:"total_invested"`
	TotalProfitLoss    Money          `json:"total_profit_loss"`
	TotalProfitLossPct Percent        `json:"total_profit_loss_pct"`
	Holdings           []ValuationRow `json:"holdings"`
}

// Valuate values every holding of the portfolio against the given quote
// lookup and aggregates the totals.
//
// Rows come out in holding order. A holding whose quote is absent is skipped
// entirely: it produces no row and contributes nothing to the totals, so an
// unreachable price is never misrepresented as a worthless position. Several
// holdings of the same coin stay distinct rows.
//
// Valuate itself is pure; the lookup is called once per holding, in order.
func Valuate(p Portfolio, lookup QuoteFunc) Valuation {
	v := Valuation{Holdings: make([]ValuationRow, 0, len(p.Holdings))}

	for _, h := range p.Holdings {
		quote, ok := lookup(h.CoinID)
		if !ok {
			continue
		}

		row := ValuationRow{
			Symbol:       h.Symbol,
			CoinName:     h.CoinName,
			Amount:       h.Amount,
			BuyPrice:     h.BuyPrice,
			CurrentPrice: quote.USD,
			CurrentValue: quote.USD.Mul(h.Amount),
			Invested:     h.Invested(),
			Change24h:    quote.Change24h,
		}
		row.ProfitLoss = row.CurrentValue.Sub(row.Invested)
		if row.Invested.IsPositive() {
			row.ProfitLossPct = row.ProfitLoss.PercentOf(row.Invested)
		}

		v.TotalValue = v.TotalValue.Add(row.CurrentValue)
		v.TotalInvested = v.TotalInvested.Add(row.Invested)
		v.Holdings = append(v.Holdings, row)
	}

	v.TotalProfitLoss = v.TotalValue.Sub(v.TotalInvested)
	if v.TotalInvested.IsPositive() {
		v.TotalProfitLossPct = v.TotalProfitLoss.PercentOf(v.TotalInvested)
	}
	return v
}
