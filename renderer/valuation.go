package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/cryptofolio"
)

// ValuationMarkdown renders the valuation report: one row per valued holding
// and a totals block. Holdings whose price could not be fetched carry no row,
// the engine already skipped them.
func ValuationMarkdown(v *cryptofolio.Valuation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Portfolio\n\n")

	if len(v.Holdings) == 0 {
		fmt.Fprintln(&b, "Your portfolio is empty (or no price could be fetched). Add some holdings to get started.")
		return b.String()
	}

	fmt.Fprintln(&b, "| # | Symbol | Name | Amount | Buy Price | Current | Value | P/L | 24h |")
	fmt.Fprintln(&b, "|--:|:---|:---|--:|--:|--:|--:|--:|--:|")
	for i, row := range v.Holdings {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s | %s | %s (%s) | %s |\n",
			i+1,
			row.Symbol,
			row.CoinName,
			row.Amount,
			row.BuyPrice,
			row.CurrentPrice,
			row.CurrentValue,
			row.ProfitLoss.SignedString(),
			row.ProfitLossPct.SignedString(),
			row.Change24h.SignedString(),
		)
	}

	fmt.Fprintf(&b, "\n**Total value:** %s\n\n", v.TotalValue)
	fmt.Fprintf(&b, "**Total invested:** %s\n\n", v.TotalInvested)
	fmt.Fprintf(&b, "**Total profit/loss:** %s (%s)\n", v.TotalProfitLoss.SignedString(), v.TotalProfitLossPct.SignedString())
	return b.String()
}

// HoldingsMarkdown renders the raw holding list, with the 1-based indices the
// remove command expects.
func HoldingsMarkdown(p cryptofolio.Portfolio) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Holdings\n\n")

	if len(p.Holdings) == 0 {
		fmt.Fprintln(&b, "No holdings.")
		return b.String()
	}

	fmt.Fprintln(&b, "| # | Symbol | Name | Amount | Buy Price | Added |")
	fmt.Fprintln(&b, "|--:|:---|:---|--:|--:|:---|")
	for i, h := range p.Holdings {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s |\n",
			i+1, h.Symbol, h.CoinName, h.Amount, h.BuyPrice, day(h.DateAdded))
	}
	return b.String()
}
