package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/cryptofolio"
)

// MarketMarkdown renders the global market overview.
func MarketMarkdown(m cryptofolio.MarketOverview) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Global Market\n\n")
	fmt.Fprintln(&b, "| Metric | Value |")
	fmt.Fprintln(&b, "|:---|--:|")
	fmt.Fprintf(&b, "| Total market cap | %s |\n", m.TotalMarketCap)
	fmt.Fprintf(&b, "| Market cap 24h | %s |\n", m.MarketCapChange24h.SignedString())
	fmt.Fprintf(&b, "| BTC dominance | %s |\n", m.BTCDominance)
	fmt.Fprintf(&b, "| Active cryptocurrencies | %d |\n", m.ActiveCryptocurrencies)
	fmt.Fprintf(&b, "| Markets | %d |\n", m.Markets)
	return b.String()
}
