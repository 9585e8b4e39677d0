package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/cryptofolio"
)

// SearchMarkdown renders search results in the order the search source
// returned them, numbered for the add flow's selection prompt.
func SearchMarkdown(results []cryptofolio.CoinSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Search Results\n\n")

	if len(results) == 0 {
		fmt.Fprintln(&b, "No coins found.")
		return b.String()
	}

	for i, coin := range results {
		fmt.Fprintf(&b, "%d. %s (%s) - id: `%s`\n", i+1, coin.Name, strings.ToUpper(coin.Symbol), coin.ID)
	}
	return b.String()
}
