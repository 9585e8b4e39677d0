package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/cryptofolio"
)

// Transaction renders a single transaction to a string.
func Transaction(tx cryptofolio.Transaction) string {
	switch tx.Type {
	case cryptofolio.TxBuy:
		return fmt.Sprintf("Bought %s of %s at %s on %s", tx.Amount, tx.CoinID, tx.Price, day(tx.Date))
	default:
		return string(tx.Type)
	}
}

// TransactionsMarkdown renders the audit trail, oldest first. The trail keeps
// records for holdings that were removed since.
func TransactionsMarkdown(txs []cryptofolio.Transaction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Transactions\n\n")

	if len(txs) == 0 {
		fmt.Fprintln(&b, "No transactions recorded.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Date | Type | Coin | Amount | Price |")
	fmt.Fprintln(&b, "|:---|:---|:---|--:|--:|")
	for _, tx := range txs {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			day(tx.Date), tx.Type, tx.CoinID, tx.Amount, tx.Price)
	}
	return b.String()
}
