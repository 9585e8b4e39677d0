package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cryptofolio"
	"github.com/etnz/cryptofolio/renderer"
	"github.com/google/subcommands"
)

// viewCmd holds the flags for the 'view' subcommand.
type viewCmd struct{}

func (*viewCmd) Name() string     { return "view" }
func (*viewCmd) Synopsis() string { return "display the portfolio valuation with live prices" }
func (*viewCmd) Usage() string {
	return `cft view

  Values every holding against the current CoinGecko price and displays the
  report. Holdings whose price cannot be fetched are skipped and reported on
  stderr; they do not count towards the totals.
`
}

func (*viewCmd) SetFlags(_ *flag.FlagSet) {}

func (c *viewCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := openStore().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	valuation := cryptofolio.Valuate(p, newQuoteService().QuoteFunc(ctx))
	printMarkdown(os.Stdout, renderer.ValuationMarkdown(&valuation))
	return subcommands.ExitSuccess
}
