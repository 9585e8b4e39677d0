package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cryptofolio/renderer"
	"github.com/google/subcommands"
)

// marketCmd holds the flags for the 'market' subcommand.
type marketCmd struct{}

func (*marketCmd) Name() string     { return "market" }
func (*marketCmd) Synopsis() string { return "display a global crypto market overview" }
func (*marketCmd) Usage() string {
	return `cft market

  Displays the global market snapshot: total market cap, 24h change, BTC
  dominance, number of active cryptocurrencies and markets.
`
}

func (*marketCmd) SetFlags(_ *flag.FlagSet) {}

func (c *marketCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	overview, err := newQuoteService().GlobalMarket(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching market data: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(os.Stdout, renderer.MarketMarkdown(overview))
	return subcommands.ExitSuccess
}
