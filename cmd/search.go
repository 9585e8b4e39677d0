package cmd

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"

	"github.com/etnz/cryptofolio"
	"github.com/etnz/cryptofolio/renderer"
	"github.com/google/subcommands"
)

// searchCmd holds the flags for the 'search' subcommand.
type searchCmd struct{}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search CoinGecko for a coin by name or symbol" }
func (*searchCmd) Usage() string {
	return `cft search <query>

  Displays the first five matches in the order the service returns them.
  A failed search is reported and yields an empty result, never an error
  status: search is a convenience, not a contract.
`
}

func (*searchCmd) SetFlags(_ *flag.FlagSet) {}

func (c *searchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	query := strings.Join(f.Args(), " ")

	results, err := newQuoteService().Search(ctx, query)
	if err != nil {
		log.Printf("search failed: %v", err)
		results = []cryptofolio.CoinSummary{}
	}
	printMarkdown(os.Stdout, renderer.SearchMarkdown(results))
	return subcommands.ExitSuccess
}
