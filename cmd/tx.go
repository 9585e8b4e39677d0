package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cryptofolio/renderer"
	"github.com/google/subcommands"
)

// txCmd holds the flags for the 'tx' subcommand.
type txCmd struct{}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "display the transaction audit trail" }
func (*txCmd) Usage() string {
	return `cft tx

  Displays every recorded transaction, oldest first. The trail is append-only
  and keeps records for holdings that were removed since.
`
}

func (*txCmd) SetFlags(_ *flag.FlagSet) {}

func (c *txCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := openStore().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(os.Stdout, renderer.TransactionsMarkdown(p.Transactions))
	return subcommands.ExitSuccess
}
