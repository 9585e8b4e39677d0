package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cryptofolio"
	"github.com/google/subcommands"
)

// removeCmd holds the flags for the 'remove' subcommand.
type removeCmd struct {
	index int
}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove a holding by its displayed index" }
func (*removeCmd) Usage() string {
	return `cft remove -i <n>

  Removes the n-th holding as displayed by 'view' (1-based). The transaction
  trail is untouched: removing a holding never rewrites history. Indices of
  subsequent holdings shift down by one.
`
}

func (c *removeCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.index, "i", 0, "1-based index of the holding to remove, as displayed")
}

func (c *removeCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore()
	p, err := store.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	removed, err := removeHolding(store, p, c.index)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, cryptofolio.ErrIndexOutOfRange) {
			return subcommands.ExitUsageError
		}
		return subcommands.ExitFailure
	}
	fmt.Printf("Removed %s\n", removed.Symbol)
	return subcommands.ExitSuccess
}

// removeHolding removes the holding at the 1-based displayed index and
// persists the result. The portfolio file is left untouched on any error.
func removeHolding(store *cryptofolio.Store, p cryptofolio.Portfolio, displayed int) (cryptofolio.Holding, error) {
	index := displayed - 1
	if index < 0 || index >= len(p.Holdings) {
		return cryptofolio.Holding{}, fmt.Errorf("%w: %d (portfolio has %d holdings)",
			cryptofolio.ErrIndexOutOfRange, displayed, len(p.Holdings))
	}
	removed := p.Holdings[index]

	updated, err := p.RemoveAt(index)
	if err != nil {
		return cryptofolio.Holding{}, err
	}
	if err := store.Save(updated); err != nil {
		return cryptofolio.Holding{}, err
	}
	return removed, nil
}
