package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/etnz/cryptofolio"
	"github.com/etnz/cryptofolio/renderer"
	"github.com/google/subcommands"
)

// menuCmd holds the flags for the 'menu' subcommand.
type menuCmd struct{}

func (*menuCmd) Name() string     { return "menu" }
func (*menuCmd) Synopsis() string { return "run the interactive menu loop" }
func (*menuCmd) Usage() string {
	return `cft menu

  Runs the classic interactive session: view portfolio, add holding, remove
  holding, search coin, exit. One action runs to completion before the next
  is accepted; every failure degrades to a message and a safe no-op.
`
}

func (*menuCmd) SetFlags(_ *flag.FlagSet) {}

func (c *menuCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore()
	gecko := newQuoteService()
	in := bufio.NewScanner(os.Stdin)
	out := os.Stdout

	for {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Crypto Portfolio Tracker")
		fmt.Fprintln(out, "1. View Portfolio")
		fmt.Fprintln(out, "2. Add Holding")
		fmt.Fprintln(out, "3. Remove Holding")
		fmt.Fprintln(out, "4. Search Coin")
		fmt.Fprintln(out, "5. Exit")

		choice, ok := readLine(in, out, "\nSelect option: ")
		if !ok {
			return subcommands.ExitSuccess // EOF is a clean exit
		}

		switch choice {
		case "1":
			menuView(ctx, store, gecko, out)
		case "2":
			if err := runInteractiveAdd(ctx, gecko, store, in, out); err != nil {
				fmt.Fprintf(out, "Error: %v\n", err)
			}
		case "3":
			menuRemove(in, store, out)
		case "4":
			menuSearch(ctx, gecko, in, out)
		case "5":
			fmt.Fprintln(out, "Goodbye!")
			return subcommands.ExitSuccess
		default:
			fmt.Fprintln(out, "Invalid option")
		}
	}
}

func menuView(ctx context.Context, store *cryptofolio.Store, gecko *cryptofolio.CoinGecko, out *os.File) {
	p, err := store.Load()
	if err != nil {
		fmt.Fprintf(out, "Error loading portfolio: %v\n", err)
		return
	}
	valuation := cryptofolio.Valuate(p, gecko.QuoteFunc(ctx))
	printMarkdown(out, renderer.ValuationMarkdown(&valuation))
}

// menuRemove displays the raw holding list, not the valuation: the valuation
// may skip unpriced holdings and its row numbers would not match the holding
// indices.
func menuRemove(in *bufio.Scanner, store *cryptofolio.Store, out *os.File) {
	p, err := store.Load()
	if err != nil {
		fmt.Fprintf(out, "Error loading portfolio: %v\n", err)
		return
	}
	printMarkdown(out, renderer.HoldingsMarkdown(p))
	if len(p.Holdings) == 0 {
		return
	}

	line, ok := readLine(in, out, "Enter holding number to remove: ")
	if !ok {
		return
	}
	displayed, err := strconv.Atoi(line)
	if err != nil {
		fmt.Fprintf(out, "Invalid input %q\n", line)
		return
	}

	removed, err := removeHolding(store, p, displayed)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(out, "Removed %s\n", removed.Symbol)
}

func menuSearch(ctx context.Context, gecko *cryptofolio.CoinGecko, in *bufio.Scanner, out *os.File) {
	query, ok := readLine(in, out, "Search for coin: ")
	if !ok {
		return
	}
	results, err := gecko.Search(ctx, query)
	if err != nil {
		log.Printf("search failed: %v", err)
		results = []cryptofolio.CoinSummary{}
	}
	printMarkdown(out, renderer.SearchMarkdown(results))
}
