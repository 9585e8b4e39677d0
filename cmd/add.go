package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/etnz/cryptofolio"
	"github.com/etnz/cryptofolio/renderer"
	"github.com/google/subcommands"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	id     string
	name   string
	symbol string
	amount string
	price  string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a holding to the portfolio" }
func (*addCmd) Usage() string {
	return `cft add [-id <coin_id> -symbol <symbol> -amount <n> -price <usd> [-name <name>]]

  Adds a holding and records the matching buy transaction. Without flags, the
  command is interactive: it searches CoinGecko for the coin, lets you pick a
  result, and prompts for amount and buy price.

Usage Examples:
# Fully flag-driven.
$ cft add -id bitcoin -symbol btc -amount 0.5 -price 30000

# Interactive.
$ cft add
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "CoinGecko coin id (e.g. bitcoin). Empty triggers the interactive flow.")
	f.StringVar(&c.name, "name", "", "Coin display name. Defaults to the coin id.")
	f.StringVar(&c.symbol, "symbol", "", "Coin ticker symbol (e.g. btc)")
	f.StringVar(&c.amount, "amount", "", "Amount of coins bought")
	f.StringVar(&c.price, "price", "", "Buy price per coin, in USD")
}

func (c *addCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore()

	if c.id == "" {
		in := bufio.NewScanner(os.Stdin)
		if err := runInteractiveAdd(ctx, newQuoteService(), store, in, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	name := c.name
	if name == "" {
		name = c.id
	}
	if err := addHolding(store, c.id, name, c.symbol, c.amount, c.price, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// addHolding parses the numeric inputs, validates the holding and persists
// the mutation. Any error aborts before the store is touched.
func addHolding(store *cryptofolio.Store, coinID, coinName, symbol, amountStr, priceStr string, w io.Writer) error {
	amount, err := cryptofolio.ParseQuantity(amountStr)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amountStr, err)
	}
	price, err := cryptofolio.ParseMoney(priceStr)
	if err != nil {
		return fmt.Errorf("invalid buy price %q: %w", priceStr, err)
	}

	h, err := cryptofolio.NewHolding(coinID, coinName, symbol, amount, price)
	if err != nil {
		return err
	}

	p, err := store.Load()
	if err != nil {
		return err
	}
	if err := store.Save(p.Add(h, time.Now())); err != nil {
		return err
	}
	fmt.Fprintf(w, "Added %s %s at %s\n", h.Amount, h.Symbol, h.BuyPrice)
	return nil
}

// runInteractiveAdd implements the search, pick, amount, price flow. It is
// shared with the menu command.
func runInteractiveAdd(ctx context.Context, gecko *cryptofolio.CoinGecko, store *cryptofolio.Store, in *bufio.Scanner, w io.Writer) error {
	query, ok := readLine(in, w, "Enter coin name or symbol: ")
	if !ok {
		return nil
	}

	results, err := gecko.Search(ctx, query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	if len(results) == 0 {
		fmt.Fprintln(w, "No coins found.")
		return nil
	}
	printMarkdown(w, renderer.SearchMarkdown(results))

	line, ok := readLine(in, w, "Select coin (number): ")
	if !ok {
		return nil
	}
	pick, err := strconv.Atoi(line)
	if err != nil || pick < 1 || pick > len(results) {
		return fmt.Errorf("invalid selection %q", line)
	}
	coin := results[pick-1]

	amountStr, ok := readLine(in, w, "Enter amount: ")
	if !ok {
		return nil
	}
	priceStr, ok := readLine(in, w, "Enter buy price (USD): ")
	if !ok {
		return nil
	}

	return addHolding(store, coin.ID, coin.Name, coin.Symbol, amountStr, priceStr, w)
}
