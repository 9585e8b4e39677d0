// Package cmd implements the CLI application to manage a crypto portfolio.
package cmd

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/cryptofolio"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&viewCmd{}, "portfolio")
	c.Register(&addCmd{}, "portfolio")
	c.Register(&removeCmd{}, "portfolio")
	c.Register(&txCmd{}, "portfolio")

	c.Register(&searchCmd{}, "market")
	c.Register(&marketCmd{}, "market")

	c.Register(&menuCmd{}, "tools")
	c.Register(&serveCmd{}, "tools")
	c.Register(&assistCmd{}, "tools")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var portfolioFile = flag.String("portfolio-file", "portfolio.json", "Path to the portfolio file (JSON format)")
var quoteURL = flag.String("quote-url", cryptofolio.DefaultBaseURL, "Base URL of the CoinGecko-compatible quote service")

// openStore opens the app portfolio store. An absent file simply decodes to
// an empty portfolio, so there is nothing to create upfront.
func openStore() *cryptofolio.Store {
	return cryptofolio.NewStore(*portfolioFile)
}

// newQuoteService creates the CoinGecko adapter for the configured base URL.
func newQuoteService() *cryptofolio.CoinGecko {
	return cryptofolio.NewCoinGecko(*quoteURL)
}

// printMarkdown renders markdown to the terminal with glamour, falling back
// to the raw markdown when styling fails.
func printMarkdown(w io.Writer, md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		fmt.Fprintln(w, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprintln(w, md)
		return
	}
	fmt.Fprint(w, out)
}

// readLine prompts and reads one trimmed line. ok is false on EOF.
func readLine(in *bufio.Scanner, w io.Writer, prompt string) (line string, ok bool) {
	fmt.Fprint(w, prompt)
	if !in.Scan() {
		return "", false
	}
	return strings.TrimSpace(in.Text()), true
}
