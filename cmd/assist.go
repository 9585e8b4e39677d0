package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/cryptofolio"
	"github.com/etnz/cryptofolio/agent"
	"github.com/etnz/cryptofolio/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }
func (*assistCmd) Usage() string {
	return `cft assist [initial question]

  Starts an interactive session with the AI assistant, grounded on the
  current valuation report. Requires a configured Gemini API key.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := openStore().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	valuation := cryptofolio.Valuate(p, newQuoteService().QuoteFunc(ctx))
	report := renderer.ValuationMarkdown(&valuation)

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating Gemini client: %v\n", err)
		return subcommands.ExitFailure
	}

	a := agent.New(os.Stdout, os.Stdin, report)

	var prompts []string
	if f.NArg() > 0 {
		prompts = append(prompts, strings.Join(f.Args(), " "))
	}
	if err := a.Run(ctx, client, prompts...); err != nil {
		fmt.Fprintf(os.Stderr, "Assistant error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
