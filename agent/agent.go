// Package agent implements the AI assistant that answers questions about the
// portfolio valuation report.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

const systemPrompt = `You are a crypto portfolio assistant.
You are given the user's current portfolio valuation report as a markdown
document. Answer questions about it: holdings, profit and loss, exposure.
Be concise. Never invent prices or holdings that are not in the report.`

// Agent handles a chat session grounded on a valuation report.
type Agent struct {
	w      io.Writer
	r      *bufio.Reader
	report string
	chat   *genai.Chat
}

// New creates a new Agent. It takes an io.Writer for the agent's output
// (e.g., os.Stdout), an io.Reader for user input (e.g., os.Stdin), and the
// rendered valuation report the session is grounded on.
func New(w io.Writer, r io.Reader, report string) *Agent {
	return &Agent{
		w:      w,
		r:      bufio.NewReader(r),
		report: report,
	}
}

// Start creates the Gemini chat and primes it with the valuation report.
func (a *Agent) Start(ctx context.Context, client *genai.Client) error {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		},
	}
	chat, err := client.Chats.Create(ctx, defaultModel, config, nil)
	if err != nil {
		return err
	}
	a.chat = chat

	// Prime the chat with the report so follow-up questions can refer to it.
	_, err = a.Ask(ctx, "Here is my current valuation report:\n\n"+a.report+"\n\nAcknowledge in one short sentence.")
	return err
}

// Ask sends one question and returns the assistant's text answer.
func (a *Agent) Ask(ctx context.Context, question string) (string, error) {
	resp, err := a.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the assistant")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

const prompt = "assist> "

// Run starts the interactive REPL session for the agent.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.chat == nil {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to the cryptofolio assistant. Type 'bye' to exit.")

	// REPL loop
	for {
		fmt.Fprint(a.w, prompt)
		var input string

		// Flush prompts from the list and then ask for the user.
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		answer, err := a.Ask(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, answer)
	}
}
