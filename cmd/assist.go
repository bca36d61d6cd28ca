package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/rupeelogic"
	"github.com/etnz/rupeelogic/agent"
	"github.com/google/subcommands"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct{}

// Name returns the name of the command.
func (*assistCmd) Name() string { return "assist" }

// Synopsis returns a short-one line synopsis of the command.
func (*assistCmd) Synopsis() string {
	return "build your profile in a conversation and ask about the recommendation"
}

// Usage returns a long-form usage string.
func (*assistCmd) Usage() string {
	return `rl assist [<first message>]

  Start an interactive session with the AI assistant. It collects the profile,
  runs the rules and answers follow-up questions. Needs GEMINI_API_KEY.
`
}

// SetFlags sets the flags for the command.
func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

// Execute executes the command.
func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	cfg, log, e, status := setup()
	if status != subcommands.ExitSuccess {
		return status
	}
	defer log.Sync()

	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.Gemini.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	rh := openHistory(cfg, log)
	defer rh.Close()

	a := agent.New(os.Stdout, os.Stdin, e, cfg.Gemini.Model)
	a.Draft.Currency = cfg.Currency
	a.Log = log
	a.Print = writeMarkdown
	a.OnAdvice = func(rec *rupeelogic.Recommendation) {
		if _, err := rh.Record(rec); err != nil {
			log.Warn("recording recommendation", zap.Error(err))
		}
	}

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
