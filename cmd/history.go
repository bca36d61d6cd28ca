package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/rupeelogic/history"
	"github.com/etnz/rupeelogic/renderer"
	"github.com/google/subcommands"
)

type historyCmd struct {
	limit int
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "list or show past recommendations" }
func (*historyCmd) Usage() string {
	return `rl history [-n <count>] [<session>]

  Without argument, lists the most recent recommendations.
  With a session ID or prefix, shows that recommendation again.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.limit, "n", 10, "Number of sessions to list")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "at most one session can be shown")
		return subcommands.ExitUsageError
	}
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	if cfg.History.Disabled {
		fmt.Fprintln(os.Stderr, "history is disabled")
		return subcommands.ExitFailure
	}
	log := newLogger()
	defer log.Sync()

	rh, err := history.NewSQLiteRecorder(cfg.History.SQLitePath, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history: %v\n", err)
		return subcommands.ExitFailure
	}
	defer rh.Close()

	if f.NArg() == 0 {
		sessions, err := rh.List(c.limit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing history: %v\n", err)
			return subcommands.ExitFailure
		}
		var b strings.Builder
		renderer.RenderHistory(&b, sessions)
		printMarkdown(b.String())
		return subcommands.ExitSuccess
	}

	s, err := rh.Get(f.Arg(0))
	if errors.Is(err, history.ErrNotFound) {
		fmt.Fprintf(os.Stderr, "Error: no session %q\n", f.Arg(0))
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	rec, err := s.Decode()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding session %s: %v\n", s.ID, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderRecommendation(rec, renderer.RecommendationRenderOptions{}))
	return subcommands.ExitSuccess
}
