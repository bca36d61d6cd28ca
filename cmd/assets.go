package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/rupeelogic/renderer"
	"github.com/google/subcommands"
)

type assetsCmd struct {
	id string
}

func (*assetsCmd) Name() string     { return "assets" }
func (*assetsCmd) Synopsis() string { return "describe the asset classes of the knowledge base" }
func (*assetsCmd) Usage() string {
	return `rl assets [-id <asset_class>]

  Lists the asset classes with their risk, return, liquidity and examples.
`
}

func (c *assetsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Show a single asset class, e.g. treasury_bills")
}

func (c *assetsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, log, e, status := setup()
	if status != subcommands.ExitSuccess {
		return status
	}
	defer log.Sync()
	kb := e.KnowledgeBase()

	var b strings.Builder
	if c.id != "" {
		a, ok := kb.Lookup(c.id)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown asset class %q\n", c.id)
			return subcommands.ExitUsageError
		}
		renderer.RenderAsset(&b, a)
	} else {
		renderer.RenderAssets(&b, kb)
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
