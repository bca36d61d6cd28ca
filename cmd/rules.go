package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/rupeelogic"
	"github.com/etnz/rupeelogic/renderer"
	"github.com/google/subcommands"
)

type rulesCmd struct {
	id         string
	byPriority bool
}

func (*rulesCmd) Name() string     { return "rules" }
func (*rulesCmd) Synopsis() string { return "list the recommendation rules" }
func (*rulesCmd) Usage() string {
	return `rl rules [-id <rule>] [-p]

  Lists the rules of the catalog with their conditions and plans.
`
}

func (c *rulesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", `Show a single rule, e.g. "Rule 2A" or "2A"`)
	f.BoolVar(&c.byPriority, "p", false, "List the rules in firing order")
}

func (c *rulesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	catalog := rupeelogic.DefaultCatalog()
	var b strings.Builder

	if c.id != "" {
		id := c.id
		if !strings.HasPrefix(id, "Rule ") {
			id = "Rule " + strings.ToUpper(id)
		}
		r, ok := catalog.Lookup(id)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown rule %q\n", c.id)
			return subcommands.ExitUsageError
		}
		renderer.RenderRule(&b, r)
		printMarkdown(b.String())
		return subcommands.ExitSuccess
	}

	rules := catalog.Rules()
	if c.byPriority {
		rules = catalog.Ordered()
	}
	renderer.RenderRules(&b, rules)
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
