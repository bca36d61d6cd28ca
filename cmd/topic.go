package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/rupeelogic/docs"
	"github.com/google/subcommands"
)

type topicCmd struct {
	outline bool
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `topic [-outline] <topic>

Show documentation for a given topic.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.outline, "outline", false, "Only list the sections of the topics")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}

	if c.outline {
		var b strings.Builder
		for _, topic := range topics {
			titles, err := docs.Outline(topic)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error reading doc: %v\n", err)
				return subcommands.ExitFailure
			}
			fmt.Fprintf(&b, "# %s\n\n", topic)
			for _, t := range titles {
				fmt.Fprintf(&b, "- %s\n", t)
			}
			fmt.Fprintln(&b)
		}
		printMarkdown(b.String())
		return subcommands.ExitSuccess
	}

	doc, err := docs.GetTopics(topics...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading doc: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(doc)

	return subcommands.ExitSuccess
}
