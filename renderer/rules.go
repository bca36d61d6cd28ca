package renderer

import (
	"fmt"
	"io"

	"github.com/etnz/rupeelogic"
)

// RenderRules writes the rules as a markdown overview followed by one section
// per rule, in the order given.
func RenderRules(w io.Writer, rules []rupeelogic.Rule) {
	fmt.Fprintf(w, "# Rules\n\n")
	fmt.Fprintf(w, "| Priority | Rule | Name | Kind | Confidence |\n")
	fmt.Fprintf(w, "|---:|:---|:---|:---|---:|\n")
	for _, r := range rules {
		fmt.Fprintf(w, "| %d | %s | %s | %s | %d%% |\n", r.Priority, r.ID, cell(r.Name), kind(r), r.Confidence)
	}
	fmt.Fprintln(w)

	for _, r := range rules {
		RenderRule(w, r)
	}
}

func kind(r rupeelogic.Rule) string {
	if r.Guarded {
		return "guarded"
	}
	return "critical"
}

// RenderRule writes one rule: its condition, its action and the plans it proposes.
func RenderRule(w io.Writer, r rupeelogic.Rule) {
	fmt.Fprintf(w, "## %s: %s\n\n", r.ID, r.Name)
	fmt.Fprintf(w, "%s\n\n", r.Description)
	fmt.Fprintf(w, "- **When:** %s\n", r.Condition)
	fmt.Fprintf(w, "- **Then:** %s\n", r.Action)
	fmt.Fprintf(w, "- **Priority:** %d (%s), **Confidence:** %d%%\n\n", r.Priority, kind(r), r.Confidence)

	printLines(w, r.Allocate)
	for _, alt := range r.Alternatives {
		fmt.Fprintf(w, "### %s (%d%%)\n\n", alt.Name, alt.Confidence)
		if alt.Description != "" {
			fmt.Fprintf(w, "%s\n\n", alt.Description)
		}
		printLines(w, alt.Lines)
	}
}

func printLines(w io.Writer, lines []rupeelogic.Line) {
	fmt.Fprintf(w, "| Asset Class | Allocation |\n")
	fmt.Fprintf(w, "|:---|---:|\n")
	for _, l := range lines {
		fmt.Fprintf(w, "| %s | %d%% |\n", l.AssetClass, l.Percent)
	}
	fmt.Fprintln(w)
}
