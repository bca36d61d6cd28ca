package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders markdown to stdout for the terminal.
func printMarkdown(md string) { writeMarkdown(os.Stdout, md) }

// writeMarkdown falls back to the raw markdown if it cannot be rendered.
func writeMarkdown(w io.Writer, md string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(w, out)
			return
		}
	}
	fmt.Fprintln(w, md)
}
