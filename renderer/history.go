package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/rupeelogic/history"
)

// RenderHistory writes past sessions as a markdown table.
func RenderHistory(w io.Writer, sessions []history.Session) {
	fmt.Fprintf(w, "# History\n\n")
	if len(sessions) == 0 {
		fmt.Fprintf(w, "No recommendation recorded yet.\n")
		return
	}
	fmt.Fprintf(w, "| Session | Date | Age | Risk | Goal | Rules |\n")
	fmt.Fprintf(w, "|:---|:---|---:|:---|:---|:---|\n")
	for _, s := range sessions {
		fmt.Fprintf(w, "| %s | %s | %d | %s | %s in %d years | %s |\n",
			shortID(s.ID), s.Time.Format("2006-01-02 15:04"), s.Profile.Age, s.Profile.RiskTolerance,
			s.Goal.Type, s.Goal.Horizon, strings.Join(s.Rules, ", "))
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
