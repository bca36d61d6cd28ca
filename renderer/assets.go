package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/rupeelogic"
)

// RenderAssets writes the knowledge base as a markdown table followed by one
// section per asset class.
func RenderAssets(w io.Writer, kb *rupeelogic.KnowledgeBase) {
	assets := kb.All()
	fmt.Fprintf(w, "# Asset Classes\n\n")
	fmt.Fprintf(w, "| ID | Name | Risk | Expected Return | Liquidity | Minimum |\n")
	fmt.Fprintf(w, "|:---|:---|:---|:---|:---|---:|\n")
	for _, a := range assets {
		fmt.Fprintf(w, "| %s | %s | %s | %s | %s | %s |\n",
			a.ID, cell(a.Name), cell(a.Risk), cell(a.ExpectedReturn()), cell(a.Liquidity), cell(a.MinInvestment))
	}
	fmt.Fprintln(w)

	for _, a := range assets {
		RenderAsset(w, a)
	}
}

// RenderAsset writes one asset class.
func RenderAsset(w io.Writer, a rupeelogic.AssetClass) {
	fmt.Fprintf(w, "## %s\n\n", a.Name)
	if a.Description != "" {
		fmt.Fprintf(w, "%s\n\n", a.Description)
	}
	ConditionalBlock(w, func(w io.Writer) bool {
		if len(a.Examples) == 0 {
			return false
		}
		fmt.Fprintf(w, "Examples: %s\n\n", strings.Join(a.Examples, ", "))
		return true
	})
	ConditionalBlock(w, func(w io.Writer) bool {
		for _, l := range a.Links {
			fmt.Fprintf(w, "- <%s>\n", l)
		}
		fmt.Fprintln(w)
		return len(a.Links) > 0
	})
}
