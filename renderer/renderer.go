package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/rupeelogic"
)

//go:embed templates/*.md
var templates embed.FS

// RecommendationRenderOptions holds configuration for rendering a recommendation.
type RecommendationRenderOptions struct {
	SkipBudget       bool // Do not render amounts. Implied when debt must be repaid first.
	SkipAlternatives bool // Do not render the alternative plans.
	SkipExplanations bool // Do not render the fired rules.
}

// recommendationView is the template data: the recommendation and the budget
// of its primary plan.
type recommendationView struct {
	*rupeelogic.Recommendation
	Amounts rupeelogic.Budget
}

// RenderRecommendation renders a recommendation to a markdown string.
func RenderRecommendation(rec *rupeelogic.Recommendation, opts RecommendationRenderOptions) string {
	partials := map[string]string{
		"recommendation_title":        "recommendation_title.md",
		"recommendation_primary":      "recommendation_primary.md",
		"recommendation_budget":       "recommendation_budget.md",
		"recommendation_alternatives": "recommendation_alternatives.md",
		"recommendation_why":          "recommendation_why.md",
	}
	// An empty file name results in an empty template.
	if opts.SkipBudget || rec.DebtFirst() {
		partials["recommendation_budget"] = ""
	}
	if opts.SkipAlternatives {
		partials["recommendation_alternatives"] = ""
	}
	if opts.SkipExplanations {
		partials["recommendation_why"] = ""
	}
	return renderTemplate("recommendation", "recommendation.md", partials, recommendationView{rec, rec.Budget()})
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, "templates/"+file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
