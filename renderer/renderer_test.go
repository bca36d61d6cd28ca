package renderer

import (
	"bytes"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/etnz/rupeelogic"
	"github.com/etnz/rupeelogic/history"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// outline is what the tests check of a markdown document.
type outline struct {
	headings map[int][]string // by level
	tables   int
}

// parseOutline parses a GitHub flavored markdown document.
func parseOutline(t *testing.T, doc string) outline {
	t.Helper()
	src := []byte(doc)
	root := goldmark.New(goldmark.WithExtensions(extension.GFM)).Parser().Parse(text.NewReader(src))

	o := outline{headings: map[int][]string{}}
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.Heading:
			o.headings[n.Level] = append(o.headings[n.Level], textOf(n, src))
			return ast.WalkSkipChildren, nil
		case *east.Table:
			o.tables++
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("walking markdown: %v", err)
	}
	return o
}

func textOf(n ast.Node, src []byte) string {
	var b strings.Builder
	ast.Walk(n, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if t, ok := n.(*ast.Text); ok && entering {
			b.Write(t.Segment.Value(src))
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

func advise(t *testing.T, debt bool) *rupeelogic.Recommendation {
	t.Helper()
	p := rupeelogic.UserProfile{
		Age:                 30,
		MonthlyIncome:       rupeelogic.LKR(100000),
		MonthlyExpenses:     rupeelogic.LKR(60000),
		CurrentSavings:      rupeelogic.LKR(100000),
		HasHighInterestDebt: debt,
		RiskTolerance:       rupeelogic.RiskModerate,
	}
	rec, err := rupeelogic.NewEngine(nil, nil).Advise(p, rupeelogic.InvestmentGoal{Type: rupeelogic.GoalWealthBuilding, Horizon: 8})
	if err != nil {
		t.Fatalf("Advise() failed: %v", err)
	}
	return rec
}

func checkRendered(t *testing.T, doc string) {
	t.Helper()
	if strings.HasPrefix(doc, "error ") {
		t.Fatalf("rendering failed: %s", doc)
	}
	if strings.Contains(doc, "<no value>") {
		t.Errorf("rendered document contains a missing value:\n%s", doc)
	}
}

func TestRenderRecommendation(t *testing.T) {
	doc := RenderRecommendation(advise(t, false), RecommendationRenderOptions{})
	checkRendered(t, doc)
	o := parseOutline(t, doc)

	if got, want := o.headings[1], []string{"Investment Recommendation"}; !slices.Equal(got, want) {
		t.Errorf("level 1 headings = %q, want %q", got, want)
	}
	if got, want := o.headings[2], []string{"Primary Plan", "Budget", "Alternative Plans", "Why this recommendation"}; !slices.Equal(got, want) {
		t.Errorf("level 2 headings = %q, want %q", got, want)
	}
	wantSections := []string{
		"Savings Account (50%)",
		"Money Market Funds (50%)",
		"Alternative Plan 1: Maximum Liquidity",
		"Alternative Plan 2: Enhanced Returns",
	}
	if got := o.headings[3]; !slices.Equal(got, wantSections) {
		t.Errorf("level 3 headings = %q, want %q", got, wantSections)
	}
	// profile, primary, budget and one per alternative.
	if got, want := o.tables, 5; got != want {
		t.Errorf("found %d tables, want %d", got, want)
	}
	if !strings.Contains(doc, "Rule 1: Emergency Fund Priority") {
		t.Error("the fired rule is not explained")
	}
}

func TestRenderRecommendation_DebtFirst(t *testing.T) {
	doc := RenderRecommendation(advise(t, true), RecommendationRenderOptions{})
	checkRendered(t, doc)
	o := parseOutline(t, doc)

	if slices.Contains(o.headings[2], "Budget") {
		t.Error("a budget is rendered while debt must be repaid first")
	}
	if !strings.Contains(doc, "Pay off your high interest debt before investing") {
		t.Error("missing the debt warning")
	}
	if !strings.Contains(doc, "add up to 200%") {
		t.Error("missing the overflow warning")
	}
}

func TestRenderRecommendation_Skip(t *testing.T) {
	doc := RenderRecommendation(advise(t, false), RecommendationRenderOptions{
		SkipBudget:       true,
		SkipAlternatives: true,
		SkipExplanations: true,
	})
	checkRendered(t, doc)
	o := parseOutline(t, doc)
	if got, want := o.headings[2], []string{"Primary Plan"}; !slices.Equal(got, want) {
		t.Errorf("level 2 headings = %q, want %q", got, want)
	}
	if got, want := o.tables, 2; got != want {
		t.Errorf("found %d tables, want %d", got, want)
	}
}

func TestRenderRules(t *testing.T) {
	var b bytes.Buffer
	RenderRules(&b, rupeelogic.DefaultCatalog().Ordered())
	o := parseOutline(t, b.String())
	if got, want := len(o.headings[2]), 20; got != want {
		t.Errorf("rendered %d rules, want %d", got, want)
	}
	if got, want := o.headings[2][0], "Rule 1: Emergency Fund Priority"; got != want {
		t.Errorf("first rule = %q, want %q", got, want)
	}
	if got, want := o.headings[2][19], "Rule 19: Default Balanced Portfolio"; got != want {
		t.Errorf("last rule = %q, want %q", got, want)
	}
}

func TestRenderAssets(t *testing.T) {
	var b bytes.Buffer
	kb := rupeelogic.DefaultKnowledgeBase()
	RenderAssets(&b, kb)
	o := parseOutline(t, b.String())
	if got, want := len(o.headings[2]), kb.Len(); got != want {
		t.Errorf("rendered %d asset classes, want %d", got, want)
	}
	if got, want := o.tables, 1; got != want {
		t.Errorf("found %d tables, want %d", got, want)
	}
}

func TestRenderHistory(t *testing.T) {
	var b bytes.Buffer
	RenderHistory(&b, nil)
	if !strings.Contains(b.String(), "No recommendation recorded yet.") {
		t.Errorf("RenderHistory(nil) = %q", b.String())
	}

	b.Reset()
	RenderHistory(&b, []history.Session{{
		ID:    "0123456789abcdef",
		Time:  time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC),
		Goal:  rupeelogic.InvestmentGoal{Type: rupeelogic.GoalRetirement, Horizon: 20},
		Rules: []string{"Rule 1", "Rule 2"},
	}})
	want := "| 01234567 | 2025-03-01 10:00 | 0 |  | Retirement in 20 years | Rule 1, Rule 2 |"
	if !strings.Contains(b.String(), want) {
		t.Errorf("RenderHistory() = %q, want a row %q", b.String(), want)
	}
}
