package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/rupeelogic"
	"github.com/etnz/rupeelogic/renderer"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// adviseCmd holds the flags for the 'advise' subcommand.
type adviseCmd struct {
	file     string
	age      int
	income   float64
	expenses float64
	savings  float64
	debt     bool
	risk     string
	goal     string
	horizon  string

	json           bool
	noAlternatives bool
	noBudget       bool
	noWhy          bool
}

func (*adviseCmd) Name() string     { return "advise" }
func (*adviseCmd) Synopsis() string { return "recommend an asset allocation for a profile and a goal" }
func (*adviseCmd) Usage() string {
	return `rl advise [-f <request.json>] [-age <years>] [-income <amount>] [-expenses <amount>]
          [-savings <amount>] [-debt] [-risk Low|Moderate|High] [-goal <goal>] [-horizon <years|bucket>]

  Runs the rules on the profile and prints the recommendation.
  Flags override the fields read from -f. See 'rl topic profile'.
`
}

func (c *adviseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "JSON request file, '-' for stdin")
	f.IntVar(&c.age, "age", 0, "Age in years")
	f.Float64Var(&c.income, "income", 0, "Monthly income")
	f.Float64Var(&c.expenses, "expenses", 0, "Monthly expenses")
	f.Float64Var(&c.savings, "savings", 0, "Current savings")
	f.BoolVar(&c.debt, "debt", false, "Has high-interest debt")
	f.StringVar(&c.risk, "risk", "", "Risk tolerance: Low, Moderate or High")
	f.StringVar(&c.goal, "goal", "", "Goal: wealth-building, retirement, child-education, home-purchase or emergency-fund")
	f.StringVar(&c.horizon, "horizon", "", "Time horizon in years, or short, medium, long, very-long")
	f.BoolVar(&c.json, "json", false, "Print the recommendation as JSON")
	f.BoolVar(&c.noAlternatives, "no-alternatives", false, "Do not print the alternative plans")
	f.BoolVar(&c.noBudget, "no-budget", false, "Do not print the amounts")
	f.BoolVar(&c.noWhy, "no-why", false, "Do not print the fired rules")
}

// request merges the request file with the flags explicitly set.
func (c *adviseCmd) request(f *flag.FlagSet, currency string) (request, error) {
	var req request
	if c.file != "" {
		var err error
		if req, err = decodeRequest(c.file); err != nil {
			return req, err
		}
	}
	var err error
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "age":
			req.Age = c.age
		case "income":
			req.MonthlyIncome = rupeelogic.M(c.income, currency)
		case "expenses":
			req.MonthlyExpenses = rupeelogic.M(c.expenses, currency)
		case "savings":
			req.CurrentSavings = rupeelogic.M(c.savings, currency)
		case "debt":
			req.HasHighInterestDebt = c.debt
		case "risk":
			req.RiskTolerance = rupeelogic.RiskTolerance(c.risk)
		case "goal":
			req.GoalType = c.goal
		case "horizon":
			var years int
			years, err = rupeelogic.ParseHorizon(c.horizon)
			req.TimeHorizon = horizon(years)
		}
	})
	return req, err
}

func (c *adviseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, log, e, status := setup()
	if status != subcommands.ExitSuccess {
		return status
	}
	defer log.Sync()

	req, err := c.request(f, cfg.Currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading request: %v\n", err)
		return subcommands.ExitUsageError
	}
	p, g, err := req.parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	rec, err := e.Advise(p, g)
	if errors.Is(err, rupeelogic.ErrInvalidInput) {
		for _, ie := range rupeelogic.InputErrors(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", ie)
		}
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	rh := openHistory(cfg, log)
	defer rh.Close()
	if id, err := rh.Record(rec); err != nil {
		log.Warn("recording recommendation", zap.Error(err))
	} else if id != "" {
		log.Info("recommendation recorded", zap.String("session", id))
	}

	if c.json {
		if err := writeJSON(os.Stdout, rec); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.RenderRecommendation(rec, renderer.RecommendationRenderOptions{
		SkipBudget:       c.noBudget,
		SkipAlternatives: c.noAlternatives,
		SkipExplanations: c.noWhy,
	}))
	return subcommands.ExitSuccess
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
