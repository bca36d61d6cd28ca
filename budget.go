package rupeelogic

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// BudgetLine is the money a plan line represents for a given profile.
type BudgetLine struct {
	AssetClass  string `json:"asset_class"`
	Name        string `json:"name"`
	Percent     int    `json:"percent"`
	FromSavings Money  `json:"from_savings"`
	Monthly     Money  `json:"monthly"`
}

// Budget turns a plan's percents into amounts.
//
// Savings are invested once, the monthly surplus every month. A deficit is
// never invested: Monthly is zero when expenses reach income.
type Budget struct {
	Savings           Money           `json:"savings"`
	Monthly           Money           `json:"monthly"`
	FirstYear         Money           `json:"first_year"`
	EmergencyTarget   Money           `json:"emergency_target"`
	EmergencyCoverage decimal.Decimal `json:"emergency_coverage"` // percent of EmergencyTarget held in savings
	ReturnLow         decimal.Decimal `json:"return_low"`
	ReturnHigh        decimal.Decimal `json:"return_high"`
	Lines             []BudgetLine    `json:"lines"`
}

// Budget computes the budget of the primary plan.
func (r *Recommendation) Budget() Budget { return NewBudget(r.Profile, r.Primary) }

// NewBudget computes the budget of plan for profile p.
func NewBudget(p UserProfile, plan Plan) Budget {
	b := Budget{
		Savings:         p.CurrentSavings,
		Monthly:         p.MonthlySurplus(),
		EmergencyTarget: p.EmergencyFundTarget(),
	}
	if !b.Monthly.IsPositive() {
		// keep the surplus currency, possibly unset.
		b.Monthly = b.Monthly.Times(0)
	}
	b.FirstYear = b.Savings.Add(b.Monthly.Times(12))

	b.EmergencyCoverage = decimal.NewFromInt(100)
	if b.EmergencyTarget.IsPositive() {
		b.EmergencyCoverage = b.Savings.Decimal().Mul(decimal.NewFromInt(100)).Div(b.EmergencyTarget.Decimal()).Round(1)
	}

	for _, l := range plan.Lines {
		b.Lines = append(b.Lines, BudgetLine{
			AssetClass:  l.AssetClass,
			Name:        l.Asset.Name,
			Percent:     l.Percent,
			FromSavings: b.Savings.Share(l.Percent),
			Monthly:     b.Monthly.Share(l.Percent),
		})
		// unparsable returns count as 0%.
		low, high, _ := ParseReturnRange(l.Asset.ExpectedReturn())
		w := decimal.NewFromInt(int64(l.Percent)).Div(decimal.NewFromInt(100))
		b.ReturnLow = b.ReturnLow.Add(low.Mul(w))
		b.ReturnHigh = b.ReturnHigh.Add(high.Mul(w))
	}
	b.ReturnLow, b.ReturnHigh = b.ReturnLow.Round(1), b.ReturnHigh.Round(1)
	return b
}

// ParseReturnRange parses an annual return such as "9-11%" or "10%".
// A single value is both the low and the high bound.
func ParseReturnRange(s string) (low, high decimal.Decimal, err error) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	lo, hi, isRange := strings.Cut(s, "-")
	if !isRange {
		hi = lo
	}
	if low, err = decimal.NewFromString(strings.TrimSpace(lo)); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("invalid return %q: %w", s, err)
	}
	if high, err = decimal.NewFromString(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(hi), "%"))); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("invalid return %q: %w", s, err)
	}
	return low, high, nil
}
