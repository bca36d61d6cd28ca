package rupeelogic

import "slices"

// DebtPayment is the pseudo asset class allocated when debt must be repaid
// before investing.
const DebtPayment = "debt_payment"

// PlanLine is an allocation joined with the reference data of its asset class.
type PlanLine struct {
	AssetClass string     `json:"asset_class"`
	Percent    int        `json:"percent"`
	Confidence int        `json:"confidence"`
	Reason     string     `json:"reason"`
	Reference  string     `json:"reference"`
	Rule       string     `json:"rule"`
	Asset      AssetClass `json:"asset"`
}

// Plan is a presentable portfolio allocation.
type Plan struct {
	Name        string     `json:"plan_name"`
	Description string     `json:"description,omitempty"`
	Confidence  int        `json:"confidence"`
	Rule        string     `json:"rule,omitempty"`
	Total       int        `json:"total_percent"`
	Lines       []PlanLine `json:"allocations"`
}

// Overflow reports whether several rules contributed lines whose percents
// add up to more than 100. The plan is never renormalized.
func (p Plan) Overflow() bool { return p.Total > 100 }

// Recommendation is the result of a run.
type Recommendation struct {
	Profile      UserProfile    `json:"profile"`
	Goal         InvestmentGoal `json:"goal"`
	Primary      Plan           `json:"primary"`
	Alternatives []Plan         `json:"alternatives"`
	Trail        []FiredRule    `json:"explanations"`
}

// DebtFirst reports whether the primary plan asks to repay high interest debt,
// in which case presenters should not suggest any investment.
func (r *Recommendation) DebtFirst() bool {
	return slices.ContainsFunc(r.Primary.Lines, func(l PlanLine) bool { return l.AssetClass == DebtPayment })
}

// Synthesize builds the recommendation of an executed session.
//
// The primary plan holds every primary allocation in assertion order and the
// alternatives keep the order they were proposed in. Every line is joined with
// its AssetClass fact: an unknown asset class is a *DataFaultError.
func Synthesize(s *Session) (*Recommendation, error) {
	p, okp := s.store.Profile()
	g, okg := s.store.Goal()
	if !okp || !okg {
		return nil, ErrNotDeclared
	}
	rec := &Recommendation{
		Profile:      p,
		Goal:         g,
		Alternatives: []Plan{},
		Trail:        s.trail.Records(),
	}

	rec.Primary = Plan{Name: "Primary Plan", Lines: []PlanLine{}}
	if len(rec.Trail) > 0 {
		first := rec.Trail[0]
		rec.Primary.Description = first.Description
		rec.Primary.Confidence = first.Confidence
		rec.Primary.Rule = first.ID
	}
	for _, a := range s.store.Allocations() {
		if a.Plan != PlanPrimary {
			continue
		}
		asset, ok := s.store.AssetClass(a.AssetClass)
		if !ok {
			return nil, &DataFaultError{AssetClass: a.AssetClass, Rule: a.Rule}
		}
		rec.Primary.Lines = append(rec.Primary.Lines, PlanLine{
			AssetClass: a.AssetClass,
			Percent:    a.Percent,
			Confidence: a.Confidence,
			Reason:     a.Reason,
			Reference:  a.Reference,
			Rule:       a.Rule,
			Asset:      asset,
		})
		rec.Primary.Total += a.Percent
	}

	for _, alt := range s.alternatives {
		plan := Plan{
			Name:        alt.Name,
			Description: alt.Description,
			Confidence:  alt.Confidence,
			Rule:        alt.Rule,
			Lines:       make([]PlanLine, 0, len(alt.Lines)),
		}
		for _, l := range alt.Lines {
			asset, ok := s.store.AssetClass(l.AssetClass)
			if !ok {
				return nil, &DataFaultError{AssetClass: l.AssetClass, Rule: alt.Rule}
			}
			plan.Lines = append(plan.Lines, PlanLine{
				AssetClass: l.AssetClass,
				Percent:    l.Percent,
				Confidence: alt.Confidence,
				Reason:     l.Reason,
				Reference:  l.Reference,
				Rule:       alt.Rule,
				Asset:      asset,
			})
			plan.Total += l.Percent
		}
		rec.Alternatives = append(rec.Alternatives, plan)
	}
	return rec, nil
}
