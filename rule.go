package rupeelogic

import (
	"errors"
	"fmt"
	"slices"
	"sort"
)

// PlanTag labels the plan an Allocation belongs to.
type PlanTag string

// PlanPrimary is the only tag rules assert: alternatives are not facts.
const PlanPrimary PlanTag = "primary"

// Allocation is the engine's output unit: a share of the portfolio assigned to
// an asset class by a rule.
type Allocation struct {
	AssetClass string  `json:"asset_class"`
	Percent    int     `json:"percent"`
	Plan       PlanTag `json:"plan_type"`
	Confidence int     `json:"confidence"`
	Reason     string  `json:"reason"`
	Reference  string  `json:"reference"`
	Rule       string  `json:"rule"`
}

// Line is an allocation line as authored in a rule, without plan metadata.
type Line struct {
	AssetClass string `json:"asset_class"`
	Percent    int    `json:"percent"`
	Reason     string `json:"reason"`
	Reference  string `json:"reference"`
}

// AlternativePlan is a named, confidence scored bundle of lines offered
// alongside the primary plan. It never takes part in rule matching.
type AlternativePlan struct {
	Name        string `json:"plan_name"`
	Description string `json:"description,omitempty"`
	Confidence  int    `json:"confidence"`
	Rule        string `json:"rule"`
	Lines       []Line `json:"allocations"`
}

// Condition is a predicate on the declared profile and goal.
type Condition func(p UserProfile, g InvestmentGoal) bool

// Rule is one piece of authored financial planning policy.
//
// When the rule fires, every line in Allocate is asserted as a primary
// Allocation with the rule's confidence, every Alternatives plan is appended
// to the session, and one FiredRule is recorded.
type Rule struct {
	ID          string // e.g. "Rule 2A"
	Name        string
	Priority    int // higher fires first
	Confidence  int
	Description string
	Condition   string // human readable When
	Action      string // human readable Allocate

	// Guarded rules only fire while no Allocation exists.
	Guarded bool
	When    Condition

	Allocate     []Line
	Alternatives []AlternativePlan
}

// Catalog is an immutable, ordered list of rules.
type Catalog struct {
	rules   []Rule
	ordered []Rule
}

// NewCatalog validates the rules and freezes their declaration order.
func NewCatalog(rules ...Rule) (*Catalog, error) {
	var errs []error
	seen := make(map[string]bool, len(rules))
	for _, r := range rules {
		if r.ID == "" {
			errs = append(errs, fmt.Errorf("rule %q has no id", r.Name))
		}
		if seen[r.ID] {
			errs = append(errs, fmt.Errorf("duplicate rule id %q", r.ID))
		}
		seen[r.ID] = true
		if r.When == nil {
			errs = append(errs, fmt.Errorf("%s has no condition", r.ID))
		}
		if len(r.Allocate) == 0 {
			errs = append(errs, fmt.Errorf("%s allocates nothing", r.ID))
		}
		if err := checkLines(r.Allocate); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", r.ID, err))
		}
		for _, alt := range r.Alternatives {
			if err := checkLines(alt.Lines); err != nil {
				errs = append(errs, fmt.Errorf("%s %q: %w", r.ID, alt.Name, err))
			}
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	c := &Catalog{rules: slices.Clone(rules)}
	c.ordered = slices.Clone(rules)
	// stable: ties keep declaration order, earlier declared fires first.
	sort.SliceStable(c.ordered, func(i, j int) bool {
		return c.ordered[i].Priority > c.ordered[j].Priority
	})
	return c, nil
}

// checkLines verifies that percents are in (0, 100] and sum to 100.
func checkLines(lines []Line) error {
	total := 0
	for _, l := range lines {
		if l.Percent <= 0 || l.Percent > 100 {
			return fmt.Errorf("%s percent %d out of (0, 100]", l.AssetClass, l.Percent)
		}
		total += l.Percent
	}
	if len(lines) > 0 && total != 100 {
		return fmt.Errorf("lines sum to %d%%, want 100%%", total)
	}
	return nil
}

// Rules returns the rules in declaration order.
func (c *Catalog) Rules() []Rule { return slices.Clone(c.rules) }

// Ordered returns the rules by decreasing priority, ties in declaration order.
func (c *Catalog) Ordered() []Rule { return slices.Clone(c.ordered) }

// Lookup returns the rule with the given id.
func (c *Catalog) Lookup(id string) (Rule, bool) {
	i := slices.IndexFunc(c.rules, func(r Rule) bool { return r.ID == id })
	if i < 0 {
		return Rule{}, false
	}
	return c.rules[i], true
}

// Len returns the number of rules.
func (c *Catalog) Len() int { return len(c.rules) }

// AssetClasses returns the sorted set of asset class IDs the rules refer to.
func (c *Catalog) AssetClasses() []string {
	set := map[string]bool{}
	for _, r := range c.rules {
		for _, l := range r.Allocate {
			set[l.AssetClass] = true
		}
		for _, alt := range r.Alternatives {
			for _, l := range alt.Lines {
				set[l.AssetClass] = true
			}
		}
	}
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Check verifies that every asset class the catalog refers to is known to kb.
func (c *Catalog) Check(kb *KnowledgeBase) error {
	var errs []error
	for _, id := range c.AssetClasses() {
		if _, ok := kb.Lookup(id); !ok {
			errs = append(errs, &DataFaultError{AssetClass: id})
		}
	}
	return errors.Join(errs...)
}
