package rupeelogic

import "slices"

// FiredRule records the firing of one rule, in the order rules fired.
type FiredRule struct {
	ID          string `json:"rule_id"`
	Name        string `json:"rule_name"`
	Priority    int    `json:"priority"`
	Confidence  int    `json:"confidence"`
	Description string `json:"description"`
	Condition   string `json:"condition"`
	Action      string `json:"action"`
}

func firedRule(r Rule) FiredRule {
	return FiredRule{
		ID:          r.ID,
		Name:        r.Name,
		Priority:    r.Priority,
		Confidence:  r.Confidence,
		Description: r.Description,
		Condition:   r.Condition,
		Action:      r.Action,
	}
}

// Trail is the append-only explanation log of a session.
type Trail struct {
	records []FiredRule
}

func (t *Trail) append(r FiredRule) { t.records = append(t.records, r) }

// Records returns a copy of the fired rules in firing order.
func (t *Trail) Records() []FiredRule { return slices.Clone(t.records) }

// Len returns the number of fired rules.
func (t *Trail) Len() int { return len(t.records) }

// Fired reports whether the rule id has fired.
func (t *Trail) Fired(id string) bool {
	return slices.ContainsFunc(t.records, func(r FiredRule) bool { return r.ID == id })
}
