package rupeelogic

import (
	"fmt"
	"strconv"
	"strings"
)

// RiskTolerance is how comfortable the user is with market fluctuations.
type RiskTolerance string

const (
	RiskLow      RiskTolerance = "Low"
	RiskModerate RiskTolerance = "Moderate"
	RiskHigh     RiskTolerance = "High"
)

// RiskTolerances lists the valid risk tolerances, in increasing order.
var RiskTolerances = []RiskTolerance{RiskLow, RiskModerate, RiskHigh}

// ParseRiskTolerance is case insensitive.
func ParseRiskTolerance(s string) (RiskTolerance, error) {
	for _, r := range RiskTolerances {
		if strings.EqualFold(strings.TrimSpace(s), string(r)) {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown risk tolerance %q, expected one of Low, Moderate, High", s)
}

// GoalType is the user's primary investment goal.
type GoalType string

const (
	GoalWealthBuilding GoalType = "Wealth Building"
	GoalRetirement     GoalType = "Retirement"
	GoalChildEducation GoalType = "Child Education"
	GoalHomePurchase   GoalType = "Home Purchase"
	GoalEmergencyFund  GoalType = "Emergency Fund"
)

// GoalTypes lists the valid goals in the order the intake form presents them.
var GoalTypes = []GoalType{GoalWealthBuilding, GoalRetirement, GoalChildEducation, GoalHomePurchase, GoalEmergencyFund}

// ParseGoalType accepts the display name in any case, with '-' or '_' in
// place of spaces ("home-purchase", "CHILD_EDUCATION").
func ParseGoalType(s string) (GoalType, error) {
	norm := strings.NewReplacer("-", " ", "_", " ").Replace(strings.TrimSpace(s))
	for _, g := range GoalTypes {
		if strings.EqualFold(norm, string(g)) {
			return g, nil
		}
	}
	return "", fmt.Errorf("unknown goal %q", s)
}

// UserProfile holds the financial situation of the user.
//
// It is declared exactly once per session and never changes afterward.
type UserProfile struct {
	Age                 int           `json:"age"`
	MonthlyIncome       Money         `json:"monthly_income"`
	MonthlyExpenses     Money         `json:"monthly_expenses"`
	CurrentSavings      Money         `json:"current_savings"`
	HasHighInterestDebt bool          `json:"has_high_interest_debt"`
	RiskTolerance       RiskTolerance `json:"risk_tolerance"`
}

// MonthlySurplus is income minus expenses, possibly negative.
func (p UserProfile) MonthlySurplus() Money { return p.MonthlyIncome.Sub(p.MonthlyExpenses) }

// EmergencyFundTarget is six months of expenses.
func (p UserProfile) EmergencyFundTarget() Money { return p.MonthlyExpenses.Times(6) }

// InvestmentGoal holds the user's goal and its time horizon in years.
type InvestmentGoal struct {
	Type    GoalType `json:"goal_type"`
	Horizon int      `json:"time_horizon"`
}

// horizon buckets offered by the intake form, mapped to a representative year count.
var horizonBuckets = map[string]int{
	"short":     2,
	"medium":    4,
	"long":      8,
	"very-long": 15,
}

// ParseHorizon reads a time horizon either as a number of years or as one of
// the form buckets: short (1-2 years), medium (3-5), long (6-10) and
// very-long (more than 10).
func ParseHorizon(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if years, ok := horizonBuckets[s]; ok {
		return years, nil
	}
	s = strings.TrimSuffix(strings.TrimSuffix(s, "years"), "y")
	years, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid time horizon %q: use a number of years or short, medium, long, very-long", s)
	}
	return years, nil
}
