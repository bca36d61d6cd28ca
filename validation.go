package rupeelogic

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrInvalidInput is the root of every input contract violation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDataFault is returned when an allocation names an asset class unknown
	// to the knowledge base.
	ErrDataFault = errors.New("data fault")
)

// InputError reports a missing or out of range profile or goal field.
type InputError struct {
	Field  string
	Value  any
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

func (e *InputError) Unwrap() error { return ErrInvalidInput }

// DataFaultError identifies the asset class that could not be resolved.
type DataFaultError struct {
	AssetClass string
	Rule       string // rule that produced the allocation, if known
}

func (e *DataFaultError) Error() string {
	if e.Rule == "" {
		return fmt.Sprintf("unknown asset class %q", e.AssetClass)
	}
	return fmt.Sprintf("unknown asset class %q allocated by %s", e.AssetClass, e.Rule)
}

func (e *DataFaultError) Unwrap() error { return ErrDataFault }

// Age bounds accepted by the intake surfaces.
const (
	MinAge = 18
	MaxAge = 80
)

// Validate checks the profile against the input contract.
// All violations are joined in the returned error.
func (p UserProfile) Validate() error {
	var errs []error
	if p.Age < MinAge || p.Age > MaxAge {
		errs = append(errs, &InputError{"age", p.Age, fmt.Sprintf("must be between %d and %d", MinAge, MaxAge)})
	}
	for _, f := range []struct {
		name string
		m    Money
	}{
		{"monthly_income", p.MonthlyIncome},
		{"monthly_expenses", p.MonthlyExpenses},
		{"current_savings", p.CurrentSavings},
	} {
		if f.m.IsNegative() {
			errs = append(errs, &InputError{f.name, f.m, "must not be negative"})
		}
	}
	if cur, ok := sameCurrency(p.MonthlyIncome, p.MonthlyExpenses, p.CurrentSavings); !ok {
		errs = append(errs, &InputError{"currency", cur, "amounts must share one currency"})
	}
	if !slices.Contains(RiskTolerances, p.RiskTolerance) {
		errs = append(errs, &InputError{"risk_tolerance", p.RiskTolerance, "must be one of Low, Moderate, High"})
	}
	return errors.Join(errs...)
}

// Validate checks the goal against the input contract.
func (g InvestmentGoal) Validate() error {
	var errs []error
	if !slices.Contains(GoalTypes, g.Type) {
		errs = append(errs, &InputError{"goal_type", g.Type, "must be one of the supported goals"})
	}
	if g.Horizon < 1 {
		errs = append(errs, &InputError{"time_horizon", g.Horizon, "must be a positive number of years"})
	}
	return errors.Join(errs...)
}

// sameCurrency ignores amounts without an explicit currency.
func sameCurrency(ms ...Money) (string, bool) {
	cur := ""
	for _, m := range ms {
		switch {
		case m.cur == "":
		case cur == "":
			cur = m.cur
		case cur != m.cur:
			return m.cur, false
		}
	}
	return cur, true
}

// InputErrors flattens the input errors found in err, in order.
func InputErrors(err error) []*InputError {
	var out []*InputError
	var walk func(error)
	walk = func(err error) {
		switch e := err.(type) {
		case nil:
		case *InputError:
			out = append(out, e)
		case interface{ Unwrap() []error }:
			for _, err := range e.Unwrap() {
				walk(err)
			}
		case interface{ Unwrap() error }:
			walk(e.Unwrap())
		}
	}
	walk(err)
	return out
}
