package agent

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/etnz/rupeelogic"
	"github.com/shopspring/decimal"
)

// Intake fields, in the order the assistant asks for them.
const (
	FieldAge             = "age"
	FieldMonthlyIncome   = "monthly_income"
	FieldMonthlyExpenses = "monthly_expenses"
	FieldCurrentSavings  = "current_savings"
	FieldDebt            = "has_high_interest_debt"
	FieldRiskTolerance   = "risk_tolerance"
	FieldGoalType        = "goal_type"
	FieldTimeHorizon     = "time_horizon"
)

// Fields lists every intake field.
var Fields = []string{
	FieldAge, FieldMonthlyIncome, FieldMonthlyExpenses, FieldCurrentSavings,
	FieldDebt, FieldRiskTolerance, FieldGoalType, FieldTimeHorizon,
}

// Draft is a profile being collected through the conversation. A nil field
// has not been answered yet.
type Draft struct {
	Age                 *int
	MonthlyIncome       *decimal.Decimal
	MonthlyExpenses     *decimal.Decimal
	CurrentSavings      *decimal.Decimal
	HasHighInterestDebt *bool
	RiskTolerance       *rupeelogic.RiskTolerance
	GoalType            *rupeelogic.GoalType
	TimeHorizon         *int

	// Currency of the amounts, the default currency if empty.
	Currency string
}

// Set records the answer to a field. Values come from model function calls,
// so numbers may be float64 or strings.
func (d *Draft) Set(field string, v any) error {
	switch field {
	case FieldAge:
		n, err := toInt(v)
		if err != nil {
			return fmt.Errorf("%s: %w", field, err)
		}
		d.Age = &n
	case FieldMonthlyIncome:
		return d.setAmount(&d.MonthlyIncome, field, v)
	case FieldMonthlyExpenses:
		return d.setAmount(&d.MonthlyExpenses, field, v)
	case FieldCurrentSavings:
		return d.setAmount(&d.CurrentSavings, field, v)
	case FieldDebt:
		b, err := toBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", field, err)
		}
		d.HasHighInterestDebt = &b
	case FieldRiskTolerance:
		r, err := rupeelogic.ParseRiskTolerance(fmt.Sprint(v))
		if err != nil {
			return err
		}
		d.RiskTolerance = &r
	case FieldGoalType:
		g, err := rupeelogic.ParseGoalType(fmt.Sprint(v))
		if err != nil {
			return err
		}
		d.GoalType = &g
	case FieldTimeHorizon:
		var years int
		var err error
		if s, ok := v.(string); ok {
			years, err = rupeelogic.ParseHorizon(s)
		} else {
			years, err = toInt(v)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", field, err)
		}
		d.TimeHorizon = &years
	default:
		return fmt.Errorf("unknown field %q", field)
	}
	return nil
}

func (d *Draft) setAmount(dst **decimal.Decimal, field string, v any) error {
	var amount decimal.Decimal
	switch v := v.(type) {
	case float64:
		amount = decimal.NewFromFloat(v)
	case int:
		amount = decimal.NewFromInt(int64(v))
	case string:
		// tolerate "LKR 150,000" and "150000"
		s := strings.TrimSpace(strings.ReplaceAll(v, ",", ""))
		s = strings.TrimSpace(strings.TrimPrefix(strings.ToUpper(s), d.currency()))
		var err error
		if amount, err = decimal.NewFromString(s); err != nil {
			return fmt.Errorf("%s: invalid amount %q", field, v)
		}
	default:
		return fmt.Errorf("%s: invalid type %T, expected a number", field, v)
	}
	*dst = &amount
	return nil
}

// Merge copies the answered fields of o into d.
func (d *Draft) Merge(o *Draft) {
	if o.Age != nil {
		d.Age = o.Age
	}
	if o.MonthlyIncome != nil {
		d.MonthlyIncome = o.MonthlyIncome
	}
	if o.MonthlyExpenses != nil {
		d.MonthlyExpenses = o.MonthlyExpenses
	}
	if o.CurrentSavings != nil {
		d.CurrentSavings = o.CurrentSavings
	}
	if o.HasHighInterestDebt != nil {
		d.HasHighInterestDebt = o.HasHighInterestDebt
	}
	if o.RiskTolerance != nil {
		d.RiskTolerance = o.RiskTolerance
	}
	if o.GoalType != nil {
		d.GoalType = o.GoalType
	}
	if o.TimeHorizon != nil {
		d.TimeHorizon = o.TimeHorizon
	}
}

// Clear forgets the answer to a field.
func (d *Draft) Clear(field string) {
	switch field {
	case FieldAge:
		d.Age = nil
	case FieldMonthlyIncome:
		d.MonthlyIncome = nil
	case FieldMonthlyExpenses:
		d.MonthlyExpenses = nil
	case FieldCurrentSavings:
		d.CurrentSavings = nil
	case FieldDebt:
		d.HasHighInterestDebt = nil
	case FieldRiskTolerance:
		d.RiskTolerance = nil
	case FieldGoalType:
		d.GoalType = nil
	case FieldTimeHorizon:
		d.TimeHorizon = nil
	}
}

// Missing returns the fields not answered yet, in asking order.
func (d *Draft) Missing() []string {
	set := map[string]bool{
		FieldAge:             d.Age != nil,
		FieldMonthlyIncome:   d.MonthlyIncome != nil,
		FieldMonthlyExpenses: d.MonthlyExpenses != nil,
		FieldCurrentSavings:  d.CurrentSavings != nil,
		FieldDebt:            d.HasHighInterestDebt != nil,
		FieldRiskTolerance:   d.RiskTolerance != nil,
		FieldGoalType:        d.GoalType != nil,
		FieldTimeHorizon:     d.TimeHorizon != nil,
	}
	var missing []string
	for _, f := range Fields {
		if !set[f] {
			missing = append(missing, f)
		}
	}
	return missing
}

// Complete reports whether every field is answered.
func (d *Draft) Complete() bool { return len(d.Missing()) == 0 }

// Profile returns the collected profile and goal. It does not validate them,
// the engine does.
func (d *Draft) Profile() (rupeelogic.UserProfile, rupeelogic.InvestmentGoal, error) {
	if missing := d.Missing(); len(missing) > 0 {
		return rupeelogic.UserProfile{}, rupeelogic.InvestmentGoal{}, fmt.Errorf("profile incomplete, missing %s", strings.Join(missing, ", "))
	}
	cur := d.currency()
	p := rupeelogic.UserProfile{
		Age:                 *d.Age,
		MonthlyIncome:       rupeelogic.M(*d.MonthlyIncome, cur),
		MonthlyExpenses:     rupeelogic.M(*d.MonthlyExpenses, cur),
		CurrentSavings:      rupeelogic.M(*d.CurrentSavings, cur),
		HasHighInterestDebt: *d.HasHighInterestDebt,
		RiskTolerance:       *d.RiskTolerance,
	}
	g := rupeelogic.InvestmentGoal{Type: *d.GoalType, Horizon: *d.TimeHorizon}
	return p, g, nil
}

func (d *Draft) currency() string {
	if d.Currency == "" {
		return rupeelogic.DefaultCurrency
	}
	return strings.ToUpper(d.Currency)
}

func toInt(v any) (int, error) {
	switch v := v.(type) {
	case int:
		return v, nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("%v is not a whole number", v)
		}
		return int(v), nil
	case string:
		return strconv.Atoi(strings.TrimSpace(v))
	}
	return 0, fmt.Errorf("invalid type %T, expected a number", v)
}

var errNotBool = errors.New("expected yes or no")

func toBool(v any) (bool, error) {
	switch v := v.(type) {
	case bool:
		return v, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "yes", "y", "true":
			return true, nil
		case "no", "n", "false":
			return false, nil
		}
	}
	return false, errNotBool
}
