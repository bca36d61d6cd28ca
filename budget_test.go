package rupeelogic

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestRecommendation_Budget(t *testing.T) {
	rec, err := NewEngine(nil, nil).Advise(profile(30, 100000, 60000, 100000, false, RiskModerate), goal(GoalWealthBuilding, 8))
	if err != nil {
		t.Fatalf("Advise() failed: %v", err)
	}
	b := rec.Budget()

	for _, tc := range []struct {
		name      string
		got, want Money
	}{
		{"Savings", b.Savings, LKR(100000)},
		{"Monthly", b.Monthly, LKR(40000)},
		{"FirstYear", b.FirstYear, LKR(580000)},
		{"EmergencyTarget", b.EmergencyTarget, LKR(360000)},
	} {
		if !tc.got.Equal(tc.want) {
			t.Errorf("Budget().%s = %v, want %v", tc.name, tc.got, tc.want)
		}
	}
	for _, tc := range []struct {
		name      string
		got, want decimal.Decimal
	}{
		{"EmergencyCoverage", b.EmergencyCoverage, dec("27.8")},
		// savings 2-4% and money market 7-8%, half each.
		{"ReturnLow", b.ReturnLow, dec("4.5")},
		{"ReturnHigh", b.ReturnHigh, dec("6")},
	} {
		if !tc.got.Equal(tc.want) {
			t.Errorf("Budget().%s = %v, want %v", tc.name, tc.got, tc.want)
		}
	}

	if got, want := len(b.Lines), 2; got != want {
		t.Fatalf("len(Budget().Lines) = %d, want %d", got, want)
	}
	l := b.Lines[0]
	if l.AssetClass != "savings_account" || l.Name != "Savings Account" {
		t.Errorf("Lines[0] = %s (%s), want savings_account", l.AssetClass, l.Name)
	}
	if !l.FromSavings.Equal(LKR(50000)) || !l.Monthly.Equal(LKR(20000)) {
		t.Errorf("Lines[0] = %v from savings, %v monthly, want 50000 and 20000", l.FromSavings, l.Monthly)
	}
}

func TestRecommendation_BudgetDeficit(t *testing.T) {
	rec, err := NewEngine(nil, nil).Advise(profile(40, 50000, 60000, 1000000, false, RiskModerate), goal(GoalWealthBuilding, 8))
	if err != nil {
		t.Fatalf("Advise() failed: %v", err)
	}
	b := rec.Budget()
	if !b.Monthly.IsZero() {
		t.Errorf("Budget().Monthly = %v, want 0", b.Monthly)
	}
	if !b.FirstYear.Equal(LKR(1000000)) {
		t.Errorf("Budget().FirstYear = %v, want 1000000", b.FirstYear)
	}
	if !b.EmergencyCoverage.Equal(dec("277.8")) {
		t.Errorf("Budget().EmergencyCoverage = %v, want 277.8", b.EmergencyCoverage)
	}
	if !b.ReturnLow.IsZero() || !b.ReturnHigh.IsZero() {
		t.Errorf("expected return = %v-%v, want 0", b.ReturnLow, b.ReturnHigh)
	}
}

func TestNewBudget_NoExpenses(t *testing.T) {
	b := NewBudget(profile(30, 100000, 0, 0, false, RiskLow), Plan{})
	if !b.EmergencyCoverage.Equal(dec("100")) {
		t.Errorf("EmergencyCoverage = %v, want 100", b.EmergencyCoverage)
	}
}

func TestParseReturnRange(t *testing.T) {
	testCases := []struct {
		in        string
		low, high string
		wantErr   bool
	}{
		{"9-11%", "9", "11", false},
		{"10%", "10", "10", false},
		{"2.5 - 4 %", "2.5", "4", false},
		{"0%", "0", "0", false},
		{"high", "", "", true},
		{"", "", "", true},
	}
	for _, tc := range testCases {
		low, high, err := ParseReturnRange(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseReturnRange(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if tc.wantErr {
			continue
		}
		if !low.Equal(dec(tc.low)) || !high.Equal(dec(tc.high)) {
			t.Errorf("ParseReturnRange(%q) = %v, %v, want %s, %s", tc.in, low, high, tc.low, tc.high)
		}
	}
}

func TestNewBudget_MixedCurrencies(t *testing.T) {
	// bare amounts take the currency of the explicit ones.
	p := UserProfile{
		Age:             40,
		MonthlyIncome:   M(50000, ""),
		MonthlyExpenses: M(60000, ""),
		CurrentSavings:  M(1000000, "USD"),
		RiskTolerance:   RiskModerate,
	}
	rec, err := NewEngine(nil, nil).Advise(p, goal(GoalRetirement, 20))
	if err != nil {
		t.Fatalf("Advise() failed: %v", err)
	}
	if got, want := firedIDs(rec), []string{"Rule 2A"}; len(got) != 1 || got[0] != want[0] {
		t.Fatalf("fired %q, want %q", got, want)
	}

	b := rec.Budget()
	if !b.Monthly.IsZero() {
		t.Errorf("Budget().Monthly = %v, want 0", b.Monthly)
	}
	if got, want := b.FirstYear, M(1000000, "USD"); !got.Equal(want) || got.Currency() != "USD" {
		t.Errorf("Budget().FirstYear = %v %s, want %v USD", got, got.Currency(), want)
	}
	for _, l := range b.Lines {
		if !l.Monthly.IsZero() {
			t.Errorf("line %s: Monthly = %v, want 0", l.AssetClass, l.Monthly)
		}
	}
}
