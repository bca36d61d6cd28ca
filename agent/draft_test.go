package agent

import (
	"testing"

	"github.com/etnz/rupeelogic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraft_Set(t *testing.T) {
	testCases := []struct {
		field   string
		value   any
		wantErr bool
	}{
		{FieldAge, 30.0, false},
		{FieldAge, "30", false},
		{FieldAge, 30.5, true},
		{FieldAge, true, true},
		{FieldMonthlyIncome, 150000.0, false},
		{FieldMonthlyIncome, "LKR 150,000", false},
		{FieldMonthlyIncome, "a lot", true},
		{FieldMonthlyExpenses, 60000, false},
		{FieldCurrentSavings, []any{}, true},
		{FieldDebt, false, false},
		{FieldDebt, "yes", false},
		{FieldDebt, "maybe", true},
		{FieldRiskTolerance, "moderate", false},
		{FieldRiskTolerance, "reckless", true},
		{FieldGoalType, "home purchase", false},
		{FieldGoalType, "lottery", true},
		{FieldTimeHorizon, 7.0, false},
		{FieldTimeHorizon, "long", false},
		{FieldTimeHorizon, "forever", true},
		{"salary", 1.0, true},
	}
	for _, tc := range testCases {
		t.Run(tc.field, func(t *testing.T) {
			var d Draft
			err := d.Set(tc.field, tc.value)
			if tc.wantErr {
				assert.Error(t, err, "Set(%q, %v)", tc.field, tc.value)
				assert.Len(t, d.Missing(), len(Fields))
				return
			}
			assert.NoError(t, err, "Set(%q, %v)", tc.field, tc.value)
			assert.NotContains(t, d.Missing(), tc.field)
		})
	}
}

func fill(t *testing.T, d *Draft, answers map[string]any) {
	t.Helper()
	for f, v := range answers {
		require.NoError(t, d.Set(f, v), "Set(%q)", f)
	}
}

func TestDraft_Profile(t *testing.T) {
	var d Draft
	assert.Equal(t, Fields, d.Missing())
	_, _, err := d.Profile()
	assert.ErrorContains(t, err, "missing age")

	fill(t, &d, map[string]any{
		FieldAge:             45.0,
		FieldMonthlyIncome:   100000.0,
		FieldMonthlyExpenses: 50000.0,
		FieldCurrentSavings:  "1,000,000",
		FieldDebt:            false,
		FieldRiskTolerance:   "Moderate",
	})
	assert.Equal(t, []string{FieldGoalType, FieldTimeHorizon}, d.Missing())
	assert.False(t, d.Complete())

	fill(t, &d, map[string]any{FieldGoalType: "retirement", FieldTimeHorizon: "long"})
	require.True(t, d.Complete())

	p, g, err := d.Profile()
	require.NoError(t, err)
	assert.Equal(t, 45, p.Age)
	assert.True(t, p.CurrentSavings.Equal(rupeelogic.LKR(1000000)))
	assert.Equal(t, rupeelogic.DefaultCurrency, p.MonthlyIncome.Currency())
	assert.Equal(t, rupeelogic.RiskModerate, p.RiskTolerance)
	assert.Equal(t, rupeelogic.InvestmentGoal{Type: rupeelogic.GoalRetirement, Horizon: 8}, g)

	d.Clear(FieldAge)
	assert.Equal(t, []string{FieldAge}, d.Missing())
}

func TestDraft_Currency(t *testing.T) {
	d := Draft{Currency: "usd"}
	require.NoError(t, d.Set(FieldMonthlyIncome, "USD 2,500"))
	assert.Equal(t, "2500", d.MonthlyIncome.String())
}

func TestDraft_Merge(t *testing.T) {
	var d, o Draft
	fill(t, &d, map[string]any{FieldAge: 30.0, FieldRiskTolerance: "Low"})
	fill(t, &o, map[string]any{FieldAge: 31.0, FieldGoalType: "retirement"})

	d.Merge(&o)
	require.NotNil(t, d.Age)
	assert.Equal(t, 31, *d.Age)
	assert.Equal(t, rupeelogic.RiskLow, *d.RiskTolerance, "unanswered fields of o keep d's answers")
	assert.Equal(t, rupeelogic.GoalRetirement, *d.GoalType)
}
