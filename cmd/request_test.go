package cmd

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/rupeelogic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const homeBuyer = `{"age": 30, "monthly_income": 150000, "monthly_expenses": 60000, "current_savings": 1000000, "has_high_interest_debt": false, "risk_tolerance": "high", "goal_type": "home-purchase", "time_horizon": "short"}`

func TestRequest_Parse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "req.json")
	require.NoError(t, os.WriteFile(path, []byte(homeBuyer), 0644))

	req, err := decodeRequest(path)
	require.NoError(t, err)
	p, g, err := req.parse()
	require.NoError(t, err)

	assert.Equal(t, 30, p.Age)
	assert.True(t, p.MonthlyIncome.Equal(rupeelogic.LKR(150000)))
	assert.Equal(t, rupeelogic.RiskHigh, p.RiskTolerance)
	assert.Equal(t, rupeelogic.InvestmentGoal{Type: rupeelogic.GoalHomePurchase, Horizon: 2}, g)
}

func TestRequest_Errors(t *testing.T) {
	dir := t.TempDir()
	testCases := []struct {
		name    string
		content string
		want    string
	}{
		{"unknown field", `{"age": 30, "salary": 1}`, "unknown field"},
		{"bad horizon", `{"time_horizon": "someday"}`, "invalid time horizon"},
		{"bad horizon type", `{"time_horizon": true}`, "time_horizon must be"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tc.name, " ", "_")+".json")
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0644))
			_, err := decodeRequest(path)
			assert.ErrorContains(t, err, tc.want)
		})
	}

	_, _, err := request{GoalType: "Retirement"}.parse()
	assert.ErrorContains(t, err, "unknown risk tolerance")
	_, _, err = request{UserProfile: rupeelogic.UserProfile{RiskTolerance: "low"}, GoalType: "lottery"}.parse()
	assert.ErrorContains(t, err, "unknown goal")
}

func TestAdviseCmd_Request(t *testing.T) {
	path := filepath.Join(t.TempDir(), "req.json")
	require.NoError(t, os.WriteFile(path, []byte(homeBuyer), 0644))

	c := &adviseCmd{}
	f := flag.NewFlagSet("advise", flag.ContinueOnError)
	c.SetFlags(f)
	require.NoError(t, f.Parse([]string{"-f", path, "-age", "45", "-savings", "50000", "-horizon", "12", "-goal", "retirement"}))

	req, err := c.request(f, "LKR")
	require.NoError(t, err)
	p, g, err := req.parse()
	require.NoError(t, err)

	assert.Equal(t, 45, p.Age, "flag overrides the file")
	assert.True(t, p.MonthlyIncome.Equal(rupeelogic.LKR(150000)), "file value kept")
	assert.True(t, p.CurrentSavings.Equal(rupeelogic.LKR(50000)))
	assert.Equal(t, rupeelogic.InvestmentGoal{Type: rupeelogic.GoalRetirement, Horizon: 12}, g)
}

func TestAdviseCmd_BadHorizon(t *testing.T) {
	c := &adviseCmd{}
	f := flag.NewFlagSet("advise", flag.ContinueOnError)
	c.SetFlags(f)
	require.NoError(t, f.Parse([]string{"-horizon", "someday"}))
	_, err := c.request(f, "LKR")
	assert.Error(t, err)
}
