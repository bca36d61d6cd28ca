package cmd

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/etnz/rupeelogic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunBatch(t *testing.T) {
	requests := []string{
		// emergency fund
		`{"age": 30, "monthly_income": 100000, "monthly_expenses": 60000, "current_savings": 100000, "risk_tolerance": "Moderate", "goal_type": "Wealth Building", "time_horizon": 8}`,
		`{"age": 12, "monthly_income": 100000, "monthly_expenses": 60000, "current_savings": 100000, "risk_tolerance": "Moderate", "goal_type": "Wealth Building", "time_horizon": 8}`,
		``,
		// debt
		`{"age": 35, "monthly_income": 100000, "monthly_expenses": 50000, "current_savings": 1000000, "has_high_interest_debt": true, "risk_tolerance": "Low", "goal_type": "Retirement", "time_horizon": 20}`,
		`not json`,
		homeBuyer,
	}
	// repeat to exercise the ordering with more requests than workers.
	var in []string
	for range 5 {
		in = append(in, requests...)
	}

	var out bytes.Buffer
	e := rupeelogic.NewEngine(nil, nil)
	failed, err := runBatch(context.Background(), e, strings.NewReader(strings.Join(in, "\n")), &out, 3)
	require.NoError(t, err)
	assert.Equal(t, 10, failed)

	var got []result
	sc := bufio.NewScanner(&out)
	sc.Buffer(make([]byte, 1024*1024), 1024*1024)
	for sc.Scan() {
		var r result
		require.NoError(t, json.Unmarshal(sc.Bytes(), &r))
		got = append(got, r)
	}
	require.Len(t, got, 25)

	for i, r := range got {
		block, pos := i/5, i%5
		wantLine := block*len(requests) + []int{1, 2, 4, 5, 6}[pos]
		assert.Equal(t, wantLine, r.Line, "result %d", i)
		switch pos {
		case 0:
			require.NotNil(t, r.Recommendation)
			assert.Equal(t, "Rule 1", r.Recommendation.Primary.Rule)
		case 1:
			assert.Contains(t, r.Error, "invalid age")
		case 2:
			require.NotNil(t, r.Recommendation)
			assert.True(t, r.Recommendation.DebtFirst())
		case 3:
			assert.NotEmpty(t, r.Error)
		case 4:
			require.NotNil(t, r.Recommendation)
			assert.Equal(t, "Rule 3", r.Recommendation.Primary.Rule)
		}
	}
}

func TestRunBatch_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	_, err := runBatch(ctx, rupeelogic.NewEngine(nil, nil), strings.NewReader(homeBuyer), &out, 1)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, out.Len())
}
