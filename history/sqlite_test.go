package history

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/etnz/rupeelogic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func advise(t *testing.T, age int, debt bool) *rupeelogic.Recommendation {
	t.Helper()
	p := rupeelogic.UserProfile{
		Age:                 age,
		MonthlyIncome:       rupeelogic.LKR(100000),
		MonthlyExpenses:     rupeelogic.LKR(60000),
		CurrentSavings:      rupeelogic.LKR(100000),
		HasHighInterestDebt: debt,
		RiskTolerance:       rupeelogic.RiskModerate,
	}
	g := rupeelogic.InvestmentGoal{Type: rupeelogic.GoalRetirement, Horizon: 20}
	rec, err := rupeelogic.NewEngine(nil, nil).Advise(p, g)
	require.NoError(t, err)
	return rec
}

func TestSQLiteRecorder(t *testing.T) {
	r, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "sub", "history.db"), nil)
	require.NoError(t, err)
	defer r.Close()

	clock := time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC)
	r.now = func() time.Time { clock = clock.Add(time.Minute); return clock }

	first, err := r.Record(advise(t, 30, false))
	require.NoError(t, err)
	second, err := r.Record(advise(t, 40, true))
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	sessions, err := r.List(10)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, second, sessions[0].ID, "most recent first")
	assert.Equal(t, 40, sessions[0].Profile.Age)
	assert.Equal(t, []string{"Rule 1", "Rule 2"}, sessions[0].Rules)
	assert.Equal(t, []string{"Rule 1"}, sessions[1].Rules)
	assert.Equal(t, rupeelogic.GoalRetirement, sessions[1].Goal.Type)
	assert.True(t, sessions[0].Time.After(sessions[1].Time))

	limited, err := r.List(1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	s, err := r.Get(first[:8])
	require.NoError(t, err)
	assert.Equal(t, first, s.ID)
	rec, err := s.Decode()
	require.NoError(t, err)
	assert.Equal(t, 100, rec.Primary.Total)
	assert.Len(t, rec.Alternatives, 2)
	assert.True(t, rec.Profile.MonthlyIncome.Equal(rupeelogic.LKR(100000)))

	_, err = r.Get("not-an-id")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestNoopRecorder(t *testing.T) {
	var r Recorder = NewNoopRecorder()
	id, err := r.Record(advise(t, 30, false))
	assert.NoError(t, err)
	assert.Empty(t, id)
	sessions, err := r.List(10)
	assert.NoError(t, err)
	assert.Empty(t, sessions)
	_, err = r.Get(id)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, r.Close())
}
