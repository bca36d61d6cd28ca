package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/etnz/rupeelogic"
)

// request is the JSON form of an advice request: the profile fields and the
// goal, side by side.
//
//	{"age": 30, "monthly_income": 150000, "monthly_expenses": 60000,
//	 "current_savings": 1000000, "has_high_interest_debt": false,
//	 "risk_tolerance": "High", "goal_type": "Home Purchase", "time_horizon": "short"}
type request struct {
	rupeelogic.UserProfile
	GoalType    string  `json:"goal_type"`
	TimeHorizon horizon `json:"time_horizon"`
}

// horizon is a number of years or a horizon bucket name.
type horizon int

func (h *horizon) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*h = horizon(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("time_horizon must be a number or a string, got %s", data)
	}
	years, err := rupeelogic.ParseHorizon(s)
	if err != nil {
		return err
	}
	*h = horizon(years)
	return nil
}

// parse normalizes the enumerations, which are accepted in any case.
func (r request) parse() (rupeelogic.UserProfile, rupeelogic.InvestmentGoal, error) {
	p := r.UserProfile
	risk, err := rupeelogic.ParseRiskTolerance(string(p.RiskTolerance))
	if err != nil {
		return p, rupeelogic.InvestmentGoal{}, err
	}
	p.RiskTolerance = risk
	goal, err := rupeelogic.ParseGoalType(r.GoalType)
	if err != nil {
		return p, rupeelogic.InvestmentGoal{}, err
	}
	return p, rupeelogic.InvestmentGoal{Type: goal, Horizon: int(r.TimeHorizon)}, nil
}

// decodeRequest reads one request from a file, "-" being stdin.
func decodeRequest(path string) (request, error) {
	var rd io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return request{}, err
		}
		defer f.Close()
		rd = f
	}
	var req request
	dec := json.NewDecoder(rd)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return request{}, fmt.Errorf("decoding %s: %w", path, err)
	}
	return req, nil
}
