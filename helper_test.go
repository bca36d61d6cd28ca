package rupeelogic

// profile is a helper for tests to build a profile from plain LKR amounts.
func profile(age int, income, expenses, savings int64, debt bool, risk RiskTolerance) UserProfile {
	return UserProfile{
		Age:                 age,
		MonthlyIncome:       LKR(income),
		MonthlyExpenses:     LKR(expenses),
		CurrentSavings:      LKR(savings),
		HasHighInterestDebt: debt,
		RiskTolerance:       risk,
	}
}

// goal is a helper for tests to build a goal.
func goal(t GoalType, years int) InvestmentGoal { return InvestmentGoal{Type: t, Horizon: years} }

// firedIDs returns the IDs of the rules in the recommendation trail.
func firedIDs(rec *Recommendation) []string {
	ids := make([]string, 0, len(rec.Trail))
	for _, r := range rec.Trail {
		ids = append(ids, r.ID)
	}
	return ids
}

// percents returns "asset_class" -> percent for a plan, summing duplicates.
func percents(p Plan) map[string]int {
	m := map[string]int{}
	for _, l := range p.Lines {
		m[l.AssetClass] += l.Percent
	}
	return m
}

// always is a rule condition that always matches.
func always(UserProfile, InvestmentGoal) bool { return true }
