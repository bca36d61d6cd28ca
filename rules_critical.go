package rupeelogic

// Critical financial priorities. These rules are not guarded: they fire on the
// profile alone, even when another rule already allocated, so several of them
// can contribute to the same primary plan.

var ruleEmergencyFund = Rule{
	ID:          "Rule 1",
	Name:        "Emergency Fund Priority",
	Priority:    100,
	Confidence:  85,
	Description: "Build 6-month emergency fund before investing",
	Condition:   "Current savings < 6 months of monthly expenses",
	Action:      "Primary Plan: 50% Savings Account + 50% Money Market Funds",
	When: func(p UserProfile, _ InvestmentGoal) bool {
		return p.CurrentSavings.LessThan(p.EmergencyFundTarget())
	},
	Allocate: []Line{
		{"savings_account", 50,
			"Build a 6-month emergency fund first for financial security and unexpected expenses.",
			"Financial planning best practice: 6 months expenses in liquid savings - Dave Ramsey, Total Money Makeover"},
		{"money_market_funds", 50,
			"Higher returns than savings account while maintaining high liquidity for emergencies.",
			"Money market funds provide 7-8% returns vs 2-4% in savings accounts"},
	},
	Alternatives: []AlternativePlan{
		{
			Name:       "Alternative Plan 1: Maximum Liquidity",
			Confidence: 70,
			Lines: []Line{
				{"savings_account", 80,
					"Prioritize immediate access to emergency funds over returns.",
					"Ultra-safe approach for risk-averse individuals"},
				{"money_market_funds", 20,
					"Small allocation for slightly better returns while keeping most in instant-access savings.",
					"Recommended by conservative financial planners"},
			},
		},
		{
			Name:       "Alternative Plan 2: Enhanced Returns",
			Confidence: 65,
			Lines: []Line{
				{"savings_account", 30,
					"Minimum emergency cash for 1-2 months immediate expenses.",
					"Tiered emergency fund approach"},
				{"money_market_funds", 40,
					"Core emergency fund with better returns and T+1 liquidity.",
					"Money market funds average 7-8% in Sri Lanka"},
				{"fixed_deposits", 30,
					"Highest returns (9-11%) with 14-day withdrawal option for portion of emergency fund.",
					"Commercial banks offer FD withdrawals with minimal penalty"},
			},
		},
	},
}

var ruleDebtPayoff = Rule{
	ID:          "Rule 2",
	Name:        "Debt Payoff Priority",
	Priority:    95,
	Confidence:  95,
	Description: "Pay off high-interest debt before investing",
	Condition:   "Has high-interest debt (credit cards, personal loans)",
	Action:      "Recommend 100% debt payment before any investments",
	When: func(p UserProfile, _ InvestmentGoal) bool {
		return p.HasHighInterestDebt
	},
	Allocate: []Line{
		{"debt_payment", 100,
			"Pay off high-interest debt (credit cards: 24-36% p.a.) before investing. No investment consistently beats these rates.",
			"Sri Lankan credit card APR: 24-36% annually - Source: CBSL Financial Reports"},
	},
}

var ruleExpensesExceedIncome = Rule{
	ID:          "Rule 2A",
	Name:        "Expenses Exceed Income - Budget Crisis",
	Priority:    98,
	Confidence:  99,
	Description: "Expenses >= Income - Focus on budgeting first",
	Condition:   "Monthly expenses >= Monthly income",
	Action:      "PRIORITY: Reduce expenses or increase income before investing",
	When: func(p UserProfile, _ InvestmentGoal) bool {
		return p.MonthlyExpenses.GreaterThanOrEqual(p.MonthlyIncome)
	},
	Allocate: []Line{
		{"budget_management", 100,
			"⚠️ CRITICAL: Your monthly expenses equal or exceed your income. You cannot invest sustainably in this situation. Focus on: 1) Reducing discretionary expenses, 2) Increasing income through side hustles or career advancement, 3) Building a basic emergency fund from current savings.",
			"Financial Planning 101: Income must exceed expenses for sustainable investing - Dave Ramsey Total Money Makeover"},
	},
}

var ruleVeryLowInvestable = Rule{
	ID:          "Rule 2B",
	Name:        "Very Low Investable Amount",
	Priority:    97,
	Confidence:  90,
	Description: "Monthly surplus < LKR 10,000 - Build foundation first",
	Condition:   "Monthly investable < 10,000 AND Current savings < 100,000",
	Action:      "100% savings account to build emergency fund",
	When: func(p UserProfile, _ InvestmentGoal) bool {
		surplus := p.MonthlySurplus()
		return surplus.IsPositive() && surplus.Lt(10000) && p.CurrentSavings.Lt(100000)
	},
	Allocate: []Line{
		{"savings_account", 100,
			"With limited monthly surplus (< LKR 10,000) and low savings, focus 100% on building a cash emergency fund first. Most investments require minimum amounts of LKR 10,000-50,000.",
			"Build LKR 100,000+ emergency fund before diversifying - minimum for most unit trusts"},
	},
}
