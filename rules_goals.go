package rupeelogic

// Goal and situation specific rules, plus the default. All guarded.

var ruleEducationPlanning = Rule{
	ID:          "Rule 11",
	Name:        "Education Planning",
	Priority:    58,
	Confidence:  79,
	Description: "Balanced growth for education savings (5-10 years)",
	Condition:   "Goal = Child Education AND Time Horizon 5-10 years",
	Action:      "Allocate 65% balanced/equity funds + 35% fixed income",
	Guarded:     true,
	When: func(_ UserProfile, g InvestmentGoal) bool {
		return g.Type == GoalChildEducation && 5 <= g.Horizon && g.Horizon < 10
	},
	Allocate: []Line{
		{"balanced_unit_trusts", 40,
			"Balanced growth to beat education inflation (8-10% annually) while managing risk.",
			"Education costs in Sri Lanka rising 8-10% annually - need equity exposure"},
		{"equity_unit_trusts", 25,
			"Equity component for growth over medium-term education timeline.",
			"5-10 year horizon allows for equity market participation"},
		{"income_unit_trusts", 20,
			"Fixed income for stability as education date approaches.",
			"Bond funds provide stable returns: 9-11% p.a."},
		{"fixed_deposits", 15,
			"Guaranteed component to ensure minimum fund availability.",
			"FDs ensure guaranteed funds for education expenses"},
	},
	Alternatives: []AlternativePlan{
		{
			Name:        "Alternative Plan 1: Higher Growth",
			Description: "More equity to beat education inflation",
			Confidence:  73,
			Lines: []Line{
				{"equity_unit_trusts", 35, "Higher equity for inflation-beating returns.", "Education costs rise 8-10% annually"},
				{"balanced_unit_trusts", 35, "Balanced growth with stability.", "Professional management"},
				{"income_unit_trusts", 20, "Fixed income component.", "9-11% stable returns"},
				{"money_market_funds", 10, "Liquidity for education needs.", "Quick access when needed"},
			},
		},
	},
}

var ruleHomePurchase = Rule{
	ID:          "Rule 12",
	Name:        "Home Purchase Planning",
	Priority:    57,
	Confidence:  81,
	Description: "Conservative allocation for home down payment (3-7 years)",
	Condition:   "Goal = Home Purchase AND Time Horizon 3-7 years",
	Action:      "Allocate 60% fixed income (FDs, bonds) + 40% balanced/equity",
	Guarded:     true,
	When: func(_ UserProfile, g InvestmentGoal) bool {
		return g.Type == GoalHomePurchase && 3 <= g.Horizon && g.Horizon < 7
	},
	Allocate: []Line{
		{"fixed_deposits", 40,
			"Guaranteed capital for home down payment - cannot risk market volatility.",
			"Down payment funds need capital guarantee: FDs 9-11% p.a."},
		{"balanced_unit_trusts", 30,
			"Moderate growth to accumulate larger down payment while managing risk.",
			"Balanced funds provide 12-15% growth potential"},
		{"income_unit_trusts", 20,
			"Stable bond returns to supplement fixed deposits.",
			"Bond funds: 9-11% returns with lower risk than equities"},
		{"money_market_funds", 10,
			"Liquidity for quick access when property opportunity arises.",
			"Money market funds provide instant liquidity"},
	},
}

var ruleYoungProfessional = Rule{
	ID:          "Rule 14",
	Name:        "Young Professional Wealth Building",
	Priority:    68,
	Confidence:  80,
	Description: "Balanced growth strategy for young professionals",
	Condition:   "Age 25-35 AND Moderate Risk AND Wealth Building goal (6+ years)",
	Action:      "Primary: 65% equity + 35% bonds",
	Guarded:     true,
	When: func(p UserProfile, g InvestmentGoal) bool {
		return 25 <= p.Age && p.Age < 35 && p.RiskTolerance == RiskModerate &&
			g.Type == GoalWealthBuilding && g.Horizon >= 6
	},
	Allocate: []Line{
		{"balanced_unit_trusts", 40,
			"Professional management with automatic rebalancing between stocks (50%) and bonds (50%).",
			"NDB Balanced Fund, CAL Growth & Income - average 12-15% returns - https://www.cse.lk"},
		{"equity_unit_trusts", 25,
			"Additional equity exposure for long-term growth potential.",
			"Equity funds average 15-20% returns over 10 years"},
		{"income_unit_trusts", 20,
			"Fixed income stability during market volatility.",
			"Bond funds provide 9-11% stable returns"},
		{"money_market_funds", 15,
			"Liquidity buffer for opportunities and emergencies.",
			"Money market funds: 7-8% with T+1 liquidity"},
	},
	Alternatives: []AlternativePlan{
		{
			Name:       "Alternative Plan 1: Growth-Focused",
			Confidence: 70,
			Lines: []Line{
				{"equity_unit_trusts", 45, "Maximum equity exposure through professional management.", "Suitable if comfortable with short-term volatility"},
				{"cse_blue_chip_stocks", 20, "Direct stock ownership in established companies.", "JKH, COMB, Dialog - dividend + growth"},
				{"balanced_unit_trusts", 25, "Core balanced allocation for stability.", "Automatic rebalancing feature"},
				{"money_market_funds", 10, "Minimal cash buffer.", "7-8% liquid returns"},
			},
		},
		{
			Name:       "Alternative Plan 2: Stability-Focused",
			Confidence: 75,
			Lines: []Line{
				{"balanced_unit_trusts", 50, "Higher balanced fund allocation for auto-diversification.", "Set-and-forget approach"},
				{"income_unit_trusts", 30, "Increased fixed income for lower volatility.", "Bond funds 9-11% stable"},
				{"equity_unit_trusts", 15, "Modest equity exposure for growth.", "Reduced market risk"},
				{"money_market_funds", 5, "Emergency liquidity.", "Instant access funds"},
			},
		},
	},
}

var ruleHighIncome = Rule{
	ID:          "Rule 15",
	Name:        "High-Income Professional Portfolio",
	Priority:    66,
	Confidence:  82,
	Description: "Diversified growth for high earners",
	Condition:   "Age 35-45 AND Monthly income ≥ LKR 200,000 AND Time horizon ≥ 7 years",
	Action:      "Primary: Diversified across multiple asset classes",
	Guarded:     true,
	When: func(p UserProfile, g InvestmentGoal) bool {
		return 35 <= p.Age && p.Age < 45 && p.MonthlyIncome.Gte(200000) && g.Horizon >= 7
	},
	Allocate: []Line{
		{"equity_unit_trusts", 30,
			"Core equity allocation managed by professionals.",
			"Diversification across CSE sectors - https://www.cse.lk"},
		{"cse_blue_chip_stocks", 20,
			"Direct ownership of premium Sri Lankan companies.",
			"Blue chips: JKH, COMB, Dialog, Hemas"},
		{"balanced_unit_trusts", 20,
			"Balanced component for automatic rebalancing.",
			"50-50 equity-debt mix"},
		{"government_bonds", 15,
			"Sovereign guarantee with attractive yields.",
			"SLDB 11-13% annual returns"},
		{"income_unit_trusts", 10,
			"Fixed income stability.",
			"Bond funds 9-11%"},
		{"money_market_funds", 5,
			"Liquidity for opportunities.",
			"7-8% returns, instant access"},
	},
	Alternatives: []AlternativePlan{
		{
			Name:       "Alternative Plan 1: Property-Oriented",
			Confidence: 72,
			Lines: []Line{
				{"real_estate", 40, "Real estate as primary wealth builder.", "Colombo property appreciation 8-12% annually"},
				{"equity_unit_trusts", 25, "Equity growth component.", "Stock market exposure"},
				{"balanced_unit_trusts", 20, "Liquid balanced allocation.", "Easy to liquidate if needed"},
				{"money_market_funds", 15, "Cash buffer for property deals.", "Quick access to capital"},
			},
		},
	},
}

var ruleBeginnerInvestor = Rule{
	ID:          "Rule 16",
	Name:        "Beginner Investor Portfolio",
	Priority:    64,
	Confidence:  85,
	Description: "Simple, low-cost portfolio for beginners",
	Condition:   "Age < 30 AND Savings < LKR 100,000 AND Wealth Building goal",
	Action:      "Primary: Start with unit trusts for diversification",
	Guarded:     true,
	When: func(p UserProfile, g InvestmentGoal) bool {
		return p.Age < 30 && p.CurrentSavings.Lt(100000) && g.Type == GoalWealthBuilding
	},
	Allocate: []Line{
		{"balanced_unit_trusts", 60,
			"Best starter investment - instant diversification with professional management. Low minimum investment.",
			"Most balanced funds accept minimum LKR 5,000 - NDB, CAL, Softlogic"},
		{"money_market_funds", 30,
			"Build emergency fund while earning better than savings account returns.",
			"7-8% returns with same-day liquidity"},
		{"savings_account", 10,
			"Instant access cash for true emergencies.",
			"Maintain 1 month expenses liquid"},
	},
	Alternatives: []AlternativePlan{
		{
			Name:       "Alternative Plan 1: Learn & Grow",
			Confidence: 70,
			Lines: []Line{
				{"equity_unit_trusts", 50, "Learn equity investing through fund managers.", "Higher growth potential for young investors"},
				{"balanced_unit_trusts", 30, "Core diversified holding.", "Automatic rebalancing"},
				{"money_market_funds", 20, "Safety net while learning.", "Reduce risk while gaining experience"},
			},
		},
	},
}

var rulePreRetirementPlanning = Rule{
	ID:          "Rule 17",
	Name:        "Pre-Retirement Accumulation",
	Priority:    72,
	Confidence:  83,
	Description: "Balanced growth with gradual shift to income",
	Condition:   "Age 45-55 AND Moderate Risk AND Retirement goal (10-15 years)",
	Action:      "Primary: 50% equity + 50% fixed income",
	Guarded:     true,
	When: func(p UserProfile, g InvestmentGoal) bool {
		return 45 <= p.Age && p.Age < 55 && p.RiskTolerance == RiskModerate &&
			g.Type == GoalRetirement && 10 <= g.Horizon && g.Horizon < 15
	},
	Allocate: []Line{
		{"balanced_unit_trusts", 35,
			"Core balanced allocation for auto-diversification as you approach retirement.",
			"Ideal for pre-retirement phase"},
		{"equity_unit_trusts", 20,
			"Continued equity exposure for growth, but measured.",
			"Still 10-15 years to ride out volatility"},
		{"income_unit_trusts", 20,
			"Building fixed income base for retirement income.",
			"Bond funds 9-11% annual returns"},
		{"government_bonds", 15,
			"Sovereign guaranteed returns as safety anchor.",
			"SLDB provides 11-13% secure returns"},
		{"money_market_funds", 10,
			"Liquidity as you approach retirement.",
			"7-8% with instant access"},
	},
	Alternatives: []AlternativePlan{
		{
			Name:       "Alternative Plan 1: Income-Oriented",
			Confidence: 75,
			Lines: []Line{
				{"income_unit_trusts", 35, "Maximum income generation focus.", "Building retirement income stream"},
				{"government_bonds", 25, "Government guaranteed returns.", "11-13% sovereign bonds"},
				{"balanced_unit_trusts", 25, "Some growth potential.", "Balanced approach"},
				{"fixed_deposits", 15, "Capital preservation increasing.", "9-11% guaranteed returns"},
			},
		},
		{
			Name:       "Alternative Plan 2: Extended Growth",
			Confidence: 68,
			Lines: []Line{
				{"equity_unit_trusts", 40, "Higher equity if retirement well-funded.", "Maximize growth if on track"},
				{"balanced_unit_trusts", 30, "Balanced core.", "Automatic rebalancing"},
				{"income_unit_trusts", 20, "Income component.", "Stable returns"},
				{"money_market_funds", 10, "Liquidity buffer.", "Emergency access"},
			},
		},
	},
}

var ruleHighSavingsRate = Rule{
	ID:          "Rule 18",
	Name:        "High Savings Rate Accelerator",
	Priority:    62,
	Confidence:  80,
	Description: "Aggressive wealth building for high savers",
	Condition:   "Monthly income ≥ LKR 150,000 AND Monthly expenses < LKR 75,000 (50%+ savings rate)",
	Action:      "Primary: Maximize growth with diversification",
	Guarded:     true,
	When: func(p UserProfile, g InvestmentGoal) bool {
		return p.MonthlyIncome.Gte(150000) && p.MonthlyExpenses.Lt(75000) && g.Horizon >= 5
	},
	Allocate: []Line{
		{"equity_unit_trusts", 35,
			"High savings rate allows aggressive equity allocation.",
			"Can weather volatility with continued contributions"},
		{"balanced_unit_trusts", 25,
			"Balanced component for automatic risk management.",
			"Professional rebalancing"},
		{"cse_blue_chip_stocks", 15,
			"Direct stock ownership for dividend income stream.",
			"Blue chip dividends 3-5%"},
		{"income_unit_trusts", 15,
			"Fixed income for stability.",
			"9-11% bond returns"},
		{"money_market_funds", 10,
			"Liquidity to buy market dips.",
			"Keep powder dry for opportunities"},
	},
	Alternatives: []AlternativePlan{
		{
			Name:       "Alternative Plan 1: Financial Independence Path",
			Confidence: 73,
			Lines: []Line{
				{"equity_unit_trusts", 45, "Maximum equity for early retirement goal.", "FIRE movement strategy"},
				{"cse_blue_chip_stocks", 20, "Dividend income for future passive income.", "Building income stream"},
				{"balanced_unit_trusts", 20, "Balanced diversification.", "Risk management"},
				{"income_unit_trusts", 15, "Income component.", "Stability anchor"},
			},
		},
	},
}

var ruleDefault = Rule{
	ID:          "Rule 19",
	Name:        "Default Balanced Portfolio",
	Priority:    -10,
	Confidence:  75,
	Description: "Fallback balanced portfolio when no specific rules match",
	Condition:   "No other rules matched",
	Action:      "Allocate 60% Balanced Funds + 30% Income Funds + 10% Money Market",
	Guarded:     true,
	When:        func(UserProfile, InvestmentGoal) bool { return true },
	Allocate: []Line{
		{"balanced_unit_trusts", 60,
			"Balanced fund is the safest default - automatically maintains diversified portfolio.",
			"Default allocation: Balanced funds suitable for most investors - https://www.investopedia.com/ask/answers/021816/what-difference-between-targeted-and-balanced-mutual-fund.asp"},
		{"income_unit_trusts", 30,
			"Fixed income component for stability.",
			"Bond funds provide stable 9-11% annual returns"},
		{"money_market_funds", 10,
			"Liquidity buffer for emergencies.",
			"Money market funds: 7-8% with high liquidity"},
	},
	Alternatives: []AlternativePlan{
		{
			Name:       "Alternative Plan 1: Conservative Default",
			Confidence: 65,
			Lines: []Line{
				{"balanced_unit_trusts", 50, "Reduced balanced allocation.", "More conservative approach"},
				{"income_unit_trusts", 30, "Same income allocation.", "Stability focus"},
				{"money_market_funds", 15, "Higher liquidity.", "More cash available"},
				{"fixed_deposits", 5, "Small guaranteed component.", "Capital preservation"},
			},
		},
	},
}
