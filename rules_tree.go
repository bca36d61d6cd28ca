package rupeelogic

// Decision tree by horizon, age and risk tolerance. All these rules are
// guarded: the first one to fire closes the tree for the session.

var ruleShortTermGoal = Rule{
	ID:          "Rule 3",
	Name:        "Short-Term Goal (< 3 years)",
	Priority:    80,
	Confidence:  85,
	Description: "Capital preservation for short-term goals",
	Condition:   "Time horizon less than 3 years",
	Action:      "Allocate 70% Fixed Deposits + 30% Treasury Bills (no equity exposure)",
	Guarded:     true,
	When: func(_ UserProfile, g InvestmentGoal) bool {
		return g.Horizon < 3
	},
	Allocate: []Line{
		{"fixed_deposits", 70,
			"Short-term goal requires guaranteed returns. FDs offer 9-11% p.a. with zero risk.",
			"Average FD rates in Sri Lanka: 9-11% p.a. (Commercial Bank, HNB, Sampath)"},
		{"treasury_bills", 30,
			"Government T-Bills provide secure short-term returns with sovereign guarantee.",
			"T-Bill rates: 10-12% p.a. - Central Bank of Sri Lanka primary auctions"},
	},
	Alternatives: []AlternativePlan{
		{
			Name:        "Alternative Plan 1: 100% Bank Deposits",
			Description: "Maximum safety with bank deposits only",
			Confidence:  78,
			Lines: []Line{
				{"fixed_deposits", 100,
					"All funds in guaranteed fixed deposits for absolute certainty.",
					"Zero risk approach for very conservative short-term goals"},
			},
		},
		{
			Name:        "Alternative Plan 2: Government Securities",
			Description: "Focus on government-backed securities",
			Confidence:  80,
			Lines: []Line{
				{"treasury_bills", 60,
					"Sovereign guarantee with better liquidity than FDs.",
					"T-Bills can be sold in secondary market if needed"},
				{"fixed_deposits", 40,
					"Bank deposits for portion requiring absolute guarantee.",
					"Mix of government and bank securities"},
			},
		},
	},
}

var ruleNearRetirement = Rule{
	ID:          "Rule 4",
	Name:        "Near Retirement Conservative",
	Priority:    75,
	Confidence:  88,
	Description: "Conservative portfolio for near-retirement age",
	Condition:   "Age ≥ 55 years AND Goal = Retirement",
	Action:      "Allocate 90% fixed income (FD, Bonds, Income Funds) + 10% blue chip stocks",
	Guarded:     true,
	When: func(p UserProfile, g InvestmentGoal) bool {
		return p.Age >= 55 && g.Type == GoalRetirement
	},
	Allocate: []Line{
		{"fixed_deposits", 40,
			"Capital preservation is critical near retirement. Guaranteed 9-11% annual returns.",
			"Conservative allocation for age 55+: 70-80% fixed income"},
		{"government_bonds", 30,
			"Long-term government bonds provide stable income with sovereign backing.",
			"Sri Lanka Development Bonds: 11-13% p.a. returns"},
		{"income_unit_trusts", 20,
			"Professional bond fund management with better diversification than individual bonds.",
			"NDB Gilt Edge Fund, CAL Income Fund - typical returns 9-11%"},
		{"cse_blue_chip_stocks", 10,
			"Small equity allocation for inflation protection through dividend-paying blue chips.",
			"Blue chip dividends: JKH, COMB, SAMP provide 3-5% dividend yields"},
	},
	Alternatives: []AlternativePlan{
		{
			Name:        "Alternative Plan 1: Maximum Income",
			Description: "Focus on income generation in retirement",
			Confidence:  80,
			Lines: []Line{
				{"income_unit_trusts", 35, "Maximum income from bond funds.", "Steady monthly income stream"},
				{"government_bonds", 30, "Government securities for stable income.", "11-13% p.a. guaranteed"},
				{"fixed_deposits", 25, "Guaranteed fixed deposits.", "9-11% safe returns"},
				{"cse_blue_chip_stocks", 10, "Dividend income from blue chips.", "3-5% dividend yield"},
			},
		},
	},
}

var ruleAggressiveGrowth = Rule{
	ID:          "Rule 5",
	Name:        "Aggressive Growth Portfolio",
	Priority:    70,
	Confidence:  78,
	Description: "Maximum equity exposure for young risk-takers",
	Condition:   "Age < 35 AND Risk Tolerance = High AND Time Horizon ≥ 10 years",
	Action:      "Allocate 75% equities (35% Equity Funds + 25% Blue Chips + 15% Growth Stocks) + 25% balanced/income",
	Guarded:     true,
	When: func(p UserProfile, g InvestmentGoal) bool {
		return p.Age < 35 && p.RiskTolerance == RiskHigh && g.Horizon >= 10
	},
	Allocate: []Line{
		{"equity_unit_trusts", 35,
			"Professional equity fund management provides diversification across CSE sectors.",
			"NDB Eagle Fund, CAL Equity Fund - historical returns: 15-20% p.a."},
		{"cse_blue_chip_stocks", 25,
			"Direct investment in established companies (JKH, COMB, Dialog) for capital appreciation.",
			"CSE blue chips average return: 18-25% p.a. over 10+ years"},
		{"cse_growth_stocks", 15,
			"High-growth mid-cap stocks offer superior returns for risk-tolerant long-term investors.",
			"Growth stocks (Bairaha, Royal Ceramics): 25-40% potential returns"},
		{"balanced_unit_trusts", 15,
			"Balanced funds provide automatic rebalancing between stocks and bonds.",
			"NDB Balanced Fund, CAL Growth & Income - typical returns: 12-15%"},
		{"income_unit_trusts", 10,
			"Fixed income component for portfolio stability during market downturns.",
			"Bond funds provide 9-11% stable returns as portfolio anchor"},
	},
	Alternatives: []AlternativePlan{
		{
			Name:        "Alternative Plan 1: Ultra-Aggressive Growth",
			Description: "Maximum equity exposure for highest growth potential",
			Confidence:  70,
			Lines: []Line{
				{"cse_growth_stocks", 40, "Maximum growth stock exposure for long-term wealth building.", "High-growth stocks can deliver 30-50% returns"},
				{"equity_unit_trusts", 35, "Professional diversification across sectors.", "Equity funds for broad market exposure"},
				{"cse_blue_chip_stocks", 25, "Blue chips for dividend income and stability.", "Balance growth with quality companies"},
			},
		},
		{
			Name:        "Alternative Plan 2: Balanced Aggression",
			Description: "Aggressive but more diversified approach",
			Confidence:  75,
			Lines: []Line{
				{"equity_unit_trusts", 45, "Core equity through professional management.", "Let experts handle stock selection"},
				{"cse_blue_chip_stocks", 30, "Direct ownership of top companies.", "JKH, COMB, Dialog for long-term"},
				{"balanced_unit_trusts", 15, "Some balanced exposure for automatic rebalancing.", "Reduces need for manual adjustments"},
				{"income_unit_trusts", 10, "Small fixed income cushion.", "Provides stability during crashes"},
			},
		},
	},
}

var ruleGrowthOriented = Rule{
	ID:          "Rule 6",
	Name:        "Growth-Oriented Portfolio",
	Priority:    65,
	Confidence:  76,
	Description: "Equity-focused with moderate stability",
	Condition:   "Age < 40 AND Risk Tolerance = High AND Time Horizon ≥ 7 years",
	Action:      "Allocate 70% equities + 30% bonds/income funds",
	Guarded:     true,
	When: func(p UserProfile, g InvestmentGoal) bool {
		return p.Age < 40 && p.RiskTolerance == RiskHigh && g.Horizon >= 7
	},
	Allocate: []Line{
		{"equity_unit_trusts", 30,
			"Equity funds for diversified growth exposure with professional management.",
			"Equity unit trusts historical performance: 15-20% p.a."},
		{"balanced_unit_trusts", 25,
			"Balanced approach combining growth and stability.",
			"Balanced funds provide 12-15% returns with lower volatility"},
		{"cse_blue_chip_stocks", 20,
			"Direct blue chip holdings for long-term wealth creation.",
			"Blue chip stocks: JKH, Commercial Bank, Hayleys - 18-25% returns"},
		{"income_unit_trusts", 15,
			"Bond component for downside protection and income generation.",
			"Income funds: 9-11% stable returns"},
		{"corporate_bonds", 10,
			"Higher yields than government bonds with acceptable credit risk.",
			"Corporate debentures (DFCC, JKH): 12-14% p.a."},
	},
	Alternatives: []AlternativePlan{
		{
			Name:        "Alternative Plan 1: Enhanced Growth",
			Description: "More equity exposure for higher returns",
			Confidence:  68,
			Lines: []Line{
				{"equity_unit_trusts", 40, "Higher equity allocation for growth.", "Maximize long-term returns"},
				{"cse_blue_chip_stocks", 30, "Direct stock ownership for control.", "Blue chips: JKH, COMB, Dialog"},
				{"balanced_unit_trusts", 20, "Balanced component for stability.", "Professional rebalancing"},
				{"income_unit_trusts", 10, "Fixed income for downside protection.", "9-11% stable returns"},
			},
		},
	},
}

var ruleModerateBalanced = Rule{
	ID:          "Rule 7",
	Name:        "Moderate Balanced Portfolio",
	Priority:    60,
	Confidence:  75,
	Description: "Classic 60-40 balanced allocation",
	Condition:   "Risk Tolerance = Moderate AND Time Horizon ≥ 5 years",
	Action:      "Allocate 60% growth assets (balanced/equity funds) + 40% fixed income",
	Guarded:     true,
	When: func(p UserProfile, g InvestmentGoal) bool {
		return p.RiskTolerance == RiskModerate && g.Horizon >= 5
	},
	Allocate: []Line{
		{"balanced_unit_trusts", 40,
			"One-stop solution for balanced growth - automatically maintains 50-50 equity-debt mix.",
			"Balanced funds: NDB Wealth Balanced, CAL Growth & Income - 12-15% returns"},
		{"equity_unit_trusts", 20,
			"Equity component for growth while professional managers handle volatility.",
			"Equity exposure provides inflation-beating returns over medium term"},
		{"income_unit_trusts", 20,
			"Fixed income for stability and regular returns.",
			"Bond funds deliver predictable 9-11% annual income"},
		{"cse_blue_chip_stocks", 10,
			"Select blue chip exposure for dividend income and capital appreciation.",
			"Blue chip dividends provide 3-5% yield plus capital gains"},
		{"fixed_deposits", 10,
			"Capital preservation component with guaranteed returns.",
			"FDs provide 9-11% guaranteed returns as portfolio anchor"},
	},
	Alternatives: []AlternativePlan{
		{
			Name:        "Alternative Plan 1: Growth-Oriented",
			Description: "Higher equity exposure for growth",
			Confidence:  65,
			Lines: []Line{
				{"equity_unit_trusts", 40, "Increased equity allocation for higher growth potential.", "Equity funds: 15-20% long-term returns"},
				{"balanced_unit_trusts", 30, "Balanced core holding.", "Auto-rebalancing feature"},
				{"cse_blue_chip_stocks", 15, "Direct stock ownership.", "Blue chips: JKH, COMB, Dialog"},
				{"income_unit_trusts", 15, "Fixed income stability.", "9-11% stable returns"},
			},
		},
		{
			Name:        "Alternative Plan 2: Conservative Balance",
			Description: "Lower volatility with more fixed income",
			Confidence:  70,
			Lines: []Line{
				{"balanced_unit_trusts", 50, "Larger balanced allocation for stability.", "One-stop diversified solution"},
				{"income_unit_trusts", 30, "Increased fixed income for reduced volatility.", "Bond funds 9-11%"},
				{"fixed_deposits", 20, "Guaranteed returns component.", "FDs 9-11% guaranteed"},
			},
		},
	},
}

var ruleMiddleAgeModerate = Rule{
	ID:          "Rule 8",
	Name:        "Middle-Age Moderate Investor",
	Priority:    55,
	Confidence:  77,
	Description: "Balanced portfolio for mid-career professionals",
	Condition:   "Age 35-50 AND Risk Tolerance = Moderate",
	Action:      "Allocate 60% balanced/equity funds + 40% bonds",
	Guarded:     true,
	When: func(p UserProfile, _ InvestmentGoal) bool {
		return 35 <= p.Age && p.Age < 50 && p.RiskTolerance == RiskModerate
	},
	Allocate: []Line{
		{"balanced_unit_trusts", 35,
			"Balanced funds ideal for busy professionals - automatic portfolio management.",
			"Balanced allocation suitable for age 35-50 demographic"},
		{"equity_unit_trusts", 25,
			"Equity exposure for long-term growth to meet retirement goals.",
			"Still 15-20 years to retirement - can handle equity volatility"},
		{"income_unit_trusts", 25,
			"Fixed income for portfolio stability and income needs.",
			"Income funds provide stable 9-11% returns"},
		{"government_bonds", 15,
			"Government securities for risk-free component of portfolio.",
			"T-Bonds: 11-13% p.a. with sovereign guarantee"},
	},
	Alternatives: []AlternativePlan{
		{
			Name:        "Alternative Plan 1: Growth-Focused",
			Description: "Higher equity for mid-career growth",
			Confidence:  72,
			Lines: []Line{
				{"equity_unit_trusts", 35, "Increased equity for wealth building.", "Still time to recover from volatility"},
				{"balanced_unit_trusts", 35, "Core balanced holding.", "Automatic rebalancing"},
				{"income_unit_trusts", 20, "Fixed income stability.", "Bond funds 9-11%"},
				{"government_bonds", 10, "Sovereign security component.", "Safe anchor"},
			},
		},
	},
}

var ruleConservative = Rule{
	ID:          "Rule 9",
	Name:        "Conservative Portfolio",
	Priority:    50,
	Confidence:  82,
	Description: "Capital preservation with minimal risk",
	Condition:   "Risk Tolerance = Low",
	Action:      "Allocate 80% fixed income (FDs, Bonds, Income Funds) + 20% balanced funds",
	Guarded:     true,
	When: func(p UserProfile, _ InvestmentGoal) bool {
		return p.RiskTolerance == RiskLow
	},
	Allocate: []Line{
		{"fixed_deposits", 40,
			"Guaranteed returns with zero market risk. Suitable for conservative investors.",
			"FD rates: 9-11% p.a. across major banks (Commercial, HNB, Sampath)"},
		{"government_bonds", 30,
			"Government backing ensures capital safety with better returns than FDs.",
			"Treasury Bonds: 11-13% p.a. - Central Bank of Sri Lanka"},
		{"income_unit_trusts", 20,
			"Professional bond fund management with diversification benefits.",
			"Gilt-edge funds: NDB Wealth, CAL Income Fund - 9-11% returns"},
		{"money_market_funds", 10,
			"Liquidity buffer with better returns than savings accounts.",
			"Money market funds: 7-8% returns with instant liquidity"},
	},
	Alternatives: []AlternativePlan{
		{
			Name:        "Alternative Plan 1: Maximum Safety",
			Description: "100% guaranteed returns focus",
			Confidence:  75,
			Lines: []Line{
				{"fixed_deposits", 60, "Maximum allocation to guaranteed bank deposits.", "Zero market risk"},
				{"government_bonds", 30, "Government-backed securities.", "Sovereign guarantee"},
				{"money_market_funds", 10, "Liquidity buffer.", "Instant access"},
			},
		},
	},
}

var rulePreRetirementConservative = Rule{
	ID:          "Rule 10",
	Name:        "Pre-Retirement Conservative",
	Priority:    52,
	Confidence:  84,
	Description: "Conservative allocation for pre-retirement (age 50+)",
	Condition:   "Age ≥ 50 AND Risk Tolerance = Low",
	Action:      "Allocate 85% fixed income + 15% balanced/blue chips",
	Guarded:     true,
	When: func(p UserProfile, _ InvestmentGoal) bool {
		return p.Age >= 50 && p.RiskTolerance == RiskLow
	},
	Allocate: []Line{
		{"fixed_deposits", 35,
			"Guaranteed returns crucial as retirement approaches.",
			"FDs provide predictable income for retirement planning"},
		{"government_bonds", 30,
			"Long-term government securities for stable retirement income.",
			"Government bonds: 11-13% p.a. with sovereign backing"},
		{"income_unit_trusts", 20,
			"Bond funds for diversified fixed income exposure.",
			"Income funds managed by professionals with steady returns"},
		{"balanced_unit_trusts", 10,
			"Small balanced fund allocation for moderate growth.",
			"Limited equity exposure through balanced funds"},
		{"money_market_funds", 5,
			"Emergency liquidity buffer.",
			"Money market funds for immediate cash needs"},
	},
}
