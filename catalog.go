package rupeelogic

import "sync"

var (
	defaultCatalog     *Catalog
	defaultCatalogOnce sync.Once
)

// DefaultCatalog returns the RupeeLogic rules: four critical priorities, the
// guarded decision tree, goal specific rules and the default portfolio.
//
// The catalog is shared and immutable; it panics if a rule is malformed.
func DefaultCatalog() *Catalog {
	defaultCatalogOnce.Do(func() {
		c, err := NewCatalog(
			ruleEmergencyFund,
			ruleDebtPayoff,
			ruleExpensesExceedIncome,
			ruleVeryLowInvestable,
			ruleShortTermGoal,
			ruleNearRetirement,
			ruleAggressiveGrowth,
			ruleGrowthOriented,
			ruleModerateBalanced,
			ruleMiddleAgeModerate,
			ruleConservative,
			rulePreRetirementConservative,
			ruleEducationPlanning,
			ruleHomePurchase,
			ruleYoungProfessional,
			ruleHighIncome,
			ruleBeginnerInvestor,
			rulePreRetirementPlanning,
			ruleHighSavingsRate,
			ruleDefault,
		)
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}
