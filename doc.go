// Package rupeelogic recommends an investment portfolio allocation from a
// user's financial profile and goal, by running a fixed catalog of prioritized,
// human authored financial planning rules.
//
// The core is made of:
//   - Store: the append-only working memory of a session, holding the declared
//     UserProfile and InvestmentGoal, the AssetClass reference facts and the
//     Allocations asserted by rules.
//   - Catalog: the rules, ordered by decreasing priority. Critical rules fire on
//     the profile alone; guarded rules only fire while no allocation exists,
//     so the first matching rule of the decision tree wins.
//   - Engine: fires rules to a fixed point, each rule at most once.
//   - Synthesize: joins allocations with the knowledge base into a primary
//     Plan and its alternatives, together with the Trail of fired rules.
//
// A minimal run is:
//
//	rec, err := rupeelogic.NewEngine(nil, nil).Advise(profile, goal)
//
// Catalog and KnowledgeBase are immutable and can be shared between
// goroutines; a Session belongs to a single run.
package rupeelogic
