package rupeelogic

import "iter"

// Kind discriminates the facts held in a Store.
type Kind int

const (
	KindUserProfile Kind = iota + 1
	KindInvestmentGoal
	KindAssetClass
	KindAllocation
)

func (k Kind) String() string {
	switch k {
	case KindUserProfile:
		return "UserProfile"
	case KindInvestmentGoal:
		return "InvestmentGoal"
	case KindAssetClass:
		return "AssetClass"
	case KindAllocation:
		return "Allocation"
	default:
		return "Unknown"
	}
}

// Fact is an immutable record of the engine's working memory.
//
// Facts are values: once asserted, nothing can change them through the store.
type Fact interface {
	Kind() Kind
}

func (UserProfile) Kind() Kind    { return KindUserProfile }
func (InvestmentGoal) Kind() Kind { return KindInvestmentGoal }
func (AssetClass) Kind() Kind     { return KindAssetClass }
func (Allocation) Kind() Kind     { return KindAllocation }

// FactID is the stable handle of an asserted fact.
type FactID int

// Store is the append-only working memory of one session.
// Its zero value is ready to use.
type Store struct {
	facts []Fact
}

// Assert appends f and returns its handle. It is visible to every later query.
func (s *Store) Assert(f Fact) FactID {
	s.facts = append(s.facts, f)
	return FactID(len(s.facts) - 1)
}

// Get returns the fact asserted under id.
func (s *Store) Get(id FactID) (Fact, bool) {
	if id < 0 || int(id) >= len(s.facts) {
		return nil, false
	}
	return s.facts[id], true
}

// Len returns the number of asserted facts.
func (s *Store) Len() int { return len(s.facts) }

// Query returns the facts matching pred, in assertion order.
//
// The sequence is lazy: facts asserted while iterating are visited too.
func (s *Store) Query(pred func(Fact) bool) iter.Seq2[FactID, Fact] {
	return func(yield func(FactID, Fact) bool) {
		for i := 0; i < len(s.facts); i++ {
			if pred != nil && !pred(s.facts[i]) {
				continue
			}
			if !yield(FactID(i), s.facts[i]) {
				return
			}
		}
	}
}

// OfKind is a Query predicate selecting one kind of fact.
func OfKind(k Kind) func(Fact) bool {
	return func(f Fact) bool { return f.Kind() == k }
}

// HasAllocation reports whether any Allocation fact exists.
// It is the negation-as-absence guard of the decision tree rules.
func (s *Store) HasAllocation() bool {
	for range s.Query(OfKind(KindAllocation)) {
		return true
	}
	return false
}

// Allocations returns every Allocation fact in assertion order.
func (s *Store) Allocations() []Allocation {
	var out []Allocation
	for _, f := range s.Query(OfKind(KindAllocation)) {
		out = append(out, f.(Allocation))
	}
	return out
}

// Profile returns the declared user profile.
func (s *Store) Profile() (UserProfile, bool) {
	for _, f := range s.Query(OfKind(KindUserProfile)) {
		return f.(UserProfile), true
	}
	return UserProfile{}, false
}

// Goal returns the declared investment goal.
func (s *Store) Goal() (InvestmentGoal, bool) {
	for _, f := range s.Query(OfKind(KindInvestmentGoal)) {
		return f.(InvestmentGoal), true
	}
	return InvestmentGoal{}, false
}

// AssetClass returns the reference fact for id.
func (s *Store) AssetClass(id string) (AssetClass, bool) {
	for _, f := range s.Query(func(f Fact) bool {
		a, ok := f.(AssetClass)
		return ok && a.ID == id
	}) {
		return f.(AssetClass), true
	}
	return AssetClass{}, false
}
