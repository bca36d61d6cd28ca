package rupeelogic

import (
	"errors"
	"fmt"
	"slices"
)

// ErrNotDeclared is returned when a session is run before its profile and goal
// were declared.
var ErrNotDeclared = errors.New("profile and goal not declared")

// Session is the state of one recommendation run: its working memory, its
// explanation trail and the alternative plans proposed by fired rules.
//
// A Session is not safe for concurrent use; use one per run.
type Session struct {
	store        Store
	trail        Trail
	alternatives []AlternativePlan

	declared bool
	loaded   bool // reference facts asserted
}

// NewSession returns an empty session.
func NewSession() *Session { return &Session{} }

// Declare validates p and g and asserts them as facts.
// It can only be called once per session.
func (s *Session) Declare(p UserProfile, g InvestmentGoal) error {
	if s.declared {
		return fmt.Errorf("%w: profile and goal already declared", ErrInvalidInput)
	}
	if err := errors.Join(p.Validate(), g.Validate()); err != nil {
		return err
	}
	s.store.Assert(p)
	s.store.Assert(g)
	s.declared = true
	return nil
}

// Store returns the session's working memory.
func (s *Session) Store() *Store { return &s.store }

// Trail returns the session's explanation trail.
func (s *Session) Trail() *Trail { return &s.trail }

// Alternatives returns a copy of the alternative plans in the order they were
// proposed.
func (s *Session) Alternatives() []AlternativePlan { return slices.Clone(s.alternatives) }
