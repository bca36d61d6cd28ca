package rupeelogic

import (
	"fmt"
	"slices"

	"go.uber.org/zap"
)

// Engine runs a rule catalog against sessions.
//
// An Engine holds no per-run state: the catalog and the knowledge base are
// read only, so one Engine can serve concurrent sessions.
type Engine struct {
	catalog *Catalog
	kb      *KnowledgeBase
	log     *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger receiving the engine's debug traces.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// NewEngine returns an engine for catalog and kb. Nil arguments select the
// default catalog and the default knowledge base.
func NewEngine(catalog *Catalog, kb *KnowledgeBase, opts ...Option) *Engine {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	if kb == nil {
		kb = DefaultKnowledgeBase()
	}
	e := &Engine{catalog: catalog, kb: kb, log: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Catalog returns the engine's rules.
func (e *Engine) Catalog() *Catalog { return e.catalog }

// KnowledgeBase returns the engine's reference data.
func (e *Engine) KnowledgeBase() *KnowledgeBase { return e.kb }

// Execute fires the catalog's rules on s until none can fire.
//
// Each cycle fires the highest priority rule that has not fired yet, whose
// guard holds and whose condition matches the declared profile and goal. A
// guarded rule only fires while the store holds no Allocation. Each rule fires
// at most once per session, so running Execute again on the same session is a
// no-op.
func (e *Engine) Execute(s *Session) error {
	p, okp := s.store.Profile()
	g, okg := s.store.Goal()
	if !okp || !okg {
		return ErrNotDeclared
	}
	if !s.loaded {
		for _, a := range e.kb.All() {
			s.store.Assert(a)
		}
		s.loaded = true
	}

	ordered := e.catalog.ordered
	for cycle := 1; ; cycle++ {
		i := slices.IndexFunc(ordered, func(r Rule) bool { return e.eligible(s, r, p, g) })
		if i < 0 {
			e.log.Debug("fixed point reached", zap.Int("cycles", cycle-1), zap.Int("fired", s.trail.Len()))
			return nil
		}
		r := ordered[i]
		e.fire(s, r)
		e.log.Debug("rule fired",
			zap.Int("cycle", cycle),
			zap.String("rule", r.ID),
			zap.Int("priority", r.Priority),
			zap.Int("lines", len(r.Allocate)),
			zap.Int("alternatives", len(r.Alternatives)),
		)
	}
}

func (e *Engine) eligible(s *Session, r Rule, p UserProfile, g InvestmentGoal) bool {
	if s.trail.Fired(r.ID) {
		return false
	}
	if r.Guarded && s.store.HasAllocation() {
		return false
	}
	return r.When(p, g)
}

func (e *Engine) fire(s *Session, r Rule) {
	for _, l := range r.Allocate {
		s.store.Assert(Allocation{
			AssetClass: l.AssetClass,
			Percent:    l.Percent,
			Plan:       PlanPrimary,
			Confidence: r.Confidence,
			Reason:     l.Reason,
			Reference:  l.Reference,
			Rule:       r.ID,
		})
	}
	for _, alt := range r.Alternatives {
		alt.Rule = r.ID
		alt.Lines = slices.Clone(alt.Lines)
		s.alternatives = append(s.alternatives, alt)
	}
	s.trail.append(firedRule(r))
}

// Advise runs a fresh session for p and g and synthesizes its recommendation.
func (e *Engine) Advise(p UserProfile, g InvestmentGoal) (*Recommendation, error) {
	s := NewSession()
	if err := s.Declare(p, g); err != nil {
		return nil, err
	}
	if err := e.Execute(s); err != nil {
		return nil, fmt.Errorf("running rules: %w", err)
	}
	rec, err := Synthesize(s)
	if err != nil {
		e.log.Warn("synthesis failed", zap.Error(err))
		return nil, err
	}
	return rec, nil
}
