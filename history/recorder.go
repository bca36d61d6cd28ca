// Package history keeps a record of the recommendations given by rl.
package history

import (
	"encoding/json"
	"time"

	"github.com/etnz/rupeelogic"
)

// Session is one recorded recommendation run.
type Session struct {
	ID             string
	Time           time.Time
	Profile        rupeelogic.UserProfile
	Goal           rupeelogic.InvestmentGoal
	Rules          []string // fired rule IDs, in firing order
	Recommendation json.RawMessage
}

// Decode returns the recorded recommendation.
func (s *Session) Decode() (*rupeelogic.Recommendation, error) {
	rec := new(rupeelogic.Recommendation)
	if err := json.Unmarshal(s.Recommendation, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Recorder persists recommendations.
type Recorder interface {
	// Record stores rec and returns the new session ID.
	Record(rec *rupeelogic.Recommendation) (string, error)
	// List returns at most limit sessions, most recent first.
	List(limit int) ([]Session, error)
	// Get returns the session with the given ID or an ID prefix.
	Get(id string) (*Session, error)
	Close() error
}
