package history

import (
	"errors"

	"github.com/etnz/rupeelogic"
)

// ErrNotFound is returned when no session matches an ID.
var ErrNotFound = errors.New("session not found")

// NoopRecorder is used when history is disabled.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) Record(_ *rupeelogic.Recommendation) (string, error) { return "", nil }
func (n *NoopRecorder) List(_ int) ([]Session, error)                       { return nil, nil }
func (n *NoopRecorder) Get(_ string) (*Session, error)                      { return nil, ErrNotFound }
func (n *NoopRecorder) Close() error                                        { return nil }
