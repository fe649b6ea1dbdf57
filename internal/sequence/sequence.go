package sequence

import (
	"context"
	"sync"
)

// Sequencer hands out monotonically increasing sequence numbers per scope.
// A scope is a ticket-number prefix plus year (e.g. "INC-2025") so each
// request type counts independently within a year.
type Sequencer interface {
	Next(ctx context.Context, scope string) (int64, error)
}

type memorySequencer struct {
	mu       sync.Mutex
	counters map[string]int64
}

// NewMemorySequencer returns a process-local sequencer. Numbers are unique
// for the process lifetime only; deployments needing cross-process
// uniqueness should use the Redis-backed sequencer.
func NewMemorySequencer() Sequencer {
	return &memorySequencer{counters: make(map[string]int64)}
}

func (s *memorySequencer) Next(_ context.Context, scope string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters[scope]++
	return s.counters[scope], nil
}
