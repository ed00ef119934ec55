package fetch

import (
	"context"
	"sync"
)

// MutationFunc performs one write operation.
type MutationFunc[In, Out any] func(ctx context.Context, in In) (Out, error)

// Mutation tracks the outcome of a write operation. Unlike a Fetcher
// it never fires on construction; Execute is always explicit.
type Mutation[In, Out any] struct {
	mu        sync.Mutex
	fn        MutationFunc[In, Out]
	result    Out
	hasResult bool
	err       error
	inflight  int
	seq       uint64
	applied   uint64
}

func NewMutation[In, Out any](fn MutationFunc[In, Out]) *Mutation[In, Out] {
	return &Mutation[In, Out]{fn: fn}
}

// Execute runs the mutation and returns its result. The tracked state
// adopts the outcome unless a newer Execute or Reset happened while
// the mutation was running.
func (m *Mutation[In, Out]) Execute(ctx context.Context, in In) (Out, error) {
	m.mu.Lock()
	fn := m.fn
	m.seq++
	ticket := m.seq
	m.inflight++
	m.mu.Unlock()

	result, err := fn(ctx, in)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.inflight--
	if ticket > m.applied {
		m.applied = ticket
		if err != nil {
			m.err = err
		} else {
			m.result = result
			m.hasResult = true
			m.err = nil
		}
	}
	return result, err
}

// Result returns the last adopted result and whether one exists.
func (m *Mutation[In, Out]) Result() (Out, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.result, m.hasResult
}

// Err returns the error of the newest adopted call, nil after a
// success.
func (m *Mutation[In, Out]) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}

// Loading reports whether any call is still in flight.
func (m *Mutation[In, Out]) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inflight > 0
}

// Reset drops the tracked state. In-flight calls become stale.
func (m *Mutation[In, Out]) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	m.applied = m.seq
	var zero Out
	m.result = zero
	m.hasResult = false
	m.err = nil
}
