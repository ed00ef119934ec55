// Package fetch provides concurrency-safe state cells around API
// calls: a Fetcher caches the latest result of a producer, a Mutation
// tracks the outcome of a write operation. Both discard results of
// superseded in-flight calls so the cached state always reflects the
// most recently started call that finished.
package fetch

import (
	"context"
	"sync"
)

// Producer loads one value, typically a thin closure over a client
// operation.
type Producer[T any] func(ctx context.Context) (T, error)

// Fetcher caches the latest value produced for a read endpoint.
// Execute always returns its own call's result; the cached state only
// adopts it when no newer call has been started since.
type Fetcher[T any] struct {
	mu       sync.Mutex
	producer Producer[T]
	data     T
	hasData  bool
	err      error
	inflight int
	// seq tickets each started call, applied records the newest ticket
	// whose outcome was adopted. A finishing call with ticket <= applied
	// is stale and leaves the cached state alone.
	seq     uint64
	applied uint64
}

// FetcherOption configures a Fetcher at construction.
type FetcherOption[T any] func(*fetcherOptions)

type fetcherOptions struct {
	immediate bool
	ctx       context.Context
}

// WithImmediate runs the producer once before NewFetcher returns.
func WithImmediate[T any](ctx context.Context) FetcherOption[T] {
	return func(o *fetcherOptions) {
		o.immediate = true
		o.ctx = ctx
	}
}

func NewFetcher[T any](producer Producer[T], opts ...FetcherOption[T]) *Fetcher[T] {
	var options fetcherOptions
	for _, opt := range opts {
		opt(&options)
	}

	f := &Fetcher[T]{producer: producer}
	if options.immediate {
		f.Execute(options.ctx)
	}
	return f
}

// Execute runs the producer and returns its result. The cached state
// adopts the outcome unless a newer Execute, SetData or Reset happened
// while the producer was running.
func (f *Fetcher[T]) Execute(ctx context.Context) (T, error) {
	f.mu.Lock()
	producer := f.producer
	f.seq++
	ticket := f.seq
	f.inflight++
	f.mu.Unlock()

	result, err := producer(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.inflight--
	if ticket > f.applied {
		f.applied = ticket
		if err != nil {
			f.err = err
		} else {
			f.data = result
			f.hasData = true
			f.err = nil
		}
	}
	return result, err
}

// Refetch re-runs the producer.
func (f *Fetcher[T]) Refetch(ctx context.Context) (T, error) {
	return f.Execute(ctx)
}

// Data returns the cached value and whether one has been adopted. A
// failed call keeps the previously cached value.
func (f *Fetcher[T]) Data() (T, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data, f.hasData
}

// Err returns the error of the newest adopted call, nil after a
// success.
func (f *Fetcher[T]) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

// Loading reports whether any call is still in flight.
func (f *Fetcher[T]) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.inflight > 0
}

// SetData overrides the cached value. In-flight calls become stale and
// cannot clobber it when they finish.
func (f *Fetcher[T]) SetData(data T) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	f.applied = f.seq
	f.data = data
	f.hasData = true
	f.err = nil
}

// Reset drops the cached state. In-flight calls become stale.
func (f *Fetcher[T]) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	f.applied = f.seq
	var zero T
	f.data = zero
	f.hasData = false
	f.err = nil
}

// SetProducer swaps the producer without firing it. The next Execute
// uses the new producer.
func (f *Fetcher[T]) SetProducer(producer Producer[T]) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.producer = producer
}
