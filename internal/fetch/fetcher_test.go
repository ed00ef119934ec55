package fetch

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errProducer = errors.New("producer failed")

// Test that a successful execute caches its result
func TestFetcher_ExecuteCachesResult(t *testing.T) {
	f := NewFetcher(func(ctx context.Context) (int, error) {
		return 42, nil
	})

	value, err := f.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, value)

	cached, ok := f.Data()
	assert.True(t, ok)
	assert.Equal(t, 42, cached)
	assert.NoError(t, f.Err())
	assert.False(t, f.Loading())
}

// Test that a failed execute keeps the previous data
func TestFetcher_ErrorKeepsPreviousData(t *testing.T) {
	calls := 0
	f := NewFetcher(func(ctx context.Context) (string, error) {
		calls++
		if calls > 1 {
			return "", errProducer
		}
		return "first", nil
	})

	_, err := f.Execute(context.Background())
	require.NoError(t, err)

	_, err = f.Execute(context.Background())
	assert.ErrorIs(t, err, errProducer)
	assert.ErrorIs(t, f.Err(), errProducer)

	cached, ok := f.Data()
	assert.True(t, ok)
	assert.Equal(t, "first", cached)
}

// Test that a success clears a previously cached error
func TestFetcher_SuccessClearsError(t *testing.T) {
	calls := 0
	f := NewFetcher(func(ctx context.Context) (int, error) {
		calls++
		if calls == 1 {
			return 0, errProducer
		}
		return 7, nil
	})

	_, _ = f.Execute(context.Background())
	require.Error(t, f.Err())

	_, err := f.Execute(context.Background())
	require.NoError(t, err)
	assert.NoError(t, f.Err())
}

// Test that a slow older call cannot clobber a newer result
func TestFetcher_StaleResultDiscarded(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	slowFirst := true

	f := NewFetcher(func(ctx context.Context) (string, error) {
		if slowFirst {
			slowFirst = false
			close(started)
			<-release
			return "stale", nil
		}
		return "fresh", nil
	})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		value, err := f.Execute(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, "stale", value)
	}()

	// Let the slow call take its ticket before starting the fast one.
	<-started

	value, err := f.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fresh", value)

	close(release)
	wg.Wait()

	cached, ok := f.Data()
	assert.True(t, ok)
	assert.Equal(t, "fresh", cached)
}

// Test that SetData wins over an in-flight call
func TestFetcher_SetDataInvalidatesInflight(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	f := NewFetcher(func(ctx context.Context) (string, error) {
		close(started)
		<-release
		return "from-network", nil
	})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = f.Execute(context.Background())
	}()

	<-started

	f.SetData("manual")
	close(release)
	wg.Wait()

	cached, ok := f.Data()
	assert.True(t, ok)
	assert.Equal(t, "manual", cached)
}

// Test that Reset drops cached state and invalidates in-flight calls
func TestFetcher_Reset(t *testing.T) {
	f := NewFetcher(func(ctx context.Context) (int, error) {
		return 1, nil
	})

	_, err := f.Execute(context.Background())
	require.NoError(t, err)

	f.Reset()

	_, ok := f.Data()
	assert.False(t, ok)
	assert.NoError(t, f.Err())
}

// Test that SetProducer swaps the source without firing it
func TestFetcher_SetProducerDoesNotFire(t *testing.T) {
	secondCalls := 0
	f := NewFetcher(func(ctx context.Context) (int, error) {
		return 1, nil
	})

	f.SetProducer(func(ctx context.Context) (int, error) {
		secondCalls++
		return 2, nil
	})
	assert.Zero(t, secondCalls)

	value, err := f.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, value)
	assert.Equal(t, 1, secondCalls)
}

// Test that the immediate option fires the producer exactly once
func TestFetcher_ImmediateFiresOnce(t *testing.T) {
	calls := 0
	f := NewFetcher(func(ctx context.Context) (int, error) {
		calls++
		return 9, nil
	}, WithImmediate[int](context.Background()))

	assert.Equal(t, 1, calls)
	cached, ok := f.Data()
	assert.True(t, ok)
	assert.Equal(t, 9, cached)
}

// Test the mutation happy path
func TestMutation_Execute(t *testing.T) {
	m := NewMutation(func(ctx context.Context, in int) (int, error) {
		return in * 2, nil
	})

	value, err := m.Execute(context.Background(), 21)
	require.NoError(t, err)
	assert.Equal(t, 42, value)

	result, ok := m.Result()
	assert.True(t, ok)
	assert.Equal(t, 42, result)
	assert.NoError(t, m.Err())
}

// Test that a failed mutation records its error
func TestMutation_ExecuteError(t *testing.T) {
	m := NewMutation(func(ctx context.Context, in string) (string, error) {
		return "", errProducer
	})

	_, err := m.Execute(context.Background(), "x")
	assert.ErrorIs(t, err, errProducer)
	assert.ErrorIs(t, m.Err(), errProducer)

	_, ok := m.Result()
	assert.False(t, ok)
}

// Test that Reset clears mutation state
func TestMutation_Reset(t *testing.T) {
	m := NewMutation(func(ctx context.Context, in int) (int, error) {
		return in, nil
	})

	_, err := m.Execute(context.Background(), 5)
	require.NoError(t, err)

	m.Reset()

	_, ok := m.Result()
	assert.False(t, ok)
	assert.NoError(t, m.Err())
}
