package cda_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contentapi-io/cda-client/pkg/cda"
)

var errWorkFailed = errors.New("work failed")

func TestResult_ExactlyOneOfValueOrError(t *testing.T) {
	t.Parallel()

	value := "hello"

	success := cda.Success(&value)
	assert.Equal(t, &value, success.Value())
	assert.NoError(t, success.Err())

	failure := cda.Failure[string](errWorkFailed)
	assert.Nil(t, failure.Value())
	assert.Equal(t, errWorkFailed, failure.Err())

	got, err := failure.Unwrap()
	assert.Nil(t, got)
	assert.Equal(t, errWorkFailed, err)
}

func TestFetch_DeliversSuccessExactlyOnce(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	done := make(chan cda.Result[int])

	op := cda.Fetch(func(ctx context.Context) (*int, error) {
		value := 42

		return &value, nil
	}, func(result cda.Result[int]) {
		calls.Add(1)
		done <- result
	})

	require.NotNil(t, op)

	result := <-done
	require.NoError(t, result.Err())
	assert.Equal(t, 42, *result.Value())

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
	assert.True(t, op.Done())
	assert.False(t, op.Cancelled())
}

func TestFetch_DeliversError(t *testing.T) {
	t.Parallel()

	done := make(chan cda.Result[int])

	cda.Fetch(func(ctx context.Context) (*int, error) {
		return nil, errWorkFailed
	}, func(result cda.Result[int]) {
		done <- result
	})

	result := <-done
	assert.Nil(t, result.Value())
	assert.Equal(t, errWorkFailed, result.Err())
}

func TestFetch_CancelSuppressesDelivery(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	started := make(chan struct{})

	op := cda.Fetch(func(ctx context.Context) (*int, error) {
		close(started)
		<-ctx.Done()

		return nil, ctx.Err()
	}, func(result cda.Result[int]) {
		calls.Add(1)
	})

	<-started
	op.Cancel()

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())
	assert.True(t, op.Cancelled())
	assert.True(t, op.Done())
}

func TestFetch_CancelAfterCompletionIsNoOp(t *testing.T) {
	t.Parallel()

	done := make(chan struct{})

	op := cda.Fetch(func(ctx context.Context) (*int, error) {
		value := 1

		return &value, nil
	}, func(result cda.Result[int]) {
		close(done)
	})

	<-done

	op.Cancel()
	assert.False(t, op.Cancelled())
	assert.True(t, op.Done())
}

func TestSignal_SingleEmissionToAllObservers(t *testing.T) {
	t.Parallel()

	op, signal := cda.SignalFetch(func(completion func(cda.Result[string])) *cda.Operation {
		return cda.Fetch(func(ctx context.Context) (*string, error) {
			value := "payload"

			return &value, nil
		}, completion)
	})

	require.NotNil(t, op)

	var (
		mu       sync.Mutex
		received []string
	)

	observer := func(result cda.Result[string]) {
		mu.Lock()
		defer mu.Unlock()

		received = append(received, *result.Value())
	}

	signal.Subscribe(observer)
	signal.Subscribe(observer)

	<-signal.Done()

	// Late subscriber gets the stored result replayed.
	signal.Subscribe(observer)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"payload", "payload", "payload"}, received)
}

func TestSignal_ResultBeforeAndAfterResolution(t *testing.T) {
	t.Parallel()

	signal := cda.NewSignal[int]()

	_, ok := signal.Result()
	assert.False(t, ok)

	_, resolved := cda.SignalFetch(func(completion func(cda.Result[int])) *cda.Operation {
		return cda.Fetch(func(ctx context.Context) (*int, error) {
			value := 7

			return &value, nil
		}, completion)
	})

	<-resolved.Done()

	result, ok := resolved.Result()
	require.True(t, ok)
	assert.Equal(t, 7, *result.Value())
}

func TestSignalFetch_NilOperationOnImmediateFailure(t *testing.T) {
	t.Parallel()

	op, signal := cda.SignalFetch(func(completion func(cda.Result[int])) *cda.Operation {
		completion(cda.Failure[int](cda.ErrInvalidURL))

		return nil
	})

	assert.Nil(t, op)

	result, ok := signal.Result()
	require.True(t, ok)
	assert.ErrorIs(t, result.Err(), cda.ErrInvalidURL)
}

func TestSignal_CancelledOperationNeverEmits(t *testing.T) {
	t.Parallel()

	started := make(chan struct{})

	op, signal := cda.SignalFetch(func(completion func(cda.Result[int])) *cda.Operation {
		return cda.Fetch(func(ctx context.Context) (*int, error) {
			close(started)
			<-ctx.Done()

			return nil, ctx.Err()
		}, completion)
	})

	var calls atomic.Int32

	signal.Subscribe(func(result cda.Result[int]) {
		calls.Add(1)
	})

	<-started
	op.Cancel()

	time.Sleep(100 * time.Millisecond)

	assert.Equal(t, int32(0), calls.Load())

	_, ok := signal.Result()
	assert.False(t, ok)
}
