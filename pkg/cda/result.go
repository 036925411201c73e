package cda

import "context"

// Result is the typed outcome of a single request: exactly one of value or
// error, never both, never neither. The invariant is enforced by the
// Success and Failure constructors; a Result is never mutated after
// creation.
type Result[T any] struct {
	value *T
	err   error
}

// Success wraps a decoded value.
func Success[T any](value *T) Result[T] {
	return Result[T]{value: value}
}

// Failure wraps a terminal error.
func Failure[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// Value returns the decoded value, or nil for a failed request.
func (r Result[T]) Value() *T {
	return r.value
}

// Err returns the terminal error, or nil for a successful request.
func (r Result[T]) Err() error {
	return r.err
}

// Unwrap returns the value and error as an ordinary Go pair.
func (r Result[T]) Unwrap() (*T, error) {
	return r.value, r.err
}

// Fetch runs work on its own goroutine and delivers its outcome to
// completion exactly once. The returned Operation cancels the work's
// context; a cancelled operation never invokes completion, even when the
// work has already produced a result.
func Fetch[T any](work func(ctx context.Context) (*T, error), completion func(Result[T])) *Operation {
	ctx, cancel := context.WithCancel(context.Background())
	op := &Operation{cancel: cancel}

	go func() {
		defer cancel()

		value, err := work(ctx)
		if !op.finish() {
			return
		}

		if err != nil {
			completion(Failure[T](err))

			return
		}

		completion(Success(value))
	}()

	return op
}

// SignalFetch derives a signal-mode operation from a callback-mode starter:
// it subscribes a fresh one-shot signal as the completion and returns it
// alongside the starter's cancellation handle. The handle is nil exactly
// when the starter reports an immediate failure (invalid URL), in which
// case the signal is already resolved.
func SignalFetch[T any](start func(completion func(Result[T])) *Operation) (*Operation, *Signal[T]) {
	signal := NewSignal[T]()
	op := start(signal.resolve)

	return op, signal
}
