package cda

import "sync"

// Signal is a push-based, single-emission result handle. Observers that
// subscribe before completion all see the one terminal Result; observers
// that subscribe afterwards have it replayed immediately. A signal never
// emits twice.
type Signal[T any] struct {
	mu        sync.Mutex
	done      chan struct{}
	result    *Result[T]
	observers []func(Result[T])
}

// NewSignal creates an unresolved signal.
func NewSignal[T any]() *Signal[T] {
	return &Signal[T]{done: make(chan struct{})}
}

// Subscribe registers an observer for the terminal result. If the signal
// has already resolved, the observer is invoked synchronously with the
// stored result.
func (s *Signal[T]) Subscribe(observer func(Result[T])) {
	s.mu.Lock()
	if s.result != nil {
		result := *s.result
		s.mu.Unlock()
		observer(result)

		return
	}

	s.observers = append(s.observers, observer)
	s.mu.Unlock()
}

// Done returns a channel that closes once the signal resolves.
func (s *Signal[T]) Done() <-chan struct{} {
	return s.done
}

// Result returns the terminal result and whether the signal has resolved.
func (s *Signal[T]) Result() (Result[T], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.result == nil {
		return Result[T]{}, false
	}

	return *s.result, true
}

// resolve stores the terminal result and notifies observers. Subsequent
// calls are no-ops, preserving the single-emission guarantee.
func (s *Signal[T]) resolve(result Result[T]) {
	s.mu.Lock()
	if s.result != nil {
		s.mu.Unlock()

		return
	}

	s.result = &result
	observers := s.observers
	s.observers = nil
	close(s.done)
	s.mu.Unlock()

	for _, observer := range observers {
		observer(result)
	}
}
