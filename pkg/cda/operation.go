package cda

import (
	"context"
	"sync"
)

// Operation represents one in-flight request. The caller may cancel it at
// any time before completion; the transport resolves it on completion. An
// operation is bound to at most one request and becomes inert once the
// request completes or is cancelled.
type Operation struct {
	mu        sync.Mutex
	cancel    context.CancelFunc
	finished  bool
	cancelled bool
}

// Cancel aborts the in-flight request. The pending delivery is suppressed:
// neither the completion callback nor the signal will fire. Cancelling a
// completed or already cancelled operation is a no-op.
func (o *Operation) Cancel() {
	o.mu.Lock()
	if o.finished || o.cancelled {
		o.mu.Unlock()

		return
	}

	o.cancelled = true
	cancel := o.cancel
	o.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// Cancelled reports whether the operation was cancelled before completion.
func (o *Operation) Cancelled() bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.cancelled
}

// Done reports whether the operation has resolved, either by completing or
// by cancellation.
func (o *Operation) Done() bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.finished || o.cancelled
}

// finish transitions the operation to completed. It reports false when the
// operation was cancelled first, in which case delivery must be suppressed.
func (o *Operation) finish() bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.cancelled || o.finished {
		return false
	}

	o.finished = true

	return true
}
