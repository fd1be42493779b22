package signal

// Emitter fans a typed notification out to its subscribers, in
// subscription order. It is built for single-threaded cooperative
// dispatch: all Subscribe/Emit/Cancel calls happen on the same
// goroutine, so there is no locking.
//
// Subscribing or cancelling from inside a callback is allowed. A
// subscription added during Emit is not invoked until the next Emit;
// one cancelled during Emit is not invoked again within the same Emit.
type Emitter[T any] struct {
	entries []*entry[T]
	closed  bool
}

type entry[T any] struct {
	fn        func(T)
	cancelled bool
}

// Subscribe registers fn and returns its cancellation handle.
// Subscribing on a closed emitter returns an already-cancelled handle.
func (e *Emitter[T]) Subscribe(fn func(T)) *Subscription {
	if e.closed {
		sub := newSubscription(func() {})
		sub.Cancel()
		return sub
	}
	ent := &entry[T]{fn: fn}
	e.entries = append(e.entries, ent)
	return newSubscription(func() {
		ent.cancelled = true
	})
}

// Emit invokes every live subscriber with v.
func (e *Emitter[T]) Emit(v T) {
	if e.closed {
		return
	}
	// Snapshot the slice so callbacks that subscribe don't extend this
	// dispatch and callbacks that Close don't invalidate iteration;
	// cancelled entries are skipped at call time.
	entries := e.entries
	for _, ent := range entries {
		if e.closed {
			return
		}
		if !ent.cancelled {
			ent.fn(v)
		}
	}
	e.sweep()
}

// Close cancels all subscriptions and rejects future ones. Idempotent.
func (e *Emitter[T]) Close() {
	if e.closed {
		return
	}
	e.closed = true
	for _, ent := range e.entries {
		ent.cancelled = true
	}
	e.entries = nil
}

// Len returns the number of live subscriptions.
func (e *Emitter[T]) Len() int {
	count := 0
	for _, ent := range e.entries {
		if !ent.cancelled {
			count++
		}
	}
	return count
}

func (e *Emitter[T]) sweep() {
	live := e.entries[:0]
	for _, ent := range e.entries {
		if !ent.cancelled {
			live = append(live, ent)
		}
	}
	e.entries = live
}
