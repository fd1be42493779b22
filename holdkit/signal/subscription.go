package signal

// Subscription is a single-shot handle to a registered callback.
// Cancelling it removes the callback from its emitter; further cancels
// are no-ops. A nil subscription can be cancelled safely, which keeps
// teardown paths free of nil checks.
type Subscription struct {
	cancel    func()
	cancelled bool
}

func newSubscription(cancel func()) *Subscription {
	return &Subscription{cancel: cancel}
}

// Cancel releases the subscription. Idempotent.
func (s *Subscription) Cancel() {
	if s == nil || s.cancelled {
		return
	}
	s.cancelled = true
	s.cancel()
}

// Cancelled reports whether Cancel has been called.
func (s *Subscription) Cancelled() bool {
	return s != nil && s.cancelled
}
