package signal

// Listener receives the new value after an edge transition.
type Listener[T comparable] func(T)

// State is an edge-triggered signal holding a current value.
// Listeners fire only when Set changes the value.
type State[T comparable] struct {
	value T
	subs  []*Subscription[T]
}

// NewState creates a state with the given initial value.
// No listeners fire for the initial value.
func NewState[T comparable](initial T) *State[T] {
	return &State[T]{value: initial}
}

// Value returns the current value.
func (s *State[T]) Value() T {
	return s.value
}

// Set updates the value and notifies listeners if it changed.
// Returns true if the value flipped.
func (s *State[T]) Set(v T) bool {
	if v == s.value {
		return false
	}
	s.value = v
	s.notify(v)
	return true
}

// Subscribe registers a listener for edge transitions.
// The listener is not called with the current value; only future changes
// are delivered.
func (s *State[T]) Subscribe(fn Listener[T]) *Subscription[T] {
	sub := &Subscription[T]{state: s, fn: fn}
	s.subs = append(s.subs, sub)
	return sub
}

// notify delivers v to all active listeners.
func (s *State[T]) notify(v T) {
	// Iterate a snapshot so listeners may cancel during delivery.
	subs := make([]*Subscription[T], len(s.subs))
	copy(subs, s.subs)
	for _, sub := range subs {
		if sub.active() {
			sub.fn(v)
		}
	}
}

// compact drops cancelled subscriptions.
func (s *State[T]) compact() {
	kept := s.subs[:0]
	for _, sub := range s.subs {
		if sub.active() {
			kept = append(kept, sub)
		}
	}
	s.subs = kept
}

// Subscription represents an active listener registration.
type Subscription[T comparable] struct {
	state     *State[T]
	fn        Listener[T]
	cancelled bool
}

// Cancel permanently removes the listener.
// Safe to call multiple times; only the first call has effect.
func (sub *Subscription[T]) Cancel() {
	if sub.cancelled {
		return
	}
	sub.cancelled = true
	sub.state.compact()
}

// IsActive returns true if the subscription still receives transitions.
func (sub *Subscription[T]) IsActive() bool {
	return sub.active()
}

func (sub *Subscription[T]) active() bool {
	return !sub.cancelled
}
