package fx

import "slices"

type subscriber[T any] struct {
	id int
	fn func(T)
}

// Signal is a single-threaded observable value. Hosts own the signals and
// Set them from their event loop; the animator subscribes while it runs.
type Signal[T any] struct {
	value  T
	set    bool
	nextID int
	subs   []subscriber[T]
}

// NewSignal returns a signal holding v.
func NewSignal[T any](v T) *Signal[T] {
	return &Signal[T]{value: v}
}

// Get returns the current value.
func (s *Signal[T]) Get() T { return s.value }

// Set stores v and notifies every subscriber registered before the call.
func (s *Signal[T]) Set(v T) {
	s.value = v
	s.set = true
	for _, sub := range slices.Clone(s.subs) {
		sub.fn(v)
	}
}

// IsSet reports whether Set has ever been called. The initial value does
// not count.
func (s *Signal[T]) IsSet() bool { return s.set }

// Subscribe registers fn and returns a function that removes it. The
// returned function is safe to call more than once.
func (s *Signal[T]) Subscribe(fn func(T)) func() {
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscriber[T]{id: id, fn: fn})
	return func() {
		s.subs = slices.DeleteFunc(s.subs, func(sub subscriber[T]) bool {
			return sub.id == id
		})
	}
}

// Listeners returns the number of live subscriptions.
func (s *Signal[T]) Listeners() int { return len(s.subs) }
