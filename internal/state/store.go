package state

import "sync"

// Store owns the current AppState snapshot and the subscriber list.
// Dispatches are serialized: reducer applications never interleave, and every
// subscriber sees the resulting snapshots in dispatch order.
type Store struct {
	mu          sync.Mutex
	state       AppState
	subscribers []*Subscription
	dispatching bool
	pending     []Action
}

// Subscription is the handle returned by Subscribe. Unsubscribe is idempotent
// and safe to call from within the subscriber's own callback.
type Subscription struct {
	store  *Store
	fn     func(AppState)
	active bool
}

// NewStore creates a store with the initial state: Welcome page, no album.
func NewStore() *Store {
	return &Store{
		state: AppState{Navigation: NavigationState{Page: PageWelcome}},
	}
}

// Dispatch applies the action through the reducer pipeline and notifies all
// subscribers with the committed snapshot. It never fails; reducers are total.
//
// A Dispatch issued while another is in progress (from a subscriber callback,
// or from another goroutine) is queued and drained FIFO after the current
// transition commits, preserving program order without recursing.
func (s *Store) Dispatch(action Action) {
	s.mu.Lock()
	if s.dispatching {
		s.pending = append(s.pending, action)
		s.mu.Unlock()
		return
	}
	s.dispatching = true

	next, ok := action, true
	for ok {
		s.state = reduce(s.state, next)

		// Snapshot subscribers and state, then notify outside the lock so
		// callbacks may freely read state, dispatch, or unsubscribe.
		subs := make([]*Subscription, len(s.subscribers))
		copy(subs, s.subscribers)
		snapshot := s.state.clone()
		s.mu.Unlock()

		for _, sub := range subs {
			if sub.isActive() {
				sub.fn(snapshot)
			}
		}

		s.mu.Lock()
		next, ok = s.dequeue()
	}
	s.dispatching = false
	s.mu.Unlock()
}

func (s *Store) dequeue() (Action, bool) {
	if len(s.pending) == 0 {
		return nil, false
	}
	next := s.pending[0]
	s.pending = s.pending[1:]
	return next, true
}

// State returns a snapshot of the most recently committed state.
func (s *Store) State() AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Subscribe registers a callback invoked with the new snapshot after every
// committed dispatch, in registration order. Callbacks must return promptly;
// anything slow belongs on its own goroutine.
func (s *Store) Subscribe(fn func(AppState)) *Subscription {
	sub := &Subscription{store: s, fn: fn, active: true}
	s.mu.Lock()
	s.subscribers = append(s.subscribers, sub)
	s.mu.Unlock()
	return sub
}

// Unsubscribe removes the subscription. Removing a subscriber mid-notification
// only affects dispatches that have not yet snapshotted the subscriber list.
func (sub *Subscription) Unsubscribe() {
	if sub == nil || sub.store == nil {
		return
	}
	s := sub.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if !sub.active {
		return
	}
	sub.active = false
	for i, candidate := range s.subscribers {
		if candidate == sub {
			s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
			break
		}
	}
}

func (sub *Subscription) isActive() bool {
	sub.store.mu.Lock()
	defer sub.store.mu.Unlock()
	return sub.active
}
