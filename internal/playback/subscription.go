package playback

import "sync"

// pendingChanges is how many undelivered changes a subscription holds.
const pendingChanges = 4

// StateChange is one transition of the machine.
type StateChange struct {
	Previous State
	Current  State
}

// Subscription hands state changes to a consumer on another goroutine.
// When the consumer falls behind, the oldest pending change is dropped so
// the last one received is always the current state.
type Subscription struct {
	StateChanged <-chan StateChange
	Done         <-chan struct{}

	mu   sync.Mutex
	ch   chan StateChange
	done chan struct{}
	once sync.Once
}

func newSubscription() *Subscription {
	ch := make(chan StateChange, pendingChanges)
	done := make(chan struct{})
	return &Subscription{StateChanged: ch, Done: done, ch: ch, done: done}
}

func (s *Subscription) send(e StateChange) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for {
		select {
		case s.ch <- e:
			return
		default:
		}
		select {
		case <-s.ch:
		default:
		}
	}
}

func (s *Subscription) close() {
	s.once.Do(func() { close(s.done) })
}
