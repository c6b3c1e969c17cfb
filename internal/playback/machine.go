package playback

import "github.com/llehouerou/vplayer/internal/media"

// Machine tracks the playback state from media notifications.
type Machine struct {
	state       State
	subscribers []*Subscription
}

// NewMachine returns a machine in StatePaused.
func NewMachine() *Machine {
	return &Machine{state: StatePaused}
}

// State returns the current state.
func (m *Machine) State() State { return m.state }

// Button returns the play button face for the current state.
func (m *Machine) Button() Button { return ButtonFor(m.state) }

// NeedsRewind reports whether a play request must first seek to zero.
func (m *Machine) NeedsRewind() bool { return m.state == StateEnded }

// Observe applies a media event. It reports whether the state changed.
// Events other than play, pause and ended are ignored.
func (m *Machine) Observe(event string) (StateChange, bool) {
	next := m.state
	switch event {
	case media.EventPlay:
		next = StatePlaying
	case media.EventPause:
		if m.state != StateEnded {
			next = StatePaused
		}
	case media.EventEnded:
		next = StateEnded
	}
	return m.set(next)
}

// Reset returns to StatePaused, used when a new source is bound.
func (m *Machine) Reset() (StateChange, bool) {
	return m.set(StatePaused)
}

func (m *Machine) set(next State) (StateChange, bool) {
	if next == m.state {
		return StateChange{}, false
	}
	change := StateChange{Previous: m.state, Current: next}
	m.state = next
	for _, s := range m.subscribers {
		s.send(change)
	}
	return change, true
}

// Subscribe returns a subscription receiving every state change.
func (m *Machine) Subscribe() *Subscription {
	s := newSubscription()
	m.subscribers = append(m.subscribers, s)
	return s
}

// Close ends every subscription.
func (m *Machine) Close() {
	for _, s := range m.subscribers {
		s.close()
	}
	m.subscribers = nil
}
