package playback

import (
	"testing"

	"github.com/llehouerou/vplayer/internal/media"
)

func TestMachine_Transitions(t *testing.T) {
	tests := []struct {
		name   string
		events []string
		want   State
		rewind bool
	}{
		{"initial", nil, StatePaused, false},
		{"play", []string{media.EventPlay}, StatePlaying, false},
		{"play pause", []string{media.EventPlay, media.EventPause}, StatePaused, false},
		{"ended", []string{media.EventPlay, media.EventPause, media.EventEnded}, StateEnded, true},
		{"pause after ended", []string{media.EventEnded, media.EventPause}, StateEnded, true},
		{"replay", []string{media.EventEnded, media.EventPlay}, StatePlaying, false},
		{"unrelated events", []string{media.EventTimeUpdate, media.EventProgress}, StatePaused, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine()
			for _, ev := range tt.events {
				m.Observe(ev)
			}
			if m.State() != tt.want {
				t.Errorf("State() = %v, want %v", m.State(), tt.want)
			}
			if m.NeedsRewind() != tt.rewind {
				t.Errorf("NeedsRewind() = %v, want %v", m.NeedsRewind(), tt.rewind)
			}
		})
	}
}

func TestMachine_ObserveReportsChange(t *testing.T) {
	m := NewMachine()
	if _, changed := m.Observe(media.EventPause); changed {
		t.Error("pause while paused should not change state")
	}
	change, changed := m.Observe(media.EventPlay)
	if !changed {
		t.Fatal("play should change state")
	}
	if change.Previous != StatePaused || change.Current != StatePlaying {
		t.Errorf("change = %+v", change)
	}
}

func TestMachine_Subscribe(t *testing.T) {
	m := NewMachine()
	sub := m.Subscribe()

	m.Observe(media.EventPlay)
	m.Observe(media.EventEnded)
	m.Reset()

	want := []State{StatePlaying, StateEnded, StatePaused}
	for i, w := range want {
		select {
		case got := <-sub.StateChanged:
			if got.Current != w {
				t.Errorf("change %d = %v, want %v", i, got.Current, w)
			}
		default:
			t.Fatalf("missing change %d", i)
		}
	}

	m.Close()
	select {
	case <-sub.Done:
	default:
		t.Error("Done should be closed after Close")
	}
}

func TestMachine_SlowSubscriberKeepsLatest(t *testing.T) {
	m := NewMachine()
	sub := m.Subscribe()

	for range pendingChanges + 3 {
		m.Observe(media.EventPlay)
		m.Observe(media.EventPause)
	}
	m.Observe(media.EventEnded)

	var last StateChange
	for n := 0; ; n++ {
		select {
		case last = <-sub.StateChanged:
			continue
		default:
		}
		if n != pendingChanges {
			t.Errorf("received %d changes, want %d", n, pendingChanges)
		}
		break
	}
	if last.Current != StateEnded {
		t.Errorf("last change = %v, want %v", last.Current, StateEnded)
	}
}
