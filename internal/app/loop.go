package app

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/vplayer/internal/loop"
)

// Loop runs the controllers' callbacks inside the bubbletea update loop.
// Timers become tea.Tick commands; Post queues callbacks from any
// goroutine and wakes the program with a message.
type Loop struct {
	mu    sync.Mutex
	queue []func()
	wake  chan struct{}

	// update goroutine only
	pending []tea.Cmd
}

var _ loop.Loop = (*Loop)(nil)

// NewLoop returns an empty loop.
func NewLoop() *Loop {
	return &Loop{wake: make(chan struct{}, 1)}
}

type wakeMsg struct{}

type timerMsg struct {
	t  *timer
	fn func()
}

type timer struct {
	done bool
}

// Stop cancels a timer that has not fired. The tick message still arrives
// and is dropped.
func (t *timer) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	return true
}

// AfterFunc schedules fn. The command is handed to bubbletea by the next
// Flush.
func (l *Loop) AfterFunc(d time.Duration, fn func()) loop.Timer {
	t := &timer{}
	l.pending = append(l.pending, tea.Tick(d, func(time.Time) tea.Msg {
		return timerMsg{t: t, fn: fn}
	}))
	return t
}

// Post queues fn. It never blocks, so the audio thread may call it while
// holding the speaker lock.
func (l *Loop) Post(fn func()) {
	l.mu.Lock()
	l.queue = append(l.queue, fn)
	l.mu.Unlock()
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Wait returns a command that resolves when a callback has been posted.
func (l *Loop) Wait() tea.Cmd {
	return func() tea.Msg {
		<-l.wake
		return wakeMsg{}
	}
}

// Drain runs every queued callback, including those queued while
// draining.
func (l *Loop) Drain() {
	for {
		l.mu.Lock()
		q := l.queue
		l.queue = nil
		l.mu.Unlock()
		if len(q) == 0 {
			return
		}
		for _, fn := range q {
			fn()
		}
	}
}

// Flush returns the timer commands scheduled since the last call.
func (l *Loop) Flush() tea.Cmd {
	if len(l.pending) == 0 {
		return nil
	}
	cmds := l.pending
	l.pending = nil
	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

func (l *Loop) fire(msg timerMsg) {
	if msg.t.done {
		return
	}
	msg.t.done = true
	msg.fn()
}
