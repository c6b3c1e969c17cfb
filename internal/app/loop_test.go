package app

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoop_PostWakesAndDrains(t *testing.T) {
	l := NewLoop()
	var got []int

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		l.Post(func() { got = append(got, 1) })
		l.Post(func() { got = append(got, 2) })
	}()
	wg.Wait()

	assert.Equal(t, wakeMsg{}, l.Wait()())
	l.Drain()
	assert.Equal(t, []int{1, 2}, got)
}

func TestLoop_DrainRunsNestedPosts(t *testing.T) {
	l := NewLoop()
	var got []string
	l.Post(func() {
		got = append(got, "outer")
		l.Post(func() { got = append(got, "inner") })
	})

	l.Drain()

	assert.Equal(t, []string{"outer", "inner"}, got)
}

func TestLoop_Timers(t *testing.T) {
	t.Run("flush hands over pending ticks once", func(t *testing.T) {
		l := NewLoop()
		assert.Nil(t, l.Flush())
		l.AfterFunc(time.Millisecond, func() {})
		require.NotNil(t, l.Flush())
		assert.Nil(t, l.Flush())
	})

	t.Run("fire runs a live timer once", func(t *testing.T) {
		l := NewLoop()
		calls := 0
		tm := l.AfterFunc(time.Second, func() { calls++ })
		msg := timerMsg{t: tm.(*timer), fn: func() { calls++ }}

		l.fire(msg)
		l.fire(msg)

		assert.Equal(t, 1, calls)
		assert.False(t, tm.Stop(), "stop after firing")
	})

	t.Run("stopped timer is dropped", func(t *testing.T) {
		l := NewLoop()
		calls := 0
		tm := l.AfterFunc(time.Second, func() { calls++ })

		assert.True(t, tm.Stop())
		l.fire(timerMsg{t: tm.(*timer), fn: func() { calls++ }})

		assert.Equal(t, 0, calls)
	})

	t.Run("tick delivers a timer message", func(t *testing.T) {
		l := NewLoop()
		calls := 0
		l.AfterFunc(time.Millisecond, func() { calls++ })

		msg, ok := l.Flush()().(timerMsg)
		require.True(t, ok)
		l.fire(msg)

		assert.Equal(t, 1, calls)
	})
}
