// Package loop defines the single execution queue every controller runs on.
//
// Controllers never block and never touch shared state from another
// goroutine: timers fire and cross-goroutine callbacks land on the loop.
package loop

import "time"

// Timer is a scheduled callback.
type Timer interface {
	// Stop cancels the callback. It reports whether the call stopped the
	// timer before it ran.
	Stop() bool
}

// Loop schedules callbacks on the single execution queue.
type Loop interface {
	// AfterFunc runs fn on the loop after d.
	AfterFunc(d time.Duration, fn func()) Timer
	// Post runs fn on the loop as soon as possible. Safe to call from any
	// goroutine.
	Post(fn func())
}
