//go:build !windows

// Package stderr redirects file descriptor 2 into the logger while the
// terminal UI runs. The audio backend's C libraries (ALSA through oto)
// print warnings there directly, which would tear the chrome apart.
package stderr

import (
	"bufio"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// Capture is an active redirection. The zero value and nil are inert.
type Capture struct {
	saved int
	r, w  *os.File
	done  chan struct{}
}

// Start points fd 2 at a pipe whose lines are logged as warnings. Call it
// before the audio device opens. On error nothing is redirected and the
// program can go on.
func Start(logger logrus.FieldLogger) (*Capture, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, err
	}
	fd := int(os.Stderr.Fd())
	saved, err := unix.Dup(fd)
	if err != nil {
		r.Close()
		w.Close()
		return nil, err
	}
	if err := unix.Dup2(int(w.Fd()), fd); err != nil {
		unix.Close(saved)
		r.Close()
		w.Close()
		return nil, err
	}

	c := &Capture{saved: saved, r: r, w: w, done: make(chan struct{})}
	entry := logger.WithField("component", "stderr")
	go func() {
		defer close(c.done)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			if line := strings.TrimSpace(sc.Text()); line != "" {
				entry.Warn(line)
			}
		}
	}()
	return c, nil
}

// Close restores fd 2 and waits until the captured lines are logged.
func (c *Capture) Close() error {
	if c == nil || c.done == nil {
		return nil
	}
	err := unix.Dup2(c.saved, int(os.Stderr.Fd()))
	unix.Close(c.saved)
	c.w.Close()
	<-c.done
	c.r.Close()
	c.done = nil
	return err
}
