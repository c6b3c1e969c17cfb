//go:build windows

package stderr

import "github.com/sirupsen/logrus"

// Capture does nothing on Windows, where the audio backend keeps quiet.
type Capture struct{}

// Start returns an inert capture.
func Start(logrus.FieldLogger) (*Capture, error) { return &Capture{}, nil }

// Close does nothing.
func (*Capture) Close() error { return nil }
