// Package log builds the application logger. The terminal owns stdout, so
// entries go to a file.
package log

import (
	"fmt"
	"io"
	"os"

	"github.com/adrg/xdg"
	"github.com/sirupsen/logrus"

	"github.com/llehouerou/vplayer/internal/config"
)

// Setup creates a logger from cfg. The returned closer releases the log
// file.
func Setup(cfg config.LogConfig) (*logrus.Logger, io.Closer, error) {
	path := cfg.File
	if path == "" {
		var err error
		path, err = xdg.StateFile("vplayer/vplayer.log")
		if err != nil {
			return nil, nil, fmt.Errorf("resolve log path: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := New(f, cfg)
	return logger, f, nil
}

// New creates a logger writing to w with the formatter and level from cfg.
// Unknown levels fall back to info.
func New(w io.Writer, cfg config.LogConfig) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)

	if cfg.JSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	parsed, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logger.SetLevel(parsed)
	return logger
}

// Discard returns a logger that drops every entry.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
