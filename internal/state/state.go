// Package state persists user preferences between runs in SQLite.
package state

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName      = "vplayer"
	dbFileName   = "vplayer.db"
	saveDebounce = 500 * time.Millisecond
)

type Manager struct {
	db        *sql.DB
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *Preferences
	onError   func(error)
}

// Open opens the database under the XDG data directory.
func Open() (*Manager, error) {
	path, err := xdg.DataFile(filepath.Join(appName, dbFileName))
	if err != nil {
		return nil, err
	}
	return OpenPath(path)
}

// OpenPath opens or creates the database at path. ":memory:" is accepted.
func OpenPath(path string) (*Manager, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// one connection keeps an in-memory database alive and serializes writes
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Manager{db: db}, nil
}

// OnSaveError sets the callback for failed background saves.
func (m *Manager) OnSaveError(fn func(error)) {
	m.saveMu.Lock()
	m.onError = fn
	m.saveMu.Unlock()
}

// Close flushes a pending save and closes the database.
func (m *Manager) Close() error {
	err := m.Flush()
	if cerr := m.db.Close(); err == nil {
		err = cerr
	}
	return err
}

// Flush writes a pending save now.
func (m *Manager) Flush() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
		m.saveTimer = nil
	}
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	if pending == nil {
		return nil
	}
	return savePreferences(m.db, *pending)
}

// SavePreferences schedules p to be written. Saves in quick succession
// are coalesced; the last one wins.
func (m *Manager) SavePreferences(p Preferences) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending = &p
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	m.saveTimer = time.AfterFunc(saveDebounce, func() {
		m.saveMu.Lock()
		pending := m.pending
		m.pending = nil
		onError := m.onError
		m.saveMu.Unlock()

		if pending == nil {
			return
		}
		if err := savePreferences(m.db, *pending); err != nil && onError != nil {
			onError(err)
		}
	})
}

// GetPreferences returns the saved preferences, or nil on first run.
func (m *Manager) GetPreferences() (*Preferences, error) {
	return getPreferences(m.db)
}
