package state

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/vplayer/internal/config"
)

func openTest(t *testing.T) *Manager {
	t.Helper()
	m, err := OpenPath(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { m.Close() })
	return m
}

func TestGetPreferences_Empty(t *testing.T) {
	m := openTest(t)
	p, err := m.GetPreferences()
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestSavePreferences_Flush(t *testing.T) {
	m := openTest(t)

	m.SavePreferences(Preferences{Volume: 30})
	m.SavePreferences(Preferences{Volume: 70, Muted: true, Speed: 1.5, Lang: "fr", Captions: true})
	require.NoError(t, m.Flush())

	p, err := m.GetPreferences()
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, Preferences{Volume: 70, Muted: true, Speed: 1.5, Lang: "fr", Captions: true}, *p)

	require.NoError(t, m.Flush(), "second flush")
}

func TestSavePreferences_Debounced(t *testing.T) {
	m := openTest(t)
	m.SavePreferences(Preferences{Volume: 40, Autoplay: true})

	p, err := m.GetPreferences()
	require.NoError(t, err)
	assert.Nil(t, p, "saved before the debounce delay")

	require.Eventually(t, func() bool {
		p, err := m.GetPreferences()
		return err == nil && p != nil && p.Volume == 40 && p.Autoplay
	}, 5*saveDebounce, 10*time.Millisecond)
}

func TestSavePreferences_NullableFields(t *testing.T) {
	m := openTest(t)
	require.NoError(t, savePreferences(m.db, Preferences{Volume: 100}))

	var speedNull, langNull bool
	require.NoError(t, m.db.QueryRow(
		`SELECT speed IS NULL, lang IS NULL FROM preferences WHERE id = 1`,
	).Scan(&speedNull, &langNull))
	assert.True(t, speedNull)
	assert.True(t, langNull)
}

func TestClose_FlushesPending(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs", "vplayer.db")
	m, err := OpenPath(path)
	require.NoError(t, err)
	m.SavePreferences(Preferences{Volume: 10, Lang: "en"})
	require.NoError(t, m.Close())

	m, err = OpenPath(path)
	require.NoError(t, err)
	defer m.Close()
	p, err := m.GetPreferences()
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 10.0, p.Volume)
	assert.Equal(t, "en", p.Lang)
}

func TestPreferences_ApplyAndCapture(t *testing.T) {
	cfg := config.Default()
	cfg.Speed = 1.25

	Preferences{Volume: 150, Muted: true, Lang: "de", Captions: true}.Apply(cfg)
	assert.Equal(t, 100.0, cfg.Volume)
	assert.True(t, cfg.Muted)
	assert.Equal(t, 1.25, cfg.Speed, "unset speed overrode the config")
	assert.Equal(t, "de", cfg.Lang)
	assert.True(t, cfg.EnableCaptions)

	assert.Equal(t, Preferences{
		Volume:   100,
		Muted:    true,
		Speed:    1.25,
		Lang:     "de",
		Captions: true,
	}, Capture(cfg))
}
