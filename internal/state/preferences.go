package state

import (
	"database/sql"
	"errors"
	"time"

	"github.com/llehouerou/vplayer/internal/config"
	dbutil "github.com/llehouerou/vplayer/internal/db"
)

// Preferences are the user choices restored at startup.
type Preferences struct {
	Volume   float64 // 0-100
	Muted    bool
	Speed    float64 // 0 when never chosen
	Lang     string
	Autoplay bool
	Captions bool
}

// Capture reads the preferences out of a live configuration.
func Capture(cfg *config.Config) Preferences {
	return Preferences{
		Volume:   cfg.Volume,
		Muted:    cfg.Muted,
		Speed:    cfg.Speed,
		Lang:     cfg.Lang,
		Autoplay: cfg.Autoplay,
		Captions: cfg.EnableCaptions,
	}
}

// Apply writes the preferences into cfg. Unset speed and language keep
// the configured values.
func (p Preferences) Apply(cfg *config.Config) {
	cfg.Volume = max(0, min(100, p.Volume))
	cfg.Muted = p.Muted
	if p.Speed > 0 {
		cfg.Speed = p.Speed
	}
	if p.Lang != "" {
		cfg.Lang = p.Lang
	}
	cfg.Autoplay = p.Autoplay
	cfg.EnableCaptions = p.Captions
}

func getPreferences(db *sql.DB) (*Preferences, error) {
	row := db.QueryRow(`
		SELECT volume, muted, speed, lang, autoplay, captions
		FROM preferences WHERE id = 1
	`)

	var p Preferences
	var speed sql.Null[float64]
	var lang sql.Null[string]
	err := row.Scan(&p.Volume, &p.Muted, &speed, &lang, &p.Autoplay, &p.Captions)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // first run
	}
	if err != nil {
		return nil, err
	}
	p.Speed = dbutil.ValueOr(speed, 0)
	p.Lang = dbutil.ValueOr(lang, "")
	return &p, nil
}

func savePreferences(db *sql.DB, p Preferences) error {
	speed := dbutil.Optional(max(p.Speed, 0))
	_, err := db.Exec(`
		INSERT INTO preferences (id, volume, muted, speed, lang, autoplay, captions, updated_at)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			volume = excluded.volume,
			muted = excluded.muted,
			speed = excluded.speed,
			lang = excluded.lang,
			autoplay = excluded.autoplay,
			captions = excluded.captions,
			updated_at = excluded.updated_at
	`, p.Volume, p.Muted, speed, dbutil.Optional(p.Lang), p.Autoplay, p.Captions, time.Now().Unix())
	return err
}
