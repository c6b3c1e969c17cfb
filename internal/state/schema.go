package state

import (
	"database/sql"

	dbutil "github.com/llehouerou/vplayer/internal/db"
)

const currentSchemaVersion = 1

func initSchema(db *sql.DB) error {
	return dbutil.WithTx(db, func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (
				version INTEGER PRIMARY KEY
			);

			CREATE TABLE IF NOT EXISTS preferences (
				id INTEGER PRIMARY KEY CHECK (id = 1),
				volume REAL NOT NULL DEFAULT 100,
				muted INTEGER NOT NULL DEFAULT 0,
				speed REAL,
				lang TEXT,
				autoplay INTEGER NOT NULL DEFAULT 0,
				captions INTEGER NOT NULL DEFAULT 0,
				updated_at INTEGER NOT NULL
			);
		`)
		if err != nil {
			return err
		}

		_, err = tx.Exec(`INSERT OR IGNORE INTO schema_version (version) VALUES (?)`, currentSchemaVersion)
		return err
	})
}
