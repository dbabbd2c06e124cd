package state

import (
	"database/sql"
)

const currentSchemaVersion = 1

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS carousel_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			snap_index INTEGER NOT NULL DEFAULT 0,
			clip_key TEXT,
			fullscreen INTEGER NOT NULL DEFAULT 0,
			updated_at INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS clip_plays (
			clip_key TEXT PRIMARY KEY,
			plays INTEGER NOT NULL DEFAULT 0,
			last_played_at INTEGER NOT NULL
		);
	`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	return err
}
