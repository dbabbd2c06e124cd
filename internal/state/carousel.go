package state

import (
	"database/sql"
	"errors"
	"time"

	dbutil "github.com/llehouerou/reel/internal/db"
)

// Carousel is the persisted strip position.
type Carousel struct {
	Index      int    // centered clip when saved
	ClipKey    string // identity of that clip, preferred over Index on restore
	Fullscreen bool
}

func getCarousel(db *sql.DB) (*Carousel, error) {
	row := db.QueryRow(`
		SELECT snap_index, clip_key, fullscreen
		FROM carousel_state WHERE id = 1
	`)

	var c Carousel
	var key sql.NullString
	err := row.Scan(&c.Index, &key, &c.Fullscreen)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}

	c.ClipKey = dbutil.NullStringValue(key)
	return &c, nil
}

func saveCarousel(db *sql.DB, c Carousel) error {
	_, err := db.Exec(`
		INSERT INTO carousel_state (id, snap_index, clip_key, fullscreen, updated_at)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			snap_index = excluded.snap_index,
			clip_key = excluded.clip_key,
			fullscreen = excluded.fullscreen,
			updated_at = excluded.updated_at
	`, c.Index, dbutil.NullString(c.ClipKey), c.Fullscreen, time.Now().Unix())

	return err
}
