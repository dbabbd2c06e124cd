package state

import (
	"database/sql"
	"errors"
	"time"

	"github.com/samber/lo"

	dbutil "github.com/llehouerou/reel/internal/db"
)

// ClipStats is the play history of one clip.
type ClipStats struct {
	Plays      int
	LastPlayed time.Time // zero if never played
}

func recordPlay(db *sql.DB, key string, at time.Time) error {
	_, err := db.Exec(`
		INSERT INTO clip_plays (clip_key, plays, last_played_at)
		VALUES (?, 1, ?)
		ON CONFLICT(clip_key) DO UPDATE SET
			plays = plays + 1,
			last_played_at = excluded.last_played_at
	`, key, at.Unix())
	return err
}

func getStats(db *sql.DB, key string) (ClipStats, error) {
	var plays int
	var last int64
	err := db.QueryRow(`
		SELECT plays, last_played_at FROM clip_plays WHERE clip_key = ?
	`, key).Scan(&plays, &last)
	if errors.Is(err, sql.ErrNoRows) {
		return ClipStats{}, nil
	}
	if err != nil {
		return ClipStats{}, err
	}
	return ClipStats{Plays: plays, LastPlayed: time.Unix(last, 0)}, nil
}

// prune drops the history of clips not in keep and returns how many were
// removed.
func prune(db *sql.DB, keep []string) (int, error) {
	rows, err := db.Query(`SELECT clip_key FROM clip_plays`)
	if err != nil {
		return 0, err
	}
	var stored []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			rows.Close()
			return 0, err
		}
		stored = append(stored, key)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, err
	}

	stale := lo.Without(stored, keep...)
	if len(stale) == 0 {
		return 0, nil
	}

	err = dbutil.WithTx(db, func(tx *sql.Tx) error {
		for _, key := range stale {
			if _, err := tx.Exec(`DELETE FROM clip_plays WHERE clip_key = ?`, key); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(stale), nil
}
