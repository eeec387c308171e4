package state

import (
	"context"
	"database/sql"

	dbutil "github.com/llehouerou/playring/internal/db"
	"github.com/llehouerou/playring/internal/playlist"
)

// SaveLibrary replaces the stored library with ps.
// Tracks are stored in ring order starting from the front, so a reload
// rebuilds every ring with the same front and last track.
func (m *Manager) SaveLibrary(ctx context.Context, ps []*playlist.Playlist) error {
	return saveLibrary(ctx, m.db, ps)
}

// LoadLibrary returns the stored playlists in library order.
// An empty database yields no playlists.
func (m *Manager) LoadLibrary(ctx context.Context) ([]*playlist.Playlist, error) {
	return loadLibrary(ctx, m.db)
}

func saveLibrary(ctx context.Context, sqlDB *sql.DB, ps []*playlist.Playlist) error {
	return dbutil.WithTx(ctx, sqlDB, func(tx *sql.Tx) error {
		// Clear existing library
		if _, err := tx.ExecContext(ctx, `DELETE FROM playlist_tracks`); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM playlists`); err != nil {
			return err
		}

		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO playlist_tracks (playlist_id, position, name, artist, year, popularity, link)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i, p := range ps {
			result, err := tx.ExecContext(ctx, `INSERT INTO playlists (position) VALUES (?)`, i)
			if err != nil {
				return err
			}
			playlistID, err := result.LastInsertId()
			if err != nil {
				return err
			}

			position := 0
			for t := range p.All() {
				_, err = stmt.ExecContext(ctx, playlistID, position,
					t.Name, t.Artist, t.Year, t.Popularity, dbutil.NullString(t.Link))
				if err != nil {
					return err
				}
				position++
			}
		}
		return nil
	})
}

func loadLibrary(ctx context.Context, db *sql.DB) ([]*playlist.Playlist, error) {
	ids, err := playlistIDs(ctx, db)
	if err != nil {
		return nil, err
	}

	ps := make([]*playlist.Playlist, 0, len(ids))
	for _, id := range ids {
		tracks, err := playlistTracks(ctx, db, id)
		if err != nil {
			return nil, err
		}
		ps = append(ps, playlist.New(tracks...))
	}
	return ps, nil
}

func playlistIDs(ctx context.Context, db *sql.DB) ([]int64, error) {
	rows, err := db.QueryContext(ctx, `SELECT id FROM playlists ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func playlistTracks(ctx context.Context, db *sql.DB, playlistID int64) ([]playlist.Track, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT name, artist, year, popularity, link
		FROM playlist_tracks
		WHERE playlist_id = ?
		ORDER BY position
	`, playlistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tracks []playlist.Track
	for rows.Next() {
		var t playlist.Track
		var link sql.NullString
		if err := rows.Scan(&t.Name, &t.Artist, &t.Year, &t.Popularity, &link); err != nil {
			return nil, err
		}
		t.Link = dbutil.NullStringValue(link)
		tracks = append(tracks, t)
	}
	return tracks, rows.Err()
}
