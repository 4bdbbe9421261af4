package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/CaelumWraith/WraithTrack/internal/domain"
)

// UpsertSong inserts or replaces one song row by primary key.
// Derived fields are rewritten from their sources on every write.
func (db *DB) UpsertSong(song *domain.Song) error {
	song.Normalize()

	query := `INSERT OR REPLACE INTO songs (
		song_id, artist_id, album_id, name, release_date,
		track_number, duration_ms, duration, spotify_url,
		spotify_uri, qr_code_url, is_single,
		image_large_uri, image_medium_uri, image_thumb_uri
	) VALUES (
		:song_id, :artist_id, :album_id, :name, :release_date,
		:track_number, :duration_ms, :duration, :spotify_url,
		:spotify_uri, :qr_code_url, :is_single,
		:image_large_uri, :image_medium_uri, :image_thumb_uri
	)`

	if _, err := db.NamedExec(query, song); err != nil {
		return fmt.Errorf("failed to upsert song %s: %w", song.SongID, err)
	}
	return nil
}

// FindSongByName returns the song whose name matches case-insensitively,
// or nil when no row matches. A missing song is a normal outcome for
// callers, not an error.
func (db *DB) FindSongByName(name string) (*domain.Song, error) {
	var song domain.Song
	err := db.Get(&song, `SELECT * FROM songs WHERE LOWER(name) = LOWER(?)`, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil // Not found
	}
	if err != nil {
		return nil, err
	}
	return &song, nil
}

// CountSongs reports the row counts used by the sync summary.
func (db *DB) CountSongs() (albumTracks, singles int, err error) {
	if err = db.Get(&albumTracks, `SELECT COUNT(*) FROM songs WHERE album_id IS NOT NULL`); err != nil {
		return 0, 0, err
	}
	if err = db.Get(&singles, `SELECT COUNT(*) FROM songs WHERE album_id IS NULL`); err != nil {
		return 0, 0, err
	}
	return albumTracks, singles, nil
}
