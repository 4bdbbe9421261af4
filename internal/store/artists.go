package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/CaelumWraith/WraithTrack/internal/domain"
)

// UpsertArtist inserts or replaces one artist row by primary key.
func (db *DB) UpsertArtist(artist *domain.Artist) error {
	query := `INSERT OR REPLACE INTO artists (
		artist_id, name, spotify_url, spotify_uri,
		image_large_uri, image_medium_uri, image_thumb_uri
	) VALUES (
		:artist_id, :name, :spotify_url, :spotify_uri,
		:image_large_uri, :image_medium_uri, :image_thumb_uri
	)`

	if _, err := db.NamedExec(query, artist); err != nil {
		return fmt.Errorf("failed to upsert artist %s: %w", artist.ArtistID, err)
	}
	return nil
}

// GetArtist returns the artist row, or nil when no row matches.
func (db *DB) GetArtist(artistID string) (*domain.Artist, error) {
	var artist domain.Artist
	err := db.Get(&artist, `SELECT * FROM artists WHERE artist_id = ?`, artistID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil // Not found
	}
	if err != nil {
		return nil, err
	}
	return &artist, nil
}

// GetDiscography joins one artist to all its albums and songs,
// both ordered by release date descending.
func (db *DB) GetDiscography(artistID string) (*domain.Discography, error) {
	artist, err := db.GetArtist(artistID)
	if err != nil {
		return nil, err
	}
	if artist == nil {
		return nil, nil
	}

	var albums []domain.Album
	err = db.Select(&albums,
		`SELECT * FROM albums WHERE artist_id = ? ORDER BY release_date DESC`, artistID)
	if err != nil {
		return nil, fmt.Errorf("failed to load albums: %w", err)
	}

	var songs []domain.Song
	err = db.Select(&songs,
		`SELECT * FROM songs WHERE artist_id = ? ORDER BY release_date DESC, track_number ASC`, artistID)
	if err != nil {
		return nil, fmt.Errorf("failed to load songs: %w", err)
	}

	return &domain.Discography{
		Artist: *artist,
		Albums: albums,
		Songs:  songs,
	}, nil
}
