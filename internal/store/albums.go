package store

import (
	"fmt"

	"github.com/CaelumWraith/WraithTrack/internal/domain"
)

// UpsertAlbum inserts or replaces one album row by primary key.
func (db *DB) UpsertAlbum(album *domain.Album) error {
	query := `INSERT OR REPLACE INTO albums (
		album_id, artist_id, name, release_date, track_count,
		spotify_url, spotify_uri, qr_code_url, album_type,
		image_large_uri, image_medium_uri, image_thumb_uri
	) VALUES (
		:album_id, :artist_id, :name, :release_date, :track_count,
		:spotify_url, :spotify_uri, :qr_code_url, :album_type,
		:image_large_uri, :image_medium_uri, :image_thumb_uri
	)`

	if _, err := db.NamedExec(query, album); err != nil {
		return fmt.Errorf("failed to upsert album %s: %w", album.AlbumID, err)
	}
	return nil
}
