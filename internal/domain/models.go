// Package domain holds the catalog entities persisted by the store.
package domain

import (
	"fmt"

	"github.com/CaelumWraith/WraithTrack/internal/constants"
)

// Artist is one tracked artist.
type Artist struct {
	ArtistID       string `json:"artist_id" db:"artist_id"`
	Name           string `json:"name" db:"name"`
	SpotifyURL     string `json:"spotify_url" db:"spotify_url"`
	SpotifyURI     string `json:"spotify_uri" db:"spotify_uri"`
	ImageLargeURI  string `json:"image_large_uri" db:"image_large_uri"`
	ImageMediumURI string `json:"image_medium_uri" db:"image_medium_uri"`
	ImageThumbURI  string `json:"image_thumb_uri" db:"image_thumb_uri"`
}

// Album is a full album release. Singles are stored as Songs, not Albums.
type Album struct {
	AlbumID        string `json:"album_id" db:"album_id"`
	ArtistID       string `json:"artist_id" db:"artist_id"`
	Name           string `json:"name" db:"name"`
	ReleaseDate    string `json:"release_date" db:"release_date"`
	TrackCount     int    `json:"track_count" db:"track_count"`
	SpotifyURL     string `json:"spotify_url" db:"spotify_url"`
	SpotifyURI     string `json:"spotify_uri" db:"spotify_uri"`
	QRCodeURL      string `json:"qr_code_url" db:"qr_code_url"`
	AlbumType      string `json:"album_type" db:"album_type"`
	ImageLargeURI  string `json:"image_large_uri" db:"image_large_uri"`
	ImageMediumURI string `json:"image_medium_uri" db:"image_medium_uri"`
	ImageThumbURI  string `json:"image_thumb_uri" db:"image_thumb_uri"`
}

// Song is a track, either belonging to an album or a standalone single.
// AlbumID is nil exactly when the song is a single.
type Song struct {
	SongID         string  `json:"song_id" db:"song_id"`
	ArtistID       string  `json:"artist_id" db:"artist_id"`
	AlbumID        *string `json:"album_id,omitempty" db:"album_id"`
	Name           string  `json:"name" db:"name"`
	ReleaseDate    string  `json:"release_date" db:"release_date"`
	TrackNumber    *int    `json:"track_number,omitempty" db:"track_number"`
	DurationMS     int     `json:"duration_ms" db:"duration_ms"`
	Duration       string  `json:"duration" db:"duration"`
	SpotifyURL     string  `json:"spotify_url" db:"spotify_url"`
	SpotifyURI     string  `json:"spotify_uri" db:"spotify_uri"`
	QRCodeURL      string  `json:"qr_code_url" db:"qr_code_url"`
	IsSingle       bool    `json:"is_single" db:"is_single"`
	ImageLargeURI  string  `json:"image_large_uri" db:"image_large_uri"`
	ImageMediumURI string  `json:"image_medium_uri" db:"image_medium_uri"`
	ImageThumbURI  string  `json:"image_thumb_uri" db:"image_thumb_uri"`
}

// Normalize rederives the fields that must stay consistent with their
// source fields before any write.
func (s *Song) Normalize() {
	s.Duration = FormatDuration(s.DurationMS)
	s.IsSingle = s.AlbumID == nil
	if s.SpotifyURI != "" {
		s.QRCodeURL = QRCodeURL(s.SpotifyURI)
	}
}

// Discography is the read-only aggregate of one artist's catalog.
type Discography struct {
	Artist Artist  `json:"artist"`
	Albums []Album `json:"albums"`
	Songs  []Song  `json:"songs"`
}

// Singles returns only the standalone singles, in stored order.
func (d *Discography) Singles() []Song {
	var singles []Song
	for _, s := range d.Songs {
		if s.IsSingle {
			singles = append(singles, s)
		}
	}
	return singles
}

// AlbumTracks returns the songs belonging to one album, in stored order.
func (d *Discography) AlbumTracks(albumID string) []Song {
	var tracks []Song
	for _, s := range d.Songs {
		if s.AlbumID != nil && *s.AlbumID == albumID {
			tracks = append(tracks, s)
		}
	}
	return tracks
}

// FormatDuration converts milliseconds to a human-readable M:SS string.
func FormatDuration(ms int) string {
	minutes := ms / 60000
	seconds := (ms % 60000) / 1000
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// QRCodeURL derives the scannable-code image URL for a Spotify URI.
func QRCodeURL(uri string) string {
	return fmt.Sprintf(constants.QRCodeURLTemplate, uri)
}

// ImageURL returns the i-th image URL, or "" when the upstream image
// list is shorter than expected.
func ImageURL(urls []string, i int) string {
	if i < 0 || i >= len(urls) {
		return ""
	}
	return urls[i]
}
