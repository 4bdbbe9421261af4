package spotify

import (
	"fmt"

	"github.com/CaelumWraith/WraithTrack/internal/domain"
)

type apiExternalURLs struct {
	Spotify string `json:"spotify"`
}

type apiImage struct {
	URL    string `json:"url"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

type apiArtist struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	URI          string          `json:"uri"`
	ExternalURLs apiExternalURLs `json:"external_urls"`
	Images       []apiImage      `json:"images"`
}

func (a *apiArtist) validate() error {
	if a.ID == "" {
		return fmt.Errorf("artist response missing id")
	}
	if a.Name == "" {
		return fmt.Errorf("artist %s missing name", a.ID)
	}
	if a.URI == "" {
		return fmt.Errorf("artist %s missing uri", a.ID)
	}
	return nil
}

func (a *apiArtist) ToDomain() *domain.Artist {
	urls := imageURLs(a.Images)
	return &domain.Artist{
		ArtistID:       a.ID,
		Name:           a.Name,
		SpotifyURL:     a.ExternalURLs.Spotify,
		SpotifyURI:     a.URI,
		ImageLargeURI:  domain.ImageURL(urls, 0),
		ImageMediumURI: domain.ImageURL(urls, 1),
		ImageThumbURI:  domain.ImageURL(urls, 2),
	}
}

type apiAlbum struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	AlbumType    string          `json:"album_type"`
	ReleaseDate  string          `json:"release_date"`
	TotalTracks  int             `json:"total_tracks"`
	URI          string          `json:"uri"`
	ExternalURLs apiExternalURLs `json:"external_urls"`
	Images       []apiImage      `json:"images"`
}

func (a *apiAlbum) validate() error {
	if a.ID == "" {
		return fmt.Errorf("album response missing id")
	}
	if a.Name == "" {
		return fmt.Errorf("album %s missing name", a.ID)
	}
	if a.URI == "" {
		return fmt.Errorf("album %s missing uri", a.ID)
	}
	if a.ReleaseDate == "" {
		return fmt.Errorf("album %s missing release_date", a.ID)
	}
	return nil
}

type apiTrack struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	TrackNumber  int             `json:"track_number"`
	DurationMS   int             `json:"duration_ms"`
	URI          string          `json:"uri"`
	ExternalURLs apiExternalURLs `json:"external_urls"`
}

func (t *apiTrack) validate() error {
	if t.ID == "" {
		return fmt.Errorf("track response missing id")
	}
	if t.Name == "" {
		return fmt.Errorf("track %s missing name", t.ID)
	}
	if t.URI == "" {
		return fmt.Errorf("track %s missing uri", t.ID)
	}
	return nil
}

type apiAlbumPage struct {
	Items []apiAlbum `json:"items"`
	Next  *string    `json:"next"`
}

type apiTrackPage struct {
	Items []apiTrack `json:"items"`
	Next  *string    `json:"next"`
}

type apiTokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

func imageURLs(images []apiImage) []string {
	urls := make([]string, 0, len(images))
	for _, img := range images {
		urls = append(urls, img.URL)
	}
	return urls
}

// AlbumEntry is one item from the artist-albums listing, covering both
// full albums and singles.
type AlbumEntry struct {
	ID          string
	Name        string
	AlbumType   string
	ReleaseDate string
	TotalTracks int
	SpotifyURL  string
	SpotifyURI  string
	ImageURLs   []string
}

func (a *apiAlbum) toEntry() AlbumEntry {
	return AlbumEntry{
		ID:          a.ID,
		Name:        a.Name,
		AlbumType:   a.AlbumType,
		ReleaseDate: a.ReleaseDate,
		TotalTracks: a.TotalTracks,
		SpotifyURL:  a.ExternalURLs.Spotify,
		SpotifyURI:  a.URI,
		ImageURLs:   imageURLs(a.Images),
	}
}

// ToAlbum converts a full-album entry into its store row.
func (a AlbumEntry) ToAlbum(artistID string) *domain.Album {
	return &domain.Album{
		AlbumID:        a.ID,
		ArtistID:       artistID,
		Name:           a.Name,
		ReleaseDate:    a.ReleaseDate,
		TrackCount:     a.TotalTracks,
		SpotifyURL:     a.SpotifyURL,
		SpotifyURI:     a.SpotifyURI,
		QRCodeURL:      domain.QRCodeURL(a.SpotifyURI),
		AlbumType:      a.AlbumType,
		ImageLargeURI:  domain.ImageURL(a.ImageURLs, 0),
		ImageMediumURI: domain.ImageURL(a.ImageURLs, 1),
		ImageThumbURI:  domain.ImageURL(a.ImageURLs, 2),
	}
}

// TrackEntry is one item from an album's track listing. The upstream
// track listing carries no artwork or release date; those are inherited
// from the owning album entry at conversion time.
type TrackEntry struct {
	ID          string
	Name        string
	TrackNumber int
	DurationMS  int
	SpotifyURL  string
	SpotifyURI  string
}

func (t *apiTrack) toEntry() TrackEntry {
	return TrackEntry{
		ID:          t.ID,
		Name:        t.Name,
		TrackNumber: t.TrackNumber,
		DurationMS:  t.DurationMS,
		SpotifyURL:  t.ExternalURLs.Spotify,
		SpotifyURI:  t.URI,
	}
}

// ToAlbumSong converts a track into a song row owned by its album,
// inheriting the album's artwork and release date.
func (t TrackEntry) ToAlbumSong(album *domain.Album) *domain.Song {
	trackNumber := t.TrackNumber
	albumID := album.AlbumID
	song := &domain.Song{
		SongID:         t.ID,
		ArtistID:       album.ArtistID,
		AlbumID:        &albumID,
		Name:           t.Name,
		ReleaseDate:    album.ReleaseDate,
		TrackNumber:    &trackNumber,
		DurationMS:     t.DurationMS,
		SpotifyURL:     t.SpotifyURL,
		SpotifyURI:     t.SpotifyURI,
		ImageLargeURI:  album.ImageLargeURI,
		ImageMediumURI: album.ImageMediumURI,
		ImageThumbURI:  album.ImageThumbURI,
	}
	song.Normalize()
	return song
}

// ToSingleSong converts a track nested under a single-type entry into a
// standalone song row with no album, no track number.
func (t TrackEntry) ToSingleSong(artistID string, entry AlbumEntry) *domain.Song {
	song := &domain.Song{
		SongID:         t.ID,
		ArtistID:       artistID,
		Name:           t.Name,
		ReleaseDate:    entry.ReleaseDate,
		DurationMS:     t.DurationMS,
		SpotifyURL:     t.SpotifyURL,
		SpotifyURI:     t.SpotifyURI,
		ImageLargeURI:  domain.ImageURL(entry.ImageURLs, 0),
		ImageMediumURI: domain.ImageURL(entry.ImageURLs, 1),
		ImageThumbURI:  domain.ImageURL(entry.ImageURLs, 2),
	}
	song.Normalize()
	return song
}
