// Package pipeline reconciles the remote catalog into the local store:
// fetch, normalize, upsert for one artist per run.
package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/CaelumWraith/WraithTrack/internal/constants"
	"github.com/CaelumWraith/WraithTrack/internal/domain"
	"github.com/CaelumWraith/WraithTrack/internal/logger"
	"github.com/CaelumWraith/WraithTrack/internal/spotify"
)

// Store is the write surface the pipeline needs.
type Store interface {
	UpsertArtist(*domain.Artist) error
	UpsertAlbum(*domain.Album) error
	UpsertSong(*domain.Song) error
}

// Summary reports what one sync run left in the store. Because every
// write is an upsert, the counts reflect final store state, not
// cumulative operations.
type Summary struct {
	Albums      int
	AlbumTracks int
	Singles     int
}

func (s Summary) String() string {
	return fmt.Sprintf("Albums: %d, Album Tracks: %d, Singles: %d", s.Albums, s.AlbumTracks, s.Singles)
}

// Pipeline runs one catalog synchronization. A failed run logs and
// returns; the next invocation starts over and repairs state through
// upsert idempotence.
type Pipeline struct {
	client spotify.ClientInterface
	store  Store
	log    *logger.Logger
}

func New(client spotify.ClientInterface, store Store, log *logger.Logger) *Pipeline {
	if log == nil {
		log = logger.Default()
	}
	return &Pipeline{
		client: client,
		store:  store,
		log:    log.WithComponent("pipeline"),
	}
}

// Run synchronizes one artist's full catalog and returns the summary.
func (p *Pipeline) Run(ctx context.Context, artistID string) (*Summary, error) {
	log := p.log.WithRun(uuid.NewString())

	log.Info("fetching artist data", "artist_id", artistID)
	artist, err := p.client.GetArtist(ctx, artistID)
	if err != nil {
		return nil, fmt.Errorf("fetch artist: %w", err)
	}
	if err := p.store.UpsertArtist(artist); err != nil {
		return nil, fmt.Errorf("save artist: %w", err)
	}

	log.Info("fetching artist albums")
	entries, err := p.client.GetAllAlbums(ctx, artistID)
	if err != nil {
		return nil, fmt.Errorf("fetch albums: %w", err)
	}

	summary := &Summary{}

	// First pass: full albums and their tracks. Track IDs seen here
	// feed the dedupe set for the singles pass.
	seen := make(map[string]bool)
	for i, entry := range entries {
		if entry.AlbumType != constants.AlbumTypeAlbum {
			continue
		}
		album := entry.ToAlbum(artistID)
		if err := p.store.UpsertAlbum(album); err != nil {
			return nil, fmt.Errorf("save album %s: %w", album.AlbumID, err)
		}

		tracks, err := p.client.GetAlbumTracks(ctx, album.AlbumID)
		if err != nil {
			return nil, fmt.Errorf("fetch tracks for album %s: %w", album.AlbumID, err)
		}
		for _, track := range tracks {
			song := track.ToAlbumSong(album)
			if err := p.store.UpsertSong(song); err != nil {
				return nil, fmt.Errorf("save song %s: %w", song.SongID, err)
			}
			seen[track.ID] = true
			summary.AlbumTracks++
		}

		summary.Albums++
		log.Info(fmt.Sprintf("[%d/%d] saved album", i+1, len(entries)),
			"album", album.Name, "tracks", len(tracks))
	}

	// Second pass: singles. Upstream models a single as a one-track
	// pseudo-album; a track already captured under a full album stays
	// with that album.
	for i, entry := range entries {
		if entry.AlbumType != constants.AlbumTypeSingle {
			continue
		}
		tracks, err := p.client.GetAlbumTracks(ctx, entry.ID)
		if err != nil {
			return nil, fmt.Errorf("fetch tracks for single %s: %w", entry.ID, err)
		}
		saved := 0
		for _, track := range tracks {
			if seen[track.ID] {
				continue
			}
			song := track.ToSingleSong(artistID, entry)
			if err := p.store.UpsertSong(song); err != nil {
				return nil, fmt.Errorf("save single %s: %w", song.SongID, err)
			}
			seen[track.ID] = true
			summary.Singles++
			saved++
		}
		log.Info(fmt.Sprintf("[%d/%d] saved single", i+1, len(entries)),
			"single", entry.Name, "tracks", saved)
	}

	log.Info("sync completed", "summary", summary.String())
	return summary, nil
}
