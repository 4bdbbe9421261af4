package main

import (
	"context"
	"net/http"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/CaelumWraith/WraithTrack/internal/config"
	"github.com/CaelumWraith/WraithTrack/internal/disco"
	"github.com/CaelumWraith/WraithTrack/internal/logger"
	"github.com/CaelumWraith/WraithTrack/internal/pipeline"
	"github.com/CaelumWraith/WraithTrack/internal/spotify"
	"github.com/CaelumWraith/WraithTrack/internal/store"
	"github.com/CaelumWraith/WraithTrack/internal/story"
	"github.com/CaelumWraith/WraithTrack/internal/web"
)

type args struct {
	NewDB            bool   `arg:"--newdb" help:"recreate the database before anything else"`
	RefreshData      bool   `arg:"--refresh-data" help:"fetch fresh data from the Spotify API"`
	BuildDiscography bool   `arg:"--build-discography" help:"generate discography.html"`
	GenerateStory    string `arg:"--generate-story" placeholder:"SONG" help:"generate a story image for a song"`
	OutputPath       string `arg:"--output-path" help:"output directory for generated files (default: current directory)"`
	Serve            bool   `arg:"--serve" help:"serve the discography over HTTP"`
	Verbose          bool   `arg:"--verbose" help:"enable debug logging"`
}

func (args) Description() string {
	return "artistrack - track an artist's discography"
}

func main() {
	var a args
	arg.MustParse(&a)

	cfg := config.Load()
	if a.Verbose {
		cfg.LogLevel = "debug"
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	if err := cfg.Validate(); err != nil {
		log.Error("configuration error", "error", err)
		os.Exit(1)
	}

	db, err := store.NewSQLiteDB(cfg.DBPath)
	if err != nil {
		log.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if a.NewDB {
		if err := db.RecreateSchema(); err != nil {
			log.Error("failed to recreate store", "error", err)
			os.Exit(1)
		}
		log.Info("store recreated", "path", cfg.DBPath)
	}

	ctx := context.Background()

	if a.RefreshData {
		if err := cfg.ValidateCredentials(); err != nil {
			log.Error("configuration error", "error", err)
			os.Exit(1)
		}
		client, err := spotify.NewClient(spotify.ClientConfig{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			DataDir:      cfg.DataDir,
			Logger:       log,
		})
		if err != nil {
			log.Error("failed to build client", "error", err)
			os.Exit(1)
		}

		summary, err := pipeline.New(client, db, log).Run(ctx, cfg.ArtistID)
		if err != nil {
			log.Error("sync failed", "error", err)
			os.Exit(1)
		}
		log.Info("sync finished", "summary", summary.String())
	}

	if a.BuildDiscography {
		d, err := db.GetDiscography(cfg.ArtistID)
		if err != nil {
			log.Error("failed to load discography", "error", err)
			os.Exit(1)
		}
		if d == nil {
			log.Error("no data for artist; run with --refresh-data first", "artist_id", cfg.ArtistID)
			os.Exit(1)
		}
		if _, err := disco.Render(d, a.OutputPath, log); err != nil {
			log.Error("failed to generate discography", "error", err)
			os.Exit(1)
		}
	}

	if a.GenerateStory != "" {
		song, err := db.FindSongByName(a.GenerateStory)
		if err != nil {
			log.Error("song lookup failed", "error", err)
			os.Exit(1)
		}
		if song == nil {
			// A missing song is a normal outcome, not a failure
			log.Info("song not found in database", "song", a.GenerateStory)
		} else {
			path, err := story.NewRenderer(log).Create(ctx, song, a.OutputPath)
			if err != nil {
				log.Error("failed to generate story", "error", err)
				os.Exit(1)
			}
			log.Info("story written", "path", path)
		}
	}

	if a.Serve {
		r := chi.NewRouter()
		r.Use(middleware.Logger)
		r.Use(middleware.Recoverer)
		web.NewHandler(db, cfg.ArtistID, log).RegisterRoutes(r)

		log.Info("serving discography", "port", cfg.Port)
		if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}
}
