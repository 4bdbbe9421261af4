// Package web serves the discography over HTTP in --serve mode.
package web

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/CaelumWraith/WraithTrack/internal/disco"
	"github.com/CaelumWraith/WraithTrack/internal/logger"
	"github.com/CaelumWraith/WraithTrack/internal/store"
)

type Handler struct {
	DB       *store.DB
	ArtistID string
	Log      *logger.Logger
}

func NewHandler(db *store.DB, artistID string, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Default()
	}
	return &Handler{
		DB:       db,
		ArtistID: artistID,
		Log:      log.WithComponent("web"),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.DiscographyPage)
	r.Get("/api/discography", h.DiscographyJSON)
	r.Get("/api/songs/{name}", h.SongJSON)
}

// DiscographyPage renders the same HTML report the CLI writes to disk.
func (h *Handler) DiscographyPage(w http.ResponseWriter, r *http.Request) {
	d, err := h.DB.GetDiscography(h.ArtistID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if d == nil {
		http.Error(w, "artist not synced yet", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := disco.Write(d, w); err != nil {
		h.Log.Error("failed to render discography page", "error", err)
	}
}

func (h *Handler) DiscographyJSON(w http.ResponseWriter, r *http.Request) {
	d, err := h.DB.GetDiscography(h.ArtistID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if d == nil {
		http.Error(w, "artist not synced yet", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(d); err != nil {
		h.Log.Error("failed to encode discography", "error", err)
	}
}

func (h *Handler) SongJSON(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	song, err := h.DB.FindSongByName(name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if song == nil {
		http.Error(w, "song not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(song); err != nil {
		h.Log.Error("failed to encode song", "error", err)
	}
}
