package story

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/CaelumWraith/WraithTrack/internal/constants"
	"github.com/CaelumWraith/WraithTrack/internal/domain"
)

func coverArtServer(t *testing.T) *httptest.Server {
	t.Helper()
	art := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for x := 0; x < 64; x++ {
		for y := 0; y < 64; y++ {
			art.Set(x, y, color.RGBA{uint8(x * 4), 0, uint8(y * 4), 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, art); err != nil {
		t.Fatalf("png encode failed: %v", err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(buf.Bytes())
	}))
	t.Cleanup(server.Close)
	return server
}

func TestCreate(t *testing.T) {
	server := coverArtServer(t)
	outDir := t.TempDir()

	song := &domain.Song{
		SongID:        "s1",
		Name:          "Ghost Signal",
		Duration:      "3:05",
		ImageLargeURI: server.URL + "/art.png",
	}

	r := NewRenderer(nil)
	path, err := r.Create(context.Background(), song, outDir)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Generated story is not a valid PNG: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != constants.StoryWidth || bounds.Dy() != constants.StoryHeight {
		t.Errorf("Expected %dx%d canvas, got %dx%d",
			constants.StoryWidth, constants.StoryHeight, bounds.Dx(), bounds.Dy())
	}
}

func TestCreate_NoCoverArt(t *testing.T) {
	r := NewRenderer(nil)
	song := &domain.Song{SongID: "s1", Name: "No Art"}

	if _, err := r.Create(context.Background(), song, t.TempDir()); err == nil {
		t.Fatal("Expected error for song without cover art")
	}
}

func TestCreate_FetchFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	r := NewRenderer(nil)
	song := &domain.Song{SongID: "s1", Name: "Gone", ImageLargeURI: server.URL + "/gone.png"}

	if _, err := r.Create(context.Background(), song, t.TempDir()); err == nil {
		t.Fatal("Expected error for failed art fetch")
	}
}

func TestFileName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Ghost Signal", "ghost_signal_story.png"},
		{"What?!", "what_story.png"},
		{"already_safe", "already_safe_story.png"},
	}

	for _, c := range cases {
		if got := fileName(c.in); got != c.want {
			t.Errorf("fileName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
