package disco

import (
	"os"
	"strings"
	"testing"

	"github.com/CaelumWraith/WraithTrack/internal/domain"
)

func TestFormatReleaseDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2024-03-01", "March 1, 2024"},
		{"2024-03", "March 2024"},
		{"2024", "2024"},
		{"", "Unknown Date"},
		{"03/01/2024", "Invalid Date Format"},
		{"2024-13-99", "Invalid Date Format"},
	}

	for _, c := range cases {
		if got := FormatReleaseDate(c.in); got != c.want {
			t.Errorf("FormatReleaseDate(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestRender(t *testing.T) {
	albumID := "alb1"
	trackNo := 1
	disco := &domain.Discography{
		Artist: domain.Artist{ArtistID: "artist1", Name: "Caelum Wraith"},
		Albums: []domain.Album{
			{
				AlbumID:     albumID,
				ArtistID:    "artist1",
				Name:        "First Album",
				ReleaseDate: "2024-03-01",
				TrackCount:  1,
				SpotifyURL:  "https://open.spotify.com/album/alb1",
				QRCodeURL:   domain.QRCodeURL("spotify:album:alb1"),
			},
		},
		Songs: []domain.Song{
			{
				SongID: "t1", ArtistID: "artist1", AlbumID: &albumID,
				Name: "Opener", TrackNumber: &trackNo, Duration: "3:05",
				SpotifyURL: "https://open.spotify.com/track/t1",
			},
			{
				SongID: "s1", ArtistID: "artist1", IsSingle: true,
				Name: "Lone Single", ReleaseDate: "2024-06-01", Duration: "3:21",
				SpotifyURL: "https://open.spotify.com/track/s1",
			},
		},
	}

	outDir := t.TempDir()
	path, err := Render(disco, outDir, nil)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	html := string(data)

	for _, want := range []string{
		"Caelum Wraith Discography",
		"First Album",
		"March 1, 2024",
		"Opener",
		"Lone Single",
		"June 1, 2024",
		"3:21",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("Report missing %q", want)
		}
	}
}

func TestRender_EmptyDiscography(t *testing.T) {
	disco := &domain.Discography{
		Artist: domain.Artist{ArtistID: "artist1", Name: "Caelum Wraith"},
	}

	path, err := Render(disco, t.TempDir(), nil)
	if err != nil {
		t.Fatalf("Render failed for empty discography: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected report file to exist: %v", err)
	}
}
