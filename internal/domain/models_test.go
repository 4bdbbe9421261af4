package domain

import "testing"

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		ms   int
		want string
	}{
		{0, "0:00"},
		{1000, "0:01"},
		{59999, "0:59"},
		{60000, "1:00"},
		{61000, "1:01"},
		{185000, "3:05"},
		{3599999, "59:59"},
		{3600000, "60:00"},
	}

	for _, c := range cases {
		got := FormatDuration(c.ms)
		if got != c.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", c.ms, got, c.want)
		}
	}
}

func TestQRCodeURL(t *testing.T) {
	uri := "spotify:track:abc123"
	got := QRCodeURL(uri)
	want := "https://scannables.scdn.co/uri/plain/png/ffffff/black/640/spotify:track:abc123"
	if got != want {
		t.Errorf("QRCodeURL(%q) = %q, want %q", uri, got, want)
	}

	// Pure function: same input, same output; different inputs differ
	if QRCodeURL(uri) != got {
		t.Error("QRCodeURL is not deterministic")
	}
	if QRCodeURL("spotify:track:other") == got {
		t.Error("QRCodeURL should differ for different URIs")
	}
}

func TestImageURL(t *testing.T) {
	urls := []string{"large.jpg", "medium.jpg"}

	if got := ImageURL(urls, 0); got != "large.jpg" {
		t.Errorf("Expected 'large.jpg', got %q", got)
	}
	if got := ImageURL(urls, 1); got != "medium.jpg" {
		t.Errorf("Expected 'medium.jpg', got %q", got)
	}
	// Index past the end maps to empty string, never panics
	if got := ImageURL(urls, 2); got != "" {
		t.Errorf("Expected empty string for missing index, got %q", got)
	}
	if got := ImageURL(nil, 0); got != "" {
		t.Errorf("Expected empty string for nil list, got %q", got)
	}
}

func TestSongNormalize(t *testing.T) {
	albumID := "album1"
	trackNo := 3
	song := Song{
		SongID:      "song1",
		ArtistID:    "artist1",
		AlbumID:     &albumID,
		TrackNumber: &trackNo,
		DurationMS:  185000,
		SpotifyURI:  "spotify:track:song1",
	}

	song.Normalize()

	if song.Duration != "3:05" {
		t.Errorf("Expected duration '3:05', got %q", song.Duration)
	}
	if song.IsSingle {
		t.Error("Song with album ID should not be a single")
	}
	if song.QRCodeURL != QRCodeURL("spotify:track:song1") {
		t.Errorf("Unexpected QR code URL %q", song.QRCodeURL)
	}

	// A single has no album and no track number
	single := Song{SongID: "song2", DurationMS: 0}
	single.Normalize()

	if !single.IsSingle {
		t.Error("Song without album ID should be a single")
	}
	if single.Duration != "0:00" {
		t.Errorf("Expected duration '0:00', got %q", single.Duration)
	}
}

func TestDiscographyViews(t *testing.T) {
	albumID := "album1"
	disco := Discography{
		Artist: Artist{ArtistID: "artist1"},
		Songs: []Song{
			{SongID: "t1", AlbumID: &albumID},
			{SongID: "t2", AlbumID: &albumID},
			{SongID: "s1", IsSingle: true},
		},
	}

	if got := len(disco.AlbumTracks("album1")); got != 2 {
		t.Errorf("Expected 2 album tracks, got %d", got)
	}
	if got := len(disco.AlbumTracks("other")); got != 0 {
		t.Errorf("Expected 0 tracks for unknown album, got %d", got)
	}
	if got := len(disco.Singles()); got != 1 {
		t.Errorf("Expected 1 single, got %d", got)
	}
}
