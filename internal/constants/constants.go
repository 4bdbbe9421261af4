// Package constants contains application-wide constants to avoid magic numbers and strings.
package constants

import "time"

// Application defaults
const (
	DefaultPort      = "8080"
	DefaultDBPath    = "data/wraith.db"
	DefaultDataDir   = "data"
	DefaultArtistID  = "16SiO2DZeffJZAKlppdOAw"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Spotify API endpoints
const (
	SpotifyAPIBaseURL = "https://api.spotify.com/v1"
	SpotifyTokenURL   = "https://accounts.spotify.com/api/token"
	SpotifyMarket     = "US"
)

// Fetch behavior
const (
	PageSize           = 50
	HTTPTimeout        = 30 * time.Second
	MinRequestInterval = 100 * time.Millisecond
	RetryCount         = 3
	RetryBase          = 1 * time.Second
)

// TokenFreshness is how long a cached bearer token is trusted,
// judged by its cached-at timestamp rather than the advisory
// expires_in hint.
const TokenFreshness = 1 * time.Hour

// Cache file names inside the data directory
const (
	TokenCacheFile    = "bearer_token.json"
	ArtistCacheSuffix = "__artist_data.json"
)

// QRCodeURLTemplate renders a scannable code for any Spotify URI.
const QRCodeURLTemplate = "https://scannables.scdn.co/uri/plain/png/ffffff/black/640/%s"

// Album types as reported by the albums endpoint
const (
	AlbumTypeAlbum       = "album"
	AlbumTypeSingle      = "single"
	AlbumTypeCompilation = "compilation"
)

// Story image layout
const (
	StoryWidth   = 1080
	StoryHeight  = 1300
	StorySidePad = 100
)
