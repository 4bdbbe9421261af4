// Package spotify fetches artist, album, and track metadata from the
// Spotify Web API using a client-credentials grant.
package spotify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/CaelumWraith/WraithTrack/internal/constants"
	"github.com/CaelumWraith/WraithTrack/internal/domain"
	"github.com/CaelumWraith/WraithTrack/internal/httpclient"
	"github.com/CaelumWraith/WraithTrack/internal/logger"
)

// APIError reports a failed remote fetch. The caller decides whether
// to abort the run or skip the entity.
type APIError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("spotify: %s failed with status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("spotify: %s failed: %v", e.Op, e.Err)
}

func (e *APIError) Unwrap() error { return e.Err }

// ClientInterface is the fetch surface the sync pipeline depends on.
type ClientInterface interface {
	GetArtist(ctx context.Context, artistID string) (*domain.Artist, error)
	GetAllAlbums(ctx context.Context, artistID string) ([]AlbumEntry, error)
	GetAlbumTracks(ctx context.Context, albumID string) ([]TrackEntry, error)
}

var _ ClientInterface = (*Client)(nil)

// ClientConfig configures a Client.
type ClientConfig struct {
	ClientID     string
	ClientSecret string
	DataDir      string
	BaseURL      string // defaults to the public API
	TokenURL     string // defaults to the public accounts endpoint
	Logger       *logger.Logger
}

// Client talks to the Spotify Web API. It owns its bearer token; no
// global credential state.
type Client struct {
	baseURL      string
	tokenURL     string
	clientID     string
	clientSecret string
	dataDir      string

	httpClient *httpclient.Client
	tokenCache *TokenCache
	log        *logger.Logger
	now        func() time.Time

	token string
}

// NewClient builds a client. Missing credentials are a configuration
// error: nothing downstream can run without a token.
func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, errors.New("spotify: client ID and secret must be set")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = constants.SpotifyAPIBaseURL
	}
	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		tokenURL = constants.SpotifyTokenURL
	}
	log := cfg.Logger
	if log == nil {
		log = logger.Default()
	}

	return &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		tokenURL:     tokenURL,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		dataDir:      cfg.DataDir,
		httpClient:   httpclient.NewClient(nil, constants.MinRequestInterval),
		tokenCache:   NewTokenCache(cfg.DataDir),
		log:          log.WithComponent("spotify"),
		now:          time.Now,
	}, nil
}

// EnsureValidToken returns the current bearer token, loading it from
// the on-disk cache or performing a client-credentials exchange.
func (c *Client) EnsureValidToken(ctx context.Context) (string, error) {
	if c.token != "" {
		return c.token, nil
	}

	if token, _, ok := c.tokenCache.Load(); ok {
		c.log.Debug("using cached token")
		c.token = token
		return token, nil
	}

	c.log.Debug("requesting new token")
	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {c.clientID},
		"client_secret": {c.clientSecret},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", &APIError{Op: "token exchange", Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return "", &APIError{Op: "token exchange", Err: err}
	}
	defer resp.Body.Close() //nolint:errcheck // deferred cleanup

	if resp.StatusCode != http.StatusOK {
		return "", &APIError{Op: "token exchange", StatusCode: resp.StatusCode}
	}

	var tokenResp apiTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", &APIError{Op: "token exchange", Err: err}
	}
	if tokenResp.AccessToken == "" {
		return "", &APIError{Op: "token exchange", Err: errors.New("empty access_token in response")}
	}

	if err := c.tokenCache.Save(tokenResp.AccessToken, tokenResp.ExpiresIn); err != nil {
		c.log.Warn("failed to cache token", "error", err)
	}

	c.token = tokenResp.AccessToken
	return c.token, nil
}

// GetArtist returns artist metadata, served from a same-day disk cache
// when one exists so the profile is fetched at most once per day.
func (c *Client) GetArtist(ctx context.Context, artistID string) (*domain.Artist, error) {
	cachePath := c.artistCachePath()

	if data, err := os.ReadFile(cachePath); err == nil {
		var cached apiArtist
		if json.Unmarshal(data, &cached) == nil && cached.validate() == nil {
			c.log.Debug("using cached artist data", "path", cachePath)
			return cached.ToDomain(), nil
		}
	}

	var artist apiArtist
	if err := c.get(ctx, fmt.Sprintf("%s/artists/%s", c.baseURL, artistID), "get artist", &artist); err != nil {
		return nil, err
	}
	if err := artist.validate(); err != nil {
		return nil, &APIError{Op: "get artist", Err: err}
	}

	if data, err := json.MarshalIndent(artist, "", "  "); err == nil {
		if err := os.MkdirAll(filepath.Dir(cachePath), 0o755); err == nil {
			_ = os.WriteFile(cachePath, data, 0o644)
		}
	}

	return artist.ToDomain(), nil
}

// GetAllAlbums follows pagination until exhausted and returns every
// album and single entry in upstream order.
func (c *Client) GetAllAlbums(ctx context.Context, artistID string) ([]AlbumEntry, error) {
	var entries []AlbumEntry
	offset := 0
	for {
		u := fmt.Sprintf("%s/artists/%s/albums?include_groups=album,single&limit=%d&offset=%d&market=%s",
			c.baseURL, artistID, constants.PageSize, offset, constants.SpotifyMarket)

		var page apiAlbumPage
		if err := c.get(ctx, u, "get albums", &page); err != nil {
			return nil, err
		}
		for i := range page.Items {
			if err := page.Items[i].validate(); err != nil {
				return nil, &APIError{Op: "get albums", Err: err}
			}
			entries = append(entries, page.Items[i].toEntry())
		}
		if page.Next == nil || *page.Next == "" {
			break
		}
		offset += constants.PageSize
	}
	return entries, nil
}

// GetAlbumTracks follows pagination until exhausted and returns every
// track belonging to one album.
func (c *Client) GetAlbumTracks(ctx context.Context, albumID string) ([]TrackEntry, error) {
	var entries []TrackEntry
	offset := 0
	for {
		u := fmt.Sprintf("%s/albums/%s/tracks?limit=%d&offset=%d&market=%s",
			c.baseURL, albumID, constants.PageSize, offset, constants.SpotifyMarket)

		var page apiTrackPage
		if err := c.get(ctx, u, "get album tracks", &page); err != nil {
			return nil, err
		}
		for i := range page.Items {
			if err := page.Items[i].validate(); err != nil {
				return nil, &APIError{Op: "get album tracks", Err: err}
			}
			entries = append(entries, page.Items[i].toEntry())
		}
		if page.Next == nil || *page.Next == "" {
			break
		}
		offset += constants.PageSize
	}
	return entries, nil
}

// get performs an authenticated GET and decodes the JSON response.
func (c *Client) get(ctx context.Context, u, op string, out any) error {
	token, err := c.EnsureValidToken(ctx)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &APIError{Op: op, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return &APIError{Op: op, Err: err}
	}
	defer resp.Body.Close() //nolint:errcheck // deferred cleanup

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &APIError{Op: op, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{Op: op, Err: err}
	}
	return nil
}

func (c *Client) artistCachePath() string {
	day := c.now().Format("2006-01-02")
	return filepath.Join(c.dataDir, day+constants.ArtistCacheSuffix)
}
