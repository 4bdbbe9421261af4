package spotify

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/CaelumWraith/WraithTrack/internal/constants"
)

// TokenCache persists the bearer token between runs so repeated
// invocations avoid re-authenticating.
type TokenCache struct {
	path string
	now  func() time.Time
}

func NewTokenCache(dataDir string) *TokenCache {
	return &TokenCache{
		path: filepath.Join(dataDir, constants.TokenCacheFile),
		now:  time.Now,
	}
}

type cachedToken struct {
	Token string `json:"token"`
	// Expires is the upstream expires_in hint in seconds. Advisory
	// only; freshness is judged by the cached-at timestamp.
	Expires   int       `json:"expires"`
	Timestamp time.Time `json:"timestamp"`
}

// Load returns the cached token when it was saved within the freshness
// window. Any read or parse failure is a cache miss, never fatal.
func (c *TokenCache) Load() (token string, expiresIn int, ok bool) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return "", 0, false
	}

	var cached cachedToken
	if err := json.Unmarshal(data, &cached); err != nil {
		return "", 0, false
	}
	if cached.Token == "" {
		return "", 0, false
	}
	if c.now().Sub(cached.Timestamp) >= constants.TokenFreshness {
		return "", 0, false
	}
	return cached.Token, cached.Expires, true
}

// Save writes the token with the current timestamp.
func (c *TokenCache) Save(token string, expiresIn int) error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cachedToken{
		Token:     token,
		Expires:   expiresIn,
		Timestamp: c.now(),
	}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.path, data, 0o600)
}
