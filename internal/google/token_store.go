package google

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"golang.org/x/oauth2"
)

// StoredToken is the authorized-user token document persisted at the token
// path. The field set matches what previous releases and the Google auth
// libraries write, so existing token files keep working.
type StoredToken struct {
	Token        string    `json:"token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	TokenURI     string    `json:"token_uri,omitempty"`
	ClientID     string    `json:"client_id,omitempty"`
	ClientSecret string    `json:"client_secret,omitempty"`
	Scopes       []string  `json:"scopes,omitempty"`
	Expiry       time.Time `json:"expiry"`
}

// OAuthToken converts the stored document into an oauth2 token.
func (t *StoredToken) OAuthToken() *oauth2.Token {
	return &oauth2.Token{
		AccessToken:  t.Token,
		TokenType:    "Bearer",
		RefreshToken: t.RefreshToken,
		Expiry:       t.Expiry,
	}
}

// OAuthConfig builds the oauth2 config needed to refresh the stored token.
// The returned config has no client ID when the document predates client
// metadata persistence; callers must treat that as non-refreshable.
func (t *StoredToken) OAuthConfig() *oauth2.Config {
	tokenURL := t.TokenURI
	if tokenURL == "" {
		tokenURL = "https://oauth2.googleapis.com/token"
	}
	return &oauth2.Config{
		ClientID:     t.ClientID,
		ClientSecret: t.ClientSecret,
		Endpoint: oauth2.Endpoint{
			AuthURL:  "https://accounts.google.com/o/oauth2/auth",
			TokenURL: tokenURL,
		},
		Scopes: t.Scopes,
	}
}

// HasScopes reports whether the stored token was issued for a superset of
// the requested scopes.
func (t *StoredToken) HasScopes(scopes []string) bool {
	granted := make(map[string]bool, len(t.Scopes))
	for _, s := range t.Scopes {
		granted[s] = true
	}
	for _, s := range scopes {
		if !granted[s] {
			return false
		}
	}
	return true
}

// TokenStore persists a single StoredToken document to disk.
//
// Writes are whole-file replacements: the new document goes to a temp file
// in the same directory which is then renamed over the target, so a crash
// mid-write leaves either the old or the new complete file. An advisory
// flock serializes writers sharing one token file.
type TokenStore struct {
	path string
}

// NewTokenStore creates a token store for the given file path.
func NewTokenStore(path string) *TokenStore {
	return &TokenStore{path: path}
}

// Path returns the token file path.
func (s *TokenStore) Path() string {
	return s.path
}

// Exists reports whether a token file is present.
func (s *TokenStore) Exists() bool {
	if s.path == "" {
		return false
	}
	_, err := os.Stat(s.path)
	return err == nil
}

// Load reads and parses the token file.
func (s *TokenStore) Load() (*StoredToken, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read token file %s: %w", s.path, err)
	}

	var tok StoredToken
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse token file %s: %w", s.path, err)
	}
	return &tok, nil
}

// Save writes the token document, replacing any existing file.
func (s *TokenStore) Save(tok *StoredToken) error {
	if s.path == "" {
		return fmt.Errorf("token path is not configured")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}

	lock := flock.New(s.path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to lock token file: %w", err)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	data, err := json.Marshal(tok)
	if err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp token file: %w", err)
	}
	tmpName := tmp.Name()

	if err := tmp.Chmod(0600); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to set token file permissions: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write token file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close temp token file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace token file: %w", err)
	}
	return nil
}
