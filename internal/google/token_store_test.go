package google

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	store := NewTokenStore(path)

	assert.False(t, store.Exists())

	tok := &StoredToken{
		Token:        "access-token",
		RefreshToken: "refresh-token",
		TokenURI:     "https://oauth2.googleapis.com/token",
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		Scopes:       []string{"https://www.googleapis.com/auth/drive"},
		Expiry:       time.Now().Add(time.Hour).UTC().Truncate(time.Second),
	}
	require.NoError(t, store.Save(tok))
	assert.True(t, store.Exists())

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, tok, loaded)
}

func TestTokenStoreSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	store := NewTokenStore(path)

	require.NoError(t, store.Save(&StoredToken{Token: "first"}))
	require.NoError(t, store.Save(&StoredToken{Token: "second"}))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "second", loaded.Token)

	// Whole-file replacement must not leave temp files behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	for _, entry := range entries {
		assert.NotContains(t, entry.Name(), ".tmp-")
	}
}

func TestTokenStoreSavePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	store := NewTokenStore(path)

	require.NoError(t, store.Save(&StoredToken{Token: "secret"}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestTokenStoreLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	store := NewTokenStore(path)
	_, err := store.Load()
	assert.Error(t, err)
}

func TestStoredTokenHasScopes(t *testing.T) {
	tests := []struct {
		name      string
		granted   []string
		requested []string
		want      bool
	}{
		{
			name:      "exact match",
			granted:   []string{"a", "b"},
			requested: []string{"a", "b"},
			want:      true,
		},
		{
			name:      "superset",
			granted:   []string{"a", "b", "c"},
			requested: []string{"b"},
			want:      true,
		},
		{
			name:      "missing scope",
			granted:   []string{"a"},
			requested: []string{"a", "b"},
			want:      false,
		},
		{
			name:      "no granted scopes",
			granted:   nil,
			requested: []string{"a"},
			want:      false,
		},
		{
			name:      "no requested scopes",
			granted:   []string{"a"},
			requested: nil,
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := &StoredToken{Scopes: tt.granted}
			if got := tok.HasScopes(tt.requested); got != tt.want {
				t.Errorf("HasScopes() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStoredTokenOAuthConfigDefaults(t *testing.T) {
	tok := &StoredToken{ClientID: "id"}
	conf := tok.OAuthConfig()
	assert.Equal(t, "https://oauth2.googleapis.com/token", conf.Endpoint.TokenURL)

	tok.TokenURI = "https://example.com/token"
	assert.Equal(t, "https://example.com/token", tok.OAuthConfig().Endpoint.TokenURL)
}
