package credentials_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskctl/internal/credentials"
)

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token.json")
	s := credentials.NewFileStore(path)

	_, err := s.Token()
	assert.ErrorIs(t, err, credentials.ErrNoToken)
	assert.False(t, credentials.Has(s))

	require.NoError(t, s.Save(credentials.BearerToken("abc")))

	tok, err := s.Token()
	require.NoError(t, err)
	assert.Equal(t, "abc", tok.AccessToken)
	assert.Equal(t, "Bearer", tok.TokenType)
	assert.True(t, credentials.Has(s))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestFileStore_Clear(t *testing.T) {
	s := credentials.NewFileStore(filepath.Join(t.TempDir(), "token.json"))

	// Clearing an empty store is fine
	require.NoError(t, s.Clear())

	require.NoError(t, s.Save(credentials.BearerToken("abc")))
	require.NoError(t, s.Clear())

	_, err := s.Token()
	assert.ErrorIs(t, err, credentials.ErrNoToken)
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0600))

	_, err := credentials.NewFileStore(path).Token()
	require.Error(t, err)
	assert.NotErrorIs(t, err, credentials.ErrNoToken)
}

func TestMemoryStore(t *testing.T) {
	s := credentials.NewMemoryStore("")
	assert.False(t, credentials.Has(s))

	require.NoError(t, s.Save(credentials.BearerToken("xyz")))
	assert.True(t, credentials.Has(s))

	require.NoError(t, s.Clear())
	assert.False(t, credentials.Has(s))

	assert.True(t, credentials.Has(credentials.NewMemoryStore("preset")))
}

func TestParseClaims(t *testing.T) {
	issued := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	expires := issued.Add(time.Hour)

	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "alice",
		IssuedAt:  jwt.NewNumericDate(issued),
		ExpiresAt: jwt.NewNumericDate(expires),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	claims, err := credentials.ParseClaims(raw)
	require.NoError(t, err)

	assert.Equal(t, "alice", claims.Subject)
	assert.True(t, claims.IssuedAt.Equal(issued))
	assert.True(t, claims.ExpiresAt.Equal(expires))
	assert.False(t, claims.Expired(issued.Add(time.Minute)))
	assert.True(t, claims.Expired(expires.Add(time.Second)))
}

func TestParseClaims_NotJWT(t *testing.T) {
	_, err := credentials.ParseClaims("opaque-token")
	assert.Error(t, err)
}
