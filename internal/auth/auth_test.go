package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edcstudio/internal/config"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, VerifyPassword(hash, "s3cret"))
	assert.False(t, VerifyPassword(hash, "wrong"))
	assert.False(t, VerifyPassword("not-a-hash", "s3cret"))
}

func TestTokenRoundTrip(t *testing.T) {
	m := NewManager(config.AuthConfig{Secret: "test-secret", TokenTTLMins: 60})

	token, err := m.IssueToken("alice")
	require.NoError(t, err)

	subject, err := m.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewManager(config.AuthConfig{Secret: "secret-a", TokenTTLMins: 60})
	verifier := NewManager(config.AuthConfig{Secret: "secret-b", TokenTTLMins: 60})

	token, err := issuer.IssueToken("alice")
	require.NoError(t, err)

	_, err = verifier.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	m := NewManager(config.AuthConfig{Secret: "test-secret", TokenTTLMins: 0})
	m.ttl = -time.Minute

	token, err := m.IssueToken("alice")
	require.NoError(t, err)

	_, err = m.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	m := NewManager(config.AuthConfig{Secret: "test-secret", TokenTTLMins: 60})
	_, err := m.ParseToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
