package service

import (
	"testing"
	"time"

	"github.com/GIT-Saikat/Blog-Application/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "blog-application",
		TokenDuration: time.Hour,
		Version:       "test",
	}
}

func TestCredentialService_Passwords(t *testing.T) {
	creds := NewCredentialService(testAppConfig())

	hash, err := creds.HashPassword("secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", hash)

	assert.True(t, creds.VerifyPassword("secret", hash))
	assert.False(t, creds.VerifyPassword("other", hash))
}

func TestCredentialService_IssueAndVerify(t *testing.T) {
	creds := NewCredentialService(testAppConfig())

	token, err := creds.IssueToken("user-1")
	require.NoError(t, err)
	require.NotEmpty(t, token.String())

	parsed, err := creds.VerifyToken(token.String())
	require.NoError(t, err)
	assert.Equal(t, "user-1", parsed.UserID)
}

func TestCredentialService_IssueToken_EmptySubject(t *testing.T) {
	creds := NewCredentialService(testAppConfig())

	_, err := creds.IssueToken("")
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestCredentialService_VerifyToken_Rejects(t *testing.T) {
	cfg := testAppConfig()
	creds := NewCredentialService(cfg)

	otherKey := cfg
	otherKey.TokenSignKey = "another-key"
	foreign, err := NewCredentialService(otherKey).IssueToken("user-1")
	require.NoError(t, err)

	otherIssuer := cfg
	otherIssuer.TokenIssuer = "someone-else"
	wrongIssuer, err := NewCredentialService(otherIssuer).IssueToken("user-1")
	require.NoError(t, err)

	expiredCfg := cfg
	expiredCfg.TokenDuration = time.Nanosecond
	expired, err := NewCredentialService(expiredCfg).IssueToken("user-1")
	require.NoError(t, err)
	time.Sleep(time.Millisecond)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-jwt"},
		{"wrong key", foreign.String()},
		{"wrong issuer", wrongIssuer.String()},
		{"expired", expired.String()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := creds.VerifyToken(tt.token)
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}
