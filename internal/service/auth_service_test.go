package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"sofdesk/internal/config"
	"sofdesk/internal/domain"
	"sofdesk/internal/service"
)

func testJWTConfig(t *testing.T) config.JWTConfig {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	return config.JWTConfig{
		Secret:            "test-signing-key",
		AccessTokenExpiry: time.Hour,
		Issuer:            "sofdesk",
		ClientID:          "desk-client",
		ClientSecretHash:  string(hash),
	}
}

func TestIssueTokenAndValidate(t *testing.T) {
	svc := service.NewAuthService(testJWTConfig(t))
	assert.False(t, svc.Open())

	token, err := svc.IssueToken(service.TokenInput{ClientID: "desk-client", ClientSecret: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.True(t, token.ExpiresAt.After(time.Now()))

	claims, err := svc.ValidateToken(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "desk-client", claims.ClientID)
	assert.Equal(t, "sofdesk", claims.Issuer)
}

func TestIssueTokenWrongSecret(t *testing.T) {
	svc := service.NewAuthService(testJWTConfig(t))

	_, err := svc.IssueToken(service.TokenInput{ClientID: "desk-client", ClientSecret: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.IssueToken(service.TokenInput{ClientID: "other", ClientSecret: "s3cret"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestOpenModeRejectsTokenIssue(t *testing.T) {
	cfg := testJWTConfig(t)
	cfg.ClientSecretHash = ""
	svc := service.NewAuthService(cfg)

	assert.True(t, svc.Open())
	_, err := svc.IssueToken(service.TokenInput{ClientID: "desk-client", ClientSecret: "s3cret"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestValidateTokenGarbage(t *testing.T) {
	svc := service.NewAuthService(testJWTConfig(t))
	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestValidateTokenWrongKey(t *testing.T) {
	cfg := testJWTConfig(t)
	svc := service.NewAuthService(cfg)
	token, err := svc.IssueToken(service.TokenInput{ClientID: "desk-client", ClientSecret: "s3cret"})
	require.NoError(t, err)

	cfg.Secret = "different-key"
	other := service.NewAuthService(cfg)
	_, err = other.ValidateToken(token.AccessToken)
	assert.Error(t, err)
}
