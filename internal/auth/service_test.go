package auth

import (
	"context"
	"testing"
	"time"

	"glambook/internal/shared/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	return &config.Config{
		JWT: config.JWTConfig{
			Secret:           "test-secret",
			JWTExpiresIn:     15 * time.Minute,
			RefreshExpiresIn: 24 * time.Hour,
		},
		Admin: config.AdminConfig{
			Email:        "admin@glambook.test",
			PasswordHash: string(hash),
			Name:         "Studio Admin",
		},
	}
}

func TestLoginSuccess(t *testing.T) {
	svc := NewService(testConfig(t))

	resp, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "admin@glambook.test",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	assert.Equal(t, "admin@glambook.test", resp.Admin.Email)
	assert.Equal(t, RoleAdmin, resp.Admin.Role)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, int64(900), resp.ExpiresIn)

	claims, err := svc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin@glambook.test", claims.Email)
	assert.Equal(t, "access", claims.Type)
	assert.Equal(t, RoleAdmin, claims.Role)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc := NewService(testConfig(t))

	_, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "admin@glambook.test",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	svc := NewService(testConfig(t))

	_, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "intruder@example.com",
		Password: "correct-horse",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshTokenIssuesNewPair(t *testing.T) {
	svc := NewService(testConfig(t))

	resp, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "admin@glambook.test",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	pair, err := svc.RefreshToken(context.Background(), resp.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
}

func TestRefreshTokenRejectsAccessToken(t *testing.T) {
	svc := NewService(testConfig(t))

	resp, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "admin@glambook.test",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	_, err = svc.RefreshToken(context.Background(), resp.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshTokenRejectsRotatedAdmin(t *testing.T) {
	cfg := testConfig(t)
	svc := NewService(cfg)

	resp, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "admin@glambook.test",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	cfg.Admin.Email = "new-admin@glambook.test"

	_, err = svc.RefreshToken(context.Background(), resp.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenExpired(t *testing.T) {
	cfg := testConfig(t)
	cfg.JWT.JWTExpiresIn = -time.Minute
	svc := NewService(cfg)

	resp, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "admin@glambook.test",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	_, err = svc.ValidateToken(resp.AccessToken)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	svc := NewService(testConfig(t))

	other := testConfig(t)
	other.JWT.Secret = "different-secret"
	otherSvc := NewService(other)

	resp, err := otherSvc.Login(context.Background(), &LoginRequest{
		Email:    "admin@glambook.test",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	_, err = svc.ValidateToken(resp.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
