package unit_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"portfolio-api/internal/config"
	"portfolio-api/internal/domain"
	"portfolio-api/internal/service"
)

func newAuthConfig(t *testing.T, password string) *config.Config {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return &config.Config{
		AdminEmail:        adminEmail,
		AdminPasswordHash: string(hash),
		JWTSecret:         "test-secret",
		JWTAccessExpiry:   15 * time.Minute,
		JWTRefreshExpiry:  24 * time.Hour,
	}
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	cfg := newAuthConfig(t, "correct horse")
	svc := service.NewAuthService(nil, cfg)

	t.Run("Unknown email", func(t *testing.T) {
		pair, err := svc.Login(ctx, domain.LoginInput{Email: "other@example.com", Password: "correct horse"})

		assert.Nil(t, pair)
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("Wrong password", func(t *testing.T) {
		pair, err := svc.Login(ctx, domain.LoginInput{Email: adminEmail, Password: "wrong"})

		assert.Nil(t, pair)
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

func TestAuthService_ValidateAccessToken(t *testing.T) {
	cfg := newAuthConfig(t, "correct horse")
	svc := service.NewAuthService(nil, cfg)

	signToken := func(email, secret string, expiry time.Duration) string {
		claims := service.Claims{
			Email: email,
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "admin",
				IssuedAt:  jwt.NewNumericDate(time.Now()),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		assert.NoError(t, err)
		return token
	}

	t.Run("Valid token", func(t *testing.T) {
		claims, err := svc.ValidateAccessToken(signToken(adminEmail, cfg.JWTSecret, time.Hour))

		assert.NoError(t, err)
		assert.Equal(t, adminEmail, claims.Email)
	})

	t.Run("Wrong signing secret", func(t *testing.T) {
		claims, err := svc.ValidateAccessToken(signToken(adminEmail, "other-secret", time.Hour))

		assert.Nil(t, claims)
		assert.ErrorIs(t, err, service.ErrInvalidToken)
	})

	t.Run("Expired token", func(t *testing.T) {
		claims, err := svc.ValidateAccessToken(signToken(adminEmail, cfg.JWTSecret, -time.Minute))

		assert.Nil(t, claims)
		assert.ErrorIs(t, err, service.ErrInvalidToken)
	})

	t.Run("Token for another identity", func(t *testing.T) {
		claims, err := svc.ValidateAccessToken(signToken("other@example.com", cfg.JWTSecret, time.Hour))

		assert.Nil(t, claims)
		assert.ErrorIs(t, err, service.ErrInvalidToken)
	})

	t.Run("Garbage token", func(t *testing.T) {
		claims, err := svc.ValidateAccessToken("not-a-token")

		assert.Nil(t, claims)
		assert.ErrorIs(t, err, service.ErrInvalidToken)
	})
}
