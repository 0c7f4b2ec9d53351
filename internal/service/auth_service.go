package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"portfolio-api/internal/config"
	"portfolio-api/internal/domain"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// AuthService authenticates the single configured administrator. There are
// no user records: the identity lives in config, refresh sessions live in
// Redis, hashed, and rotate on every use.
type AuthService interface {
	Login(ctx context.Context, input domain.LoginInput) (*domain.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
	ValidateAccessToken(token string) (*Claims, error)
}

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type authService struct {
	redis *redis.Client
	cfg   *config.Config
}

func NewAuthService(redisClient *redis.Client, cfg *config.Config) AuthService {
	return &authService{redis: redisClient, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, input domain.LoginInput) (*domain.TokenPair, error) {
	if !strings.EqualFold(input.Email, s.cfg.AdminEmail) {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.generateTokenPair(ctx)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	key := refreshKey(refreshToken)

	email, err := s.redis.Get(ctx, key).Result()
	if err != nil || !strings.EqualFold(email, s.cfg.AdminEmail) {
		return nil, ErrInvalidToken
	}

	// Rotate: the presented token is single-use.
	_ = s.redis.Del(ctx, key).Err()

	return s.generateTokenPair(ctx)
}

func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	return s.redis.Del(ctx, refreshKey(refreshToken)).Err()
}

func (s *authService) ValidateAccessToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !strings.EqualFold(claims.Email, s.cfg.AdminEmail) {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *authService) generateTokenPair(ctx context.Context) (*domain.TokenPair, error) {
	now := time.Now()
	claims := Claims{
		Email: s.cfg.AdminEmail,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTAccessExpiry)),
		},
	}

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, err
	}

	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return nil, err
	}
	refreshToken := hex.EncodeToString(tokenBytes)

	if err := s.redis.Set(ctx, refreshKey(refreshToken), s.cfg.AdminEmail, s.cfg.JWTRefreshExpiry).Err(); err != nil {
		return nil, err
	}

	return &domain.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.cfg.JWTAccessExpiry.Seconds()),
	}, nil
}

func refreshKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "refresh:" + hex.EncodeToString(sum[:])
}
