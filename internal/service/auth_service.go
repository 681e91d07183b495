package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lshigami/juristudy/config"
	"github.com/lshigami/juristudy/internal/model"
	"github.com/lshigami/juristudy/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenIssuer = "juristudy"

// AuthService checks credentials and resolves request identities.
type AuthService interface {
	CreateSession(ctx context.Context, email, password string) (*model.User, string, time.Time, error)
	// ParseToken validates a bearer token and returns the user id it carries.
	ParseToken(token string) (uint, error)
	// ResolveUser returns the active user behind an id.
	ResolveUser(ctx context.Context, userID uint) (*model.User, error)
	// EnsureAdmin creates an active admin account unless the email is taken.
	// It reports whether a user was created.
	EnsureAdmin(ctx context.Context, name, email, password string) (bool, error)
}

type authService struct {
	userRepo repository.UserRepository
	secret   []byte
	ttl      time.Duration
	now      func() time.Time
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) (AuthService, error) {
	if strings.TrimSpace(cfg.Auth.JWTSecret) == "" {
		return nil, config.ErrMissingJWTSecret
	}
	ttl := time.Duration(cfg.Auth.JWTTTLHours) * time.Hour
	if ttl <= 0 {
		ttl = 72 * time.Hour
	}
	return &authService{
		userRepo: userRepo,
		secret:   []byte(cfg.Auth.JWTSecret),
		ttl:      ttl,
		now:      time.Now,
	}, nil
}

// HashPassword is used when seeding users.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (s *authService) CreateSession(ctx context.Context, email, password string) (*model.User, string, time.Time, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", time.Time{}, ErrUnauthorized
		}
		return nil, "", time.Time{}, fmt.Errorf("load user: %w", err)
	}
	if !user.Active {
		return nil, "", time.Time{}, ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Info().Uint("userID", user.ID).Msg("CreateSession: Password mismatch")
		return nil, "", time.Time{}, ErrUnauthorized
	}

	now := s.now()
	expiresAt := now.Add(s.ttl)
	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   strconv.FormatUint(uint64(user.ID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return user, token, expiresAt, nil
}

func (s *authService) ParseToken(token string) (uint, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: bad subject", ErrUnauthorized)
	}
	return uint(id), nil
}

func (s *authService) ResolveUser(ctx context.Context, userID uint) (*model.User, error) {
	user, err := s.userRepo.FindActiveByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("load user %d: %w", userID, err)
	}
	return user, nil
}

func (s *authService) EnsureAdmin(ctx context.Context, name, email, password string) (bool, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return false, fmt.Errorf("admin email and password are required: %w", ErrInvalidInput)
	}
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil {
		if !existing.IsAdmin {
			log.Warn().Uint("userID", existing.ID).Msg("EnsureAdmin: Email belongs to a non-admin user, leaving it untouched")
		}
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("look up admin: %w", err)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return false, fmt.Errorf("hash admin password: %w", err)
	}
	if strings.TrimSpace(name) == "" {
		name = "Administrator"
	}
	admin := model.User{Name: name, Email: email, PasswordHash: hash, IsAdmin: true, Active: true}
	if err := s.userRepo.Create(ctx, &admin); err != nil {
		return false, fmt.Errorf("create admin: %w", err)
	}
	log.Info().Uint("userID", admin.ID).Str("email", admin.Email).Msg("Admin account created")
	return true, nil
}
