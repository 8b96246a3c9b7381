package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/crestview/estates-api/internal/config"
	apperrors "github.com/crestview/estates-api/internal/errors"
	"github.com/crestview/estates-api/internal/logger"
	"github.com/crestview/estates-api/internal/repository"
)

// AuthService issues admin session tokens from credentials.
type AuthService interface {
	// Login verifies the credentials and returns a signed JWT.
	Login(ctx context.Context, email, password string) (string, error)
}

type authService struct {
	repo repository.AdminRepository
	cfg  config.AuthConfig
	log  *logger.Logger
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(repo repository.AdminRepository, cfg config.AuthConfig, log *logger.Logger) AuthService {
	return &authService{repo: repo, cfg: cfg, log: log}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to fetch admin user", err, nil)
		return "", apperrors.Wrap(apperrors.KindUnexpected, "Login failed", err)
	}

	// The same message for an unknown email and a wrong password, so
	// the endpoint does not reveal which accounts exist.
	if user == nil {
		return "", apperrors.New(apperrors.KindAuth, "Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", apperrors.New(apperrors.KindAuth, "Invalid email or password")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   fmt.Sprintf("%d", user.ID),
		"email": user.Email,
		"role":  user.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(s.cfg.TokenTTL).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		s.log.Error("Failed to sign admin token", err, nil)
		return "", apperrors.Wrap(apperrors.KindUnexpected, "Login failed", err)
	}

	s.log.Info("Admin logged in", map[string]interface{}{"email": user.Email})
	return token, nil
}
