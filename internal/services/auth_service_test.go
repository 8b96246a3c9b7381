package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/crestview/estates-api/internal/config"
	apperrors "github.com/crestview/estates-api/internal/errors"
	"github.com/crestview/estates-api/internal/logger"
	"github.com/crestview/estates-api/internal/models"
)

// MockAdminRepository is a mock implementation of AdminRepository for testing
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) GetByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdminUser), args.Error(1)
}

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{JWTSecret: "test-secret", TokenTTL: time.Hour}
}

func TestLogin_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)

	mockRepo := new(MockAdminRepository)
	service := NewAuthService(mockRepo, testAuthConfig(), logger.New("test"))

	ctx := context.Background()
	mockRepo.On("GetByEmail", ctx, "admin@example.com").Return(&models.AdminUser{
		ID:           1,
		Email:        "admin@example.com",
		PasswordHash: string(hash),
		Role:         "admin",
	}, nil)

	token, err := service.Login(ctx, "admin@example.com", "correct horse")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "admin@example.com", claims["email"])
	assert.Equal(t, "admin", claims["role"])
}

func TestLogin_UnknownEmail(t *testing.T) {
	mockRepo := new(MockAdminRepository)
	service := NewAuthService(mockRepo, testAuthConfig(), logger.New("test"))

	ctx := context.Background()
	mockRepo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, nil)

	token, err := service.Login(ctx, "nobody@example.com", "whatever123")

	require.Error(t, err)
	assert.Empty(t, token)
	assert.Equal(t, apperrors.KindAuth, apperrors.KindOf(err))
	assert.Equal(t, "Invalid email or password", err.Error())
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)

	mockRepo := new(MockAdminRepository)
	service := NewAuthService(mockRepo, testAuthConfig(), logger.New("test"))

	ctx := context.Background()
	mockRepo.On("GetByEmail", ctx, "admin@example.com").Return(&models.AdminUser{
		ID:           1,
		Email:        "admin@example.com",
		PasswordHash: string(hash),
		Role:         "admin",
	}, nil)

	token, err := service.Login(ctx, "admin@example.com", "battery staple")

	require.Error(t, err)
	assert.Empty(t, token)
	assert.Equal(t, apperrors.KindAuth, apperrors.KindOf(err))
	// Same message as for an unknown email.
	assert.Equal(t, "Invalid email or password", err.Error())
}
