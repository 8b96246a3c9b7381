package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/crestview/estates-api/internal/errors"
	"github.com/crestview/estates-api/internal/logger"
	"github.com/crestview/estates-api/internal/models"
	"github.com/crestview/estates-api/internal/pagination"
	"github.com/crestview/estates-api/internal/repository"
)

// MockPropertyRepository is a mock implementation of PropertyRepository for testing
type MockPropertyRepository struct {
	mock.Mock
}

func (m *MockPropertyRepository) List(ctx context.Context, filter repository.PropertyFilter, limit, offset int) ([]models.Property, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Property), args.Error(1)
}

func (m *MockPropertyRepository) Count(ctx context.Context, filter repository.PropertyFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPropertyRepository) GetByID(ctx context.Context, id int64) (*models.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Property), args.Error(1)
}

func (m *MockPropertyRepository) GetBySlug(ctx context.Context, slug string) (*models.Property, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Property), args.Error(1)
}

func (m *MockPropertyRepository) Create(ctx context.Context, p *models.Property) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPropertyRepository) Update(ctx context.Context, p *models.Property) (bool, error) {
	args := m.Called(ctx, p)
	return args.Bool(0), args.Error(1)
}

func (m *MockPropertyRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func TestPropertyList_Paginates(t *testing.T) {
	mockRepo := new(MockPropertyRepository)
	service := NewPropertyService(mockRepo, logger.New("test"))

	ctx := context.Background()
	filter := repository.PropertyFilter{Type: "residential"}

	mockRepo.On("Count", ctx, filter).Return(int64(25), nil)
	mockRepo.On("List", ctx, filter, 10, 10).
		Return([]models.Property{{ID: 11, Name: "Crest Villa"}}, nil)

	properties, page, err := service.List(ctx, filter, pagination.Params{Page: 2, Limit: 10})

	require.NoError(t, err)
	assert.Len(t, properties, 1)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, int64(25), page.Total)
	assert.Equal(t, 3, page.TotalPages)
	assert.True(t, page.HasNext)
	assert.True(t, page.HasPrev)
	mockRepo.AssertExpectations(t)
}

func TestPropertyGetBySlug_NotFound(t *testing.T) {
	mockRepo := new(MockPropertyRepository)
	service := NewPropertyService(mockRepo, logger.New("test"))

	ctx := context.Background()
	mockRepo.On("GetBySlug", ctx, "missing").Return(nil, nil)

	p, err := service.GetBySlug(ctx, "missing")

	assert.Nil(t, p)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	assert.Equal(t, "Property not found", err.Error())
}

func TestPropertyCreate_GeneratesSlug(t *testing.T) {
	mockRepo := new(MockPropertyRepository)
	service := NewPropertyService(mockRepo, logger.New("test"))

	ctx := context.Background()
	property := &models.Property{
		Name:    "Property @ Special Price!",
		Type:    models.PropertyTypeResidential,
		Status:  models.PropertyStatusAvailable,
		Builder: "Crest",
	}

	mockRepo.On("Create", ctx, property).Return(nil)

	require.NoError(t, service.Create(ctx, property))
	assert.Equal(t, "property-special-price", property.Slug)
	mockRepo.AssertExpectations(t)
}

func TestPropertyCreate_RejectsNegativePrice(t *testing.T) {
	mockRepo := new(MockPropertyRepository)
	service := NewPropertyService(mockRepo, logger.New("test"))

	price := -100.0
	err := service.Create(context.Background(), &models.Property{
		Name:  "Bad Price",
		Price: &price,
	})

	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	mockRepo.AssertNotCalled(t, "Create")
}

func TestPropertyDelete_NotFound(t *testing.T) {
	mockRepo := new(MockPropertyRepository)
	service := NewPropertyService(mockRepo, logger.New("test"))

	ctx := context.Background()
	mockRepo.On("Delete", ctx, int64(99)).Return(false, nil)

	err := service.Delete(ctx, 99)

	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	assert.Equal(t, "Property not found", err.Error())
}

func TestPropertyDelete_RepositoryFailure(t *testing.T) {
	mockRepo := new(MockPropertyRepository)
	service := NewPropertyService(mockRepo, logger.New("test"))

	ctx := context.Background()
	mockRepo.On("Delete", ctx, int64(7)).Return(false, errors.New("connection reset"))

	err := service.Delete(ctx, 7)

	require.Error(t, err)
	assert.Equal(t, apperrors.KindUnexpected, apperrors.KindOf(err))
}
