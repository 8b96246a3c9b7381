package services

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/crestview/estates-api/internal/errors"
	"github.com/crestview/estates-api/internal/logger"
	"github.com/crestview/estates-api/internal/models"
	"github.com/crestview/estates-api/internal/pagination"
	"github.com/crestview/estates-api/internal/repository"
)

// MockCareerRepository is a mock implementation of CareerRepository for testing
type MockCareerRepository struct {
	mock.Mock
}

func (m *MockCareerRepository) Create(ctx context.Context, a *models.CareerApplication) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockCareerRepository) List(ctx context.Context, filter repository.CareerFilter, limit, offset int) ([]models.CareerApplication, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CareerApplication), args.Error(1)
}

func (m *MockCareerRepository) Count(ctx context.Context, filter repository.CareerFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCareerRepository) GetByID(ctx context.Context, id int64) (*models.CareerApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CareerApplication), args.Error(1)
}

func (m *MockCareerRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func validApplication() *models.CareerApplication {
	return &models.CareerApplication{
		Name:           "Asha",
		Email:          "asha@example.com",
		WhatsappNumber: "9876543210",
		ReferralSource: models.ReferralSourceLinkedIn,
		ResumeLink:     "https://drive.google.com/file/d/abc/view",
	}
}

func TestCareerCreate_OtherRequiresExplanation(t *testing.T) {
	mockRepo := new(MockCareerRepository)
	service := NewCareerService(mockRepo, logger.New("test"))

	app := validApplication()
	app.ReferralSource = models.ReferralSourceOther
	app.ReferralOther = nil

	err := service.Create(context.Background(), app)

	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	mockRepo.AssertNotCalled(t, "Create")
}

func TestCareerCreate_OtherWithExplanation(t *testing.T) {
	mockRepo := new(MockCareerRepository)
	service := NewCareerService(mockRepo, logger.New("test"))

	other := "Campus placement drive"
	app := validApplication()
	app.ReferralSource = models.ReferralSourceOther
	app.ReferralOther = &other

	ctx := context.Background()
	mockRepo.On("Create", ctx, app).Return(nil)

	require.NoError(t, service.Create(ctx, app))
	mockRepo.AssertExpectations(t)
}

func TestCareerCreate_DropsStaleOther(t *testing.T) {
	mockRepo := new(MockCareerRepository)
	service := NewCareerService(mockRepo, logger.New("test"))

	stale := "left over from a previous selection"
	app := validApplication()
	app.ReferralOther = &stale

	ctx := context.Background()
	mockRepo.On("Create", ctx, app).Return(nil)

	require.NoError(t, service.Create(ctx, app))
	assert.Nil(t, app.ReferralOther, "referralOther is meaningless without an OTHER source")
}

func TestCareerCreate_DuplicateEmail(t *testing.T) {
	mockRepo := new(MockCareerRepository)
	service := NewCareerService(mockRepo, logger.New("test"))

	ctx := context.Background()
	mockRepo.On("Create", ctx, mock.Anything).
		Return(&pgconn.PgError{Code: "23505", ConstraintName: "career_applications_email_key"})

	err := service.Create(ctx, validApplication())

	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
	assert.Contains(t, err.Error(), "already exists")
}

// MockSubscriptionRepository is a mock implementation of SubscriptionRepository for testing
type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) Subscribe(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubscriptionRepository) List(ctx context.Context, limit, offset int) ([]models.EmailSubscription, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.EmailSubscription), args.Error(1)
}

func (m *MockSubscriptionRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestSubscribe_New(t *testing.T) {
	mockRepo := new(MockSubscriptionRepository)
	service := NewSubscriptionService(mockRepo, logger.New("test"))

	ctx := context.Background()
	mockRepo.On("Subscribe", ctx, "new@example.com").Return(true, nil)

	msg, err := service.Subscribe(ctx, "new@example.com")

	require.NoError(t, err)
	assert.Equal(t, MsgSubscribed, msg)
}

func TestSubscribe_AlreadySubscribed(t *testing.T) {
	mockRepo := new(MockSubscriptionRepository)
	service := NewSubscriptionService(mockRepo, logger.New("test"))

	ctx := context.Background()
	mockRepo.On("Subscribe", ctx, "repeat@example.com").Return(false, nil)

	msg, err := service.Subscribe(ctx, "repeat@example.com")

	require.NoError(t, err, "resubscribing is a no-op success")
	assert.Equal(t, "Email already subscribed", msg)
}

func TestEnquiryList_Pagination(t *testing.T) {
	mockRepo := new(MockEnquiryRepository)
	service := NewEnquiryService(mockRepo, logger.New("test"))

	ctx := context.Background()
	filter := repository.EnquiryFilter{Type: "property"}

	mockRepo.On("Count", ctx, filter).Return(int64(0), nil)
	mockRepo.On("List", ctx, filter, 20, 0).Return([]models.Enquiry{}, nil)

	enquiries, page, err := service.List(ctx, filter, pagination.Params{Page: 1, Limit: 20})

	require.NoError(t, err)
	assert.Empty(t, enquiries)
	assert.Equal(t, 0, page.TotalPages)
	assert.False(t, page.HasNext)
}

// MockEnquiryRepository is a mock implementation of EnquiryRepository for testing
type MockEnquiryRepository struct {
	mock.Mock
}

func (m *MockEnquiryRepository) Create(ctx context.Context, e *models.Enquiry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEnquiryRepository) List(ctx context.Context, filter repository.EnquiryFilter, limit, offset int) ([]models.Enquiry, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Enquiry), args.Error(1)
}

func (m *MockEnquiryRepository) Count(ctx context.Context, filter repository.EnquiryFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEnquiryRepository) GetByID(ctx context.Context, id int64) (*models.Enquiry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Enquiry), args.Error(1)
}

func (m *MockEnquiryRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
