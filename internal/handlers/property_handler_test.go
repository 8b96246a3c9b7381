package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/crestview/estates-api/internal/errors"
	"github.com/crestview/estates-api/internal/models"
	"github.com/crestview/estates-api/internal/pagination"
	"github.com/crestview/estates-api/internal/repository"
	"github.com/crestview/estates-api/internal/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
	validation.RegisterCustomTags()
}

// MockPropertyService is a mock implementation of PropertyService for testing
type MockPropertyService struct {
	mock.Mock
}

func (m *MockPropertyService) List(ctx context.Context, filter repository.PropertyFilter, params pagination.Params) ([]models.Property, pagination.Page, error) {
	args := m.Called(ctx, filter, params)
	if args.Get(0) == nil {
		return nil, args.Get(1).(pagination.Page), args.Error(2)
	}
	return args.Get(0).([]models.Property), args.Get(1).(pagination.Page), args.Error(2)
}

func (m *MockPropertyService) GetBySlug(ctx context.Context, slug string) (*models.Property, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Property), args.Error(1)
}

func (m *MockPropertyService) GetByID(ctx context.Context, id int64) (*models.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Property), args.Error(1)
}

func (m *MockPropertyService) Create(ctx context.Context, p *models.Property) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPropertyService) Update(ctx context.Context, p *models.Property) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPropertyService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func propertyRouter(service *MockPropertyService) *gin.Engine {
	router := gin.New()
	h := NewPropertyHandler(service)
	router.GET("/properties", h.List)
	router.GET("/properties/:slug", h.GetBySlug)
	router.POST("/admin/properties", h.Create)
	router.PUT("/admin/properties/:id", h.Update)
	router.DELETE("/admin/properties/:id", h.Delete)
	return router
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestPropertyList_EnvelopeShape(t *testing.T) {
	service := new(MockPropertyService)
	router := propertyRouter(service)

	properties := []models.Property{
		{ID: 1, Name: "Skyline Towers", Slug: "skyline-towers"},
		{ID: 2, Name: "Green Acres", Slug: "green-acres"},
	}
	page := pagination.Paginate(1, 12, 2)
	service.On("List", mock.Anything, repository.PropertyFilter{}, pagination.Params{Page: 1, Limit: 12}).
		Return(properties, page, nil)

	req := httptest.NewRequest("GET", "/properties", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])

	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok, "list data must nest items and pagination")

	items, ok := data["data"].([]interface{})
	require.True(t, ok)
	assert.Len(t, items, 2)

	pg, ok := data["pagination"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), pg["page"])
	assert.Equal(t, float64(12), pg["limit"])
	assert.Equal(t, float64(2), pg["total"])
	assert.Equal(t, float64(1), pg["totalPages"])
	assert.Equal(t, false, pg["hasNext"])
	assert.Equal(t, false, pg["hasPrev"])
}

func TestPropertyList_ForwardsFilters(t *testing.T) {
	service := new(MockPropertyService)
	router := propertyRouter(service)

	filter := repository.PropertyFilter{Search: "lake", Type: "residential", Status: "available"}
	service.On("List", mock.Anything, filter, pagination.Params{Page: 2, Limit: 5}).
		Return([]models.Property{}, pagination.Paginate(2, 5, 11), nil)

	req := httptest.NewRequest("GET", "/properties?search=lake&type=residential&status=available&page=2&limit=5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	service.AssertExpectations(t)
}

func TestPropertyGetBySlug_NotFoundEnvelope(t *testing.T) {
	service := new(MockPropertyService)
	router := propertyRouter(service)

	service.On("GetBySlug", mock.Anything, "no-such-place").
		Return(nil, apperrors.New(apperrors.KindNotFound, "Property not found"))

	req := httptest.NewRequest("GET", "/properties/no-such-place", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"Property not found"}`, w.Body.String())
}

func TestPropertyCreate_ValidationFailure(t *testing.T) {
	service := new(MockPropertyService)
	router := propertyRouter(service)

	payload := `{"name":"Skyline Towers","type":"castle","status":"available","builder":"Crest"}`
	req := httptest.NewRequest("POST", "/admin/properties", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["error"], "Type")
	service.AssertNotCalled(t, "Create")
}

func TestPropertyCreate_Success(t *testing.T) {
	service := new(MockPropertyService)
	router := propertyRouter(service)

	service.On("Create", mock.Anything, mock.MatchedBy(func(p *models.Property) bool {
		return p.Name == "Skyline Towers" && p.Type == models.PropertyTypeResidential
	})).Return(nil)

	payload := `{
		"name": "Skyline Towers",
		"type": "residential",
		"status": "available",
		"builder": "Crest Group",
		"images": [{"url": "https://cdn.example.com/a.jpg", "role": "hero"}]
	}`
	req := httptest.NewRequest("POST", "/admin/properties", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Property created", body["message"])
	service.AssertExpectations(t)
}

func TestPropertyCreate_ConflictEnvelope(t *testing.T) {
	service := new(MockPropertyService)
	router := propertyRouter(service)

	service.On("Create", mock.Anything, mock.Anything).
		Return(apperrors.New(apperrors.KindConflict, "Property with this slug already exists"))

	payload := `{"name":"Skyline Towers","type":"residential","status":"available","builder":"Crest Group"}`
	req := httptest.NewRequest("POST", "/admin/properties", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"Property with this slug already exists"}`, w.Body.String())
}

func TestPropertyDelete_NotFound(t *testing.T) {
	service := new(MockPropertyService)
	router := propertyRouter(service)

	service.On("Delete", mock.Anything, int64(999)).
		Return(apperrors.New(apperrors.KindNotFound, "Property not found"))

	req := httptest.NewRequest("DELETE", "/admin/properties/999", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"Property not found"}`, w.Body.String())
}

func TestPropertyDelete_InvalidID(t *testing.T) {
	service := new(MockPropertyService)
	router := propertyRouter(service)

	req := httptest.NewRequest("DELETE", "/admin/properties/not-a-number", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"Invalid property id"}`, w.Body.String())
	service.AssertNotCalled(t, "Delete")
}

func TestPropertyDelete_Success(t *testing.T) {
	service := new(MockPropertyService)
	router := propertyRouter(service)

	service.On("Delete", mock.Anything, int64(7)).Return(nil)

	req := httptest.NewRequest("DELETE", "/admin/properties/7", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Property deleted", body["message"])
}
