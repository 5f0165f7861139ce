package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rootdex/internal/model"
	"rootdex/internal/repository"
)

// MockNewsRepository is a mock implementation of repository.NewsRepository.
type MockNewsRepository struct {
	mock.Mock
}

func (m *MockNewsRepository) List(ctx context.Context, f repository.NewsFilter, p repository.ListParams) ([]model.News, error) {
	args := m.Called(ctx, f, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.News), args.Error(1)
}

func (m *MockNewsRepository) Count(ctx context.Context, f repository.NewsFilter) (int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNewsRepository) FindByID(ctx context.Context, id uint64) (*model.News, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.News), args.Error(1)
}

func (m *MockNewsRepository) FindBySlug(ctx context.Context, slug string) (*model.News, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.News), args.Error(1)
}

func (m *MockNewsRepository) Create(ctx context.Context, news *model.News) error {
	args := m.Called(ctx, news)
	return args.Error(0)
}

func (m *MockNewsRepository) Update(ctx context.Context, id uint64, patch model.NewsPatch) (*model.News, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.News), args.Error(1)
}

func (m *MockNewsRepository) Delete(ctx context.Context, id uint64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func TestNewsListPublicForcesPublishedOnly(t *testing.T) {
	mockRepo := new(MockNewsRepository)
	mockRepo.On("List", mock.Anything,
		mock.MatchedBy(func(f repository.NewsFilter) bool { return f.PublishedOnly }),
		mock.Anything,
	).Return([]model.News{{ID: 1, Slug: "hello", Title: "Hello", Published: true}}, nil)

	h := NewNewsHandler(mockRepo)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/news", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.ListPublic(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"slug":"hello"`)
	mockRepo.AssertExpectations(t)
}

func TestNewsListPublicETag(t *testing.T) {
	mockRepo := new(MockNewsRepository)
	mockRepo.On("List", mock.Anything, mock.Anything, mock.Anything).
		Return([]model.News{{ID: 1, Slug: "hello", Title: "Hello", Published: true}}, nil)

	h := NewNewsHandler(mockRepo)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/news", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.ListPublic(e.NewContext(req, rec)))

	etag := rec.Header().Get("ETag")
	require.NotEmpty(t, etag)
	assert.Contains(t, rec.Header().Get("Cache-Control"), "max-age=60")

	// Same payload revalidated with the returned tag answers 304.
	req = httptest.NewRequest(http.MethodGet, "/api/news", nil)
	req.Header.Set("If-None-Match", etag)
	rec = httptest.NewRecorder()
	require.NoError(t, h.ListPublic(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusNotModified, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestNewsAdminListIncludesTotal(t *testing.T) {
	mockRepo := new(MockNewsRepository)
	mockRepo.On("List", mock.Anything,
		mock.MatchedBy(func(f repository.NewsFilter) bool { return !f.PublishedOnly }),
		mock.Anything,
	).Return([]model.News{{ID: 1, Slug: "draft", Title: "Draft"}}, nil)
	mockRepo.On("Count", mock.Anything, mock.Anything).Return(int64(7), nil)

	h := NewNewsHandler(mockRepo)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/api/news", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.AdminList(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":7`)
	mockRepo.AssertExpectations(t)
}
