package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"rootdex/internal/model"
	"rootdex/internal/repository"
	"rootdex/internal/service"
)

// MockProposalRepository is a mock implementation of repository.ProposalRepository.
type MockProposalRepository struct {
	mock.Mock
}

func (m *MockProposalRepository) List(ctx context.Context, f repository.ProposalFilter, p repository.ListParams) ([]model.DeviceProposal, error) {
	args := m.Called(ctx, f, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DeviceProposal), args.Error(1)
}

func (m *MockProposalRepository) Count(ctx context.Context, f repository.ProposalFilter) (int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProposalRepository) FindByID(ctx context.Context, id uint64) (*model.DeviceProposal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DeviceProposal), args.Error(1)
}

func (m *MockProposalRepository) Create(ctx context.Context, proposal *model.DeviceProposal) error {
	args := m.Called(ctx, proposal)
	return args.Error(0)
}

func (m *MockProposalRepository) Delete(ctx context.Context, id uint64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockProposalRepository) Approve(ctx context.Context, id uint64, approvedBy string) (*model.DeviceProposal, error) {
	args := m.Called(ctx, id, approvedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DeviceProposal), args.Error(1)
}

func (m *MockProposalRepository) Reject(ctx context.Context, id uint64) (*model.DeviceProposal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DeviceProposal), args.Error(1)
}

func newProposalHandlerForTest(repo repository.ProposalRepository) *ProposalHandler {
	svc := service.NewProposalService(repo, service.NewTurnstileVerifier("", ""), service.NewDiscordNotifier(""))
	return NewProposalHandler(repo, svc)
}

func postJSON(e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestProposalSubmitHoneypotFakesSuccess(t *testing.T) {
	mockRepo := new(MockProposalRepository)
	h := newProposalHandlerForTest(mockRepo)

	e := echo.New()
	c, rec := postJSON(e, "/api/device-proposals",
		`{"model":"Pixel 6","brand":"Google","website":"http://spam.example"}`)

	require.NoError(t, h.Submit(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok":true`)
	assert.NotContains(t, rec.Body.String(), `"id"`)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestProposalSubmitPersists(t *testing.T) {
	mockRepo := new(MockProposalRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.DeviceProposal")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*model.DeviceProposal).ID = 11
		}).
		Return(nil)
	h := newProposalHandlerForTest(mockRepo)

	e := echo.New()
	c, rec := postJSON(e, "/api/device-proposals", `{"model":"Pixel 6","brand":"Google"}`)

	require.NoError(t, h.Submit(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":11`)
	mockRepo.AssertExpectations(t)
}

func TestProposalSubmitShortModelRejected(t *testing.T) {
	mockRepo := new(MockProposalRepository)
	h := newProposalHandlerForTest(mockRepo)

	e := echo.New()
	c, _ := postJSON(e, "/api/device-proposals", `{"model":"x"}`)

	err := h.Submit(c)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestProposalAdminApproveNotFound(t *testing.T) {
	mockRepo := new(MockProposalRepository)
	mockRepo.On("Approve", mock.Anything, uint64(99), "").Return(nil, gorm.ErrRecordNotFound)
	h := newProposalHandlerForTest(mockRepo)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/api/device-proposals/99/approve", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("99")

	err := h.AdminApprove(c)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}
