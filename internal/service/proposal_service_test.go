package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "rootdex/internal/errors"
	"rootdex/internal/model"
	"rootdex/internal/repository"
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

func newTestProposalService(repo repository.ProposalRepository) ProposalService {
	// Empty secret disables captcha; empty webhook disables notifications.
	return NewProposalService(repo, NewTurnstileVerifier("", ""), NewDiscordNotifier(""))
}

func TestProposalServiceSubmit(t *testing.T) {
	t.Run("honeypot short-circuits without persisting", func(t *testing.T) {
		mockRepo := new(MockProposalRepository)
		svc := newTestProposalService(mockRepo)

		id, err := svc.Submit(context.Background(), ProposalSubmission{
			Model:   "Pixel 6",
			Website: "http://spam.example",
		})

		require.NoError(t, err)
		assert.Zero(t, id)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("model shorter than two characters rejected", func(t *testing.T) {
		mockRepo := new(MockProposalRepository)
		svc := newTestProposalService(mockRepo)

		_, err := svc.Submit(context.Background(), ProposalSubmission{Model: "x"})

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("valid submission persists pending proposal", func(t *testing.T) {
		mockRepo := new(MockProposalRepository)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.DeviceProposal")).
			Run(func(args mock.Arguments) {
				proposal := args.Get(1).(*model.DeviceProposal)
				proposal.ID = 42
				assert.Equal(t, model.ProposalStatusPending, proposal.Status)
				assert.Equal(t, "Pixel 6", proposal.Model)
			}).
			Return(nil)
		svc := newTestProposalService(mockRepo)

		id, err := svc.Submit(context.Background(), ProposalSubmission{
			Model: "  Pixel 6  ",
			Brand: "Google",
		})

		require.NoError(t, err)
		assert.Equal(t, uint64(42), id)
		mockRepo.AssertExpectations(t)
	})
}

func TestProposalServiceApprove(t *testing.T) {
	t.Run("passes through repository result", func(t *testing.T) {
		now := time.Now()
		deviceID := uint64(9)
		approvedBy := "admin"
		approved := &model.DeviceProposal{
			ID:         1,
			Status:     model.ProposalStatusApproved,
			DeviceID:   &deviceID,
			ApprovedBy: &approvedBy,
			ApprovedAt: &now,
		}

		mockRepo := new(MockProposalRepository)
		mockRepo.On("Approve", mock.Anything, uint64(1), "admin").Return(approved, nil)
		svc := newTestProposalService(mockRepo)

		got, err := svc.Approve(context.Background(), 1, "admin")
		require.NoError(t, err)
		assert.Equal(t, approved, got)
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing proposal maps to not found", func(t *testing.T) {
		mockRepo := new(MockProposalRepository)
		mockRepo.On("Approve", mock.Anything, uint64(5), "admin").Return(nil, gorm.ErrRecordNotFound)
		svc := newTestProposalService(mockRepo)

		_, err := svc.Approve(context.Background(), 5, "admin")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestProposalServiceReject(t *testing.T) {
	mockRepo := new(MockProposalRepository)
	mockRepo.On("Reject", mock.Anything, uint64(3)).Return(nil, gorm.ErrRecordNotFound)
	svc := newTestProposalService(mockRepo)

	_, err := svc.Reject(context.Background(), 3)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
