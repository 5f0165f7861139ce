package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	apperrors "rootdex/internal/errors"
	"rootdex/internal/model"
	"rootdex/internal/repository"
)

const proposalModelMinLen = 2

// ProposalSubmission is a public device suggestion as received from the
// site form. Website is a honeypot: humans never see the field, bots fill
// it in.
type ProposalSubmission struct {
	Model        string
	Brand        string
	OS           string
	Notes        string
	Contact      string
	Website      string
	CaptchaToken string
	RemoteIP     string
}

// ProposalService coordinates the public submission flow and the admin
// moderation lifecycle.
type ProposalService interface {
	// Submit persists a proposal. The returned id is 0 when the honeypot
	// tripped; callers still answer with a fake success.
	Submit(ctx context.Context, sub ProposalSubmission) (uint64, error)
	Approve(ctx context.Context, id uint64, approvedBy string) (*model.DeviceProposal, error)
	Reject(ctx context.Context, id uint64) (*model.DeviceProposal, error)
}

type proposalService struct {
	proposalRepo repository.ProposalRepository
	captcha      CaptchaVerifier
	notifier     Notifier
}

// NewProposalService creates a new proposal service.
func NewProposalService(proposalRepo repository.ProposalRepository, captcha CaptchaVerifier, notifier Notifier) ProposalService {
	return &proposalService{
		proposalRepo: proposalRepo,
		captcha:      captcha,
		notifier:     notifier,
	}
}

func (s *proposalService) Submit(ctx context.Context, sub ProposalSubmission) (uint64, error) {
	if sub.Website != "" {
		// Honeypot tripped. Pretend everything went fine.
		return 0, nil
	}

	if err := s.captcha.Verify(ctx, sub.CaptchaToken, sub.RemoteIP); err != nil {
		return 0, err
	}

	if len(strings.TrimSpace(sub.Model)) < proposalModelMinLen {
		return 0, fmt.Errorf("%w: model must be at least %d characters", apperrors.ErrValidation, proposalModelMinLen)
	}

	proposal := &model.DeviceProposal{
		Model:   strings.TrimSpace(sub.Model),
		Brand:   strings.TrimSpace(sub.Brand),
		OS:      strings.TrimSpace(sub.OS),
		Notes:   strings.TrimSpace(sub.Notes),
		Contact: strings.TrimSpace(sub.Contact),
		Status:  model.ProposalStatusPending,
	}
	if err := s.proposalRepo.Create(ctx, proposal); err != nil {
		return 0, err
	}

	if s.notifier != nil {
		go func(m, b string) {
			notifyCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			s.notifier.ProposalReceived(notifyCtx, m, b)
		}(proposal.Model, proposal.Brand)
	}

	return proposal.ID, nil
}

func (s *proposalService) Approve(ctx context.Context, id uint64, approvedBy string) (*model.DeviceProposal, error) {
	proposal, err := s.proposalRepo.Approve(ctx, id, approvedBy)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.ErrNotFound
		}
		log.Printf("approve proposal %d: %v", id, err)
		return nil, err
	}
	return proposal, nil
}

func (s *proposalService) Reject(ctx context.Context, id uint64) (*model.DeviceProposal, error) {
	proposal, err := s.proposalRepo.Reject(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.ErrNotFound
		}
		log.Printf("reject proposal %d: %v", id, err)
		return nil, err
	}
	return proposal, nil
}
