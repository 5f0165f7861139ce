package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"rootdex/internal/model"
)

// ProposalFilter narrows proposal list and count queries.
type ProposalFilter struct {
	Status model.ProposalStatus
}

// ProposalRepository defines device-proposal persistence operations,
// including the moderation state machine.
type ProposalRepository interface {
	List(ctx context.Context, f ProposalFilter, p ListParams) ([]model.DeviceProposal, error)
	Count(ctx context.Context, f ProposalFilter) (int64, error)
	FindByID(ctx context.Context, id uint64) (*model.DeviceProposal, error)
	Create(ctx context.Context, proposal *model.DeviceProposal) error
	Delete(ctx context.Context, id uint64) (bool, error)
	Approve(ctx context.Context, id uint64, approvedBy string) (*model.DeviceProposal, error)
	Reject(ctx context.Context, id uint64) (*model.DeviceProposal, error)
}

var proposalSortColumns = map[string]string{
	"status":     "status",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

type proposalRepository struct {
	db *gorm.DB
}

// NewProposalRepository builds a GORM-backed proposal repository.
func NewProposalRepository(db *gorm.DB) ProposalRepository {
	return &proposalRepository{db: db}
}

func (r *proposalRepository) scoped(ctx context.Context, f ProposalFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.DeviceProposal{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	return q
}

func (r *proposalRepository) List(ctx context.Context, f ProposalFilter, p ListParams) ([]model.DeviceProposal, error) {
	p = p.Normalized(MaxLimit)
	order := resolveOrder(proposalSortColumns, p.SortBy, p.SortDir, "created_at")

	var proposals []model.DeviceProposal
	err := r.scoped(ctx, f).Order(order).Limit(p.Limit).Offset(p.Offset).Find(&proposals).Error
	if err != nil {
		return nil, err
	}
	return proposals, nil
}

func (r *proposalRepository) Count(ctx context.Context, f ProposalFilter) (int64, error) {
	var count int64
	if err := r.scoped(ctx, f).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *proposalRepository) FindByID(ctx context.Context, id uint64) (*model.DeviceProposal, error) {
	var proposal model.DeviceProposal
	if err := r.db.WithContext(ctx).First(&proposal, id).Error; err != nil {
		return nil, err
	}
	return &proposal, nil
}

func (r *proposalRepository) Create(ctx context.Context, proposal *model.DeviceProposal) error {
	return r.db.WithContext(ctx).Create(proposal).Error
}

func (r *proposalRepository) Delete(ctx context.Context, id uint64) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.DeviceProposal{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Approve materializes a pending proposal into a device and stamps the
// proposal, all inside one transaction so a crash cannot leave an orphan
// device behind a still-pending proposal. Approving a non-pending proposal
// is a no-op returning the record unchanged.
func (r *proposalRepository) Approve(ctx context.Context, id uint64, approvedBy string) (*model.DeviceProposal, error) {
	var proposal model.DeviceProposal
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&proposal, id).Error; err != nil {
			return err
		}
		if proposal.Status != model.ProposalStatusPending {
			return nil
		}

		device := model.Device{
			Name:   proposal.Model,
			Model:  proposal.Model,
			Brand:  proposal.Brand,
			OS:     proposal.OS,
			Status: "proposed",
		}
		if proposal.Notes != "" {
			device.Notes = model.StringList{proposal.Notes}
		}
		if err := tx.Create(&device).Error; err != nil {
			return err
		}

		now := time.Now()
		updates := map[string]interface{}{
			"status":      model.ProposalStatusApproved,
			"device_id":   device.ID,
			"approved_by": approvedBy,
			"approved_at": now,
		}
		if err := tx.Model(&proposal).Updates(updates).Error; err != nil {
			return err
		}

		proposal.Status = model.ProposalStatusApproved
		proposal.DeviceID = &device.ID
		proposal.ApprovedBy = &approvedBy
		proposal.ApprovedAt = &now
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &proposal, nil
}

// Reject stamps a pending proposal as rejected; non-pending proposals are
// returned unchanged.
func (r *proposalRepository) Reject(ctx context.Context, id uint64) (*model.DeviceProposal, error) {
	var proposal model.DeviceProposal
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&proposal, id).Error; err != nil {
			return err
		}
		if proposal.Status != model.ProposalStatusPending {
			return nil
		}

		now := time.Now()
		updates := map[string]interface{}{
			"status":      model.ProposalStatusRejected,
			"rejected_at": now,
		}
		if err := tx.Model(&proposal).Updates(updates).Error; err != nil {
			return err
		}

		proposal.Status = model.ProposalStatusRejected
		proposal.RejectedAt = &now
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &proposal, nil
}
