package model

import "time"

// ProposalStatus is the moderation state of a submitted device proposal.
type ProposalStatus string

const (
	ProposalStatusPending  ProposalStatus = "pending"
	ProposalStatusApproved ProposalStatus = "approved"
	ProposalStatusRejected ProposalStatus = "rejected"
)

// DeviceProposal is a user-submitted device awaiting moderation.
// pending -> approved materializes a Device row; pending -> rejected is
// terminal. Neither approved nor rejected transitions anywhere else.
type DeviceProposal struct {
	ID         uint64         `json:"id" gorm:"primaryKey"`
	Model      string         `json:"model" gorm:"size:255"`
	Brand      string         `json:"brand" gorm:"size:128"`
	OS         string         `json:"os" gorm:"size:128"`
	Notes      string         `json:"notes" gorm:"type:text"`
	Contact    string         `json:"contact" gorm:"size:255"`
	Status     ProposalStatus `json:"status" gorm:"type:varchar(20);default:'pending';index"`
	DeviceID   *uint64        `json:"device_id"`
	ApprovedBy *string        `json:"approved_by" gorm:"size:128"`
	ApprovedAt *time.Time     `json:"approved_at"`
	RejectedAt *time.Time     `json:"rejected_at"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}
