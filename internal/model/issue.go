package model

import "time"

// IssueStatus tracks the lifecycle of a reported issue.
type IssueStatus string

const (
	IssueStatusOpen       IssueStatus = "open"
	IssueStatusInProgress IssueStatus = "in_progress"
	IssueStatusResolved   IssueStatus = "resolved"
	IssueStatusClosed     IssueStatus = "closed"
	IssueStatusBlocked    IssueStatus = "blocked"
)

// ValidIssueStatus reports whether s is one of the known statuses.
func ValidIssueStatus(s IssueStatus) bool {
	switch s {
	case IssueStatusOpen, IssueStatusInProgress, IssueStatusResolved,
		IssueStatusClosed, IssueStatusBlocked:
		return true
	}
	return false
}

// Issue represents a tracked problem report.
type Issue struct {
	ID        uint64      `json:"id" gorm:"primaryKey"`
	Title     string      `json:"title" gorm:"size:255"`
	Content   string      `json:"content" gorm:"type:text"`
	Status    IssueStatus `json:"status" gorm:"type:varchar(20);default:'open';index"`
	Tags      StringList  `json:"tags"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// IssuePatch carries a partial update; nil fields are left untouched.
type IssuePatch struct {
	Title   *string      `json:"title"`
	Content *string      `json:"content"`
	Status  *IssueStatus `json:"status"`
	Tags    *StringList  `json:"tags"`
}

// Fields returns the column assignments present in the patch.
func (p IssuePatch) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	setString(fields, "title", p.Title)
	setString(fields, "content", p.Content)
	if p.Status != nil {
		fields["status"] = *p.Status
	}
	setList(fields, "tags", p.Tags)
	return fields
}
