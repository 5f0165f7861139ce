package repository

import (
	"context"

	"gorm.io/gorm"

	"rootdex/internal/model"
)

// IssueFilter narrows issue list and count queries.
type IssueFilter struct {
	Query  string
	Status model.IssueStatus
	Tag    string
}

// IssueRepository defines issue persistence operations.
type IssueRepository interface {
	List(ctx context.Context, f IssueFilter, p ListParams) ([]model.Issue, error)
	Count(ctx context.Context, f IssueFilter) (int64, error)
	FindByID(ctx context.Context, id uint64) (*model.Issue, error)
	Create(ctx context.Context, issue *model.Issue) error
	Update(ctx context.Context, id uint64, patch model.IssuePatch) (*model.Issue, error)
	Delete(ctx context.Context, id uint64) (bool, error)
}

var issueSortColumns = map[string]string{
	"title":      "title",
	"status":     "status",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

type issueRepository struct {
	db *gorm.DB
}

// NewIssueRepository builds a GORM-backed issue repository.
func NewIssueRepository(db *gorm.DB) IssueRepository {
	return &issueRepository{db: db}
}

func (r *issueRepository) scoped(ctx context.Context, f IssueFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.Issue{})
	if f.Query != "" {
		q = q.Where("MATCH (title, content) AGAINST (? IN NATURAL LANGUAGE MODE)", f.Query)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Tag != "" {
		q = q.Where("tags LIKE ?", "%\""+f.Tag+"\"%")
	}
	return q
}

func (r *issueRepository) List(ctx context.Context, f IssueFilter, p ListParams) ([]model.Issue, error) {
	p = p.Normalized(MaxLimit)
	order := resolveOrder(issueSortColumns, p.SortBy, p.SortDir, "created_at")

	var issues []model.Issue
	err := r.scoped(ctx, f).Order(order).Limit(p.Limit).Offset(p.Offset).Find(&issues).Error
	if err != nil {
		return nil, err
	}
	return issues, nil
}

func (r *issueRepository) Count(ctx context.Context, f IssueFilter) (int64, error) {
	var count int64
	if err := r.scoped(ctx, f).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *issueRepository) FindByID(ctx context.Context, id uint64) (*model.Issue, error) {
	var issue model.Issue
	if err := r.db.WithContext(ctx).First(&issue, id).Error; err != nil {
		return nil, err
	}
	return &issue, nil
}

func (r *issueRepository) Create(ctx context.Context, issue *model.Issue) error {
	return r.db.WithContext(ctx).Create(issue).Error
}

func (r *issueRepository) Update(ctx context.Context, id uint64, patch model.IssuePatch) (*model.Issue, error) {
	fields := patch.Fields()
	if len(fields) == 0 {
		return r.FindByID(ctx, id)
	}
	res := r.db.WithContext(ctx).Model(&model.Issue{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	return r.FindByID(ctx, id)
}

func (r *issueRepository) Delete(ctx context.Context, id uint64) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.Issue{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
