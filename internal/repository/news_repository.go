package repository

import (
	"context"

	"gorm.io/gorm"

	"rootdex/internal/model"
)

// NewsFilter narrows news list and count queries. PublishedOnly is forced
// on by the public endpoint and left off for the admin surface.
type NewsFilter struct {
	Query         string
	Tag           string
	PublishedOnly bool
}

// NewsRepository defines news persistence operations.
type NewsRepository interface {
	List(ctx context.Context, f NewsFilter, p ListParams) ([]model.News, error)
	Count(ctx context.Context, f NewsFilter) (int64, error)
	FindByID(ctx context.Context, id uint64) (*model.News, error)
	FindBySlug(ctx context.Context, slug string) (*model.News, error)
	Create(ctx context.Context, news *model.News) error
	Update(ctx context.Context, id uint64, patch model.NewsPatch) (*model.News, error)
	Delete(ctx context.Context, id uint64) (bool, error)
}

var newsSortColumns = map[string]string{
	"date":         "date",
	"title":        "title",
	"published_at": "published_at",
	"created_at":   "created_at",
	"updated_at":   "updated_at",
}

type newsRepository struct {
	db *gorm.DB
}

// NewNewsRepository builds a GORM-backed news repository.
func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &newsRepository{db: db}
}

func (r *newsRepository) scoped(ctx context.Context, f NewsFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.News{})
	if f.Query != "" {
		q = q.Where("MATCH (title, excerpt, content) AGAINST (? IN NATURAL LANGUAGE MODE)", f.Query)
	}
	if f.Tag != "" {
		// Tags live in a JSON text column; match the quoted element.
		q = q.Where("tags LIKE ?", "%\""+f.Tag+"\"%")
	}
	if f.PublishedOnly {
		q = q.Where("published = ?", true)
	}
	return q
}

func (r *newsRepository) List(ctx context.Context, f NewsFilter, p ListParams) ([]model.News, error) {
	p = p.Normalized(MaxLimit)
	order := resolveOrder(newsSortColumns, p.SortBy, p.SortDir, "date")

	var items []model.News
	err := r.scoped(ctx, f).Order(order).Limit(p.Limit).Offset(p.Offset).Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *newsRepository) Count(ctx context.Context, f NewsFilter) (int64, error) {
	var count int64
	if err := r.scoped(ctx, f).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *newsRepository) FindByID(ctx context.Context, id uint64) (*model.News, error) {
	var item model.News
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *newsRepository) FindBySlug(ctx context.Context, slug string) (*model.News, error) {
	var item model.News
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *newsRepository) Create(ctx context.Context, news *model.News) error {
	return r.db.WithContext(ctx).Create(news).Error
}

func (r *newsRepository) Update(ctx context.Context, id uint64, patch model.NewsPatch) (*model.News, error) {
	fields := patch.Fields()
	if len(fields) == 0 {
		return r.FindByID(ctx, id)
	}
	res := r.db.WithContext(ctx).Model(&model.News{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	return r.FindByID(ctx, id)
}

func (r *newsRepository) Delete(ctx context.Context, id uint64) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.News{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
