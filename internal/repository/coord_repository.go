package repository

import (
	"context"

	"gorm.io/gorm"

	"rootdex/internal/model"
)

// CoordFilter narrows coord list and count queries.
type CoordFilter struct {
	Query    string
	Category model.CoordCategory
	Tag      string
}

// CoordRepository defines coordinate persistence operations.
type CoordRepository interface {
	List(ctx context.Context, f CoordFilter, p ListParams) ([]model.Coord, error)
	Count(ctx context.Context, f CoordFilter) (int64, error)
	FindByID(ctx context.Context, id uint64) (*model.Coord, error)
	Create(ctx context.Context, coord *model.Coord) error
	Update(ctx context.Context, id uint64, patch model.CoordPatch) (*model.Coord, error)
	Delete(ctx context.Context, id uint64) (bool, error)
}

var coordSortColumns = map[string]string{
	"name":       "name",
	"category":   "category",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

type coordRepository struct {
	db *gorm.DB
}

// NewCoordRepository builds a GORM-backed coordinate repository.
func NewCoordRepository(db *gorm.DB) CoordRepository {
	return &coordRepository{db: db}
}

func (r *coordRepository) scoped(ctx context.Context, f CoordFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.Coord{})
	if f.Query != "" {
		q = q.Where("MATCH (name, note) AGAINST (? IN NATURAL LANGUAGE MODE)", f.Query)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Tag != "" {
		q = q.Where("tags LIKE ?", "%\""+f.Tag+"\"%")
	}
	return q
}

func (r *coordRepository) List(ctx context.Context, f CoordFilter, p ListParams) ([]model.Coord, error) {
	p = p.Normalized(MaxCoordLimit)
	order := resolveOrder(coordSortColumns, p.SortBy, p.SortDir, "name")

	var coords []model.Coord
	err := r.scoped(ctx, f).Order(order).Limit(p.Limit).Offset(p.Offset).Find(&coords).Error
	if err != nil {
		return nil, err
	}
	return coords, nil
}

func (r *coordRepository) Count(ctx context.Context, f CoordFilter) (int64, error) {
	var count int64
	if err := r.scoped(ctx, f).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *coordRepository) FindByID(ctx context.Context, id uint64) (*model.Coord, error) {
	var coord model.Coord
	if err := r.db.WithContext(ctx).First(&coord, id).Error; err != nil {
		return nil, err
	}
	return &coord, nil
}

func (r *coordRepository) Create(ctx context.Context, coord *model.Coord) error {
	return r.db.WithContext(ctx).Create(coord).Error
}

func (r *coordRepository) Update(ctx context.Context, id uint64, patch model.CoordPatch) (*model.Coord, error) {
	fields := patch.Fields()
	if len(fields) == 0 {
		return r.FindByID(ctx, id)
	}
	res := r.db.WithContext(ctx).Model(&model.Coord{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	return r.FindByID(ctx, id)
}

func (r *coordRepository) Delete(ctx context.Context, id uint64) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.Coord{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
