package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"rootdex/internal/model"
)

// DeviceFilter narrows device list and count queries.
type DeviceFilter struct {
	Query      string
	Brand      string
	Type       string
	OS         string
	Status     string
	Compatible *bool
}

// DeviceRepository defines device persistence operations.
type DeviceRepository interface {
	List(ctx context.Context, f DeviceFilter, p ListParams) ([]model.Device, error)
	Count(ctx context.Context, f DeviceFilter) (int64, error)
	FindByID(ctx context.Context, id uint64) (*model.Device, error)
	Create(ctx context.Context, device *model.Device) error
	Update(ctx context.Context, id uint64, patch model.DevicePatch) (*model.Device, error)
	Delete(ctx context.Context, id uint64) (bool, error)
}

var deviceSortColumns = map[string]string{
	"name":       "name",
	"model":      "model",
	"brand":      "brand",
	"compatible": "compatible",
	"status":     "status",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository builds a GORM-backed device repository.
func NewDeviceRepository(db *gorm.DB) DeviceRepository {
	return &deviceRepository{db: db}
}

func (r *deviceRepository) scoped(ctx context.Context, f DeviceFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.Device{})
	if f.Query != "" {
		q = q.Where("MATCH (name, model, brand) AGAINST (? IN NATURAL LANGUAGE MODE)", f.Query)
	}
	if f.Brand != "" {
		q = q.Where("brand = ?", f.Brand)
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.OS != "" {
		q = q.Where("os = ?", f.OS)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Compatible != nil {
		q = q.Where("compatible = ?", *f.Compatible)
	}
	return q
}

func (r *deviceRepository) List(ctx context.Context, f DeviceFilter, p ListParams) ([]model.Device, error) {
	p = p.Normalized(MaxLimit)
	order := resolveOrder(deviceSortColumns, p.SortBy, p.SortDir, "name")

	var devices []model.Device
	err := r.scoped(ctx, f).Order(order).Limit(p.Limit).Offset(p.Offset).Find(&devices).Error
	if err != nil {
		return nil, err
	}
	return devices, nil
}

func (r *deviceRepository) Count(ctx context.Context, f DeviceFilter) (int64, error) {
	var count int64
	if err := r.scoped(ctx, f).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *deviceRepository) FindByID(ctx context.Context, id uint64) (*model.Device, error) {
	var device model.Device
	if err := r.db.WithContext(ctx).First(&device, id).Error; err != nil {
		return nil, err
	}
	return &device, nil
}

func (r *deviceRepository) Create(ctx context.Context, device *model.Device) error {
	return r.db.WithContext(ctx).Create(device).Error
}

// Update applies only the fields present in the patch. An empty patch is a
// plain read, not a mutation.
func (r *deviceRepository) Update(ctx context.Context, id uint64, patch model.DevicePatch) (*model.Device, error) {
	fields := patch.Fields()
	if len(fields) == 0 {
		return r.FindByID(ctx, id)
	}
	res := r.db.WithContext(ctx).Model(&model.Device{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	return r.FindByID(ctx, id)
}

func (r *deviceRepository) Delete(ctx context.Context, id uint64) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.Device{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// IsNotFound reports whether err is the record-missing error from GORM.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
