package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/hamstech/backend/internal/models"
)

type DeviceRepository struct {
	db *gorm.DB
}

func NewDeviceRepository(db *gorm.DB) *DeviceRepository {
	return &DeviceRepository{db: db}
}

func (r *DeviceRepository) List(ctx context.Context) ([]models.Device, error) {
	devices := []models.Device{}
	if err := r.db.WithContext(ctx).Order("id").Find(&devices).Error; err != nil {
		return nil, fmt.Errorf("list devices: %w", err)
	}
	return devices, nil
}

func (r *DeviceRepository) Get(ctx context.Context, id uint) (*models.Device, error) {
	var d models.Device
	if err := r.db.WithContext(ctx).First(&d, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &d, nil
}

func (r *DeviceRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Device{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check device: %w", err)
	}
	return count > 0, nil
}

func (r *DeviceRepository) Create(ctx context.Context, d *models.Device) error {
	if err := r.db.WithContext(ctx).Create(d).Error; err != nil {
		return fmt.Errorf("create device: %w", err)
	}
	return nil
}

func (r *DeviceRepository) Update(ctx context.Context, id uint, fields map[string]any) error {
	res := r.db.WithContext(ctx).Model(&models.Device{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return fmt.Errorf("update device: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *DeviceRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Device{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete device: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
