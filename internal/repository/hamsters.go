package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/hamstech/backend/internal/models"
)

type HamsterRepository struct {
	db *gorm.DB
}

func NewHamsterRepository(db *gorm.DB) *HamsterRepository {
	return &HamsterRepository{db: db}
}

func (r *HamsterRepository) List(ctx context.Context) ([]models.Hamster, error) {
	hamsters := []models.Hamster{}
	if err := r.db.WithContext(ctx).Order("id").Find(&hamsters).Error; err != nil {
		return nil, fmt.Errorf("list hamsters: %w", err)
	}
	return hamsters, nil
}

func (r *HamsterRepository) Get(ctx context.Context, id uint) (*models.Hamster, error) {
	var h models.Hamster
	if err := r.db.WithContext(ctx).First(&h, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &h, nil
}

func (r *HamsterRepository) Create(ctx context.Context, h *models.Hamster) error {
	if err := r.db.WithContext(ctx).Create(h).Error; err != nil {
		return fmt.Errorf("create hamster: %w", err)
	}
	return nil
}

// Update sets the given columns on hamster id. fields must not be empty.
func (r *HamsterRepository) Update(ctx context.Context, id uint, fields map[string]any) error {
	res := r.db.WithContext(ctx).Model(&models.Hamster{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return fmt.Errorf("update hamster: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *HamsterRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Hamster{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete hamster: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
