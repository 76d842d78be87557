package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/hamstech/backend/internal/models"
)

// DefaultReadingLimit caps List when no limit is given.
const DefaultReadingLimit = 100

// ReadingFilter narrows SensorReadingRepository.List.
type ReadingFilter struct {
	DeviceID *uint
	Limit    int
}

// SensorReadingRepository is append-only: readings are never updated or deleted.
type SensorReadingRepository struct {
	db *gorm.DB
}

func NewSensorReadingRepository(db *gorm.DB) *SensorReadingRepository {
	return &SensorReadingRepository{db: db}
}

// List returns readings newest first.
func (r *SensorReadingRepository) List(ctx context.Context, f ReadingFilter) ([]models.SensorReading, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = DefaultReadingLimit
	}
	q := r.db.WithContext(ctx).Order("timestamp DESC, id DESC").Limit(limit)
	if f.DeviceID != nil {
		q = q.Where("device_id = ?", *f.DeviceID)
	}
	readings := []models.SensorReading{}
	if err := q.Find(&readings).Error; err != nil {
		return nil, fmt.Errorf("list sensor readings: %w", err)
	}
	return readings, nil
}

func (r *SensorReadingRepository) Get(ctx context.Context, id uint) (*models.SensorReading, error) {
	var sr models.SensorReading
	if err := r.db.WithContext(ctx).First(&sr, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &sr, nil
}

// Create stores a reading; the timestamp is assigned on insert.
func (r *SensorReadingRepository) Create(ctx context.Context, sr *models.SensorReading) error {
	if err := r.db.WithContext(ctx).Create(sr).Error; err != nil {
		return fmt.Errorf("create sensor reading: %w", err)
	}
	return nil
}
