package persistence

import (
	"context"

	"github.com/stockroom/backend/internal/domain/activity"
	"gorm.io/gorm"
)

// GormActivityRepository implements activity.Repository using GORM
type GormActivityRepository struct {
	db *gorm.DB
}

// NewGormActivityRepository creates a new GormActivityRepository
func NewGormActivityRepository(db *gorm.DB) *GormActivityRepository {
	return &GormActivityRepository{db: db}
}

// Append stores a new activity entry
func (r *GormActivityRepository) Append(ctx context.Context, entry *activity.Activity) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// FindRecent returns the newest entries, most recent first
func (r *GormActivityRepository) FindRecent(ctx context.Context, limit int) ([]activity.Activity, error) {
	if limit <= 0 {
		limit = 20
	}

	var entries []activity.Activity
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Ensure GormActivityRepository implements activity.Repository
var _ activity.Repository = (*GormActivityRepository)(nil)
