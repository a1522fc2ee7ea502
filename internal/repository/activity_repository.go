package repository

import (
	"learnquest_backend/internal/model"

	"gorm.io/gorm"
)

type ActivityRepository struct {
	DB *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{DB: db}
}

func (r *ActivityRepository) Create(entry *model.ActivityLog) error {
	return r.DB.Create(entry).Error
}

func (r *ActivityRepository) ListByUsers(userIDs []uint, limit int) ([]model.ActivityLog, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	if limit <= 0 {
		limit = 50
	}
	var entries []model.ActivityLog
	err := r.DB.Where("user_id IN ?", userIDs).
		Order("created_at desc").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}
