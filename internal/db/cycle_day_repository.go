package db

import (
	"context"
	"time"

	"github.com/terraincognita07/dayglow/internal/models"
	"gorm.io/gorm"
)

type CycleDayRepository struct {
	database *gorm.DB
}

func NewCycleDayRepository(database *gorm.DB) *CycleDayRepository {
	return &CycleDayRepository{database: database}
}

// ListSince returns cycle days on or after the calendar day of since, newest first.
func (repo *CycleDayRepository) ListSince(ctx context.Context, userID string, since time.Time) ([]models.CycleDay, error) {
	y, m, d := since.Date()
	sinceDay := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	days := make([]models.CycleDay, 0)
	if err := repo.database.WithContext(ctx).
		Select("id", "user_id", "date").
		Where("user_id = ? AND date >= ?", userID, sinceDay).
		Order("date DESC").
		Find(&days).Error; err != nil {
		return nil, err
	}
	return days, nil
}

func (repo *CycleDayRepository) ListByUser(ctx context.Context, userID string) ([]models.CycleDay, error) {
	days := make([]models.CycleDay, 0)
	if err := repo.database.WithContext(ctx).
		Select("id", "user_id", "date").
		Where("user_id = ?", userID).
		Order("date ASC").
		Find(&days).Error; err != nil {
		return nil, err
	}
	return days, nil
}
