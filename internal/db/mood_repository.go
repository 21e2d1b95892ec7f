package db

import (
	"context"
	"time"

	"github.com/terraincognita07/dayglow/internal/models"
	"gorm.io/gorm"
)

type MoodRepository struct {
	database *gorm.DB
}

func NewMoodRepository(database *gorm.DB) *MoodRepository {
	return &MoodRepository{database: database}
}

// ListSince returns the newest entries created at or after since.
func (repo *MoodRepository) ListSince(ctx context.Context, userID string, since time.Time, limit int) ([]models.MoodEntry, error) {
	entries := make([]models.MoodEntry, 0)
	query := repo.database.WithContext(ctx).
		Where("user_id = ? AND created_at >= ?", userID, since.UTC()).
		Order("created_at DESC, id DESC")
	if err := limitRows(query, limit).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
