package db

import (
	"context"
	"time"

	"github.com/terraincognita07/dayglow/internal/models"
	"gorm.io/gorm"
)

type StoolRepository struct {
	database *gorm.DB
}

func NewStoolRepository(database *gorm.DB) *StoolRepository {
	return &StoolRepository{database: database}
}

func (repo *StoolRepository) ListSince(ctx context.Context, userID string, since time.Time, limit int) ([]models.StoolEntry, error) {
	entries := make([]models.StoolEntry, 0)
	query := repo.database.WithContext(ctx).
		Where("user_id = ? AND logged_at >= ?", userID, since.UTC()).
		Order("logged_at DESC, id DESC")
	if err := limitRows(query, limit).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
