package db

import (
	"context"
	"time"

	"github.com/terraincognita07/dayglow/internal/models"
	"gorm.io/gorm"
)

type SymptomRepository struct {
	database *gorm.DB
}

func NewSymptomRepository(database *gorm.DB) *SymptomRepository {
	return &SymptomRepository{database: database}
}

func (repo *SymptomRepository) ListSince(ctx context.Context, userID string, since time.Time, limit int) ([]models.SymptomEntry, error) {
	entries := make([]models.SymptomEntry, 0)
	query := repo.database.WithContext(ctx).
		Where("user_id = ? AND logged_at >= ?", userID, since.UTC()).
		Order("logged_at DESC, id DESC")
	if err := limitRows(query, limit).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
