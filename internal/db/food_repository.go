package db

import (
	"context"
	"time"

	"github.com/terraincognita07/dayglow/internal/models"
	"gorm.io/gorm"
)

type FoodRepository struct {
	database *gorm.DB
}

func NewFoodRepository(database *gorm.DB) *FoodRepository {
	return &FoodRepository{database: database}
}

func (repo *FoodRepository) ListSince(ctx context.Context, userID string, since time.Time, limit int) ([]models.FoodEntry, error) {
	entries := make([]models.FoodEntry, 0)
	query := repo.database.WithContext(ctx).
		Select("id", "user_id", "breakfast", "lunch", "snack", "dinner", "logged_at").
		Where("user_id = ? AND logged_at >= ?", userID, since.UTC()).
		Order("logged_at DESC, id DESC")
	if err := limitRows(query, limit).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
