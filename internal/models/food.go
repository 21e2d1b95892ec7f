package models

import (
	"time"

	"gorm.io/gorm"
)

type FoodEntry struct {
	ID        string  `gorm:"primaryKey"`
	UserID    string  `gorm:"not null;index:idx_food_user_logged"`
	Breakfast *string
	Lunch     *string
	Snack     *string
	Dinner    *string
	LoggedAt  time.Time `gorm:"not null;index:idx_food_user_logged"`
}

func (entry *FoodEntry) BeforeCreate(*gorm.DB) error {
	ensureID(&entry.ID)
	return nil
}
