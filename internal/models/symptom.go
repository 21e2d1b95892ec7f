package models

import (
	"time"

	"gorm.io/gorm"
)

type SymptomEntry struct {
	ID       string    `gorm:"primaryKey"`
	UserID   string    `gorm:"not null;index:idx_symptom_user_logged"`
	Symptoms []string  `gorm:"column:symptoms;serializer:json"`
	Notes    *string
	LoggedAt time.Time `gorm:"not null;index:idx_symptom_user_logged"`
}

func (entry *SymptomEntry) BeforeCreate(*gorm.DB) error {
	ensureID(&entry.ID)
	return nil
}
