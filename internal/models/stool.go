package models

import (
	"time"

	"gorm.io/gorm"
)

type StoolEntry struct {
	ID       string    `gorm:"primaryKey"`
	UserID   string    `gorm:"not null;index:idx_stool_user_logged"`
	Type     int       `gorm:"not null"`
	Notes    *string
	LoggedAt time.Time `gorm:"not null;index:idx_stool_user_logged"`
}

func (entry *StoolEntry) BeforeCreate(*gorm.DB) error {
	ensureID(&entry.ID)
	return nil
}
