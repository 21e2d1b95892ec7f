package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	MinMoodScore = 1
	MaxMoodScore = 5
)

type MoodEntry struct {
	ID        string    `gorm:"primaryKey"`
	UserID    string    `gorm:"not null;index:idx_mood_user_created"`
	Mood      int       `gorm:"not null"`
	Notes     *string
	CreatedAt time.Time `gorm:"not null;index:idx_mood_user_created"`
}

func (entry *MoodEntry) BeforeCreate(*gorm.DB) error {
	ensureID(&entry.ID)
	return nil
}
