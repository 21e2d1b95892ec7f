package models

import (
	"time"

	"gorm.io/gorm"
)

const DefaultCycleLength = 28

// CycleDay marks one calendar day of menstruation. Date carries no time of day.
type CycleDay struct {
	ID        string    `gorm:"primaryKey"`
	UserID    string    `gorm:"not null;uniqueIndex:uidx_cycle_user_date"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uidx_cycle_user_date"`
	CreatedAt time.Time
}

func (day *CycleDay) BeforeCreate(*gorm.DB) error {
	ensureID(&day.ID)
	return nil
}
