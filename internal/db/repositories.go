package db

import "gorm.io/gorm"

type Repositories struct {
	Moods     *MoodRepository
	Stools    *StoolRepository
	Foods     *FoodRepository
	Symptoms  *SymptomRepository
	CycleDays *CycleDayRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Moods:     NewMoodRepository(database),
		Stools:    NewStoolRepository(database),
		Foods:     NewFoodRepository(database),
		Symptoms:  NewSymptomRepository(database),
		CycleDays: NewCycleDayRepository(database),
	}
}

// limitRows applies limit only when positive so callers can ask for an unbounded window.
func limitRows(query *gorm.DB, limit int) *gorm.DB {
	if limit > 0 {
		return query.Limit(limit)
	}
	return query
}
