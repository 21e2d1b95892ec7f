package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/terraincognita07/dayglow/internal/models"
)

var ErrMissingUserID = errors.New("missing user id")

type CycleDayReader interface {
	ListByUser(ctx context.Context, userID string) ([]models.CycleDay, error)
}

// CycleStatsService backs the calendar statistics view.
type CycleStatsService struct {
	days     CycleDayReader
	now      func() time.Time
	location *time.Location
}

func NewCycleStatsService(days CycleDayReader, location *time.Location) *CycleStatsService {
	if location == nil {
		location = time.UTC
	}
	return &CycleStatsService{
		days:     days,
		now:      time.Now,
		location: location,
	}
}

func (service *CycleStatsService) Stats(ctx context.Context, userID string) (CycleStatistics, error) {
	if strings.TrimSpace(userID) == "" {
		return CycleStatistics{}, ErrMissingUserID
	}

	days, err := service.days.ListByUser(ctx, userID)
	if err != nil {
		return CycleStatistics{}, fmt.Errorf("list cycle days: %w", err)
	}
	return ComputeCycleStatistics(CycleDayDates(days), service.now().In(service.location)), nil
}

func CycleDayDates(days []models.CycleDay) []time.Time {
	dates := make([]time.Time, 0, len(days))
	for _, day := range days {
		dates = append(dates, day.Date)
	}
	return dates
}

// CyclePhase labels the cycle position by days since the last period began.
func CyclePhase(daysSinceLastPeriod int) string {
	switch {
	case daysSinceLastPeriod <= 5:
		return "menstrual phase"
	case daysSinceLastPeriod <= 13:
		return "follicular phase"
	case daysSinceLastPeriod <= 16:
		return "ovulation window"
	default:
		return "luteal phase (PMS possible)"
	}
}
