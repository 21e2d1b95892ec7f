package services

import (
	"encoding/json"
	"math"
	"sort"
	"time"

	"github.com/terraincognita07/dayglow/internal/models"
)

const dayLayout = "2006-01-02"

// CycleStatistics summarises menstruation runs. Pointer fields are nil when
// the input holds no cycle days; AverageCycleLengthDays also stays nil until
// at least two runs exist.
type CycleStatistics struct {
	AverageCycleLengthDays  *int
	AveragePeriodLengthDays *int
	LastPeriodStart         *time.Time
	DaysSinceLastPeriod     *int
	PredictedNextPeriod     *time.Time
	CycleCount              int
}

type cycleStatisticsJSON struct {
	AverageCycleLengthDays  *int    `json:"averageCycleLengthDays"`
	AveragePeriodLengthDays *int    `json:"averagePeriodLengthDays"`
	LastPeriodStart         *string `json:"lastPeriodStart"`
	DaysSinceLastPeriod     *int    `json:"daysSinceLastPeriod"`
	PredictedNextPeriod     *string `json:"predictedNextPeriod"`
	CycleCount              int     `json:"cycleCount"`
}

func (stats CycleStatistics) MarshalJSON() ([]byte, error) {
	return json.Marshal(cycleStatisticsJSON{
		AverageCycleLengthDays:  stats.AverageCycleLengthDays,
		AveragePeriodLengthDays: stats.AveragePeriodLengthDays,
		LastPeriodStart:         formatOptionalDay(stats.LastPeriodStart),
		DaysSinceLastPeriod:     stats.DaysSinceLastPeriod,
		PredictedNextPeriod:     formatOptionalDay(stats.PredictedNextPeriod),
		CycleCount:              stats.CycleCount,
	})
}

// PeriodRun is a maximal sequence of consecutive cycle days.
type PeriodRun struct {
	Start  time.Time
	Length int
}

// ComputeCycleStatistics groups days into runs where each day is exactly one
// calendar day after the previous one. Order and duplicates in days do not
// affect the result. today anchors DaysSinceLastPeriod.
func ComputeCycleStatistics(days []time.Time, today time.Time) CycleStatistics {
	runs := GroupPeriodRuns(days)
	if len(runs) == 0 {
		return CycleStatistics{}
	}

	stats := CycleStatistics{CycleCount: len(runs)}

	lengths := make([]int, 0, len(runs))
	for _, run := range runs {
		lengths = append(lengths, run.Length)
	}
	stats.AveragePeriodLengthDays = intPtr(roundMean(lengths))

	if len(runs) >= 2 {
		gaps := make([]int, 0, len(runs)-1)
		for i := 1; i < len(runs); i++ {
			gaps = append(gaps, daysBetween(runs[i-1].Start, runs[i].Start))
		}
		stats.AverageCycleLengthDays = intPtr(roundMean(gaps))
	}

	lastStart := runs[len(runs)-1].Start
	stats.LastPeriodStart = &lastStart
	stats.DaysSinceLastPeriod = intPtr(daysBetween(lastStart, calendarDay(today)))

	predictionLength := models.DefaultCycleLength
	if stats.AverageCycleLengthDays != nil {
		predictionLength = *stats.AverageCycleLengthDays
	}
	predicted := lastStart.AddDate(0, 0, predictionLength)
	stats.PredictedNextPeriod = &predicted

	return stats
}

// GroupPeriodRuns returns runs in ascending order of their start day.
func GroupPeriodRuns(days []time.Time) []PeriodRun {
	unique := uniqueCalendarDays(days)
	if len(unique) == 0 {
		return nil
	}

	runs := make([]PeriodRun, 0)
	current := PeriodRun{Start: unique[0], Length: 1}
	for i := 1; i < len(unique); i++ {
		if daysBetween(unique[i-1], unique[i]) == 1 {
			current.Length++
			continue
		}
		runs = append(runs, current)
		current = PeriodRun{Start: unique[i], Length: 1}
	}
	return append(runs, current)
}

func uniqueCalendarDays(days []time.Time) []time.Time {
	seen := make(map[time.Time]struct{}, len(days))
	unique := make([]time.Time, 0, len(days))
	for _, day := range days {
		if day.IsZero() {
			continue
		}
		normalized := calendarDay(day)
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		unique = append(unique, normalized)
	}
	sort.Slice(unique, func(i, j int) bool {
		return unique[i].Before(unique[j])
	})
	return unique
}

// calendarDay keeps the wall-clock date and drops time and zone so that day
// arithmetic is immune to DST shifts.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(math.Round(calendarDay(to).Sub(calendarDay(from)).Hours() / 24))
}

func roundMean(values []int) int {
	total := 0
	for _, value := range values {
		total += value
	}
	return int(math.Round(float64(total) / float64(len(values))))
}

func intPtr(value int) *int {
	return &value
}

func formatOptionalDay(day *time.Time) *string {
	if day == nil {
		return nil
	}
	formatted := day.Format(dayLayout)
	return &formatted
}
