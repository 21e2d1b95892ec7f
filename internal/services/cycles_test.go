package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestComputeCycleStatisticsTwoRuns(t *testing.T) {
	days := mustParseDays(t, "2024-01-01", "2024-01-02", "2024-01-03", "2024-01-29", "2024-01-30")

	stats := ComputeCycleStatistics(days, mustParseDay(t, "2024-02-05"))

	if stats.CycleCount != 2 {
		t.Fatalf("expected 2 runs, got %d", stats.CycleCount)
	}
	if stats.AveragePeriodLengthDays == nil || *stats.AveragePeriodLengthDays != 3 {
		t.Fatalf("expected average period length 3, got %v", stats.AveragePeriodLengthDays)
	}
	if stats.AverageCycleLengthDays == nil || *stats.AverageCycleLengthDays != 28 {
		t.Fatalf("expected average cycle length 28, got %v", stats.AverageCycleLengthDays)
	}
	if got := stats.LastPeriodStart.Format(dayLayout); got != "2024-01-29" {
		t.Fatalf("unexpected last period start: %s", got)
	}
	if got := stats.PredictedNextPeriod.Format(dayLayout); got != "2024-02-26" {
		t.Fatalf("unexpected predicted next period: %s", got)
	}
	if stats.DaysSinceLastPeriod == nil || *stats.DaysSinceLastPeriod != 7 {
		t.Fatalf("expected 7 days since last period, got %v", stats.DaysSinceLastPeriod)
	}
}

func TestComputeCycleStatisticsEmpty(t *testing.T) {
	stats := ComputeCycleStatistics(nil, mustParseDay(t, "2024-02-05"))
	if diff := cmp.Diff(CycleStatistics{}, stats); diff != "" {
		t.Fatalf("unexpected stats (-want +got):\n%s", diff)
	}

	payload, err := json.Marshal(stats)
	if err != nil {
		t.Fatalf("marshal stats: %v", err)
	}
	want := `{"averageCycleLengthDays":null,"averagePeriodLengthDays":null,"lastPeriodStart":null,"daysSinceLastPeriod":null,"predictedNextPeriod":null,"cycleCount":0}`
	if string(payload) != want {
		t.Fatalf("unexpected json:\n got %s\nwant %s", payload, want)
	}
}

func TestComputeCycleStatisticsSingleRunUsesDefaultPrediction(t *testing.T) {
	days := mustParseDays(t, "2024-03-10", "2024-03-11", "2024-03-12", "2024-03-13")

	stats := ComputeCycleStatistics(days, mustParseDay(t, "2024-03-20"))

	if stats.AverageCycleLengthDays != nil {
		t.Fatalf("expected unknown average cycle length, got %d", *stats.AverageCycleLengthDays)
	}
	if stats.CycleCount != 1 || *stats.AveragePeriodLengthDays != 4 {
		t.Fatalf("unexpected single run stats: count=%d period=%d", stats.CycleCount, *stats.AveragePeriodLengthDays)
	}
	if got := stats.PredictedNextPeriod.Format(dayLayout); got != "2024-04-07" {
		t.Fatalf("expected 28-day fallback prediction, got %s", got)
	}
}

func TestComputeCycleStatisticsIgnoresOrderAndDuplicates(t *testing.T) {
	ordered := mustParseDays(t, "2024-01-01", "2024-01-02", "2024-01-03", "2024-01-29", "2024-01-30", "2024-02-27")
	shuffled := mustParseDays(t, "2024-01-30", "2024-02-27", "2024-01-01", "2024-01-03", "2024-01-29", "2024-01-02", "2024-01-02")
	today := mustParseDay(t, "2024-03-01")

	if diff := cmp.Diff(ComputeCycleStatistics(ordered, today), ComputeCycleStatistics(shuffled, today)); diff != "" {
		t.Fatalf("statistics depend on input order (-ordered +shuffled):\n%s", diff)
	}
}

func TestComputeCycleStatisticsRoundsHalfAwayFromZero(t *testing.T) {
	// runs of 2 and 3 days average to 2.5
	days := mustParseDays(t, "2024-01-01", "2024-01-02", "2024-01-30", "2024-01-31", "2024-02-01")

	stats := ComputeCycleStatistics(days, mustParseDay(t, "2024-02-02"))

	if *stats.AveragePeriodLengthDays != 3 {
		t.Fatalf("expected 2.5 to round to 3, got %d", *stats.AveragePeriodLengthDays)
	}
	if *stats.AverageCycleLengthDays != 29 {
		t.Fatalf("expected cycle length 29, got %d", *stats.AverageCycleLengthDays)
	}
}

func TestGroupPeriodRunsAcrossMonthBoundary(t *testing.T) {
	days := mustParseDays(t, "2024-02-28", "2024-02-29", "2024-03-01", "2024-03-03")

	runs := GroupPeriodRuns(days)

	want := []PeriodRun{
		{Start: mustParseDay(t, "2024-02-28"), Length: 3},
		{Start: mustParseDay(t, "2024-03-03"), Length: 1},
	}
	if diff := cmp.Diff(want, runs); diff != "" {
		t.Fatalf("unexpected runs (-want +got):\n%s", diff)
	}
}

func TestGroupPeriodRunsNormalizesTimeOfDay(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skipf("timezone data unavailable: %v", err)
	}
	days := []time.Time{
		time.Date(2024, 3, 30, 23, 30, 0, 0, berlin),
		time.Date(2024, 3, 31, 8, 0, 0, 0, berlin),
		time.Date(2024, 4, 1, 0, 15, 0, 0, berlin),
	}

	runs := GroupPeriodRuns(days)
	if len(runs) != 1 || runs[0].Length != 3 {
		t.Fatalf("expected one 3-day run across the DST change, got %+v", runs)
	}
}

func TestCycleStatisticsJSONUsesCalendarDates(t *testing.T) {
	days := mustParseDays(t, "2024-01-01", "2024-01-02", "2024-01-03", "2024-01-29", "2024-01-30")
	payload, err := json.Marshal(ComputeCycleStatistics(days, mustParseDay(t, "2024-02-05")))
	if err != nil {
		t.Fatalf("marshal stats: %v", err)
	}

	want := `{"averageCycleLengthDays":28,"averagePeriodLengthDays":3,"lastPeriodStart":"2024-01-29","daysSinceLastPeriod":7,"predictedNextPeriod":"2024-02-26","cycleCount":2}`
	if string(payload) != want {
		t.Fatalf("unexpected json:\n got %s\nwant %s", payload, want)
	}
}

func mustParseDay(t *testing.T, raw string) time.Time {
	t.Helper()
	parsed, err := time.Parse(dayLayout, raw)
	if err != nil {
		t.Fatalf("parse day %q: %v", raw, err)
	}
	return parsed
}

func mustParseDays(t *testing.T, raw ...string) []time.Time {
	t.Helper()
	days := make([]time.Time, 0, len(raw))
	for _, value := range raw {
		days = append(days, mustParseDay(t, value))
	}
	return days
}
