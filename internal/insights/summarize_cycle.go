package insights

import (
	"fmt"
	"time"

	"github.com/terraincognita07/dayglow/internal/services"
)

const noCycleData = "No period data recorded"

// SummarizeCycle narrates the current cycle position for the given cycle
// days. The average cycle stays unknown until two separate periods exist,
// in which case no prediction is made and the summary is sparse.
func SummarizeCycle(days []time.Time, today time.Time) Summary {
	stats := services.ComputeCycleStatistics(days, today)
	if stats.CycleCount == 0 {
		return emptySummary(noCycleData)
	}

	daysSince := *stats.DaysSinceLastPeriod
	phase := services.CyclePhase(daysSince)

	if stats.AverageCycleLengthDays == nil {
		text := fmt.Sprintf("Last period: %d days ago. Avg cycle: insufficient data. Current phase: %s.", daysSince, phase)
		return Summary{Text: text, Status: SummarySparse}
	}

	average := *stats.AverageCycleLengthDays
	text := fmt.Sprintf("Last period: %d days ago. Avg cycle: %d days. Current phase: %s.", daysSince, average, phase)
	if daysSince < average {
		text += fmt.Sprintf(" Next period expected in ~%d days.", average-daysSince)
	} else {
		text += fmt.Sprintf(" Period is ~%d days late based on avg cycle.", daysSince-average)
	}
	return Summary{Text: text, Status: SummaryInformative}
}
