package insights

import (
	"fmt"
	"strings"

	"github.com/terraincognita07/dayglow/internal/models"
)

const (
	noMoodData         = "No mood data recorded"
	moodTrendSample    = 3
	moodNotesLimit     = 3
	positiveTrendFloor = 3.5
	negativeTrendCeil  = 2.5
)

var moodLabels = [...]string{"terrible", "bad", "okay", "good", "great"}

func moodLabel(score int) string {
	if score < models.MinMoodScore || score > models.MaxMoodScore {
		return "unknown"
	}
	return moodLabels[score-models.MinMoodScore]
}

// SummarizeMoods expects entries newest first.
func SummarizeMoods(entries []models.MoodEntry) Summary {
	if len(entries) == 0 {
		return emptySummary(noMoodData)
	}

	order := make([]string, 0, len(moodLabels))
	counts := make(map[string]int, len(moodLabels))
	notes := make([]*string, 0, len(entries))
	for _, entry := range entries {
		label := moodLabel(entry.Mood)
		if _, seen := counts[label]; !seen {
			order = append(order, label)
		}
		counts[label]++
		notes = append(notes, entry.Notes)
	}

	histogram := make([]string, 0, len(order))
	for _, label := range order {
		histogram = append(histogram, fmt.Sprintf("%s: %d", label, counts[label]))
	}

	text := fmt.Sprintf("Last %d moods: %s (%s).%s",
		len(entries),
		strings.Join(histogram, ", "),
		moodTrend(entries),
		notesSuffix(notes, moodNotesLimit),
	)
	return Summary{Text: text, Status: SummaryInformative}
}

func moodTrend(entries []models.MoodEntry) string {
	recent := entries
	if len(recent) > moodTrendSample {
		recent = recent[:moodTrendSample]
	}

	total := 0
	for _, entry := range recent {
		total += entry.Mood
	}
	mean := float64(total) / float64(len(recent))

	switch {
	case mean >= positiveTrendFloor:
		return "trending positive"
	case mean <= negativeTrendCeil:
		return "trending negative"
	default:
		return "mixed"
	}
}
