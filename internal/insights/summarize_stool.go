package insights

import (
	"fmt"
	"strings"

	"github.com/terraincognita07/dayglow/internal/models"
)

const (
	noStoolData     = "No poop data recorded"
	stoolNotesLimit = 2
)

// SummarizeStools reports the mean Bristol type and which consistency
// buckets occur. Type 0 (no movement) counts as constipation.
func SummarizeStools(entries []models.StoolEntry) Summary {
	if len(entries) == 0 {
		return emptySummary(noStoolData)
	}

	total := 0
	var constipation, normal, diarrhoea bool
	notes := make([]*string, 0, len(entries))
	for _, entry := range entries {
		total += entry.Type
		switch {
		case entry.Type <= 2:
			constipation = true
		case entry.Type <= 5:
			normal = true
		default:
			diarrhoea = true
		}
		notes = append(notes, entry.Notes)
	}

	buckets := make([]string, 0, 3)
	if constipation {
		buckets = append(buckets, "some constipation (types 1-2)")
	}
	if normal {
		buckets = append(buckets, "some normal (types 3-5)")
	}
	if diarrhoea {
		buckets = append(buckets, "some diarrhoea (types 6-7)")
	}

	text := fmt.Sprintf("Last %d entries: avg Bristol type %.1f. %s.%s",
		len(entries),
		float64(total)/float64(len(entries)),
		strings.Join(buckets, ", "),
		notesSuffix(notes, stoolNotesLimit),
	)
	return Summary{Text: text, Status: SummaryInformative}
}
