package insights

import (
	"fmt"
	"sort"
	"strings"

	"github.com/terraincognita07/dayglow/internal/models"
)

const (
	noSymptomData     = "No illness/symptoms recorded"
	symptomNotesLimit = 2
)

type symptomCount struct {
	tag   string
	count int
}

// SummarizeSymptoms counts tags across entries, most frequent first. Ties
// keep the order in which tags were first seen.
func SummarizeSymptoms(entries []models.SymptomEntry) Summary {
	if len(entries) == 0 {
		return emptySummary(noSymptomData)
	}

	counts := make([]symptomCount, 0)
	index := make(map[string]int)
	notes := make([]*string, 0, len(entries))
	for _, entry := range entries {
		for _, tag := range entry.Symptoms {
			tag = strings.TrimSpace(tag)
			if tag == "" {
				continue
			}
			if position, ok := index[tag]; ok {
				counts[position].count++
				continue
			}
			index[tag] = len(counts)
			counts = append(counts, symptomCount{tag: tag, count: 1})
		}
		notes = append(notes, entry.Notes)
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].count > counts[j].count
	})

	rendered := make([]string, 0, len(counts))
	for _, item := range counts {
		rendered = append(rendered, fmt.Sprintf("%s (%dx)", item.tag, item.count))
	}

	tagText := strings.Join(rendered, ", ")
	if len(rendered) == 0 {
		tagText = "no symptoms tagged"
	}

	text := fmt.Sprintf("Recent symptoms (%d entries): %s.%s", len(entries), tagText, notesSuffix(notes, symptomNotesLimit))
	return Summary{Text: text, Status: SummaryInformative}
}
