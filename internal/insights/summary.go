package insights

import (
	"encoding/json"
	"strings"
)

type SummaryStatus string

const (
	SummaryEmpty       SummaryStatus = "empty"
	SummarySparse      SummaryStatus = "sparse"
	SummaryInformative SummaryStatus = "informative"
)

// Summary is the evidence text for one category. Only Text reaches the
// language model; Status drives the limited-data note.
type Summary struct {
	Text   string
	Status SummaryStatus
}

func (summary Summary) MarshalJSON() ([]byte, error) {
	return json.Marshal(summary.Text)
}

func (summary Summary) Informative() bool {
	return summary.Status == SummaryInformative
}

func emptySummary(sentinel string) Summary {
	return Summary{Text: sentinel, Status: SummaryEmpty}
}

// notesSuffix renders up to limit non-blank notes, in order, as " Notes: a; b".
func notesSuffix(notes []*string, limit int) string {
	kept := make([]string, 0, limit)
	for _, note := range notes {
		if len(kept) == limit {
			break
		}
		if note == nil || strings.TrimSpace(*note) == "" {
			continue
		}
		kept = append(kept, *note)
	}
	if len(kept) == 0 {
		return ""
	}
	return " Notes: " + strings.Join(kept, "; ")
}
