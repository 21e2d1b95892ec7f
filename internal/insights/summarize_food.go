package insights

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/terraincognita07/dayglow/internal/models"
)

const (
	noFoodData       = "No food data recorded"
	noMealsLogged    = "Food entries exist but no meals logged"
	foodDaysRendered = 5
)

var mealLabels = [...]string{"breakfast", "lunch", "dinner", "snacks"}

type foodDay struct {
	date  time.Time
	meals [len(mealLabels)][]string
}

func (day *foodDay) add(entry models.FoodEntry) {
	for slot, value := range [...]*string{entry.Breakfast, entry.Lunch, entry.Dinner, entry.Snack} {
		if value == nil || strings.TrimSpace(*value) == "" {
			continue
		}
		day.meals[slot] = append(day.meals[slot], strings.TrimSpace(*value))
	}
}

func (day *foodDay) render() string {
	parts := make([]string, 0, len(mealLabels))
	for slot, values := range day.meals {
		for _, value := range values {
			parts = append(parts, mealLabels[slot]+": "+value)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return fmt.Sprintf("%s: %s", day.date.Format("Mon"), strings.Join(parts, ", "))
}

// SummarizeFoods groups entries by calendar day in location, newest day
// first, and renders at most five days that have a meal logged.
func SummarizeFoods(entries []models.FoodEntry, location *time.Location) Summary {
	if len(entries) == 0 {
		return emptySummary(noFoodData)
	}
	if location == nil {
		location = time.UTC
	}

	days := make([]*foodDay, 0, len(entries))
	byDate := make(map[string]*foodDay, len(entries))
	for _, entry := range entries {
		local := entry.LoggedAt.In(location)
		key := local.Format("2006-01-02")
		day, ok := byDate[key]
		if !ok {
			day = &foodDay{date: local}
			byDate[key] = day
			days = append(days, day)
		}
		day.add(entry)
	}

	sort.SliceStable(days, func(i, j int) bool {
		return days[i].date.After(days[j].date)
	})

	rendered := make([]string, 0, foodDaysRendered)
	for _, day := range days {
		if len(rendered) == foodDaysRendered {
			break
		}
		if text := day.render(); text != "" {
			rendered = append(rendered, text)
		}
	}

	if len(rendered) == 0 {
		return Summary{Text: noMealsLogged, Status: SummaryInformative}
	}

	text := fmt.Sprintf("Recent meals (last %d days): %s", len(days), strings.Join(rendered, "; "))
	return Summary{Text: text, Status: SummaryInformative}
}
