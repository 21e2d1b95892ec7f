package insights

import (
	"regexp"
	"strings"
)

const defaultWindowDays = 7

// QuestionIntent is the data a question needs: which categories and how many
// days back to look.
type QuestionIntent struct {
	Categories []Category
	WindowDays int
}

type intentRule struct {
	pattern    *regexp.Regexp
	categories []Category
	window     func(question string, current int) int
}

func fixedWindow(days int) func(string, int) int {
	return func(string, int) int { return days }
}

var (
	recentMealPattern = regexp.MustCompile(`today|yesterday|last night`)
	weekPattern       = regexp.MustCompile(`week`)
	monthPattern      = regexp.MustCompile(`month`)
)

// Rule order matters: categories accumulate across every matching rule while
// the window of the last matching rule wins.
var intentRules = []intentRule{
	{
		pattern:    regexp.MustCompile(`constipat|poop|bowel|diarrh|stomach|digest|bloat|gas`),
		categories: []Category{CategoryStool, CategoryFood},
		window:     fixedWindow(3),
	},
	{
		pattern:    regexp.MustCompile(`anxious|anxiety|sad|depress|mood|stress|irritab|emotional|mental|feeling|\bfeel\b`),
		categories: []Category{CategoryMood, CategoryCycle, CategorySymptom},
		window:     fixedWindow(7),
	},
	{
		pattern:    regexp.MustCompile(`period|cycle|pms|cramp|ovulat|menstr|bleed`),
		categories: []Category{CategoryCycle},
		window:     fixedWindow(90),
	},
	{
		pattern:    regexp.MustCompile(`\beat|\bate\b|food|meal|dinner|lunch|breakfast|snack|diet`),
		categories: []Category{CategoryFood},
		window: func(question string, current int) int {
			switch {
			case recentMealPattern.MatchString(question):
				return 1
			case weekPattern.MatchString(question):
				return 7
			default:
				return current
			}
		},
	},
	{
		pattern:    regexp.MustCompile(`sick|\bill(ness)?\b|headache|fever|cold|flu|nausea|fatigue|tired|pain|ache|symptom`),
		categories: []Category{CategorySymptom, CategoryMood},
		window:     fixedWindow(14),
	},
	{
		pattern:    regexp.MustCompile(`summary|overview|pattern|trend|week|month|how.*been|what.*happening`),
		categories: allCategories,
		window: func(question string, _ int) int {
			if monthPattern.MatchString(question) {
				return 30
			}
			return 7
		},
	},
	{
		pattern:    regexp.MustCompile(`sleep|tired|energy|exhaust`),
		categories: []Category{CategoryMood, CategorySymptom},
		window:     fixedWindow(7),
	},
}

var fallbackCategories = []Category{CategoryMood, CategoryStool, CategoryFood, CategorySymptom}

// Classify maps a free-text question to the categories and lookback window
// needed to answer it. It is pure and case-insensitive.
func Classify(question string) QuestionIntent {
	normalized := strings.ToLower(question)

	categories := make([]Category, 0, len(allCategories))
	window := defaultWindowDays
	for _, rule := range intentRules {
		if !rule.pattern.MatchString(normalized) {
			continue
		}
		categories = appendUnique(categories, rule.categories...)
		window = rule.window(normalized, window)
	}

	if len(categories) == 0 {
		return QuestionIntent{
			Categories: append([]Category(nil), fallbackCategories...),
			WindowDays: defaultWindowDays,
		}
	}
	return QuestionIntent{Categories: categories, WindowDays: window}
}
