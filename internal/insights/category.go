package insights

// Category names one kind of logged health data.
type Category string

const (
	CategoryMood    Category = "mood"
	CategoryStool   Category = "stool"
	CategoryFood    Category = "food"
	CategorySymptom Category = "symptom"
	CategoryCycle   Category = "cycle"
)

var allCategories = []Category{
	CategoryMood,
	CategoryStool,
	CategoryFood,
	CategorySymptom,
	CategoryCycle,
}

func (category Category) Valid() bool {
	for _, known := range allCategories {
		if category == known {
			return true
		}
	}
	return false
}

// appendUnique keeps the first occurrence of every category.
func appendUnique(categories []Category, additions ...Category) []Category {
	for _, addition := range additions {
		if !containsCategory(categories, addition) {
			categories = append(categories, addition)
		}
	}
	return categories
}

func containsCategory(categories []Category, target Category) bool {
	for _, category := range categories {
		if category == target {
			return true
		}
	}
	return false
}
