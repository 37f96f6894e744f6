package models

// Spending categories
const (
	CategoryFoodDrink      = "FOOD_DRINK"
	CategoryTransportation = "TRANSPORTATION"
	CategoryShopping       = "SHOPPING"
	CategoryEntertainment  = "ENTERTAINMENT"
	CategoryBillsUtilities = "BILLS_UTILITIES"
	CategoryHealthcare     = "HEALTHCARE"
	CategoryFitness        = "FITNESS"
	CategoryOther          = "OTHER"
)

// AllCategories returns every valid category in its canonical order. The
// order doubles as the deterministic tiebreak for equal-amount breakdown
// buckets and equal-progress goals.
func AllCategories() []string {
	return []string{
		CategoryFoodDrink,
		CategoryTransportation,
		CategoryShopping,
		CategoryEntertainment,
		CategoryBillsUtilities,
		CategoryHealthcare,
		CategoryFitness,
		CategoryOther,
	}
}

var categoryDisplayNames = map[string]string{
	CategoryFoodDrink:      "Food & Drink",
	CategoryTransportation: "Transportation",
	CategoryShopping:       "Shopping",
	CategoryEntertainment:  "Entertainment",
	CategoryBillsUtilities: "Bills & Utilities",
	CategoryHealthcare:     "Healthcare",
	CategoryFitness:        "Fitness",
	CategoryOther:          "Other",
}

var categoryOrder = func() map[string]int {
	order := make(map[string]int, len(AllCategories()))
	for i, category := range AllCategories() {
		order[category] = i
	}
	return order
}()

// IsValidCategory checks if a category string is valid
func IsValidCategory(category string) bool {
	_, ok := categoryOrder[category]
	return ok
}

// CategoryDisplayName returns the human-readable name for a category. Text
// search matches against this form as well as the raw code.
func CategoryDisplayName(category string) string {
	if name, ok := categoryDisplayNames[category]; ok {
		return name
	}
	return category
}

// CategoryRank returns the canonical position of a category, with unknown
// categories sorting last.
func CategoryRank(category string) int {
	if rank, ok := categoryOrder[category]; ok {
		return rank
	}
	return len(categoryOrder)
}
