package detect

import (
	"strings"

	"Smart-Fridge-Backend/domain"
)

var categoryKeywords = map[string][]string{
	"Vegetables": {"carrot", "broccoli", "lettuce", "tomato", "cucumber", "spinach", "potato"},
	"Fruits":     {"apple", "banana", "orange", "strawberry", "grape", "mango", "watermelon"},
	"Dairy":      {"milk", "cheese", "yogurt", "butter", "cream"},
	"Meat":       {"chicken", "beef", "pork", "lamb", "turkey"},
	"Seafood":    {"fish", "salmon", "tuna", "shrimp", "crab"},
	"Beverages":  {"juice", "soda", "water", "tea", "coffee"},
}

// CategorizeFood maps a detected item name onto the fixed category set by
// keyword match, falling back to "Others".
func CategorizeFood(foodName string) string {
	lower := strings.ToLower(foodName)

	for _, category := range domain.FoodCategories {
		keywords, ok := categoryKeywords[category]
		if !ok {
			continue
		}
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return category
			}
		}
	}

	return domain.CategoryOthers
}
