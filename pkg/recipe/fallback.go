package recipe

import (
	"strings"

	"Smart-Fridge-Backend/domain"
)

var fallbackTemplates = []domain.RecipeResponse{
	{
		Name:            "Quick Stir Fry",
		Description:     "A quick and healthy stir fry using available ingredients",
		CuisineType:     "Asian Fusion",
		PrepTimeMinutes: 10,
		CookTimeMinutes: 15,
		Servings:        2,
		Instructions: []string{
			"Heat oil in a large wok or skillet over high heat",
			"Add vegetables and stir fry for 3-4 minutes",
			"Add protein (if available) and cook until done",
			"Season with soy sauce, garlic, and ginger",
			"Serve hot over rice or noodles",
		},
		Tips: []string{"Use high heat for best results", "Don't overcrowd the pan"},
	},
	{
		Name:            "Fresh Salad Bowl",
		Description:     "Healthy and refreshing salad using fresh ingredients",
		CuisineType:     "Mediterranean",
		PrepTimeMinutes: 15,
		CookTimeMinutes: 0,
		Servings:        2,
		Instructions: []string{
			"Wash and chop all fresh vegetables",
			"Combine in a large bowl",
			"Add protein of choice (if available)",
			"Dress with olive oil, lemon juice, and herbs",
			"Season with salt and pepper to taste",
		},
		Tips: []string{"Use fresh, crisp vegetables", "Dress just before serving"},
	},
	{
		Name:            "One-Pot Wonder",
		Description:     "Easy one-pot meal using available ingredients",
		CuisineType:     "Home Cooking",
		PrepTimeMinutes: 10,
		CookTimeMinutes: 25,
		Servings:        4,
		Instructions: []string{
			"Heat oil in a large pot",
			"Saute aromatics (onions, garlic) until fragrant",
			"Add vegetables and protein",
			"Add liquid (broth or water) and bring to boil",
			"Simmer until everything is cooked through",
			"Season to taste and serve",
		},
		Tips: []string{"Layer ingredients by cooking time", "Don't rush the process"},
	},
}

var fallbackVegetables = []string{"vegetable", "carrot", "broccoli", "lettuce", "tomato", "cucumber"}
var fallbackProteins = []string{"chicken", "beef", "pork", "fish", "tofu", "eggs"}

// GenerateFallbackRecipe is the deterministic rule-based path used when the
// AI service is unavailable or returns garbage. Same ingredient list, same
// template, every time; it never fails.
func GenerateFallbackRecipe(ingredients []string) domain.RecipeResponse {
	selected := fallbackTemplates[0] // stir fry by default

	hasVegetables := containsAny(ingredients, fallbackVegetables)
	hasProtein := containsAny(ingredients, fallbackProteins)

	if !hasProtein && hasVegetables {
		selected = fallbackTemplates[1] // salad
	} else if len(ingredients) >= 4 {
		selected = fallbackTemplates[2] // one-pot
	}

	ingredientList := make([]domain.RecipeIngredient, 0, len(ingredients))
	for _, ing := range ingredients {
		ingredientList = append(ingredientList, domain.RecipeIngredient{
			Item:   ing,
			Amount: "1",
			Unit:   "portion",
		})
	}

	recipe := selected
	recipe.Ingredients = ingredientList
	recipe.UsedIngredients = ingredients

	return recipe
}

func containsAny(ingredients []string, keywords []string) bool {
	for _, ing := range ingredients {
		lower := strings.ToLower(ing)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
	}
	return false
}
