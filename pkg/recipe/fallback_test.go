package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateFallbackRecipe_SaladForVegetablesOnly(t *testing.T) {
	recipe := GenerateFallbackRecipe([]string{"lettuce", "tomato", "cucumber"})

	assert.Equal(t, "Fresh Salad Bowl", recipe.Name)
	assert.Zero(t, recipe.CookTimeMinutes)
}

func TestGenerateFallbackRecipe_StirFryWithProtein(t *testing.T) {
	recipe := GenerateFallbackRecipe([]string{"chicken breast", "broccoli"})

	assert.Equal(t, "Quick Stir Fry", recipe.Name)
	assert.Equal(t, "Asian Fusion", recipe.CuisineType)
}

func TestGenerateFallbackRecipe_OnePotForManyIngredients(t *testing.T) {
	recipe := GenerateFallbackRecipe([]string{"chicken", "potato", "onion", "rice", "celery"})

	assert.Equal(t, "One-Pot Wonder", recipe.Name)
	assert.Equal(t, 4, recipe.Servings)
}

func TestGenerateFallbackRecipe_IncludesAllIngredients(t *testing.T) {
	ingredients := []string{"milk", "eggs", "bread"}
	recipe := GenerateFallbackRecipe(ingredients)

	require.Len(t, recipe.Ingredients, 3)
	for i, ing := range recipe.Ingredients {
		assert.Equal(t, ingredients[i], ing.Item)
		assert.Equal(t, "1", ing.Amount)
		assert.Equal(t, "portion", ing.Unit)
	}
	assert.Equal(t, ingredients, recipe.UsedIngredients)
}

func TestGenerateFallbackRecipe_Deterministic(t *testing.T) {
	ingredients := []string{"tofu", "carrot", "lettuce"}

	first := GenerateFallbackRecipe(ingredients)
	second := GenerateFallbackRecipe(ingredients)

	assert.Equal(t, first, second)
}

func TestGenerateFallbackRecipe_AlwaysComplete(t *testing.T) {
	cases := [][]string{
		{"mystery item"},
		{"carrot"},
		{"beef", "tomato", "rice", "onion", "garlic", "pepper"},
	}

	for _, ingredients := range cases {
		recipe := GenerateFallbackRecipe(ingredients)
		assert.NotEmpty(t, recipe.Name)
		assert.NotEmpty(t, recipe.Instructions)
		assert.NotEmpty(t, recipe.Ingredients)
		assert.Positive(t, recipe.Servings)
	}
}
