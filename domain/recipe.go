package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGenerateRecipe = "recipe generated successfully"
	MessageSuccessSaveRecipe     = "recipe saved successfully"
	MessageSuccessGetRecipes     = "recipes retrieved successfully"

	MessageFailedGenerateRecipe = "failed to generate recipe"
	MessageFailedSaveRecipe     = "failed to save recipe"
	MessageFailedGetRecipes     = "failed to retrieve recipes"

	ErrRecipeNotFound  = errors.New("recipe not found")
	ErrNoIngredients   = errors.New("no expiring ingredients available for recipe generation")
	ErrGeminiAPIFailed = errors.New("gemini API processing failed")
)

type (
	GenerateRecipeRequest struct {
		CuisineType         string   `json:"cuisine_type,omitempty"`
		DietaryRestrictions []string `json:"dietary_restrictions,omitempty"`
		MaxItems            int      `json:"max_items,omitempty" validate:"omitempty,min=1"`
	}

	RecipeIngredient struct {
		Item   string `json:"item"`
		Amount string `json:"amount"`
		Unit   string `json:"unit"`
	}

	RecipeResponse struct {
		ID              string             `json:"id,omitempty"`
		Name            string             `json:"name"`
		Description     string             `json:"description"`
		CuisineType     string             `json:"cuisine_type"`
		PrepTimeMinutes int                `json:"prep_time_minutes"`
		CookTimeMinutes int                `json:"cook_time_minutes"`
		Servings        int                `json:"servings"`
		Ingredients     []RecipeIngredient `json:"ingredients"`
		Instructions    []string           `json:"instructions"`
		Tips            []string           `json:"tips,omitempty"`
		UsedIngredients []string           `json:"used_ingredients"`
		IsGenerated     bool               `json:"is_generated"`
		CreatedAt       time.Time          `json:"created_at,omitempty"`
	}

	SaveRecipeRequest struct {
		Recipe RecipeResponse `json:"recipe" validate:"required"`
	}
)
