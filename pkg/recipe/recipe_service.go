package recipe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"Smart-Fridge-Backend/domain"
	"Smart-Fridge-Backend/entities"
	"Smart-Fridge-Backend/internal/utils"
	"Smart-Fridge-Backend/pkg/expiry"

	"github.com/google/uuid"
)

type (
	RecipeService interface {
		GenerateFromExpiringItems(ctx context.Context, req domain.GenerateRecipeRequest) (domain.RecipeResponse, error)
		SaveRecipe(ctx context.Context, recipe domain.RecipeResponse) (string, error)
		GetRecipes(ctx context.Context, limit int) ([]domain.RecipeResponse, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		tracker          expiry.TrackerService
	}
)

func NewRecipeService(recipeRepository RecipeRepository, tracker expiry.TrackerService) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		tracker:          tracker,
	}
}

// GenerateFromExpiringItems builds a recipe from the soonest-expiring
// ingredients. The Gemini call is the primary path; on any failure the
// deterministic rule-based fallback takes over, so this only errors when
// there are no candidate ingredients or the item store is unreachable.
func (s *recipeService) GenerateFromExpiringItems(ctx context.Context, req domain.GenerateRecipeRequest) (domain.RecipeResponse, error) {
	candidates, err := s.tracker.GetItemsForRecipe(ctx, req.MaxItems)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	if len(candidates) == 0 {
		return domain.RecipeResponse{}, domain.ErrNoIngredients
	}

	ingredients := make([]string, 0, len(candidates))
	for _, item := range candidates {
		ingredients = append(ingredients, item.Name)
	}

	recipe, err := s.generateWithGemini(ctx, ingredients, req)
	if err != nil {
		log.Printf("gemini recipe generation failed, using fallback: %v", err)
		recipe = GenerateFallbackRecipe(ingredients)
	}

	recipe.UsedIngredients = ingredients
	recipe.IsGenerated = true

	return recipe, nil
}

func (s *recipeService) generateWithGemini(ctx context.Context, ingredients []string, req domain.GenerateRecipeRequest) (domain.RecipeResponse, error) {
	geminiAPIKey := utils.GetConfig("GEMINI_API_KEY")
	if geminiAPIKey == "" {
		return domain.RecipeResponse{}, fmt.Errorf("GEMINI_API_KEY not configured")
	}

	geminiModel := utils.GetConfig("GEMINI_MODEL")
	if geminiModel == "" {
		return domain.RecipeResponse{}, fmt.Errorf("GEMINI_MODEL not configured")
	}

	prompt := fmt.Sprintf(
		"Create a delicious recipe using the following ingredients that are about to expire: %s\n\n"+
			"Requirements:\n"+
			"- Use as many of these ingredients as possible\n"+
			"- The recipe should be practical and easy to prepare\n"+
			"- Include preparation time and cooking time\n"+
			"- Provide step-by-step instructions",
		strings.Join(ingredients, ", "),
	)

	if req.CuisineType != "" {
		prompt += fmt.Sprintf("\n- Cuisine type: %s", req.CuisineType)
	}
	if len(req.DietaryRestrictions) > 0 {
		prompt += fmt.Sprintf("\n- Dietary restrictions: %s", strings.Join(req.DietaryRestrictions, ", "))
	}

	prompt += "\n\nRespond ONLY with a valid JSON object with these fields: " +
		"'name' (string), 'description' (string), 'cuisine_type' (string), " +
		"'prep_time' (number, minutes), 'cook_time' (number, minutes), 'servings' (number), " +
		"'ingredients' (array of objects with 'item', 'amount', 'unit' strings), " +
		"'instructions' (array of strings), 'tips' (array of strings). " +
		"Do not include any explanations or markdown formatting."

	geminiURL := fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s", geminiModel, geminiAPIKey)

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{
						"text": prompt,
					},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature": 0.7,
			"topP":        0.8,
			"topK":        40,
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}
	geminiReq, err := http.NewRequestWithContext(ctx, "POST", geminiURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	geminiReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(geminiReq)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return domain.RecipeResponse{}, fmt.Errorf("gemini API error: %s - %s", resp.Status, string(bodyBytes))
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return domain.RecipeResponse{}, err
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return domain.RecipeResponse{}, domain.ErrGeminiAPIFailed
	}

	responseText := geminiResp.Candidates[0].Content.Parts[0].Text

	// The model occasionally wraps the JSON in markdown or commentary.
	startIdx := strings.Index(responseText, "{")
	endIdx := strings.LastIndex(responseText, "}")
	if startIdx == -1 || endIdx == -1 || startIdx > endIdx {
		return domain.RecipeResponse{}, fmt.Errorf("no JSON object in gemini response")
	}
	responseText = responseText[startIdx : endIdx+1]

	var raw struct {
		Name         string                    `json:"name"`
		Description  string                    `json:"description"`
		CuisineType  string                    `json:"cuisine_type"`
		PrepTime     int                       `json:"prep_time"`
		CookTime     int                       `json:"cook_time"`
		Servings     int                       `json:"servings"`
		Ingredients  []domain.RecipeIngredient `json:"ingredients"`
		Instructions []string                  `json:"instructions"`
		Tips         []string                  `json:"tips"`
	}

	if err := json.Unmarshal([]byte(responseText), &raw); err != nil {
		return domain.RecipeResponse{}, fmt.Errorf("failed to parse gemini response: %w", err)
	}

	if raw.Name == "" || len(raw.Instructions) == 0 {
		return domain.RecipeResponse{}, domain.ErrGeminiAPIFailed
	}

	if raw.Servings == 0 {
		raw.Servings = 4
	}
	if raw.CuisineType == "" {
		raw.CuisineType = "International"
	}

	return domain.RecipeResponse{
		Name:            raw.Name,
		Description:     raw.Description,
		CuisineType:     raw.CuisineType,
		PrepTimeMinutes: raw.PrepTime,
		CookTimeMinutes: raw.CookTime,
		Servings:        raw.Servings,
		Ingredients:     raw.Ingredients,
		Instructions:    raw.Instructions,
		Tips:            raw.Tips,
	}, nil
}

func (s *recipeService) SaveRecipe(ctx context.Context, recipe domain.RecipeResponse) (string, error) {
	ingredientsJSON, err := json.Marshal(recipe.Ingredients)
	if err != nil {
		return "", err
	}
	instructionsJSON, err := json.Marshal(recipe.Instructions)
	if err != nil {
		return "", err
	}
	tipsJSON, err := json.Marshal(recipe.Tips)
	if err != nil {
		return "", err
	}

	entity := &entities.Recipe{
		ID:              uuid.New(),
		Name:            recipe.Name,
		Description:     recipe.Description,
		CuisineType:     recipe.CuisineType,
		PrepTimeMinutes: recipe.PrepTimeMinutes,
		CookTimeMinutes: recipe.CookTimeMinutes,
		Servings:        recipe.Servings,
		Ingredients:     string(ingredientsJSON),
		Instructions:    string(instructionsJSON),
		Tips:            string(tipsJSON),
		UsedItems:       strings.Join(recipe.UsedIngredients, ","),
		IsGenerated:     recipe.IsGenerated,
	}

	if err := s.recipeRepository.CreateRecipe(ctx, entity); err != nil {
		return "", err
	}

	return entity.ID.String(), nil
}

func (s *recipeService) GetRecipes(ctx context.Context, limit int) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx, limit)
	if err != nil {
		return nil, err
	}

	result := make([]domain.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		response := domain.RecipeResponse{
			ID:              r.ID.String(),
			Name:            r.Name,
			Description:     r.Description,
			CuisineType:     r.CuisineType,
			PrepTimeMinutes: r.PrepTimeMinutes,
			CookTimeMinutes: r.CookTimeMinutes,
			Servings:        r.Servings,
			IsGenerated:     r.IsGenerated,
			CreatedAt:       r.CreatedAt,
		}

		_ = json.Unmarshal([]byte(r.Ingredients), &response.Ingredients)
		_ = json.Unmarshal([]byte(r.Instructions), &response.Instructions)
		if r.Tips != "" {
			_ = json.Unmarshal([]byte(r.Tips), &response.Tips)
		}
		if r.UsedItems != "" {
			response.UsedIngredients = strings.Split(r.UsedItems, ",")
		}

		result = append(result, response)
	}

	return result, nil
}
