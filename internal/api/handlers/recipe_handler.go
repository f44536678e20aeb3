package handlers

import (
	"errors"
	"strconv"

	"Smart-Fridge-Backend/domain"
	"Smart-Fridge-Backend/internal/api/presenters"
	"Smart-Fridge-Backend/pkg/recipe"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		GenerateRecipe(c *fiber.Ctx) error
		SaveRecipe(c *fiber.Ctx) error
		GetRecipes(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

func (h *recipeHandler) GenerateRecipe(c *fiber.Ctx) error {
	req := new(domain.GenerateRecipeRequest)

	if len(c.Body()) > 0 {
		if err := c.BodyParser(req); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
		}
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGenerateRecipe, err)
	}

	res, err := h.recipeService.GenerateFromExpiringItems(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrNoIngredients) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGenerateRecipe, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGenerateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGenerateRecipe)
}

func (h *recipeHandler) SaveRecipe(c *fiber.Ctx) error {
	req := new(domain.SaveRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveRecipe, err)
	}

	id, err := h.recipeService.SaveRecipe(c.Context(), req.Recipe)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveRecipe, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"id": id}, fiber.StatusCreated, domain.MessageSuccessSaveRecipe)
}

func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	recipes, err := h.recipeService.GetRecipes(c.Context(), limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, recipes, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}
