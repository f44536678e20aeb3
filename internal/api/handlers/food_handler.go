package handlers

import (
	"errors"

	"Smart-Fridge-Backend/domain"
	"Smart-Fridge-Backend/internal/api/presenters"
	"Smart-Fridge-Backend/pkg/food"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FoodHandler interface {
		AddFoodItem(c *fiber.Ctx) error
		UpdateFoodItem(c *fiber.Ctx) error
		DeleteFoodItem(c *fiber.Ctx) error
		GetFoodItems(c *fiber.Ctx) error
		GetFoodItemDetails(c *fiber.Ctx) error
		MarkAsConsumed(c *fiber.Ctx) error
		GetDashboardStats(c *fiber.Ctx) error
		UploadFoodImage(c *fiber.Ctx) error
	}

	foodHandler struct {
		foodService food.FoodService
		validator   *validator.Validate
	}
)

func NewFoodHandler(foodService food.FoodService, validator *validator.Validate) FoodHandler {
	return &foodHandler{
		foodService: foodService,
		validator:   validator,
	}
}

func (h *foodHandler) AddFoodItem(c *fiber.Ctx) error {
	req := new(domain.AddFoodItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFoodItem, err)
	}

	res, err := h.foodService.AddFoodItem(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFoodItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddFoodItem)
}

func (h *foodHandler) UpdateFoodItem(c *fiber.Ctx) error {
	itemID := c.Params("id")
	req := new(domain.UpdateFoodItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFoodItem, err)
	}

	if err := h.foodService.UpdateFoodItem(c.Context(), itemID, *req); err != nil {
		if errors.Is(err, domain.ErrFoodItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateFoodItem, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFoodItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateFoodItem)
}

func (h *foodHandler) DeleteFoodItem(c *fiber.Ctx) error {
	itemID := c.Params("id")

	if err := h.foodService.DeleteFoodItem(c.Context(), itemID); err != nil {
		if errors.Is(err, domain.ErrFoodItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteFoodItem, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteFoodItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteFoodItem)
}

func (h *foodHandler) GetFoodItems(c *fiber.Ctx) error {
	status := c.Query("status")

	items, err := h.foodService.GetFoodItems(c.Context(), status)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFoodItems, err)
	}

	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetFoodItems)
}

func (h *foodHandler) GetFoodItemDetails(c *fiber.Ctx) error {
	itemID := c.Params("id")

	item, err := h.foodService.GetFoodItemByID(c.Context(), itemID)
	if err != nil {
		if errors.Is(err, domain.ErrFoodItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetFoodItems, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFoodItems, err)
	}

	return presenters.SuccessResponse(c, item, fiber.StatusOK, domain.MessageSuccessGetFoodItems)
}

func (h *foodHandler) MarkAsConsumed(c *fiber.Ctx) error {
	req := new(domain.MarkAsConsumedRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedMarkAsConsumed, err)
	}

	if err := h.foodService.MarkAsConsumed(c.Context(), *req); err != nil {
		if errors.Is(err, domain.ErrFoodItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedMarkAsConsumed, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedMarkAsConsumed, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessMarkAsConsumed)
}

func (h *foodHandler) GetDashboardStats(c *fiber.Ctx) error {
	stats, err := h.foodService.GetDashboardStats(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDashboardStats, err)
	}

	return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.MessageSuccessGetDashboardStats)
}

func (h *foodHandler) UploadFoodImage(c *fiber.Ctx) error {
	req := new(domain.UploadFoodImageRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	req.Image = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadFoodImage, err)
	}

	res, err := h.foodService.UploadFoodImage(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrFoodItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUploadFoodImage, err)
		}
		if errors.Is(err, domain.ErrDetectionFailed) || errors.Is(err, domain.ErrNoItemsDetected) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDetectFood, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadFoodImage, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUploadFoodImage)
}
