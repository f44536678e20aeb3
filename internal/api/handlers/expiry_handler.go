package handlers

import (
	"strconv"

	"Smart-Fridge-Backend/domain"
	"Smart-Fridge-Backend/internal/api/presenters"
	"Smart-Fridge-Backend/pkg/expiry"

	"github.com/gofiber/fiber/v2"
)

type (
	ExpiryHandler interface {
		CheckExpiryStatus(c *fiber.Ctx) error
		GenerateAlerts(c *fiber.Ctx) error
		GetRecipeCandidates(c *fiber.Ctx) error
		GetWasteStatistics(c *fiber.Ctx) error
		GetConsumptionInsights(c *fiber.Ctx) error
	}

	expiryHandler struct {
		trackerService expiry.TrackerService
	}
)

func NewExpiryHandler(trackerService expiry.TrackerService) ExpiryHandler {
	return &expiryHandler{trackerService: trackerService}
}

func (h *expiryHandler) CheckExpiryStatus(c *fiber.Ctx) error {
	status, err := h.trackerService.CheckExpiryStatus(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCheckExpiry, err)
	}

	return presenters.SuccessResponse(c, status, fiber.StatusOK, domain.MessageSuccessCheckExpiry)
}

func (h *expiryHandler) GenerateAlerts(c *fiber.Ctx) error {
	if err := h.trackerService.GenerateAlerts(c.Context()); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGenerateAlerts, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessGenerateAlerts)
}

func (h *expiryHandler) GetRecipeCandidates(c *fiber.Ctx) error {
	maxItems, err := strconv.Atoi(c.Query("max_items", "0"))
	if err != nil || maxItems < 0 {
		maxItems = 0
	}

	candidates, err := h.trackerService.GetItemsForRecipe(c.Context(), maxItems)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetCandidates, err)
	}

	return presenters.SuccessResponse(c, candidates, fiber.StatusOK, domain.MessageSuccessGetCandidates)
}

func (h *expiryHandler) GetWasteStatistics(c *fiber.Ctx) error {
	stats, err := h.trackerService.CalculateWasteStatistics(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetWasteStats, err)
	}

	return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.MessageSuccessGetWasteStats)
}

func (h *expiryHandler) GetConsumptionInsights(c *fiber.Ctx) error {
	insights, err := h.trackerService.GetConsumptionInsights(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetInsights, err)
	}

	return presenters.SuccessResponse(c, insights, fiber.StatusOK, domain.MessageSuccessGetInsights)
}
