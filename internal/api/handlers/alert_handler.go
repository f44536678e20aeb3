package handlers

import (
	"errors"

	"Smart-Fridge-Backend/domain"
	"Smart-Fridge-Backend/internal/api/presenters"
	"Smart-Fridge-Backend/pkg/alert"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AlertHandler interface {
		GetUnreadAlerts(c *fiber.Ctx) error
		MarkAlertAsRead(c *fiber.Ctx) error
		GetAlertSummary(c *fiber.Ctx) error
	}

	alertHandler struct {
		alertService alert.AlertService
		validator    *validator.Validate
	}
)

func NewAlertHandler(alertService alert.AlertService, validator *validator.Validate) AlertHandler {
	return &alertHandler{
		alertService: alertService,
		validator:    validator,
	}
}

func (h *alertHandler) GetUnreadAlerts(c *fiber.Ctx) error {
	alerts, err := h.alertService.GetUnreadAlerts(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetAlerts, err)
	}

	return presenters.SuccessResponse(c, alerts, fiber.StatusOK, domain.MessageSuccessGetAlerts)
}

func (h *alertHandler) MarkAlertAsRead(c *fiber.Ctx) error {
	req := new(domain.MarkAlertReadRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedMarkAlertRead, err)
	}

	if err := h.alertService.MarkAlertAsRead(c.Context(), req.AlertID); err != nil {
		if errors.Is(err, domain.ErrAlertNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedMarkAlertRead, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedMarkAlertRead, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessMarkAlertRead)
}

func (h *alertHandler) GetAlertSummary(c *fiber.Ctx) error {
	summary, err := h.alertService.AlertSummaryHTML(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetAlerts, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(fiber.StatusOK).SendString(summary)
}
