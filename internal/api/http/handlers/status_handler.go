package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hellodg123/ShipReward.in/internal/api/dto"
	"github.com/hellodg123/ShipReward.in/internal/service"
	apperrors "github.com/hellodg123/ShipReward.in/pkg/util"
)

// StatusHandler exposes the status-check log.
type StatusHandler struct {
	status *service.StatusService
}

// NewStatusHandler constructs handler.
func NewStatusHandler(statusService *service.StatusService) *StatusHandler {
	return &StatusHandler{status: statusService}
}

// Create handles POST /status.
func (h *StatusHandler) Create(c *fiber.Ctx) error {
	var req dto.StatusCheckCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if req.ClientName == "" {
		return apperrors.NewValidationError("client_name required")
	}

	check, err := h.status.Create(c.Context(), req.ClientName)
	if err != nil {
		return err
	}
	return c.JSON(check)
}

// List handles GET /status.
func (h *StatusHandler) List(c *fiber.Ctx) error {
	checks, err := h.status.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(checks)
}
