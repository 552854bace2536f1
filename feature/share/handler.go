package share

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"ink-and-realm/feature/auth"
	"ink-and-realm/feature/share/models"
	"ink-and-realm/feature/worldmap"
)

// Handler handles HTTP requests for map sharing.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the share routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/maps/:id/share", h.HandleCreateShare)
	app.Delete("/maps/:id/share", h.HandleCloseShare)
	app.Get("/shared/:code", h.HandleResolveShare)
}

// HandleCreateShare opens or refreshes a share link for a map.
// @Summary Share Map
// @Description Create or refresh a share link for one of the user's maps.
// @Tags share
// @Accept json
// @Produce json
// @Param id path int true "Map id"
// @Param request body models.CreateShareRequest true "Credentials"
// @Success 200 {object} models.ShareResponse "Share link"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Map not found"
// @Router /api/maps/{id}/share [post]
func (h *Handler) HandleCreateShare(c *fiber.Ctx) error {
	mapID, err := c.ParamsInt("id")
	if err != nil || mapID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid map id"})
	}

	var req models.CreateShareRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	resp, err := h.service.CreateShare(c.Context(), req.SessionToken, req.UserID, mapID)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(resp)
}

// HandleCloseShare revokes a map's share link.
// @Summary Close Share
// @Description Revoke the share link for one of the user's maps.
// @Tags share
// @Accept json
// @Produce json
// @Param id path int true "Map id"
// @Param request body models.CreateShareRequest true "Credentials"
// @Success 200 {object} map[string]bool "Closed"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Map not found"
// @Router /api/maps/{id}/share [delete]
func (h *Handler) HandleCloseShare(c *fiber.Ctx) error {
	mapID, err := c.ParamsInt("id")
	if err != nil || mapID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid map id"})
	}

	var req models.CreateShareRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := h.service.CloseShare(c.Context(), req.SessionToken, req.UserID, mapID); err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(fiber.Map{"closed": true})
}

// HandleResolveShare returns the shared map behind a code, no login
// required.
// @Summary Resolve Share
// @Description Load the map snapshot behind a share code.
// @Tags share
// @Produce json
// @Param code path string true "Share code"
// @Success 200 {object} wmmodels.MapSnapshot "Shared map"
// @Failure 404 {object} map[string]string "Share not found"
// @Router /api/shared/{code} [get]
func (h *Handler) HandleResolveShare(c *fiber.Ctx) error {
	snap, err := h.service.ResolveShare(c.Context(), c.Params("code"))
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(snap)
}

func (h *Handler) writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, auth.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	case errors.Is(err, worldmap.ErrMapNotFound), errors.Is(err, ErrShareNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	default:
		h.logger.Error("Share request failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}
