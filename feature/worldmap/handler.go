package worldmap

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"ink-and-realm/core/logger"
	"ink-and-realm/feature/auth"
	"ink-and-realm/feature/worldmap/models"
)

// Handler handles HTTP requests for maps.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the map routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/maps")
	group.Get("/", h.HandleListMaps)
	group.Post("/", h.HandleCreateMap)
	group.Post("/edits", h.HandleApplyEdits)
	group.Post("/tree", h.HandleAddTree)
	group.Post("/house", h.HandleAddHouse)
	group.Get("/:id", h.HandleGetMap)
	group.Delete("/:id", h.HandleDeleteMap)
}

// HandleListMaps lists the caller's maps.
// @Summary List Maps
// @Description List the authenticated user's maps.
// @Tags maps
// @Produce json
// @Param sessionToken query string false "Session token"
// @Param userId query int false "User id (fallback when no token)"
// @Success 200 {array} models.MapSummary "Maps"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /api/maps [get]
func (h *Handler) HandleListMaps(c *fiber.Ctx) error {
	token := c.Query("sessionToken")
	userID := c.QueryInt("userId")

	maps, err := h.service.ListMaps(c.Context(), token, userID)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(maps)
}

// HandleCreateMap creates an empty map.
// @Summary Create Map
// @Description Create a new empty map for the authenticated user.
// @Tags maps
// @Accept json
// @Produce json
// @Param request body models.CreateMapRequest true "Map parameters"
// @Success 200 {object} models.MapSnapshot "Created map"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /api/maps [post]
func (h *Handler) HandleCreateMap(c *fiber.Ctx) error {
	var req models.CreateMapRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	snap, err := h.service.CreateMap(c.Context(), &req)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(snap)
}

// HandleGetMap returns one map with all features and resolved anchors.
// @Summary Get Map
// @Description Load a full map snapshot.
// @Tags maps
// @Produce json
// @Param id path int true "Map id"
// @Param sessionToken query string false "Session token"
// @Param userId query int false "User id (fallback when no token)"
// @Success 200 {object} models.MapSnapshot "Map"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Map not found"
// @Router /api/maps/{id} [get]
func (h *Handler) HandleGetMap(c *fiber.Ctx) error {
	mapID, err := c.ParamsInt("id")
	if err != nil || mapID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid map id"})
	}

	snap, err := h.service.GetMap(c.Context(), c.Query("sessionToken"), c.QueryInt("userId"), mapID)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(snap)
}

// HandleDeleteMap deletes one map with everything on it.
// @Summary Delete Map
// @Description Delete a map and all of its features.
// @Tags maps
// @Produce json
// @Param id path int true "Map id"
// @Param sessionToken query string false "Session token"
// @Param userId query int false "User id (fallback when no token)"
// @Success 200 {object} map[string]bool "Deleted"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Map not found"
// @Router /api/maps/{id} [delete]
func (h *Handler) HandleDeleteMap(c *fiber.Ctx) error {
	mapID, err := c.ParamsInt("id")
	if err != nil || mapID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid map id"})
	}

	if err := h.service.DeleteMap(c.Context(), c.Query("sessionToken"), c.QueryInt("userId"), mapID); err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(fiber.Map{"deleted": true})
}

// HandleApplyEdits applies one edit batch and returns the updated map.
// @Summary Apply Map Edits
// @Description Apply a batch of feature, relationship and layer edits.
// @Tags maps
// @Accept json
// @Produce json
// @Param request body models.MapEditsRequest true "Edit batch"
// @Success 200 {object} models.MapSnapshot "Updated map"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Map not found"
// @Router /api/maps/edits [post]
func (h *Handler) HandleApplyEdits(c *fiber.Ctx) error {
	var req models.MapEditsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	l := logger.WithRayID(h.logger, c)
	snap, err := h.service.ApplyEdits(c.Context(), &req)
	if err != nil {
		if !errors.Is(err, auth.ErrUnauthorized) && !errors.Is(err, ErrMapNotFound) {
			l.Error("Edit batch failed", zap.Int("map_id", req.MapID), zap.Error(err))
		}
		return h.writeError(c, err)
	}
	return c.JSON(snap)
}

// HandleAddTree places a single tree.
// @Summary Add Tree
// @Description Place a single tree on a map.
// @Tags maps
// @Accept json
// @Produce json
// @Param request body models.AddTreeRequest true "Tree placement"
// @Success 200 {object} models.MapSnapshot "Updated map"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Map not found"
// @Router /api/maps/tree [post]
func (h *Handler) HandleAddTree(c *fiber.Ctx) error {
	var req models.AddTreeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	snap, err := h.service.AddTree(c.Context(), &req)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(snap)
}

// HandleAddHouse places a single house.
// @Summary Add House
// @Description Place a single house on a map.
// @Tags maps
// @Accept json
// @Produce json
// @Param request body models.AddHouseRequest true "House placement"
// @Success 200 {object} models.MapSnapshot "Updated map"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Map not found"
// @Router /api/maps/house [post]
func (h *Handler) HandleAddHouse(c *fiber.Ctx) error {
	var req models.AddHouseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	snap, err := h.service.AddHouse(c.Context(), &req)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(snap)
}

func (h *Handler) writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, auth.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	case errors.Is(err, ErrMapNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "map not found"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}
