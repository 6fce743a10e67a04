package backup

import (
	"errors"

	"prompt-library/core/logger"
	"prompt-library/core/promptdb"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RestoreRequest is the body of POST /backups/restore.
type RestoreRequest struct {
	Name   string `json:"name"`
	DryRun bool   `json:"dry_run"`
}

// Handler handles HTTP requests for snapshots.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the backup routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/backups")
	group.Post("/", h.HandlePush)
	group.Get("/", h.HandleList)
	group.Post("/restore", h.HandleRestore)
}

// HandlePush uploads a snapshot of the library.
// @Summary Push Snapshot
// @Description Uploads the current library to object storage and prunes old snapshots.
// @Tags backups
// @Produce json
// @Success 201 {object} Snapshot
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /backups [post]
func (h *Handler) HandlePush(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	snap, err := h.service.Push(c.UserContext())
	if err != nil {
		l.Error("Snapshot push failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(snap)
}

// HandleList lists stored snapshots.
// @Summary List Snapshots
// @Tags backups
// @Produce json
// @Success 200 {array} Snapshot
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /backups [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	snaps, err := h.service.List(c.UserContext())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Snapshot listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if snaps == nil {
		snaps = []Snapshot{}
	}
	return c.JSON(snaps)
}

// HandleRestore merges a snapshot into the library.
// @Summary Restore Snapshot
// @Description Downloads a snapshot and merges it into the library.
// @Tags backups
// @Accept json
// @Produce json
// @Param request body RestoreRequest true "Snapshot name"
// @Success 200 {object} library.MergeOutcome
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Snapshot not found"
// @Failure 422 {object} map[string]string "Malformed snapshot"
// @Router /backups/restore [post]
func (h *Handler) HandleRestore(c *fiber.Ctx) error {
	var req RestoreRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}

	out, err := h.service.Restore(c.UserContext(), req.Name, req.DryRun)
	if err != nil {
		status := fiber.StatusInternalServerError
		switch {
		case errors.Is(err, ErrNoSnapshot):
			status = fiber.StatusNotFound
		case errors.Is(err, promptdb.ErrMalformed):
			status = fiber.StatusUnprocessableEntity
		}
		logger.WithRayID(h.service.logger, c).Error("Snapshot restore failed", zap.String("name", req.Name), zap.Error(err))
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(out)
}
