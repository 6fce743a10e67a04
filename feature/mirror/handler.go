package mirror

import (
	"prompt-library/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the SQL mirror.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the mirror routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/mirror")
	group.Post("/sync", h.HandleSync)
	group.Get("/check", h.HandleCheck)
}

// HandleSync rebuilds the mirror table from the library.
// @Summary Sync Mirror
// @Description Upserts every prompt into the prompt_mirror table and removes rows of deleted prompts.
// @Tags mirror
// @Produce json
// @Success 200 {object} SyncReport
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /mirror/sync [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	report, err := h.service.Sync(c.UserContext())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Mirror sync failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

// HandleCheck reports the state of the mirror table.
// @Summary Check Mirror
// @Tags mirror
// @Produce json
// @Success 200 {object} CheckReport
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /mirror/check [get]
func (h *Handler) HandleCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.Check(c.UserContext())
	if err != nil {
		l.Error("Mirror check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !report.InSync {
		l.Warn("Mirror out of sync",
			zap.Int64("rows", report.Rows),
			zap.Int("prompts", report.Prompts),
			zap.Strings("missing_columns", report.MissingColumns))
	}
	return c.JSON(report)
}
