package integrity

import (
	"errors"
	"io/fs"

	"prompt-library/core/logger"
	"prompt-library/core/utils"
	"prompt-library/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	// Force import for Swagger
	var _ = checks.StorageReport{}
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/structure", h.HandleStructureCheck)
	group.Get("/document", h.HandleDocumentCheck)
	group.Get("/storage", h.HandleStorageCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Performs all available integrity checks (Structure, Document, Storage).
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	report := make(map[string]interface{})

	if missing, err := h.service.CheckStructure(); err != nil {
		report["structure"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["structure"] = map[string]interface{}{"status": "ok", "missing": missing}
	}

	if issues, err := h.service.CheckDocument(""); err != nil {
		report["document"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["document"] = map[string]interface{}{"status": "ok", "issues": issues}
	}

	if storageReport, err := h.service.CheckStorage(c.UserContext()); errors.Is(err, ErrStorageDisabled) {
		report["storage"] = map[string]interface{}{"status": "disabled"}
	} else if err != nil {
		report["storage"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["storage"] = storageReport
	}

	return c.JSON(report)
}

// HandleStructureCheck checks and optionally fixes the data directories.
// @Summary Check Structure
// @Description Checks that the library and export directories exist. Optionally creates them.
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Create missing directories"
// @Success 200 {object} map[string]interface{} "Structure Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/structure [get]
func (h *Handler) HandleStructureCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := utils.ToBool(c.Query("fix"))

	missing, err := h.service.CheckStructure()
	if err != nil {
		l.Error("Structure check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if len(missing) > 0 {
		l.Warn("Missing directories detected", zap.Strings("missing", missing))

		if fix {
			if err := h.service.FixStructure(missing); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error":   "Failed to fix structure",
					"details": err.Error(),
					"missing": missing,
				})
			}
			return c.JSON(fiber.Map{
				"status": "fixed",
				"fixed":  missing,
			})
		}
	}

	return c.JSON(fiber.Map{
		"status":  "checked",
		"missing": missing,
	})
}

// HandleDocumentCheck validates the library document on disk.
// @Summary Check Library Document
// @Description Reports duplicate ids, duplicate or stale hashes, out-of-range ratings and similar problems in the stored library file.
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]interface{} "Document Report"
// @Failure 404 {object} map[string]string "No library file yet"
// @Failure 422 {object} map[string]string "Malformed document"
// @Router /integrity/document [get]
func (h *Handler) HandleDocumentCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	issues, err := h.service.CheckDocument("")
	if err != nil {
		status := fiber.StatusUnprocessableEntity
		if errors.Is(err, fs.ErrNotExist) {
			status = fiber.StatusNotFound
		}
		l.Warn("Document check failed", zap.Error(err))
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	if len(issues) > 0 {
		l.Warn("Library document has issues", zap.Int("issues", len(issues)))
	}
	return c.JSON(fiber.Map{
		"status": "checked",
		"issues": issues,
	})
}

// HandleStorageCheck checks and optionally fixes the snapshot bucket.
// @Summary Check Snapshot Storage
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Create the bucket when missing"
// @Success 200 {object} checks.StorageReport "Storage Report"
// @Failure 503 {object} map[string]string "Storage not configured"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/storage [get]
func (h *Handler) HandleStorageCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	ctx := c.UserContext()

	report, err := h.service.CheckStorage(ctx)
	if errors.Is(err, ErrStorageDisabled) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		l.Error("Storage check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if !report.BucketExists && utils.ToBool(c.Query("fix")) {
		l.Info("Creating missing snapshot bucket", zap.String("bucket", report.Bucket))
		if err := h.service.FixStorage(ctx); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		report.BucketExists = true
	}
	return c.JSON(report)
}
