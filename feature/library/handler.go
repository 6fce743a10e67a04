package library

import (
	"bytes"
	"errors"

	"prompt-library/core/imaging"
	"prompt-library/core/logger"
	"prompt-library/core/promptdb"
	"prompt-library/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the prompt library.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the library routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	prompts := app.Group("/prompts")
	prompts.Get("/", h.HandleSearch)
	prompts.Post("/", h.HandleCreate)
	prompts.Post("/save", h.HandleSave)
	prompts.Get("/:id", h.HandleGet)
	prompts.Patch("/:id", h.HandleUpdate)
	prompts.Delete("/:id", h.HandleDelete)
	prompts.Post("/:id/history", h.HandleAddHistory)
	prompts.Post("/:id/thumbnails", h.HandleAddThumbnail)
	prompts.Get("/:id/thumbnails/:index", h.HandleGetThumbnail)
	prompts.Post("/:id/thumbnails/:index/lock", h.HandleLockThumbnail)
	prompts.Delete("/:id/thumbnails/:index/lock", h.HandleUnlockThumbnail)

	app.Get("/categories", h.HandleVocabulary)
	app.Get("/categories/:category/latest", h.HandleLatest)
	app.Get("/stats", h.HandleStats)
	app.Get("/export", h.HandleExport)
	app.Post("/merge", h.HandleMerge)
	app.Post("/cleanup", h.HandleCleanup)
	app.Get("/settings", h.HandleGetSettings)
	app.Patch("/settings", h.HandleUpdateSettings)
	app.Delete("/sessions/:token", h.HandleForget)
}

// statusFor maps store errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, promptdb.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, promptdb.ErrInvalidIndex), errors.Is(err, ErrInvalidInput):
		return fiber.StatusBadRequest
	case errors.Is(err, promptdb.ErrMalformed):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	status := statusFor(err)
	l := logger.WithRayID(h.service.logger, c)
	if status >= fiber.StatusInternalServerError {
		l.Error(msg, zap.Error(err))
	} else {
		l.Debug(msg, zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}

// HandleSearch searches prompts.
// @Summary Search Prompts
// @Description Filters prompts by text, category, tags and minimum rating. Results are ordered by rating, usage and id.
// @Tags prompts
// @Produce json
// @Param q query string false "Case-insensitive text matched against prompt and notes"
// @Param category query string false "Exact category"
// @Param tags query string false "Comma-separated tags, any match"
// @Param min_rating query int false "Minimum rating"
// @Param limit query int false "Maximum results (default 100)"
// @Success 200 {array} promptdb.PromptRecord
// @Router /prompts [get]
func (h *Handler) HandleSearch(c *fiber.Ctx) error {
	q := promptdb.SearchQuery{
		Text:       c.Query("q"),
		Category:   c.Query("category"),
		Tags:       utils.SplitList(c.Query("tags")),
		MinRating:  c.QueryInt("min_rating", 0),
		MaxResults: c.QueryInt("limit", 0),
	}
	return c.JSON(h.service.Search(q))
}

// HandleCreate adds a prompt.
// @Summary Add Prompt
// @Description Stores a prompt. Text that is already stored returns the existing id.
// @Tags prompts
// @Accept json
// @Produce json
// @Param prompt body CreatePromptRequest true "Prompt"
// @Success 201 {object} map[string]interface{} "Created"
// @Success 200 {object} map[string]interface{} "Duplicate"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /prompts [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	var req CreatePromptRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	res, err := h.service.Add(req.toNewPrompt())
	if err != nil {
		return h.fail(c, "Add prompt failed", err)
	}

	status := fiber.StatusOK
	if res.Created {
		status = fiber.StatusCreated
		logger.WithRayID(h.service.logger, c).Info("Prompt added", zap.Int64("id", res.ID))
	}
	return c.Status(status).JSON(res)
}

// HandleSave saves from an editor session.
// @Summary Save From Editor
// @Description Adds a new prompt when the text was rewritten since the token's previous save, otherwise updates the previously saved prompt.
// @Tags prompts
// @Accept json
// @Produce json
// @Param prompt body SavePromptRequest true "Prompt and session token"
// @Success 200 {object} SaveResult
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /prompts/save [post]
func (h *Handler) HandleSave(c *fiber.Ctx) error {
	var req SavePromptRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}

	res, err := h.service.Save(SaveRequest{
		Token:       req.Token,
		Text:        req.Text,
		Category:    req.Category,
		Tags:        req.Tags,
		Rating:      req.Rating,
		Notes:       req.Notes,
		SourceImage: req.SourceImage,
	})
	if err != nil {
		return h.fail(c, "Save prompt failed", err)
	}
	return c.JSON(res)
}

// HandleGet returns one prompt.
// @Summary Get Prompt
// @Tags prompts
// @Produce json
// @Param id path int true "Prompt ID"
// @Success 200 {object} promptdb.PromptRecord
// @Failure 404 {object} map[string]string "Not Found"
// @Router /prompts/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	id, err := utils.ParseID(c.Params("id"))
	if err != nil {
		return badRequest(c, err)
	}
	rec, err := h.service.Get(id)
	if err != nil {
		return h.fail(c, "Get prompt failed", err)
	}
	return c.JSON(rec)
}

// HandleUpdate updates a prompt.
// @Summary Update Prompt
// @Description Overwrites the fields present in the body.
// @Tags prompts
// @Accept json
// @Produce json
// @Param id path int true "Prompt ID"
// @Param prompt body UpdatePromptRequest true "Fields to change"
// @Success 200 {object} promptdb.PromptRecord
// @Failure 404 {object} map[string]string "Not Found"
// @Router /prompts/{id} [patch]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	id, err := utils.ParseID(c.Params("id"))
	if err != nil {
		return badRequest(c, err)
	}
	var req UpdatePromptRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	rec, err := h.service.Update(id, req.toUpdate())
	if err != nil {
		return h.fail(c, "Update prompt failed", err)
	}
	return c.JSON(rec)
}

// HandleDelete deletes a prompt.
// @Summary Delete Prompt
// @Tags prompts
// @Produce json
// @Param id path int true "Prompt ID"
// @Success 200 {object} map[string]interface{} "Deleted"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /prompts/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	id, err := utils.ParseID(c.Params("id"))
	if err != nil {
		return badRequest(c, err)
	}
	removed, err := h.service.Delete(id)
	if err != nil {
		return h.fail(c, "Delete prompt failed", err)
	}
	if !removed {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": promptdb.ErrNotFound.Error()})
	}
	return c.JSON(fiber.Map{"deleted": id})
}

// HandleAddHistory records a generation run.
// @Summary Add Generation History
// @Tags prompts
// @Accept json
// @Produce json
// @Param id path int true "Prompt ID"
// @Param entry body HistoryRequest true "Generation run"
// @Success 201 {object} map[string]interface{} "Recorded"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /prompts/{id}/history [post]
func (h *Handler) HandleAddHistory(c *fiber.Ctx) error {
	id, err := utils.ParseID(c.Params("id"))
	if err != nil {
		return badRequest(c, err)
	}
	var req HistoryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	err = h.service.AddHistory(id, promptdb.HistoryInput{
		FullPrompt:  req.FullPrompt,
		OutputImage: req.OutputImage,
		Model:       req.Model,
		Snapshot:    req.Snapshot,
	})
	if err != nil {
		return h.fail(c, "Add history failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

// HandleAddThumbnail encodes an image file into the prompt's thumbnails.
// @Summary Add Thumbnail
// @Tags thumbnails
// @Accept json
// @Produce json
// @Param id path int true "Prompt ID"
// @Param image body ThumbnailRequest true "Image path on the host"
// @Success 201 {object} map[string]interface{} "Added"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Encoding failed"
// @Router /prompts/{id}/thumbnails [post]
func (h *Handler) HandleAddThumbnail(c *fiber.Ctx) error {
	id, err := utils.ParseID(c.Params("id"))
	if err != nil {
		return badRequest(c, err)
	}
	var req ThumbnailRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	if req.ImagePath == "" {
		return badRequest(c, errors.New("image_path is required"))
	}
	if err := h.service.AddThumbnail(id, req.ImagePath); err != nil {
		return h.fail(c, "Add thumbnail failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

// HandleGetThumbnail returns one thumbnail as a JPEG image.
// @Summary Get Thumbnail
// @Tags thumbnails
// @Produce jpeg
// @Param id path int true "Prompt ID"
// @Param index path int true "Slot index"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string "Invalid index"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /prompts/{id}/thumbnails/{index} [get]
func (h *Handler) HandleGetThumbnail(c *fiber.Ctx) error {
	id, index, err := pathSlot(c)
	if err != nil {
		return badRequest(c, err)
	}
	thumb, err := h.service.Thumbnail(id, index)
	if err != nil {
		return h.fail(c, "Get thumbnail failed", err)
	}
	data, err := imaging.Decode(thumb.Data)
	if err != nil {
		return h.fail(c, "Decode thumbnail failed", err)
	}
	c.Set(fiber.HeaderContentType, "image/jpeg")
	return c.SendStream(bytes.NewReader(data), len(data))
}

// HandleLockThumbnail locks a thumbnail slot.
// @Summary Lock Thumbnail
// @Tags thumbnails
// @Produce json
// @Param id path int true "Prompt ID"
// @Param index path int true "Slot index"
// @Success 200 {object} map[string]interface{} "Locked"
// @Failure 400 {object} map[string]string "Invalid index"
// @Router /prompts/{id}/thumbnails/{index}/lock [post]
func (h *Handler) HandleLockThumbnail(c *fiber.Ctx) error {
	return h.setLock(c, true)
}

// HandleUnlockThumbnail unlocks a thumbnail slot.
// @Summary Unlock Thumbnail
// @Tags thumbnails
// @Produce json
// @Param id path int true "Prompt ID"
// @Param index path int true "Slot index"
// @Success 200 {object} map[string]interface{} "Unlocked"
// @Failure 400 {object} map[string]string "Invalid index"
// @Router /prompts/{id}/thumbnails/{index}/lock [delete]
func (h *Handler) HandleUnlockThumbnail(c *fiber.Ctx) error {
	return h.setLock(c, false)
}

func (h *Handler) setLock(c *fiber.Ctx, locked bool) error {
	id, index, err := pathSlot(c)
	if err != nil {
		return badRequest(c, err)
	}
	if err := h.service.SetThumbnailLock(id, index, locked); err != nil {
		return h.fail(c, "Thumbnail lock failed", err)
	}
	return c.JSON(fiber.Map{"id": id, "index": index, "locked": locked})
}

func pathSlot(c *fiber.Ctx) (int64, int, error) {
	id, err := utils.ParseID(c.Params("id"))
	if err != nil {
		return 0, 0, err
	}
	index, err := utils.ParseIndex(c.Params("index"))
	if err != nil {
		return 0, 0, err
	}
	return id, index, nil
}

// HandleVocabulary lists categories, tags and models.
// @Summary List Vocabulary
// @Tags library
// @Produce json
// @Success 200 {object} VocabularyResponse
// @Router /categories [get]
func (h *Handler) HandleVocabulary(c *fiber.Ctx) error {
	categories, tags, models := h.service.Vocabulary()
	return c.JSON(VocabularyResponse{Categories: categories, Tags: tags, Models: models})
}

// HandleLatest returns the newest prompt of a category.
// @Summary Latest Prompt In Category
// @Description Returns the most recently created prompt of the category. A token remembers it for later saves.
// @Tags library
// @Produce json
// @Param category path string true "Category"
// @Param token query string false "Editor session token"
// @Success 200 {object} promptdb.PromptRecord
// @Failure 404 {object} map[string]string "Not Found"
// @Router /categories/{category}/latest [get]
func (h *Handler) HandleLatest(c *fiber.Ctx) error {
	rec, ok := h.service.Latest(c.Query("token"), c.Params("category"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no prompt in category"})
	}
	return c.JSON(rec)
}

// HandleStats summarises the library.
// @Summary Library Statistics
// @Tags library
// @Produce json
// @Success 200 {object} StatsReport
// @Router /stats [get]
func (h *Handler) HandleStats(c *fiber.Ctx) error {
	return c.JSON(h.service.Statistics())
}

// HandleExport streams the library document.
// @Summary Export Library
// @Description Downloads the whole library as JSON. With save=true a timestamped copy is also written to the export directory.
// @Tags library
// @Produce json
// @Param save query boolean false "Also write to the export directory"
// @Success 200 {object} promptdb.Document
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /export [get]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	if utils.ToBool(c.Query("save")) {
		path, err := h.service.Export()
		if err != nil {
			return h.fail(c, "Export failed", err)
		}
		c.Set("X-Export-Path", path)
	}

	var buf bytes.Buffer
	if err := h.service.ExportTo(&buf); err != nil {
		return h.fail(c, "Export failed", err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="prompt_library.json"`)
	return c.Send(buf.Bytes())
}

// HandleMerge merges an uploaded library document.
// @Summary Merge Library
// @Description Merges a library document into this one. Records with matching text are combined, the rest are added with fresh ids.
// @Tags library
// @Accept json
// @Produce json
// @Param dry_run query boolean false "Plan only"
// @Param document body promptdb.Document true "Library document"
// @Success 200 {object} MergeOutcome
// @Failure 422 {object} map[string]string "Malformed document"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /merge [post]
func (h *Handler) HandleMerge(c *fiber.Ctx) error {
	dryRun := utils.ToBool(c.Query("dry_run"))
	out, err := h.service.MergeReader(c.UserContext(), bytes.NewReader(c.Body()), dryRun)
	if err != nil {
		return h.fail(c, "Merge failed", err)
	}
	return c.JSON(out)
}

// HandleCleanup removes old unrated prompts.
// @Summary Cleanup Unrated Prompts
// @Description Removes unrated prompts older than the given number of days, or the configured retention when omitted.
// @Tags library
// @Accept json
// @Produce json
// @Param request body CleanupRequest false "Retention override"
// @Success 200 {object} map[string]interface{} "Removed count"
// @Router /cleanup [post]
func (h *Handler) HandleCleanup(c *fiber.Ctx) error {
	var req CleanupRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, err)
		}
	}
	removed, err := h.service.Cleanup(req.Days)
	if err != nil {
		return h.fail(c, "Cleanup failed", err)
	}
	return c.JSON(fiber.Map{"removed": removed})
}

// HandleGetSettings returns the library settings.
// @Summary Get Settings
// @Tags settings
// @Produce json
// @Success 200 {object} promptdb.Settings
// @Router /settings [get]
func (h *Handler) HandleGetSettings(c *fiber.Ctx) error {
	return c.JSON(h.service.Settings())
}

// HandleUpdateSettings changes the library settings.
// @Summary Update Settings
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body SettingsRequest true "Settings to change"
// @Success 200 {object} promptdb.Settings
// @Router /settings [patch]
func (h *Handler) HandleUpdateSettings(c *fiber.Ctx) error {
	var req SettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	settings, err := h.service.UpdateSettings(promptdb.SettingsUpdate{
		AutoCleanupEnabled: req.AutoCleanupEnabled,
		AutoCleanupDays:    req.AutoCleanupDays,
		MaxThumbnails:      req.MaxThumbnails,
	})
	if err != nil {
		return h.fail(c, "Update settings failed", err)
	}
	return c.JSON(settings)
}

// HandleForget drops an editor session.
// @Summary Forget Session
// @Tags prompts
// @Param token path string true "Editor session token"
// @Success 204
// @Router /sessions/{token} [delete]
func (h *Handler) HandleForget(c *fiber.Ctx) error {
	h.service.Forget(c.Params("token"))
	return c.SendStatus(fiber.StatusNoContent)
}
