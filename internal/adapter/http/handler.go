package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"cv-exporter/internal/adapter/repository"
	"cv-exporter/internal/domain"
	"cv-exporter/internal/model"
	"cv-exporter/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handler struct {
	service *usecase.Service
	repo    *repository.CVRepo
}

func NewHandler(s *usecase.Service, r *repository.CVRepo) *Handler {
	return &Handler{service: s, repo: r}
}

type exportReq struct {
	Format string          `json:"format"`
	CV     json.RawMessage `json:"cv"`
}

type saveReq struct {
	UserID string    `json:"userId"`
	Title  string    `json:"title,omitempty"`
	CV     *model.CV `json:"cv"`
}

// Export renders an inline CV payload to the requested format and streams
// the file back.
func (h *Handler) Export(c *fiber.Ctx) error {
	var req exportReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	format, err := usecase.ParseFormat(req.Format)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format must be pdf or docx"})
	}

	// schema check gives callers a precise error; the model decode below is
	// tolerant of the sectionOrder shape on its own
	var raw map[string]interface{}
	if err := json.Unmarshal(req.CV, &raw); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cv must be an object"})
	}
	if err := model.ValidateMap(raw); err != nil {
		slog.Warn("cv payload failed schema validation", "error", err)
	}

	var cv model.CV
	if err := json.Unmarshal(req.CV, &cv); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid cv payload"})
	}

	return h.respondWithExport(c, &cv, format)
}

// ExportStored loads a stored CV by id and renders it.
func (h *Handler) ExportStored(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid cv id"})
	}

	format, err := usecase.ParseFormat(c.Query("format", "pdf"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format must be pdf or docx"})
	}

	stored, err := h.repo.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "cv not found"})
		}
		slog.Error("cv lookup failed", "id", id, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "cv lookup failed"})
	}

	return h.respondWithExport(c, stored.Data, format)
}

// SaveCV upserts the source document; generated files are never stored.
func (h *Handler) SaveCV(c *fiber.Ctx) error {
	var req saveReq
	if err := c.BodyParser(&req); err != nil || req.CV == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	uid, err := uuid.Parse(req.UserID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid userId"})
	}

	now := time.Now()
	stored := &domain.StoredCV{
		ID:        uuid.New(),
		UserID:    uid,
		Title:     req.Title,
		Data:      req.CV,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := h.repo.Save(c.Context(), stored); err != nil {
		slog.Error("cv save failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "cv save failed"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": stored.ID.String()})
}

func (h *Handler) respondWithExport(c *fiber.Ctx, cv *model.CV, format usecase.Format) error {
	res, err := h.service.Export(c.Context(), cv, format)
	if err != nil {
		// one retryable failure class for the caller, no partial files
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "export failed, retry"})
	}

	c.Set(fiber.HeaderContentType, res.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+res.Filename+`"`)
	return c.Send(res.Bytes)
}
