package webhook

import (
	"errors"
	"strings"

	"webhook-relay/core/dispatch"
	"webhook-relay/core/logger"
	"webhook-relay/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the webhook registry and trigger.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the webhook routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api")
	group.Get("/webhooks", h.HandleList)
	group.Post("/webhook", h.HandleCreate)
	group.Post("/webhook/:id", h.HandleTrigger)
	group.Put("/webhook/:id", h.HandleUpdate)
	group.Delete("/webhook/:id", h.HandleDelete)
}

type createRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	// Targets accepts either an array of strings or a single
	// comma-separated string.
	Targets any `json:"targets"`
}

type updateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Targets     any     `json:"targets"`
	Enabled     any     `json:"enabled"`
}

// HandleList returns all registered adapters.
// @Summary List Webhooks
// @Description Returns the full list of registered webhook adapters.
// @Tags webhook
// @Produce json
// @Success 200 {array} store.Record "Adapter list"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/webhooks [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	records, err := h.service.List(c.Context())
	if err != nil {
		l.Error("Failed to list adapters", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(records)
}

// HandleCreate registers a new adapter.
// @Summary Create Webhook
// @Description Registers a new webhook adapter. Targets may be an array of strings or a comma-separated string. The adapter is created enabled.
// @Tags webhook
// @Accept json
// @Produce json
// @Param request body createRequest true "Adapter fields"
// @Success 201 {object} store.Record "Created adapter"
// @Failure 400 {object} map[string]string "Invalid payload"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/webhook [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req createRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	record, err := h.service.Create(c.Context(), CreateInput{
		Name:        req.Name,
		Description: req.Description,
		Targets:     normalizeTargets(req.Targets),
		Enabled:     true,
	})
	if err != nil {
		l.Error("Failed to create adapter", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(record)
}

// HandleTrigger relays the raw request body to all targets of an adapter.
// @Summary Trigger Webhook
// @Description Forwards the raw request body and headers to every target of the resolved adapter. The body is not reinterpreted.
// @Tags webhook
// @Accept */*
// @Produce json
// @Param id path string true "Adapter id or webhook URL"
// @Success 200 {object} map[string]string "All deliveries attempted"
// @Failure 404 {object} map[string]string "Unknown, disabled or target-less adapter"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/webhook/{id} [post]
func (h *Handler) HandleTrigger(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	results, err := h.service.Trigger(c.Context(), c.Params("id"), c.Body(), c.GetReqHeaders())
	switch {
	case errors.Is(err, ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Webhook not found"})
	case errors.Is(err, ErrDisabled):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Webhook disabled"})
	case errors.Is(err, dispatch.ErrNoTargets):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No targets configured"})
	case err != nil:
		l.Error("Trigger failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	delivered := 0
	for _, r := range results {
		if r.OK() {
			delivered++
		}
	}
	l.Info("Webhook processed",
		zap.Int("targets", len(results)),
		zap.Int("delivered", delivered))

	return c.JSON(fiber.Map{"message": "Webhook processed"})
}

// HandleUpdate updates an adapter's mutable fields.
// @Summary Update Webhook
// @Description Merges the given fields over the adapter. Absent fields stay unchanged; id, url and createdAt can never be overwritten.
// @Tags webhook
// @Accept json
// @Produce json
// @Param id path string true "Adapter id or webhook URL"
// @Param request body updateRequest true "Fields to update"
// @Success 200 {object} store.Record "Updated adapter"
// @Failure 400 {object} map[string]string "Invalid payload"
// @Failure 404 {object} map[string]string "Webhook not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/webhook/{id} [put]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req updateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	in := UpdateInput{
		Name:        req.Name,
		Description: req.Description,
	}
	if req.Targets != nil {
		in.Targets = normalizeTargets(req.Targets)
	}
	if req.Enabled != nil {
		enabled := utils.ToBool(req.Enabled)
		in.Enabled = &enabled
	}

	record, err := h.service.Update(c.Context(), c.Params("id"), in)
	switch {
	case errors.Is(err, ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Webhook not found"})
	case err != nil:
		l.Error("Failed to update adapter", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(record)
}

// HandleDelete removes an adapter.
// @Summary Delete Webhook
// @Description Deletes the resolved adapter.
// @Tags webhook
// @Produce json
// @Param id path string true "Adapter id or webhook URL"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Webhook not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/webhook/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	err := h.service.Delete(c.Context(), c.Params("id"))
	switch {
	case errors.Is(err, ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Webhook not found"})
	case err != nil:
		l.Error("Failed to delete adapter", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// normalizeTargets accepts the two target list shapes the API supports, a
// comma-separated string or an array, and returns a trimmed list with empty
// entries dropped.
func normalizeTargets(val any) []string {
	var raw []string
	switch v := val.(type) {
	case nil:
		return []string{}
	case string:
		raw = strings.Split(v, ",")
	case []string:
		raw = v
	case []any:
		for _, item := range v {
			raw = append(raw, utils.ToString(item))
		}
	default:
		raw = []string{utils.ToString(v)}
	}

	targets := make([]string, 0, len(raw))
	for _, t := range raw {
		t = strings.TrimSpace(t)
		if t != "" {
			targets = append(targets, t)
		}
	}
	return targets
}
