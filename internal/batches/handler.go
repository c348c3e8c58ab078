package batches

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/planboard/planboard/internal/platform/httpx"
)

// Handler wires HTTP endpoints for the daily-batch module.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler constructs the daily-batch handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validator: validator.New()}
}

// MountRoutes registers daily-batch routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.handleDay)
	r.Post("/", h.handleRecord)
	r.Put("/", h.handleUpsertOne)
}

func (h *Handler) handleDay(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.Day(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Error("list day batches failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, list)
}

func (h *Handler) handleRecord(w http.ResponseWriter, r *http.Request) {
	var req RecordBatchesRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "a non-empty entries list is required")
		return
	}
	saved, err := h.service.Record(r.Context(), req)
	if err != nil {
		h.logger.Error("record batches failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"message": "batches saved", "saved": saved})
}

func (h *Handler) handleUpsertOne(w http.ResponseWriter, r *http.Request) {
	var req UpsertBatchRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "sku_id, date and batches are required")
		return
	}
	if err := h.service.UpsertOne(r.Context(), req); err != nil {
		h.logger.Error("upsert daily batch failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]bool{"success": true})
}
