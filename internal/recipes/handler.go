package recipes

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/planboard/planboard/internal/platform/httpx"
)

// Handler wires HTTP endpoints for the recipe module.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler constructs the recipe handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validator: validator.New()}
}

// MountRoutes registers recipe routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.handleList)
	r.Post("/", h.handleUpsert)
	r.Delete("/", h.handleDelete)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	skuID, err := strconv.ParseInt(r.URL.Query().Get("sku_id"), 10, 64)
	if err != nil || skuID <= 0 {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "sku_id is required")
		return
	}
	items, err := h.service.ListBySKU(r.Context(), skuID)
	if err != nil {
		h.logger.Error("list recipe items failed", slog.Any("error", err), slog.Int64("sku_id", skuID))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, items)
}

func (h *Handler) handleUpsert(w http.ResponseWriter, r *http.Request) {
	var req UpsertRecipeItemRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "sku_id, raw_material_id and a numeric quantity are required")
		return
	}
	item, err := h.service.Upsert(r.Context(), req)
	if err != nil {
		h.logger.Error("upsert recipe item failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, item)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	skuID, err1 := strconv.ParseInt(r.URL.Query().Get("sku_id"), 10, 64)
	rawMaterialID, err2 := strconv.ParseInt(r.URL.Query().Get("raw_material_id"), 10, 64)
	if err1 != nil || err2 != nil || skuID <= 0 || rawMaterialID <= 0 {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "sku_id and raw_material_id are required")
		return
	}
	if err := h.service.Delete(r.Context(), skuID, rawMaterialID); err != nil {
		h.logger.Error("delete recipe item failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]bool{"success": true})
}
