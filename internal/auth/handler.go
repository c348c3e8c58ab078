package auth

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/planboard/planboard/internal/platform/httpx"
)

// Handler wires HTTP endpoints for credential verification.
type Handler struct {
	logger     *slog.Logger
	configured Credentials
	validator  *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, configured Credentials) *Handler {
	return &Handler{
		logger:     logger,
		configured: configured,
		validator:  validator.New(),
	}
}

// MountRoutes registers auth routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/verify", h.handleVerify)
}

type verifyRequest struct {
	UserID   string `json:"user_id" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type verifyResponse struct {
	Success bool `json:"success"`
}

func (h *Handler) handleVerify(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "user_id and password are required")
		return
	}
	if err := Verify(Credentials{User: req.UserID, Password: req.Password}, h.configured); err != nil {
		if h.logger != nil {
			h.logger.Warn("credential verification rejected", slog.Any("error", err))
		}
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, verifyResponse{Success: true})
}
