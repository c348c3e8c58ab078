package report

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/planboard/planboard/internal/auth"
	"github.com/planboard/planboard/internal/platform/httpx"
)

// GenerateReportRequest carries the report date and the day's batch plan.
// An absent date means today.
type GenerateReportRequest struct {
	Date        string       `json:"date" validate:"omitempty,datetime=2006-01-02"`
	BatchCounts []BatchCount `json:"batch_counts" validate:"required,min=1"`
}

// Handler exposes the material-requirements export.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	creds     auth.Middleware
	validator *validator.Validate
	now       func() time.Time
}

// NewHandler constructs the report handler.
func NewHandler(logger *slog.Logger, service *Service, creds auth.Middleware) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		creds:     creds,
		validator: validator.New(),
		now:       time.Now,
	}
}

// MountRoutes registers report routes. The export is credential-gated.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(h.creds.Require)
		r.Post("/excel", h.handleExportExcel)
	})
}

type exportResult struct {
	filename string
	payload  []byte
}

func (h *Handler) handleExportExcel(w http.ResponseWriter, r *http.Request) {
	var req GenerateReportRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "date must be YYYY-MM-DD and batch_counts must be non-empty")
		return
	}

	reportDate := h.now().UTC()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "date must be YYYY-MM-DD")
			return
		}
		reportDate = parsed
	}

	value, err, shared := singleflightExport(r.Context(), exportKey(reportDate, req.BatchCounts), func(ctx context.Context) (interface{}, error) {
		table, err := h.service.Generate(ctx, reportDate, req.BatchCounts)
		if err != nil {
			return nil, err
		}
		payload, err := EncodeXLSX(table)
		if err != nil {
			return nil, fmt.Errorf("encode report: %w", err)
		}
		return exportResult{filename: Filename(table.Date), payload: payload}, nil
	})
	if err != nil {
		h.logger.Error("report export failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	result := value.(exportResult)
	h.logger.Info("report exported",
		slog.String("date", reportDate.Format("2006-01-02")),
		slog.Int("bytes", len(result.payload)),
		slog.Bool("shared", shared))
	httpx.Attachment(w, result.filename, ContentType, result.payload)
}

// exportKey is the singleflight key for one (date, plan) pair. Entry order is
// part of the key on purpose: callers sending the same plan in the same order
// share one build.
func exportKey(day time.Time, counts []BatchCount) string {
	var b strings.Builder
	b.WriteString(day.Format("2006-01-02"))
	for _, c := range counts {
		fmt.Fprintf(&b, "|%d:%d", c.SKUID, c.Batches)
	}
	return b.String()
}
