package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/planboard/planboard/internal/auth"
	"github.com/planboard/planboard/internal/batches"
	"github.com/planboard/planboard/internal/materials"
	"github.com/planboard/planboard/internal/observability"
	"github.com/planboard/planboard/internal/recipes"
	"github.com/planboard/planboard/internal/report"
	"github.com/planboard/planboard/internal/skus"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger           *slog.Logger
	Config           *Config
	AuthHandler      *auth.Handler
	SKUHandler       *skus.Handler
	MaterialsHandler *materials.Handler
	RecipesHandler   *recipes.Handler
	BatchesHandler   *batches.Handler
	ReportHandler    *report.Handler
	Metrics          *observability.Metrics
}

// NewRouter constructs the chi.Router with Planboard defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/auth", params.AuthHandler.MountRoutes)
	r.Route("/skus", params.SKUHandler.MountRoutes)
	r.Route("/materials", params.MaterialsHandler.MountRoutes)
	r.Route("/recipes", params.RecipesHandler.MountRoutes)
	r.Route("/batches", params.BatchesHandler.MountRoutes)
	r.Route("/report", params.ReportHandler.MountRoutes)

	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	return r
}
