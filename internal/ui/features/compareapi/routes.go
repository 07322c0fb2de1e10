// Package compareapi exposes comparison view-models over JSON.
package compareapi

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/runboard-dev/runboard/pkg/core"
)

// SetupRoutes registers the compare API routes.
func SetupRoutes(router chi.Router, store core.MetadataStore, metricsProperty string, logger *slog.Logger) {
	handlers := NewHandlers(store, metricsProperty, logger)

	router.Route("/api", func(r chi.Router) {
		r.Get("/runs", handlers.ListRuns)
		r.Get("/compare", handlers.CompareTable)
		r.Get("/artifacts/roc", handlers.RocCurveArtifacts)
	})
}
