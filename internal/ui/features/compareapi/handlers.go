package compareapi

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/runboard-dev/runboard/internal/compare"
	"github.com/runboard-dev/runboard/internal/state"
	"github.com/runboard-dev/runboard/pkg/core"
)

// Handlers provides HTTP handlers for the compare API.
type Handlers struct {
	store           core.MetadataStore
	metricsProperty string
	logger          *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(store core.MetadataStore, metricsProperty string, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Handlers{store: store, metricsProperty: metricsProperty, logger: logger}
}

// ListRuns returns all imported runs.
func (h *Handlers) ListRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := h.store.ListRuns()
	if err != nil {
		h.serveError(w, err)
		return
	}
	if runs == nil {
		runs = []*core.Run{}
	}
	h.writeJSON(w, runs)
}

// CompareTable builds the comparison table view-model for the runs named in
// the ?runs= query parameter.
func (h *Handlers) CompareTable(w http.ResponseWriter, r *http.Request) {
	runIDs, ok := h.runIDs(w, r)
	if !ok {
		return
	}

	runs, err := h.store.ListRunArtifacts(runIDs)
	if err != nil {
		h.serveError(w, err)
		return
	}
	h.writeJSON(w, compare.BuildCompareTable(runs))
}

// RocCurveArtifacts returns the validated curve artifacts plus their path
// lookup for the runs named in the ?runs= query parameter.
func (h *Handlers) RocCurveArtifacts(w http.ResponseWriter, r *http.Request) {
	runIDs, ok := h.runIDs(w, r)
	if !ok {
		return
	}

	runs, err := h.store.ListRunArtifacts(runIDs)
	if err != nil {
		h.serveError(w, err)
		return
	}
	h.writeJSON(w, compare.CollectRocCurveArtifacts(runs, h.metricsProperty))
}

// runIDs parses the comma-separated ?runs= parameter, writing a 400 when it
// is missing or empty.
func (h *Handlers) runIDs(w http.ResponseWriter, r *http.Request) ([]string, bool) {
	raw := r.URL.Query().Get("runs")
	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		http.Error(w, "missing runs parameter", http.StatusBadRequest)
		return nil, false
	}
	return ids, true
}

func (h *Handlers) serveError(w http.ResponseWriter, err error) {
	if errors.Is(err, state.ErrNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	h.logger.Error("compare API error", "error", err)
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func (h *Handlers) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}
