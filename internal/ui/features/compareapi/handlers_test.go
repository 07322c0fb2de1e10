package compareapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runboard-dev/runboard/internal/compare"
	"github.com/runboard-dev/runboard/internal/state"
	"github.com/runboard-dev/runboard/internal/testutil"
	"github.com/runboard-dev/runboard/pkg/core"
)

const metricsProperty = "confidenceMetrics"

func setupTestRouter(t *testing.T) (chi.Router, *state.SQLiteStore) {
	t.Helper()

	store := state.NewSQLiteStore(testutil.NewTestLogger(t))
	require.NoError(t, store.Open(":memory:"))
	t.Cleanup(func() { store.Close() })
	require.NoError(t, store.Migrate())

	router := chi.NewRouter()
	SetupRoutes(router, store, metricsProperty, testutil.NewTestLogger(t))
	return router, store
}

func seedComparison(t *testing.T, store *state.SQLiteStore) {
	t.Helper()

	require.NoError(t, store.CreateRun(&core.Run{ID: "run-1", Name: "trial-a"}))
	require.NoError(t, store.CreateExecution("run-1", &core.Execution{ID: "exec-1", DisplayName: "train"}))
	require.NoError(t, store.CreateArtifact(&core.Artifact{
		ID:          "art-1",
		DisplayName: "metrics",
		CustomProperties: map[string]core.Value{
			"accuracy":      core.NumberValue(0.9),
			metricsProperty: core.StructValue{"points": []any{}},
		},
	}))
	require.NoError(t, store.CreateEvent(&core.Event{
		ExecutionID: "exec-1", ArtifactID: "art-1", Type: core.EventTypeOutput,
	}))
}

func get(t *testing.T, router chi.Router, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestListRuns(t *testing.T) {
	router, store := setupTestRouter(t)
	seedComparison(t, store)

	rec := get(t, router, "/api/runs")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var runs []core.Run
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &runs))
	require.Len(t, runs, 1)
	assert.Equal(t, "trial-a", runs[0].Name)
}

func TestListRunsEmpty(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := get(t, router, "/api/runs")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String(), "empty store serves an empty array, not null")
}

func TestCompareTable(t *testing.T) {
	router, store := setupTestRouter(t)
	seedComparison(t, store)

	rec := get(t, router, "/api/compare?runs=run-1")

	require.Equal(t, http.StatusOK, rec.Code)

	var props compare.CompareTableProps
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &props))
	assert.Equal(t, []string{"train > metrics"}, props.XLabels)
	require.Contains(t, props.YLabels, "accuracy")
	assert.Equal(t, []compare.XParentLabel{{Label: "trial-a", ColSpan: 1}}, props.XParentLabels)
}

func TestCompareTableMissingRunsParam(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := get(t, router, "/api/compare")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = get(t, router, "/api/compare?runs=,%20,")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCompareTableUnknownRun(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := get(t, router, "/api/compare?runs=missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRocCurveArtifacts(t *testing.T) {
	router, store := setupTestRouter(t)
	seedComparison(t, store)

	rec := get(t, router, "/api/artifacts/roc?runs=run-1")

	require.Equal(t, http.StatusOK, rec.Code)

	// core.Value is a sealed interface, so decode into a loose view shape.
	var data struct {
		ValidLinkedArtifacts []struct {
			Artifact struct {
				ID string
			}
		} `json:"validLinkedArtifacts"`
		FullArtifactPathMap map[string]compare.FullArtifactPath `json:"fullArtifactPathMap"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &data))
	require.Len(t, data.ValidLinkedArtifacts, 1)
	assert.Equal(t, "art-1", data.ValidLinkedArtifacts[0].Artifact.ID)

	path, ok := data.FullArtifactPathMap["exec-1-art-1"]
	require.True(t, ok)
	assert.Equal(t, "trial-a", path.Run.Name)
	assert.Equal(t, "metrics", path.Artifact.Name)
}
