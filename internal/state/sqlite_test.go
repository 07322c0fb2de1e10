package state

import (
	"errors"
	"testing"

	"github.com/runboard-dev/runboard/pkg/core"
)

func setupTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store := NewSQLiteStore(nil)
	if err := store.Open(":memory:"); err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	if err := store.Migrate(); err != nil {
		t.Fatalf("failed to migrate store: %v", err)
	}
	return store
}

func TestSQLiteStore_OpenClose(t *testing.T) {
	store := NewSQLiteStore(nil)

	if err := store.Open(":memory:"); err != nil {
		t.Fatalf("failed to open in-memory store: %v", err)
	}

	if err := store.Close(); err != nil {
		t.Fatalf("failed to close store: %v", err)
	}
}

func TestSQLiteStore_Migrate(t *testing.T) {
	store := setupTestStore(t)

	// Verify tables exist by querying them
	tables := []string{"runs", "executions", "artifacts", "events"}
	for _, table := range tables {
		rows, err := store.db.Query("SELECT 1 FROM " + table + " LIMIT 1")
		if err != nil {
			t.Errorf("table %s does not exist: %v", table, err)
		} else {
			rows.Close()
		}
	}
}

func TestSQLiteStore_RunRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	run := &core.Run{Name: "nightly training"}
	if err := store.CreateRun(run); err != nil {
		t.Fatalf("failed to create run: %v", err)
	}
	if run.ID == "" {
		t.Fatal("expected an ID to be assigned")
	}

	got, err := store.GetRun(run.ID)
	if err != nil {
		t.Fatalf("failed to get run: %v", err)
	}
	if got.Name != "nightly training" {
		t.Errorf("name = %q, want %q", got.Name, "nightly training")
	}
	if got.Status != core.RunStatusCompleted {
		t.Errorf("status = %q, want default %q", got.Status, core.RunStatusCompleted)
	}
	if got.StartedAt.IsZero() {
		t.Error("expected a start time to be assigned")
	}
}

func TestSQLiteStore_GetRunNotFound(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.GetRun("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestSQLiteStore_ListRunsInsertionOrder(t *testing.T) {
	store := setupTestStore(t)

	for _, name := range []string{"third", "first", "second"} {
		if err := store.CreateRun(&core.Run{Name: name}); err != nil {
			t.Fatalf("failed to create run %q: %v", name, err)
		}
	}

	runs, err := store.ListRuns()
	if err != nil {
		t.Fatalf("failed to list runs: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("got %d runs, want 3", len(runs))
	}
	for i, want := range []string{"third", "first", "second"} {
		if runs[i].Name != want {
			t.Errorf("runs[%d].Name = %q, want %q", i, runs[i].Name, want)
		}
	}
}

// seedRunTree inserts one run with two executions and three artifacts,
// returning the run ID.
func seedRunTree(t *testing.T, store *SQLiteStore) string {
	t.Helper()

	run := &core.Run{ID: "run-1", Name: "trial"}
	if err := store.CreateRun(run); err != nil {
		t.Fatalf("failed to create run: %v", err)
	}

	execs := []*core.Execution{
		{ID: "exec-1", DisplayName: "train"},
		{ID: "exec-2", DisplayName: "evaluate"},
	}
	for _, exec := range execs {
		if err := store.CreateExecution(run.ID, exec); err != nil {
			t.Fatalf("failed to create execution %s: %v", exec.ID, err)
		}
	}

	artifacts := []*core.Artifact{
		{ID: "art-1", DisplayName: "model", CustomProperties: map[string]core.Value{
			"loss": core.NumberValue(0.4),
		}},
		{ID: "art-2", DisplayName: "metrics", CustomProperties: map[string]core.Value{
			"accuracy":     core.NumberValue(0.91),
			"display_name": core.StringValue("metrics"),
		}},
		{ID: "art-3", DisplayName: "report", CustomProperties: map[string]core.Value{
			"summary": core.StructValue{"grade": "A"},
		}},
	}
	for _, artifact := range artifacts {
		if err := store.CreateArtifact(artifact); err != nil {
			t.Fatalf("failed to create artifact %s: %v", artifact.ID, err)
		}
	}

	events := []*core.Event{
		{ExecutionID: "exec-1", ArtifactID: "art-1", Type: core.EventTypeOutput},
		{ExecutionID: "exec-2", ArtifactID: "art-2", Type: core.EventTypeOutput},
		{ExecutionID: "exec-2", ArtifactID: "art-3", Type: core.EventTypeOutput},
	}
	for _, event := range events {
		if err := store.CreateEvent(event); err != nil {
			t.Fatalf("failed to create event: %v", err)
		}
	}

	return run.ID
}

func TestSQLiteStore_ListRunArtifacts(t *testing.T) {
	store := setupTestStore(t)
	runID := seedRunTree(t, store)

	trees, err := store.ListRunArtifacts([]string{runID})
	if err != nil {
		t.Fatalf("failed to list run artifacts: %v", err)
	}
	if len(trees) != 1 {
		t.Fatalf("got %d trees, want 1", len(trees))
	}

	tree := trees[0]
	if tree.Run.Name != "trial" {
		t.Errorf("run name = %q, want %q", tree.Run.Name, "trial")
	}
	if len(tree.ExecutionArtifacts) != 2 {
		t.Fatalf("got %d executions, want 2", len(tree.ExecutionArtifacts))
	}

	train := tree.ExecutionArtifacts[0]
	if train.Execution.DisplayName != "train" {
		t.Errorf("first execution = %q, want %q (insertion order)", train.Execution.DisplayName, "train")
	}
	if len(train.LinkedArtifacts) != 1 || train.LinkedArtifacts[0].Artifact.ID != "art-1" {
		t.Fatalf("unexpected linked artifacts for train: %+v", train.LinkedArtifacts)
	}

	evaluate := tree.ExecutionArtifacts[1]
	if len(evaluate.LinkedArtifacts) != 2 {
		t.Fatalf("got %d linked artifacts for evaluate, want 2", len(evaluate.LinkedArtifacts))
	}
	metrics := evaluate.LinkedArtifacts[0]
	if metrics.Artifact.ID != "art-2" {
		t.Errorf("first evaluate artifact = %s, want art-2 (event insertion order)", metrics.Artifact.ID)
	}
	if got := metrics.Artifact.CustomProperties["accuracy"]; got != core.NumberValue(0.91) {
		t.Errorf("accuracy = %#v, want NumberValue(0.91)", got)
	}
	if metrics.Event.ExecutionID != "exec-2" || metrics.Event.ArtifactID != "art-2" {
		t.Errorf("event not populated: %+v", metrics.Event)
	}

	report := evaluate.LinkedArtifacts[1]
	want := core.StructValue{"grade": "A"}
	if got, ok := report.Artifact.CustomProperties["summary"].(core.StructValue); !ok || got["grade"] != want["grade"] {
		t.Errorf("summary = %#v, want %#v", report.Artifact.CustomProperties["summary"], want)
	}
}

func TestSQLiteStore_ListRunArtifactsUnknownRun(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.ListRunArtifacts([]string{"missing"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestSQLiteStore_ListRunArtifactsRequestOrder(t *testing.T) {
	store := setupTestStore(t)

	for _, id := range []string{"a", "b"} {
		if err := store.CreateRun(&core.Run{ID: id, Name: id}); err != nil {
			t.Fatalf("failed to create run %s: %v", id, err)
		}
	}

	trees, err := store.ListRunArtifacts([]string{"b", "a"})
	if err != nil {
		t.Fatalf("failed to list run artifacts: %v", err)
	}
	if trees[0].Run.ID != "b" || trees[1].Run.ID != "a" {
		t.Errorf("runs not in requested order: %s, %s", trees[0].Run.ID, trees[1].Run.ID)
	}
}
