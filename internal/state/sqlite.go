// Package state implements the SQLite-backed metadata store.
package state

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/runboard-dev/runboard/pkg/core"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

// SQLiteStore implements core.MetadataStore using SQLite.
type SQLiteStore struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
}

// NewSQLiteStore creates a new SQLite metadata store instance. A nil logger
// discards all output.
func NewSQLiteStore(logger *slog.Logger) *SQLiteStore {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &SQLiteStore{logger: logger}
}

// Open opens a connection to the SQLite database.
// Use ":memory:" for an in-memory database.
func (s *SQLiteStore) Open(path string) error {
	// Enable foreign keys and WAL mode for better performance
	dsn := path
	if path != ":memory:" {
		dsn = fmt.Sprintf("%s?_foreign_keys=on&_journal_mode=WAL", path)
	} else {
		dsn = ":memory:?_foreign_keys=on"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	s.db = db
	s.path = path
	return nil
}

// Close closes the SQLite database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// NewID creates a new UUID for runs, executions, and artifacts imported
// without one.
func NewID() string {
	return uuid.New().String()
}

// --- Run operations ---

// CreateRun inserts a run. Missing ID, status, and start time get defaults.
func (s *SQLiteStore) CreateRun(run *core.Run) error {
	if s.db == nil {
		return fmt.Errorf("database not opened")
	}
	if run.ID == "" {
		run.ID = NewID()
	}
	if run.Status == "" {
		run.Status = core.RunStatusCompleted
	}
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now().UTC()
	}

	s.logger.Debug("creating run", "id", run.ID, "name", run.Name)

	_, err := s.db.Exec(
		`INSERT INTO runs (id, name, status, started_at, completed_at, error)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, run.Name, string(run.Status), run.StartedAt, run.CompletedAt, run.Error,
	)
	if err != nil {
		return fmt.Errorf("failed to create run: %w", err)
	}
	return nil
}

// GetRun retrieves a run by ID.
func (s *SQLiteStore) GetRun(id string) (*core.Run, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database not opened")
	}

	run := &core.Run{}
	var status string
	err := s.db.QueryRow(
		`SELECT id, name, status, started_at, completed_at, error
		 FROM runs WHERE id = ?`, id,
	).Scan(&run.ID, &run.Name, &status, &run.StartedAt, &run.CompletedAt, &run.Error)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("run %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	run.Status = core.RunStatus(status)
	return run, nil
}

// ListRuns retrieves all runs in insertion order.
func (s *SQLiteStore) ListRuns() ([]*core.Run, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database not opened")
	}

	rows, err := s.db.Query(
		`SELECT id, name, status, started_at, completed_at, error
		 FROM runs ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []*core.Run
	for rows.Next() {
		run := &core.Run{}
		var status string
		if err := rows.Scan(&run.ID, &run.Name, &status, &run.StartedAt, &run.CompletedAt, &run.Error); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		run.Status = core.RunStatus(status)
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// --- Graph operations ---

// CreateExecution inserts an execution belonging to a run.
func (s *SQLiteStore) CreateExecution(runID string, exec *core.Execution) error {
	if s.db == nil {
		return fmt.Errorf("database not opened")
	}
	if exec.ID == "" {
		exec.ID = NewID()
	}

	_, err := s.db.Exec(
		`INSERT INTO executions (id, run_id, display_name, status)
		 VALUES (?, ?, ?, ?)`,
		exec.ID, runID, exec.DisplayName, exec.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to create execution: %w", err)
	}
	return nil
}

// CreateArtifact inserts an artifact, serializing its custom properties to
// a JSON column.
func (s *SQLiteStore) CreateArtifact(artifact *core.Artifact) error {
	if s.db == nil {
		return fmt.Errorf("database not opened")
	}
	if artifact.ID == "" {
		artifact.ID = NewID()
	}

	props, err := core.PropertiesToJSON(artifact.CustomProperties)
	if err != nil {
		return fmt.Errorf("failed to serialize custom properties: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO artifacts (id, display_name, uri, custom_properties)
		 VALUES (?, ?, ?, ?)`,
		artifact.ID, artifact.DisplayName, artifact.URI, string(props),
	)
	if err != nil {
		return fmt.Errorf("failed to create artifact: %w", err)
	}
	return nil
}

// CreateEvent links an execution to an artifact.
func (s *SQLiteStore) CreateEvent(event *core.Event) error {
	if s.db == nil {
		return fmt.Errorf("database not opened")
	}

	_, err := s.db.Exec(
		`INSERT INTO events (execution_id, artifact_id, event_type)
		 VALUES (?, ?, ?)`,
		event.ExecutionID, event.ArtifactID, string(event.Type),
	)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}
