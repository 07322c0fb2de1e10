package state

import (
	"fmt"

	"github.com/runboard-dev/runboard/pkg/core"
)

// ListRunArtifacts materializes the run -> execution -> linked artifact tree
// for the given runs. Runs come back in the order requested; executions and
// events keep their insertion (rowid) order so downstream column positions
// are stable. Events pointing at a missing artifact row are skipped.
func (s *SQLiteStore) ListRunArtifacts(runIDs []string) ([]core.RunArtifact, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database not opened")
	}

	runArtifacts := make([]core.RunArtifact, 0, len(runIDs))
	for _, runID := range runIDs {
		run, err := s.GetRun(runID)
		if err != nil {
			return nil, err
		}

		execs, err := s.listExecutions(runID)
		if err != nil {
			return nil, err
		}

		ra := core.RunArtifact{Run: *run, ExecutionArtifacts: make([]core.ExecutionArtifact, 0, len(execs))}
		for _, exec := range execs {
			linked, err := s.listLinkedArtifacts(exec.ID)
			if err != nil {
				return nil, err
			}
			ra.ExecutionArtifacts = append(ra.ExecutionArtifacts, core.ExecutionArtifact{
				Execution:       exec,
				LinkedArtifacts: linked,
			})
		}
		runArtifacts = append(runArtifacts, ra)
	}
	return runArtifacts, nil
}

func (s *SQLiteStore) listExecutions(runID string) ([]core.Execution, error) {
	rows, err := s.db.Query(
		`SELECT id, display_name, status
		 FROM executions WHERE run_id = ? ORDER BY rowid`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to list executions: %w", err)
	}
	defer rows.Close()

	var execs []core.Execution
	for rows.Next() {
		var exec core.Execution
		if err := rows.Scan(&exec.ID, &exec.DisplayName, &exec.Status); err != nil {
			return nil, fmt.Errorf("failed to scan execution: %w", err)
		}
		execs = append(execs, exec)
	}
	return execs, rows.Err()
}

func (s *SQLiteStore) listLinkedArtifacts(executionID string) ([]core.LinkedArtifact, error) {
	rows, err := s.db.Query(
		`SELECT e.execution_id, e.artifact_id, e.event_type,
		        a.id, a.display_name, a.uri, a.custom_properties
		 FROM events e
		 JOIN artifacts a ON a.id = e.artifact_id
		 WHERE e.execution_id = ?
		 ORDER BY e.rowid`, executionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list linked artifacts: %w", err)
	}
	defer rows.Close()

	var linked []core.LinkedArtifact
	for rows.Next() {
		var la core.LinkedArtifact
		var eventType, props string
		if err := rows.Scan(
			&la.Event.ExecutionID, &la.Event.ArtifactID, &eventType,
			&la.Artifact.ID, &la.Artifact.DisplayName, &la.Artifact.URI, &props,
		); err != nil {
			return nil, fmt.Errorf("failed to scan linked artifact: %w", err)
		}
		la.Event.Type = core.EventType(eventType)
		la.Artifact.CustomProperties = core.PropertiesFromJSON([]byte(props))
		linked = append(linked, la)
	}
	return linked, rows.Err()
}
