// Package loader imports run metadata dumps into the metadata store.
package loader

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/runboard-dev/runboard/pkg/core"
)

// Dump is the top-level shape of a YAML metadata dump.
type Dump struct {
	Runs []RunDump `yaml:"runs"`
}

// RunDump is one run with its nested executions.
type RunDump struct {
	ID         string          `yaml:"id"`
	Name       string          `yaml:"name"`
	Status     string          `yaml:"status"`
	StartedAt  *time.Time      `yaml:"started_at"`
	Executions []ExecutionDump `yaml:"executions"`
}

// ExecutionDump is one execution with its artifacts.
type ExecutionDump struct {
	ID          string         `yaml:"id"`
	DisplayName string         `yaml:"display_name"`
	Status      string         `yaml:"status"`
	Artifacts   []ArtifactDump `yaml:"artifacts"`
}

// ArtifactDump is one artifact plus the event type linking it to its
// execution.
type ArtifactDump struct {
	ID          string         `yaml:"id"`
	DisplayName string         `yaml:"display_name"`
	URI         string         `yaml:"uri"`
	Event       string         `yaml:"event"`
	Properties  map[string]any `yaml:"properties"`
}

// Stats summarizes an import.
type Stats struct {
	Runs       int
	Executions int
	Artifacts  int
}

// Parse decodes a YAML metadata dump.
func Parse(r io.Reader) (*Dump, error) {
	var dump Dump
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&dump); err != nil {
		return nil, fmt.Errorf("failed to parse metadata dump: %w", err)
	}
	return &dump, nil
}

// Import writes a parsed dump into the store. Missing IDs are generated;
// artifact display names are mirrored into the reserved "display_name"
// custom property the way upstream metadata stores record them.
func Import(store core.MetadataStore, dump *Dump) (Stats, error) {
	var stats Stats
	for _, runDump := range dump.Runs {
		run := &core.Run{
			ID:     runDump.ID,
			Name:   runDump.Name,
			Status: core.RunStatus(runDump.Status),
		}
		if runDump.StartedAt != nil {
			run.StartedAt = *runDump.StartedAt
		}
		if err := store.CreateRun(run); err != nil {
			return stats, fmt.Errorf("run %q: %w", runDump.Name, err)
		}
		stats.Runs++

		for _, execDump := range runDump.Executions {
			exec := &core.Execution{
				ID:          execDump.ID,
				DisplayName: execDump.DisplayName,
				Status:      execDump.Status,
			}
			if err := store.CreateExecution(run.ID, exec); err != nil {
				return stats, fmt.Errorf("execution %q: %w", execDump.DisplayName, err)
			}
			stats.Executions++

			for _, artDump := range execDump.Artifacts {
				artifact := &core.Artifact{
					ID:               artDump.ID,
					DisplayName:      artDump.DisplayName,
					URI:              artDump.URI,
					CustomProperties: properties(artDump),
				}
				if err := store.CreateArtifact(artifact); err != nil {
					return stats, fmt.Errorf("artifact %q: %w", artDump.DisplayName, err)
				}

				event := &core.Event{
					ExecutionID: exec.ID,
					ArtifactID:  artifact.ID,
					Type:        eventType(artDump.Event),
				}
				if err := store.CreateEvent(event); err != nil {
					return stats, fmt.Errorf("event for artifact %q: %w", artDump.DisplayName, err)
				}
				stats.Artifacts++
			}
		}
	}
	return stats, nil
}

func properties(artDump ArtifactDump) map[string]core.Value {
	props := make(map[string]core.Value, len(artDump.Properties)+1)
	for name, raw := range artDump.Properties {
		props[name] = core.ValueOf(raw)
	}
	if artDump.DisplayName != "" {
		props["display_name"] = core.StringValue(artDump.DisplayName)
	}
	return props
}

func eventType(raw string) core.EventType {
	if raw == string(core.EventTypeInput) {
		return core.EventTypeInput
	}
	return core.EventTypeOutput
}
