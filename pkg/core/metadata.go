package core

import "time"

// RunStatus represents the status of a pipeline run.
type RunStatus string

// Run status constants.
const (
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusFailed    RunStatus = "failed"
	RunStatusCancelled RunStatus = "cancelled"
)

// Run represents one execution of an ML pipeline.
type Run struct {
	ID          string
	Name        string
	Status      RunStatus
	StartedAt   time.Time
	CompletedAt *time.Time
	Error       string
}

// Execution represents one step within a run. It produces and consumes
// artifacts via events.
type Execution struct {
	ID          string
	DisplayName string
	Status      string
}

// Artifact is a versioned data/metric/model object with custom properties.
type Artifact struct {
	ID          string
	DisplayName string
	URI         string
	// CustomProperties holds named, typed values attached to the artifact.
	// The reserved key "display_name" mirrors DisplayName and is never
	// treated as a metric.
	CustomProperties map[string]Value
}

// EventType describes the direction of an execution/artifact relation.
type EventType string

// Event type constants.
const (
	EventTypeInput  EventType = "input"
	EventTypeOutput EventType = "output"
)

// Event links an execution to an artifact it produced or consumed.
type Event struct {
	ExecutionID string
	ArtifactID  string
	Type        EventType
}

// LinkedArtifact pairs an artifact with the event that relates it to an
// execution. Its identity key is (ExecutionID, ArtifactID).
type LinkedArtifact struct {
	Artifact Artifact
	Event    Event
}

// ExecutionArtifact is an execution plus its linked artifacts, in event
// insertion order.
type ExecutionArtifact struct {
	Execution       Execution
	LinkedArtifacts []LinkedArtifact
}

// RunArtifact is a run plus its executions, in insertion order. It is the
// unit of input for comparison view-model building and is owned transiently
// per comparison request.
type RunArtifact struct {
	Run                Run
	ExecutionArtifacts []ExecutionArtifact
}
