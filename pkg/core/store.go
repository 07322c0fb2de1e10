package core

// MetadataStore defines the interface for metadata persistence and fetch
// operations. The comparison core never talks to a store directly; it
// receives fully materialized RunArtifact trees.
type MetadataStore interface {
	Open(path string) error
	Close() error
	Migrate() error

	// Run operations
	CreateRun(run *Run) error
	GetRun(id string) (*Run, error)
	ListRuns() ([]*Run, error)

	// Graph operations
	CreateExecution(runID string, exec *Execution) error
	CreateArtifact(artifact *Artifact) error
	CreateEvent(event *Event) error

	// ListRunArtifacts materializes the run -> execution -> linked artifact
	// tree for the given runs, in the order the run IDs are given and with
	// executions and events in insertion order.
	ListRunArtifacts(runIDs []string) ([]RunArtifact, error)
}
