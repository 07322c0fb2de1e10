package compare

import (
	"fmt"

	"github.com/runboard-dev/runboard/pkg/core"
)

// PathSegment is the resolved display name plus stable ID for one entity in
// a run/execution/artifact triple.
type PathSegment struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// FullArtifactPath identifies an artifact by its full run/execution/artifact
// lineage. Names are display names where available, synthesized otherwise;
// IDs are always the stable identifiers.
type FullArtifactPath struct {
	Run       PathSegment `json:"run"`
	Execution PathSegment `json:"execution"`
	Artifact  PathSegment `json:"artifact"`
}

// resolveName falls back to "<Type> ID #<id>" when an entity has no display
// name. The same rule applies to runs, executions, and artifacts.
func resolveName(displayName, typeLabel, id string) string {
	if displayName != "" {
		return displayName
	}
	return fmt.Sprintf("%s ID #%s", typeLabel, id)
}

// ArtifactPath resolves the full path for a linked artifact. It is pure and
// total: every input combination resolves to some path.
func ArtifactPath(run core.Run, exec core.Execution, linked core.LinkedArtifact) FullArtifactPath {
	return FullArtifactPath{
		Run: PathSegment{
			Name: resolveName(run.Name, "Run", run.ID),
			ID:   run.ID,
		},
		Execution: PathSegment{
			Name: resolveName(exec.DisplayName, "Execution", exec.ID),
			ID:   exec.ID,
		},
		Artifact: PathSegment{
			Name: resolveName(linked.Artifact.DisplayName, "Artifact", linked.Artifact.ID),
			ID:   linked.Artifact.ID,
		},
	}
}

// LinkedArtifactKey builds the composite "<executionId>-<artifactId>" key
// used to index validated artifacts in path lookup maps.
func LinkedArtifactKey(linked core.LinkedArtifact) string {
	return linked.Event.ExecutionID + "-" + linked.Event.ArtifactID
}
