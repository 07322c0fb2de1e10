package compare

import "github.com/runboard-dev/runboard/pkg/core"

// ValidLinkedArtifacts filters an execution's linked artifacts down to those
// carrying the named structured property with a non-null decoded value,
// order preserved. Absent or malformed properties mean "not valid", never an
// error; a present zero or empty struct counts as valid.
func ValidLinkedArtifacts(exec core.ExecutionArtifact, property string) []core.LinkedArtifact {
	valid := make([]core.LinkedArtifact, 0, len(exec.LinkedArtifacts))
	for _, linked := range exec.LinkedArtifacts {
		v, ok := linked.Artifact.CustomProperties[property]
		if !ok || core.IsNull(v) {
			continue
		}
		valid = append(valid, linked)
	}
	return valid
}

// RocCurveArtifactData is the view-model handed to the ROC curve renderer:
// the validated artifacts plus a path lookup keyed by
// "<executionId>-<artifactId>".
type RocCurveArtifactData struct {
	ValidLinkedArtifacts []core.LinkedArtifact       `json:"validLinkedArtifacts"`
	FullArtifactPathMap  map[string]FullArtifactPath `json:"fullArtifactPathMap"`
}

// CollectRocCurveArtifacts walks the run trees and gathers every linked
// artifact that carries the named property, resolving a full path for each.
// Duplicate (execution, artifact) pairs collapse onto one map entry.
func CollectRocCurveArtifacts(runs []core.RunArtifact, property string) RocCurveArtifactData {
	data := RocCurveArtifactData{
		ValidLinkedArtifacts: []core.LinkedArtifact{},
		FullArtifactPathMap:  map[string]FullArtifactPath{},
	}
	for _, run := range runs {
		for _, exec := range run.ExecutionArtifacts {
			for _, linked := range ValidLinkedArtifacts(exec, property) {
				key := LinkedArtifactKey(linked)
				if _, seen := data.FullArtifactPathMap[key]; !seen {
					data.ValidLinkedArtifacts = append(data.ValidLinkedArtifacts, linked)
				}
				data.FullArtifactPathMap[key] = ArtifactPath(run.Run, exec.Execution, linked)
			}
		}
	}
	return data
}
