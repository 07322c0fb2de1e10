package compare

import (
	"sort"

	"github.com/runboard-dev/runboard/pkg/core"
)

// reservedDisplayNameKey mirrors Artifact.DisplayName inside custom
// properties and is never a metric.
const reservedDisplayNameKey = "display_name"

// missingLabel stands in for absent run/execution/artifact display names in
// column and group headers.
const missingLabel = "-"

// XParentLabel is one run group header spanning ColSpan artifact columns.
type XParentLabel struct {
	Label   string `json:"label"`
	ColSpan int    `json:"colSpan"`
}

// ScalarTableData is the aggregated scalar metric table before row sorting:
// one column per artifact across all runs, one group label per run, and one
// row per distinct metric name.
//
// Invariant: the ColSpans sum to len(XLabels), which equals the width of
// every row in DataMap.
type ScalarTableData struct {
	XLabels       []string
	XParentLabels []XParentLabel
	DataMap       *RowMap
}

// TotalArtifactCount counts linked artifacts across all runs and executions.
// It is the column width of the scalar table.
func TotalArtifactCount(runs []core.RunArtifact) int {
	count := 0
	for _, run := range runs {
		for _, exec := range run.ExecutionArtifacts {
			count += len(exec.LinkedArtifacts)
		}
	}
	return count
}

// BuildScalarTableData flattens the run trees into the scalar metric table.
// Columns appear in input order (runs, then executions, then artifacts);
// rows are created lazily the first time a metric name is seen and cells
// hold the eager JSON serialization of the decoded property value. A run or
// execution with no artifacts still contributes its group label, with a
// span of zero.
func BuildScalarTableData(runs []core.RunArtifact, artifactCount int) ScalarTableData {
	data := ScalarTableData{
		XLabels:       []string{},
		XParentLabels: []XParentLabel{},
		DataMap:       NewRowMap(),
	}

	col := 0
	for _, run := range runs {
		runStart := col
		for _, exec := range run.ExecutionArtifacts {
			execLabel := exec.Execution.DisplayName
			if execLabel == "" {
				execLabel = missingLabel
			}
			for _, linked := range exec.LinkedArtifacts {
				artifactLabel := linked.Artifact.DisplayName
				if artifactLabel == "" {
					artifactLabel = missingLabel
				}
				data.XLabels = append(data.XLabels, execLabel+" > "+artifactLabel)

				for _, name := range sortedPropertyNames(linked.Artifact.CustomProperties) {
					if name == reservedDisplayNameKey {
						continue
					}
					row := data.DataMap.Ensure(name, artifactCount)
					row.Row[col] = core.JSONString(linked.Artifact.CustomProperties[name])
					row.DataCount++
				}
				col++
			}
		}

		runLabel := run.Run.Name
		if runLabel == "" {
			runLabel = missingLabel
		}
		data.XParentLabels = append(data.XParentLabels, XParentLabel{
			Label:   runLabel,
			ColSpan: col - runStart,
		})
	}

	return data
}

// sortedPropertyNames fixes the per-artifact property walk order. Map
// iteration order would otherwise leak into the first-seen order of metric
// names and break output determinism.
func sortedPropertyNames(props map[string]core.Value) []string {
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
