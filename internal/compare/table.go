package compare

import (
	"sort"

	"github.com/runboard-dev/runboard/pkg/core"
)

// CompareTableProps is the final comparison table view-model handed to the
// rendering collaborator. Rows parallels YLabels.
type CompareTableProps struct {
	XLabels       []string       `json:"xLabels"`
	YLabels       []string       `json:"yLabels"`
	XParentLabels []XParentLabel `json:"xParentLabels"`
	Rows          [][]string     `json:"rows"`
}

// AssembleCompareTable orders the aggregated rows for display: metrics with
// more populated cells surface first, and ties keep the first-seen metric
// order from aggregation.
func AssembleCompareTable(data ScalarTableData) CompareTableProps {
	names := append([]string(nil), data.DataMap.Keys()...)
	sort.SliceStable(names, func(i, j int) bool {
		return data.DataMap.Get(names[i]).DataCount > data.DataMap.Get(names[j]).DataCount
	})

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		rows = append(rows, data.DataMap.Get(name).Row)
	}

	return CompareTableProps{
		XLabels:       data.XLabels,
		YLabels:       names,
		XParentLabels: data.XParentLabels,
		Rows:          rows,
	}
}

// BuildCompareTable aggregates and assembles in one step.
func BuildCompareTable(runs []core.RunArtifact) CompareTableProps {
	return AssembleCompareTable(BuildScalarTableData(runs, TotalArtifactCount(runs)))
}
