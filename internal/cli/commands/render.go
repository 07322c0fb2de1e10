package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/runboard-dev/runboard/internal/compare"
)

// renderCompareTable writes the assembled comparison table in the requested
// format: table (default), json, csv, or markdown.
func renderCompareTable(w io.Writer, props compare.CompareTableProps, format string) error {
	switch format {
	case "json":
		return renderJSON(w, props)
	case "csv":
		buildTable(w, props).RenderCSV()
		return nil
	case "md", "markdown":
		buildTable(w, props).RenderMarkdown()
		return nil
	default:
		if len(props.YLabels) == 0 {
			_, _ = fmt.Fprintln(w, "(no metrics)")
			return nil
		}
		buildTable(w, props).Render()
		return nil
	}
}

// buildTable shapes CompareTableProps into a go-pretty table: a merged run
// group header row, a column label row, and one row per metric.
func buildTable(w io.Writer, props compare.CompareTableProps) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	// Run group header. Repeating the label per spanned column lets
	// AutoMerge collapse it back into one visual cell.
	groupRow := table.Row{""}
	for _, parent := range props.XParentLabels {
		for i := 0; i < parent.ColSpan; i++ {
			groupRow = append(groupRow, parent.Label)
		}
	}
	t.AppendHeader(groupRow, table.RowConfig{AutoMerge: true})

	headerRow := table.Row{"Metric"}
	for _, label := range props.XLabels {
		headerRow = append(headerRow, label)
	}
	t.AppendHeader(headerRow)

	for i, yLabel := range props.YLabels {
		row := table.Row{yLabel}
		for _, cell := range props.Rows[i] {
			row = append(row, cell)
		}
		t.AppendRow(row)
	}

	return t
}

func renderJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, _ = fmt.Fprintln(w, string(data))
	return nil
}
