package compare

// ScalarRowData is one table row for a distinct metric name. Row always has
// one cell per artifact column (empty string when the artifact lacks the
// metric); DataCount is the number of populated cells and drives row
// ranking.
type ScalarRowData struct {
	Row       []string `json:"row"`
	DataCount int      `json:"dataCount"`
}

// RowMap is an insertion-order-preserving map of metric name to row data.
// Go's built-in map iterates in random order, which would break the
// deterministic tie-break on equal DataCount, so key order is tracked
// explicitly.
type RowMap struct {
	keys []string
	rows map[string]*ScalarRowData
}

// NewRowMap returns an empty RowMap.
func NewRowMap() *RowMap {
	return &RowMap{rows: map[string]*ScalarRowData{}}
}

// Ensure returns the row for a metric name, lazily initializing it with
// width empty cells on first sight.
func (m *RowMap) Ensure(name string, width int) *ScalarRowData {
	if row, ok := m.rows[name]; ok {
		return row
	}
	row := &ScalarRowData{Row: make([]string, width)}
	m.keys = append(m.keys, name)
	m.rows[name] = row
	return row
}

// Get returns the row for a metric name, or nil if it was never seen.
func (m *RowMap) Get(name string) *ScalarRowData {
	return m.rows[name]
}

// Keys returns the metric names in first-seen order. The returned slice is
// shared; callers that reorder it must copy first.
func (m *RowMap) Keys() []string {
	return m.keys
}

// Len returns the number of distinct metric names.
func (m *RowMap) Len() int {
	return len(m.keys)
}
