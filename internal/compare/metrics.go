package compare

// MetricsType identifies a comparison visualization kind.
type MetricsType string

// Metrics type constants.
const (
	MetricsTypeScalarMetrics   MetricsType = "scalar-metrics"
	MetricsTypeConfusionMatrix MetricsType = "confusion-matrix"
	MetricsTypeROCCurve        MetricsType = "roc-curve"
	MetricsTypeHTML            MetricsType = "html"
	MetricsTypeMarkdown        MetricsType = "markdown"
)

// Label returns the human-readable label for a metrics type. Unrecognized
// values map to the empty string rather than failing.
func (t MetricsType) Label() string {
	switch t {
	case MetricsTypeScalarMetrics:
		return "Scalar Metrics"
	case MetricsTypeConfusionMatrix:
		return "Confusion Matrix"
	case MetricsTypeROCCurve:
		return "ROC Curve"
	case MetricsTypeHTML:
		return "HTML"
	case MetricsTypeMarkdown:
		return "Markdown"
	default:
		return ""
	}
}
