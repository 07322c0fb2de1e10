// Package compare shapes fetched run/execution/artifact metadata into the
// tabular view-models consumed by the comparison UI.
//
// Everything here is a pure, synchronous transformation over in-memory
// trees: no persistence, no I/O, no errors. Missing optional fields resolve
// to documented defaults ("-", "<Type> ID #<id>", empty cell) instead of
// failing, so every function is total over its input shape.
package compare
