// Package core defines the shared language of the Runboard system.
//
// This package contains:
//   - Domain entities (Run, Execution, Artifact, Event)
//   - The Value variant used for artifact custom properties
//   - Service interfaces (MetadataStore)
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
