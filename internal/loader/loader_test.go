package loader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runboard-dev/runboard/internal/state"
	"github.com/runboard-dev/runboard/pkg/core"
)

const sampleDump = `
runs:
  - id: run-1
    name: nightly training
    status: completed
    executions:
      - id: exec-1
        display_name: train
        artifacts:
          - id: art-1
            display_name: metrics
            event: output
            properties:
              accuracy: 0.91
              epochs: 10
              notes: looks healthy
              confusion:
                labels: [cat, dog]
  - name: unnamed trial
`

func TestParse(t *testing.T) {
	dump, err := Parse(strings.NewReader(sampleDump))
	require.NoError(t, err)

	require.Len(t, dump.Runs, 2)
	assert.Equal(t, "nightly training", dump.Runs[0].Name)
	require.Len(t, dump.Runs[0].Executions, 1)
	require.Len(t, dump.Runs[0].Executions[0].Artifacts, 1)

	art := dump.Runs[0].Executions[0].Artifacts[0]
	assert.Equal(t, "metrics", art.DisplayName)
	assert.Equal(t, 0.91, art.Properties["accuracy"])

	assert.Empty(t, dump.Runs[1].Executions)
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse(strings.NewReader("runs: [not: {a: run"))
	assert.Error(t, err)
}

func TestImport(t *testing.T) {
	store := state.NewSQLiteStore(nil)
	require.NoError(t, store.Open(":memory:"))
	defer store.Close()
	require.NoError(t, store.Migrate())

	dump, err := Parse(strings.NewReader(sampleDump))
	require.NoError(t, err)

	stats, err := Import(store, dump)
	require.NoError(t, err)
	assert.Equal(t, Stats{Runs: 2, Executions: 1, Artifacts: 1}, stats)

	trees, err := store.ListRunArtifacts([]string{"run-1"})
	require.NoError(t, err)
	require.Len(t, trees, 1)
	require.Len(t, trees[0].ExecutionArtifacts, 1)

	linked := trees[0].ExecutionArtifacts[0].LinkedArtifacts
	require.Len(t, linked, 1)
	props := linked[0].Artifact.CustomProperties
	assert.Equal(t, core.NumberValue(0.91), props["accuracy"])
	assert.Equal(t, core.NumberValue(10), props["epochs"], "integers widen to numbers")
	assert.Equal(t, core.StringValue("looks healthy"), props["notes"])
	assert.Equal(t, core.StringValue("metrics"), props["display_name"], "display name mirrored into properties")
	assert.Equal(t, core.EventTypeOutput, linked[0].Event.Type)

	// Structured properties survive the round trip through the store.
	confusion, ok := props["confusion"].(core.StructValue)
	require.True(t, ok, "confusion should decode as a struct, got %#v", props["confusion"])
	assert.Equal(t, []any{"cat", "dog"}, confusion["labels"])

	// The unnamed run got a generated ID.
	runs, err := store.ListRuns()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.NotEmpty(t, runs[1].ID)
}
