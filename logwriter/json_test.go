package logwriter

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rickchristie/drift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() *drift.MockTimeProvider {
	return drift.NewMockTimeProvider(
		time.Date(2025, 4, 19, 14, 25, 51, 0, time.UTC))
}

func TestJSONWriteArtifact(t *testing.T) {
	dir := t.TempDir()
	writer := NewJSON(dir).WithTimeProvider(fixedClock())

	records := []drift.Record{
		{T: 0, CtxLen: 3, Omega: 12},
		{T: 1, CtxLen: 6, Omega: 0},
	}

	path, err := writer.Write(drift.LabelInjective, records)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "logs_injective_20250419_142551.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got []drift.Record
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, records, got)

	// Artifact must use the wire field names, in iteration order.
	assert.Contains(t, string(data), `"t": 0`)
	assert.Contains(t, string(data), `"ctx_len": 3`)
	assert.Contains(t, string(data), `"omega": 12`)
}

func TestJSONWriteEmptyRunIsValidArtifact(t *testing.T) {
	dir := t.TempDir()
	writer := NewJSON(dir).WithTimeProvider(fixedClock())

	path, err := writer.Write(drift.LabelDeterministic, nil)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestJSONWriteFilenameEncodesLabelAndStamp(t *testing.T) {
	dir := t.TempDir()
	clock := fixedClock()
	writer := NewJSON(dir).WithTimeProvider(clock)

	first, err := writer.Write(drift.LabelDeterministic, []drift.Record{{T: 0}})
	require.NoError(t, err)
	assert.Equal(t, "logs_deterministic_20250419_142551.json", filepath.Base(first))

	// A later run must never collide with an earlier artifact.
	clock.SetTime(time.Date(2025, 4, 19, 14, 26, 7, 0, time.UTC))
	second, err := writer.Write(drift.LabelDeterministic, []drift.Record{{T: 0}})
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	_, err = os.Stat(first)
	assert.NoError(t, err, "earlier artifact must survive later writes")
}

func TestJSONWriteRejectsMalformedRecords(t *testing.T) {
	writer := NewJSON(t.TempDir()).WithTimeProvider(fixedClock())

	_, err := writer.Write(drift.LabelInjective, []drift.Record{
		{T: 0, CtxLen: -4, Omega: 2},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation")
}

func TestJSONWriteMissingDirFails(t *testing.T) {
	writer := NewJSON(filepath.Join(t.TempDir(), "does", "not", "exist")).
		WithTimeProvider(fixedClock())

	_, err := writer.Write(drift.LabelInjective, []drift.Record{{T: 0}})
	assert.Error(t, err)
}
