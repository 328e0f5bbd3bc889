package tt

import (
	"encoding/json"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/rickchristie/drift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertWellFormedRecords checks the invariants every record sequence must
// satisfy: t strictly increasing from 0 with no gaps, ctx_len >= 0,
// omega >= 0.
func AssertWellFormedRecords(t *testing.T, records []drift.Record) {
	t.Helper()

	for i, rec := range records {
		assert.Equal(t, i, rec.T, "record %d: t must increase from 0 with no gaps", i)
		assert.GreaterOrEqual(t, rec.CtxLen, 0, "record %d: ctx_len must be non-negative", i)
		assert.GreaterOrEqual(t, rec.Omega, 0, "record %d: omega must be non-negative", i)
	}
}

// RequireRecordsEqual fails with a unified diff of the JSON forms when the
// two record sequences differ. The diff reads far better than testify's
// one-line struct dump once sequences get long.
func RequireRecordsEqual(t *testing.T, expected, actual []drift.Record) {
	t.Helper()

	expectedJSON := marshalRecords(t, expected)
	actualJSON := marshalRecords(t, actual)
	if expectedJSON == actualJSON {
		return
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expectedJSON),
		B:        difflib.SplitLines(actualJSON),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  3,
	})
	require.NoError(t, err)
	t.Fatalf("record sequences differ:\n%s", diff)
}

func marshalRecords(t *testing.T, records []drift.Record) string {
	t.Helper()
	data, err := json.MarshalIndent(records, "", "  ")
	require.NoError(t, err)
	return string(data)
}
