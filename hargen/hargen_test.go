package hargen

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harwatch/hardiff/capture"
	"github.com/harwatch/hardiff/delta"
)

func generateTestPair(t *testing.T, opts PairOptions) (*PairResult, *capture.Capture, *capture.Capture) {
	t.Helper()

	dir := t.TempDir()
	result, err := GeneratePair(filepath.Join(dir, "before.har"), filepath.Join(dir, "after.har"), opts)
	require.NoError(t, err)

	loader := capture.NewFileLoader()
	before, err := loader.Load(result.BeforePath)
	require.NoError(t, err)
	after, err := loader.Load(result.AfterPath)
	require.NoError(t, err)

	return result, before, after
}

func TestGeneratePair_SharedURLSet(t *testing.T) {
	result, before, after := generateTestPair(t, PairOptions{EntryCount: 20, Seed: 42})

	assert.Equal(t, 20, result.TotalEntries)
	require.Len(t, before.Log.Entries, 20)
	require.Len(t, after.Log.Entries, 20)

	for i := range before.Log.Entries {
		assert.Equal(t, before.Log.Entries[i].Request.URL, after.Log.Entries[i].Request.URL)
	}
}

func TestGeneratePair_SeededTimingsAreDeterministic(t *testing.T) {
	opts := PairOptions{EntryCount: 10, Seed: 7}

	_, beforeA, _ := generateTestPair(t, opts)
	_, beforeB, _ := generateTestPair(t, opts)

	for i := range beforeA.Log.Entries {
		a := delta.Normalize(beforeA.Log.Entries[i])
		b := delta.Normalize(beforeB.Log.Entries[i])
		assert.Equal(t, a, b, "entry %d should have identical timings for the same seed", i)
	}
}

func TestGeneratePair_ReusedConnectionsReportNegativePhases(t *testing.T) {
	_, before, _ := generateTestPair(t, PairOptions{EntryCount: 10, Seed: 1})

	// every fifth entry models a reused connection
	b := delta.Normalize(before.Log.Entries[4])
	assert.Equal(t, -1.0, b.DNS)
	assert.Equal(t, -1.0, b.Connect)

	// which never drags the total down
	assert.GreaterOrEqual(t, b.Total, 0.0)
}

func TestGeneratePair_RegressionsRank(t *testing.T) {
	result, before, after := generateTestPair(t, PairOptions{EntryCount: 15, Seed: 99, RegressionRatio: 0.3, DriftPercent: 0.05})

	require.NotEmpty(t, result.Regressed)

	indexBefore := delta.BuildIndex(before, delta.Options{})
	indexAfter := delta.BuildIndex(after, delta.Options{})

	for _, url := range result.Regressed {
		b, ok := indexBefore[url]
		require.True(t, ok)
		a, ok := indexAfter[url]
		require.True(t, ok)

		assert.Greater(t, a.Total, b.Total, "regressed URL %s should be slower after", url)
	}
}

func TestGeneratePair_DefaultsApplied(t *testing.T) {
	result, _, _ := generateTestPair(t, PairOptions{})

	assert.Equal(t, DefaultPairOptions.EntryCount, result.TotalEntries)
}
