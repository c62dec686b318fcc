package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harwatch/hardiff/capture"
	"github.com/harwatch/hardiff/delta"
)

func sampleRows() []delta.Row {
	return []delta.Row{
		{
			URL:         "https://example.com/api/users",
			TotalBefore: 200,
			TotalAfter:  240,
			DeltaTotal:  40,
			DeltaWait:   20,
		},
		{
			URL:         "https://example.com/api/posts",
			TotalBefore: 165,
			TotalAfter:  150.5,
			DeltaTotal:  -14.5,
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleRows()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 3, "header plus one record per row")
	assert.Equal(t, "url", records[0][0])
	assert.Equal(t, "delta_receive", records[0][len(records[0])-1])
	assert.Equal(t, "https://example.com/api/users", records[1][0])
	assert.Equal(t, "40", records[1][3])
	assert.Equal(t, "-14.5", records[2][3])
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleRows()))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	require.Len(t, decoded, 2)
	assert.Equal(t, "https://example.com/api/users", decoded[0]["url"])
	assert.Equal(t, 40.0, decoded[0]["delta_total"])
	assert.Equal(t, 20.0, decoded[0]["delta_wait"])

	// the full breakdowns stay out of the flat export
	_, ok := decoded[0]["Before"]
	assert.False(t, ok)
}

func TestRenderChart(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderChart(&buf, sampleRows()))

	require.Greater(t, buf.Len(), 8)
	assert.Equal(t, []byte("\x89PNG"), buf.Bytes()[:4], "expected a PNG header")
}

func TestRenderChart_SingleFlatRow(t *testing.T) {
	rows := []delta.Row{{URL: "https://example.com/same", DeltaTotal: 0}}

	var buf bytes.Buffer
	require.NoError(t, RenderChart(&buf, rows))
	assert.NotZero(t, buf.Len())
}

func TestWriter_WritesAllArtifacts(t *testing.T) {
	dir := t.TempDir()
	opts := delta.DefaultOptions()
	opts.ChartPath = filepath.Join(dir, "latency_deltas.png")
	opts.CSVPath = filepath.Join(dir, "slowest_requests.csv")
	opts.JSONPath = filepath.Join(dir, "slowest_requests.json")

	report := &delta.Report{Rows: sampleRows()}
	require.NoError(t, NewWriter().Write(report, opts))

	for _, path := range []string{opts.ChartPath, opts.CSVPath, opts.JSONPath} {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
}

func TestWriter_ReportsWriteFailure(t *testing.T) {
	dir := t.TempDir()
	opts := delta.DefaultOptions()
	opts.ChartPath = filepath.Join(dir, "no", "such", "dir", "chart.png")
	opts.CSVPath = filepath.Join(dir, "slowest_requests.csv")
	opts.JSONPath = filepath.Join(dir, "slowest_requests.json")

	report := &delta.Report{Rows: sampleRows()}
	err := NewWriter().Write(report, opts)

	var writeErr *delta.ArtifactWriteError
	require.ErrorAs(t, err, &writeErr)
	assert.Equal(t, "chart", writeErr.Artifact)
}

func TestWriter_EndToEndPipeline(t *testing.T) {
	dir := t.TempDir()

	beforePath := filepath.Join(dir, "before.har")
	afterPath := filepath.Join(dir, "after.har")
	writeCapture(t, beforePath, `{
		"log": {"entries": [
			{"request": {"url": "https://example.com/api"}, "response": {"status": 200},
			 "timings": {"wait": 100, "receive": 50, "connect": 30, "dns": 10, "blocked": 5, "send": 5}}
		]}
	}`)
	writeCapture(t, afterPath, `{
		"log": {"entries": [
			{"request": {"url": "https://example.com/api"}, "response": {"status": 200},
			 "timings": {"wait": 120, "receive": 60, "connect": 35, "dns": 12, "blocked": 7, "send": 6}}
		]}
	}`)

	opts := delta.DefaultOptions()
	opts.TopN = 1
	opts.ChartPath = filepath.Join(dir, "latency_deltas.png")
	opts.CSVPath = filepath.Join(dir, "slowest_requests.csv")
	opts.JSONPath = filepath.Join(dir, "slowest_requests.json")

	var out bytes.Buffer
	comparator := delta.NewComparator(capture.NewFileLoader(), NewWriter(), &out)

	report, err := comparator.Compare(beforePath, afterPath, opts)
	require.NoError(t, err)

	require.Len(t, report.Rows, 1)
	assert.Equal(t, 40.0, report.Rows[0].DeltaTotal)
	assert.Contains(t, out.String(), "Δ")

	data, err := os.ReadFile(opts.JSONPath)
	require.NoError(t, err)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(data, &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, 40.0, rows[0]["delta_total"])
}

func writeCapture(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}
