package delta

import (
	"io"
	"math"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harwatch/hardiff/capture"
)

const (
	// DefaultTopN is the number of ranked rows reported when the caller
	// does not ask for a specific count.
	DefaultTopN = 20

	DefaultChartPath = "latency_deltas.png"
	DefaultCSVPath   = "slowest_requests.csv"
	DefaultJSONPath  = "slowest_requests.json"
)

// Options configures a single comparison run. Artifact destinations
// live here rather than in package-level constants so callers and
// tests can redirect output without touching shared state.
type Options struct {
	// TopN is the number of rows to include in the ranked output.
	// Values <= 0 fall back to DefaultTopN.
	TopN int

	// DomainFilter keeps only entries whose URL contains this
	// substring. Empty means no filtering.
	DomainFilter string

	// StatusFilter keeps only entries whose response status equals
	// this value. Zero means no filtering.
	StatusFilter int

	// Artifact destinations.
	ChartPath string
	CSVPath   string
	JSONPath  string

	// SkipArtifacts suppresses artifact writing entirely, leaving just
	// the console summary. Used by the TUI, which renders the report
	// in place.
	SkipArtifacts bool
}

// DefaultOptions returns the standard comparison configuration.
func DefaultOptions() Options {
	return Options{
		TopN:      DefaultTopN,
		ChartPath: DefaultChartPath,
		CSVPath:   DefaultCSVPath,
		JSONPath:  DefaultJSONPath,
	}
}

// ArtifactWriter persists a finished report as chart, CSV and JSON
// files. Implementations must report failures as *ArtifactWriteError.
type ArtifactWriter interface {
	Write(report *Report, opts Options) error
}

// Comparator matches two captures URL-by-URL and ranks the timing
// deltas between them. Collaborators are injected so tests can run the
// full pipeline against in-memory captures and writers.
type Comparator struct {
	loader capture.Loader
	writer ArtifactWriter
	out    io.Writer
}

// NewComparator builds a Comparator. A nil loader falls back to the
// filesystem loader, a nil out falls back to stdout. The writer may be
// nil, in which case no artifacts are produced.
func NewComparator(loader capture.Loader, writer ArtifactWriter, out io.Writer) *Comparator {
	if loader == nil {
		loader = capture.NewFileLoader()
	}
	if out == nil {
		out = os.Stdout
	}
	return &Comparator{
		loader: loader,
		writer: writer,
		out:    out,
	}
}

// Compare loads both captures, indexes them, computes per-URL deltas
// and emits the ranked report. The console summary is always printed
// before artifacts are written, so an artifact failure never hides the
// result. Loader errors propagate unchanged.
func (c *Comparator) Compare(pathBefore, pathAfter string, opts Options) (*Report, error) {
	if opts.TopN <= 0 {
		opts.TopN = DefaultTopN
	}

	before, err := c.loader.Load(pathBefore)
	if err != nil {
		return nil, err
	}
	after, err := c.loader.Load(pathAfter)
	if err != nil {
		return nil, err
	}

	indexBefore := BuildIndex(before, opts)
	indexAfter := BuildIndex(after, opts)

	rows := make([]Row, 0, len(indexBefore))
	for url, a := range indexBefore {
		if b, ok := indexAfter[url]; ok {
			rows = append(rows, newRow(url, a, b))
		}
	}

	// largest change in either direction first, ties broken by URL so
	// runs are deterministic
	sort.Slice(rows, func(i, j int) bool {
		di := math.Abs(rows[i].DeltaTotal)
		dj := math.Abs(rows[j].DeltaTotal)
		if di != dj {
			return di > dj
		}
		return rows[i].URL < rows[j].URL
	})

	report := &Report{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Before:      sourceOf(before, len(indexBefore)),
		After:       sourceOf(after, len(indexAfter)),
		SharedURLs:  len(rows),
	}

	if len(rows) == 0 {
		report.RenderSummary(c.out)
		return report, nil
	}

	if len(rows) > opts.TopN {
		rows = rows[:opts.TopN]
	}
	report.Rows = rows

	report.RenderSummary(c.out)

	if c.writer != nil && !opts.SkipArtifacts {
		if err := c.writer.Write(report, opts); err != nil {
			return report, err
		}
		report.Artifacts = artifactPaths(opts)
	}

	return report, nil
}

// BuildIndex maps each URL in the capture to its normalized timing
// breakdown, applying the configured filters first. When a URL occurs
// more than once the later entry silently overwrites the earlier one,
// last write wins, no aggregation.
func BuildIndex(source *capture.Capture, opts Options) map[string]Breakdown {
	index := make(map[string]Breakdown, len(source.Log.Entries))
	for _, entry := range source.Log.Entries {
		if !keepEntry(entry, opts) {
			continue
		}
		index[entry.Request.URL] = Normalize(entry)
	}
	return index
}

// keepEntry reports whether an entry survives the configured filters.
// An entry is kept only when it satisfies every filter that is set.
func keepEntry(entry capture.Entry, opts Options) bool {
	if opts.DomainFilter != "" && !strings.Contains(entry.Request.URL, opts.DomainFilter) {
		return false
	}
	if opts.StatusFilter != 0 && entry.Response.StatusCode != opts.StatusFilter {
		return false
	}
	return true
}

func artifactPaths(opts Options) []string {
	return []string{opts.ChartPath, opts.CSVPath, opts.JSONPath}
}
