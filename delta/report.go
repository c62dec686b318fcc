package delta

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/harwatch/hardiff/capture"
)

// Source identifies one side of a comparison.
type Source struct {
	// Path the capture was loaded from.
	Path string `json:"path"`

	// Hash of the raw file content.
	Hash string `json:"hash"`

	// Entries is the number of records in the capture.
	Entries int `json:"entries"`

	// IndexedURLs is the number of unique URLs that survived filtering.
	IndexedURLs int `json:"indexed_urls"`
}

func sourceOf(loaded *capture.Capture, indexed int) Source {
	return Source{
		Path:        loaded.Path,
		Hash:        loaded.Hash,
		Entries:     len(loaded.Log.Entries),
		IndexedURLs: indexed,
	}
}

// Row is one shared URL's comparison result. Deltas are after minus
// before, so a positive delta means the request got slower.
type Row struct {
	URL string `json:"url"`

	TotalBefore float64 `json:"total_before"`
	TotalAfter  float64 `json:"total_after"`
	DeltaTotal  float64 `json:"delta_total"`

	DeltaBlocked float64 `json:"delta_blocked"`
	DeltaDNS     float64 `json:"delta_dns"`
	DeltaConnect float64 `json:"delta_connect"`
	DeltaSend    float64 `json:"delta_send"`
	DeltaWait    float64 `json:"delta_wait"`
	DeltaReceive float64 `json:"delta_receive"`

	// Full breakdowns for both sides, kept for detail views but left
	// out of the flat exports.
	Before Breakdown `json:"-"`
	After  Breakdown `json:"-"`
}

func newRow(url string, before, after Breakdown) Row {
	return Row{
		URL:          url,
		TotalBefore:  before.Total,
		TotalAfter:   after.Total,
		DeltaTotal:   after.Total - before.Total,
		DeltaBlocked: after.Blocked - before.Blocked,
		DeltaDNS:     after.DNS - before.DNS,
		DeltaConnect: after.Connect - before.Connect,
		DeltaSend:    after.Send - before.Send,
		DeltaWait:    after.Wait - before.Wait,
		DeltaReceive: after.Receive - before.Receive,
		Before:       before,
		After:        after,
	}
}

// PhaseDeltas returns the six per-phase deltas in PhaseNames order.
func (r Row) PhaseDeltas() [6]float64 {
	return [6]float64{
		r.DeltaBlocked, r.DeltaDNS, r.DeltaConnect,
		r.DeltaSend, r.DeltaWait, r.DeltaReceive,
	}
}

// Report is the finished comparison: ranked rows plus enough metadata
// to identify exactly which files were compared.
type Report struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`

	Before Source `json:"before"`
	After  Source `json:"after"`

	// SharedURLs is the size of the URL intersection before ranking
	// and truncation.
	SharedURLs int `json:"shared_urls"`

	// Rows is the ranked top-N, largest |delta| first.
	Rows []Row `json:"rows"`

	// Artifacts lists the files written for this report, if any.
	Artifacts []string `json:"artifacts,omitempty"`
}

// Empty reports whether the two captures shared no URLs at all. This
// is a designed terminal outcome, not an error.
func (r *Report) Empty() bool {
	return r.SharedURLs == 0
}

// RenderSummary writes the human-readable ranked summary. It prints
// before any artifact is persisted, so the summary survives artifact
// write failures.
func (r *Report) RenderSummary(w io.Writer) {
	fmt.Fprintln(w, titleStyle.Render("=== Latency Comparison ==="))
	fmt.Fprintf(w, "Before: %s (%d entries, hash %s)\n", r.Before.Path, r.Before.Entries, r.Before.Hash)
	fmt.Fprintf(w, "After:  %s (%d entries, hash %s)\n", r.After.Path, r.After.Entries, r.After.Hash)

	if r.Empty() {
		fmt.Fprintln(w)
		fmt.Fprintln(w, warnStyle.Render("No common URLs found between the two captures."))
		return
	}

	fmt.Fprintf(w, "Shared URLs: %d, showing top %d by |Δ total|\n\n", r.SharedURLs, len(r.Rows))

	for i, row := range r.Rows {
		fmt.Fprintf(w, "%3d. %s  %s\n", i+1, styleDelta(row.DeltaTotal), row.URL)
		fmt.Fprintf(w, "     %s\n", formatPhaseDeltas(row))
	}
}

// formatPhaseDeltas renders the labeled per-phase deltas for one row.
func formatPhaseDeltas(row Row) string {
	deltas := row.PhaseDeltas()
	parts := make([]string, 0, len(PhaseNames))
	for i, name := range PhaseNames {
		parts = append(parts, fmt.Sprintf("Δ %s %+.1f", name, deltas[i]))
	}
	return subtleStyle.Render(strings.Join(parts, "  "))
}

// styleDelta colors a total delta: red when the request got slower,
// green when it got faster.
func styleDelta(delta float64) string {
	text := fmt.Sprintf("Δ %+.1fms", delta)
	switch {
	case delta > 0:
		return slowerStyle.Render(text)
	case delta < 0:
		return fasterStyle.Render(text)
	default:
		return subtleStyle.Render(text)
	}
}
