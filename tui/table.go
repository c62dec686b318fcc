package tui

import (
	"fmt"
	"net/url"

	"github.com/charmbracelet/bubbles/v2/table"

	"github.com/harwatch/hardiff/delta"
)

func (m *ReportModel) buildTableRows() {
	rows := make([]table.Row, 0, len(m.report.Rows))

	for i, row := range m.report.Rows {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			formatURL(row.URL, m.width),
			formatDelta(row.DeltaTotal),
			formatMillis(row.TotalBefore),
			formatMillis(row.TotalAfter),
		})
	}

	m.rows = rows
}

func formatURL(fullURL string, terminalWidth int) string {
	if fullURL == "" {
		return "/"
	}

	display := fullURL
	if u, err := url.Parse(fullURL); err == nil {
		path := u.Path
		if path == "" {
			path = "/"
		}
		if u.RawQuery != "" {
			path = path + "?" + u.RawQuery
		}
		display = u.Host + path
	}

	availableWidth := terminalWidth - rankColumnWidth - deltaColumnWidth - 2*totalColumnWidth - borderPadding
	if availableWidth < minURLColumnWidth {
		availableWidth = minURLColumnWidth
	}
	if availableWidth > maxURLColumnWidth {
		availableWidth = maxURLColumnWidth
	}

	if len(display) > availableWidth {
		return display[:availableWidth-3] + "..."
	}

	return display
}

func formatDelta(delta float64) string {
	return fmt.Sprintf("%+.1fms", delta)
}

func formatMillis(ms float64) string {
	return fmt.Sprintf("%.1fms", ms)
}

// styledDelta colors a delta for the detail panel.
func styledDelta(deltaValue float64) string {
	text := formatDelta(deltaValue)
	switch {
	case deltaValue > 0:
		return StyleSlower.Render(text)
	case deltaValue < 0:
		return StyleFaster.Render(text)
	default:
		return StyleFlat.Render(text)
	}
}

// detailLines renders the per-phase before/after/delta table for one row.
func detailLines(row *delta.Row) []string {
	before := row.Before.Phases()
	after := row.After.Phases()
	deltas := row.PhaseDeltas()

	lines := make([]string, 0, len(delta.PhaseNames)+2)
	lines = append(lines, fmt.Sprintf("%-10s %12s %12s %12s", "phase", "before", "after", "delta"))

	for i, name := range delta.PhaseNames {
		lines = append(lines, fmt.Sprintf("%-10s %12s %12s %12s",
			name,
			formatMillis(before[i]),
			formatMillis(after[i]),
			styledDelta(deltas[i]),
		))
	}

	lines = append(lines, fmt.Sprintf("%-10s %12s %12s %12s",
		"total",
		formatMillis(row.TotalBefore),
		formatMillis(row.TotalAfter),
		styledDelta(row.DeltaTotal),
	))

	return lines
}
