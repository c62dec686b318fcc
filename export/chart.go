package export

import (
	"io"
	"net/url"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/harwatch/hardiff/delta"
)

const (
	chartHeight   = 512
	chartBarWidth = 48
	maxBarLabel   = 24
)

// RenderChart draws a PNG bar chart of the total delta per URL across
// the ranked rows and writes it to w.
func RenderChart(w io.Writer, rows []delta.Row) error {
	bars := make([]chart.Value, 0, len(rows))
	for _, row := range rows {
		bars = append(bars, chart.Value{
			Value: row.DeltaTotal,
			Label: barLabel(row.URL),
		})
	}

	minDelta, maxDelta := deltaRange(rows)

	graph := chart.BarChart{
		Title:    "Total latency delta per URL (ms)",
		Height:   chartHeight,
		BarWidth: chartBarWidth,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: minDelta, Max: maxDelta},
		},
		Bars: bars,
	}

	return graph.Render(chart.PNG, w)
}

// deltaRange picks a y-axis range that covers every bar and never
// degenerates to a zero span, which the renderer rejects.
func deltaRange(rows []delta.Row) (float64, float64) {
	min, max := 0.0, 0.0
	for _, row := range rows {
		if row.DeltaTotal < min {
			min = row.DeltaTotal
		}
		if row.DeltaTotal > max {
			max = row.DeltaTotal
		}
	}
	if min == max {
		min, max = min-1, max+1
	}
	return min, max
}

// barLabel shortens a URL to its path so the x-axis stays readable.
func barLabel(fullURL string) string {
	label := fullURL
	if u, err := url.Parse(fullURL); err == nil && u.Path != "" {
		label = u.Path
	}
	if len(label) > maxBarLabel {
		label = label[:maxBarLabel-3] + "..."
	}
	return label
}
