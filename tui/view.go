package tui

import (
	"fmt"
	"strings"
)

func (m *ReportModel) render() string {
	switch m.viewMode {
	case ViewModeTableWithDetail:
		return m.renderDetailView()
	default:
		return m.renderTableView()
	}
}

func (m *ReportModel) renderTableView() string {
	var builder strings.Builder

	builder.WriteString(m.renderTitle())
	builder.WriteString("\n")
	builder.WriteString(m.table.View())
	builder.WriteString("\n")
	builder.WriteString(m.renderStatusBar())

	return builder.String()
}

func (m *ReportModel) renderDetailView() string {
	var builder strings.Builder

	builder.WriteString(m.renderTitle())
	builder.WriteString("\n")
	builder.WriteString(m.table.View())
	builder.WriteString("\n")
	builder.WriteString(BorderStyle.Render(m.detail.View()))
	builder.WriteString("\n")
	builder.WriteString(m.renderStatusBar())

	return builder.String()
}

func (m *ReportModel) renderTitle() string {
	title := TitleStyle.Render("hardiff")
	subtitle := SubtitleStyle.Render(fmt.Sprintf(" %s → %s  (%d shared URLs)",
		m.report.Before.Path, m.report.After.Path, m.report.SharedURLs))
	return title + subtitle
}

func (m *ReportModel) renderDetailContent() string {
	row := m.selectedRow()
	if row == nil {
		return "no row selected"
	}

	var builder strings.Builder
	builder.WriteString(TitleStyle.Render(row.URL))
	builder.WriteString("\n\n")
	builder.WriteString(strings.Join(detailLines(row), "\n"))

	return builder.String()
}

func (m *ReportModel) renderStatusBar() string {
	keys := []struct {
		key, desc string
	}{
		{"↑/↓", "navigate"},
		{"enter", "phase detail"},
		{"esc", "close detail"},
		{"q", "quit"},
	}

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, HelpKeyStyle.Render(k.key)+HelpStyle.Render(" "+k.desc))
	}

	return HelpStyle.Render(strings.Join(parts, "  •  "))
}
