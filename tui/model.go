package tui

import (
	"github.com/charmbracelet/bubbles/v2/table"
	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/harwatch/hardiff/delta"
)

const (
	tableVerticalPadding = 4
	detailPanelPadding   = 2

	rankColumnWidth   = 5
	deltaColumnWidth  = 12
	totalColumnWidth  = 10
	minURLColumnWidth = 20
	maxURLColumnWidth = 100
	borderPadding     = 6
)

// ViewMode represents the different view states
type ViewMode int

const (
	ViewModeTable ViewMode = iota
	ViewModeTableWithDetail
)

// ReportModel browses the ranked rows of a finished comparison.
type ReportModel struct {
	report  *delta.Report
	rows    []table.Row
	columns []table.Column
	table   table.Model

	detail        viewport.Model
	detailVisible bool
	selectedIndex int

	viewMode ViewMode
	width    int
	height   int
	ready    bool
	quitting bool
}

// NewReportModel creates the browser for an already-computed report.
func NewReportModel(report *delta.Report) *ReportModel {
	columns := []table.Column{
		{Title: "#", Width: rankColumnWidth},
		{Title: "URL", Width: maxURLColumnWidth},
		{Title: "Δ Total", Width: deltaColumnWidth},
		{Title: "Before", Width: totalColumnWidth},
		{Title: "After", Width: totalColumnWidth},
	}

	return &ReportModel{
		report:   report,
		columns:  columns,
		viewMode: ViewModeTable,
	}
}

func (m *ReportModel) Init() tea.Cmd {
	return nil
}

func (m *ReportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		if !m.ready {
			m.initializeTable()
			m.ready = true
		} else {
			m.updateTableDimensions()
		}

		if m.detailVisible {
			m.updateDetailDimensions()
		}

	case tea.KeyPressMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "enter", "return":
			m.toggleDetailView()
			return m, nil

		case "esc":
			if m.detailVisible {
				m.detailVisible = false
				m.viewMode = ViewModeTable
				m.updateTableDimensions()
			}
			return m, nil
		}
	}

	if m.ready {
		if !m.detailVisible {
			m.table, cmd = m.table.Update(msg)
			cmds = append(cmds, cmd)

			if m.table.Cursor() != m.selectedIndex {
				m.selectedIndex = m.table.Cursor()
			}
		} else {
			m.detail, cmd = m.detail.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *ReportModel) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Initializing..."
	}
	return m.render()
}

func (m *ReportModel) initializeTable() {
	m.buildTableRows()

	m.table = table.New(
		table.WithColumns(m.columns),
		table.WithRows(m.rows),
		table.WithFocused(true),
		table.WithHeight(m.tableHeight()),
		table.WithWidth(m.width),
	)

	m.table = ApplyTableStyles(m.table)
	m.adjustColumnWidths()
}

func (m *ReportModel) tableHeight() int {
	h := m.height - tableVerticalPadding
	if m.detailVisible {
		h = (m.height - tableVerticalPadding) / 2
	}
	if h < 3 {
		h = 3
	}
	return h
}

func (m *ReportModel) updateTableDimensions() {
	m.table.SetHeight(m.tableHeight())
	m.table.SetWidth(m.width)
	m.adjustColumnWidths()
}

func (m *ReportModel) updateDetailDimensions() {
	detailHeight := (m.height-tableVerticalPadding)/2 - detailPanelPadding
	detailWidth := m.width - detailPanelPadding

	if m.detail.Width() == 0 {
		m.detail = viewport.New(viewport.WithWidth(detailWidth), viewport.WithHeight(detailHeight))
	} else {
		m.detail.SetWidth(detailWidth)
		m.detail.SetHeight(detailHeight)
	}
}

func (m *ReportModel) toggleDetailView() {
	if m.viewMode == ViewModeTable {
		m.viewMode = ViewModeTableWithDetail
		m.detailVisible = true
		m.updateTableDimensions()
		m.updateDetailDimensions()
		m.detail.SetContent(m.renderDetailContent())
	} else {
		m.viewMode = ViewModeTable
		m.detailVisible = false
		m.updateTableDimensions()
	}
}

func (m *ReportModel) adjustColumnWidths() {
	urlWidth := m.width - rankColumnWidth - deltaColumnWidth - 2*totalColumnWidth - borderPadding
	if urlWidth < minURLColumnWidth {
		urlWidth = minURLColumnWidth
	}
	if urlWidth > maxURLColumnWidth {
		urlWidth = maxURLColumnWidth
	}

	m.columns[1].Width = urlWidth
	m.table.SetColumns(m.columns)
}

func (m *ReportModel) selectedRow() *delta.Row {
	if m.selectedIndex < 0 || m.selectedIndex >= len(m.report.Rows) {
		return nil
	}
	return &m.report.Rows[m.selectedIndex]
}
