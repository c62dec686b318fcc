// Package export persists comparison reports as review artifacts: a
// PNG bar chart of total deltas, a CSV table and a JSON document.
package export

import (
	"os"

	"github.com/harwatch/hardiff/delta"
)

// Writer is the filesystem implementation of delta.ArtifactWriter.
type Writer struct{}

// NewWriter creates an artifact writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write persists all three artifacts for the report. The first failure
// aborts the rest and surfaces as *delta.ArtifactWriteError.
func (w *Writer) Write(report *delta.Report, opts delta.Options) error {
	if err := w.writeChart(report, opts.ChartPath); err != nil {
		return err
	}
	if err := w.writeCSV(report, opts.CSVPath); err != nil {
		return err
	}
	return w.writeJSON(report, opts.JSONPath)
}

func (w *Writer) writeCSV(report *delta.Report, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return &delta.ArtifactWriteError{Artifact: "csv", Path: path, Err: err}
	}
	defer file.Close()

	if err := WriteCSV(file, report.Rows); err != nil {
		return &delta.ArtifactWriteError{Artifact: "csv", Path: path, Err: err}
	}
	return nil
}

func (w *Writer) writeJSON(report *delta.Report, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return &delta.ArtifactWriteError{Artifact: "json", Path: path, Err: err}
	}
	defer file.Close()

	if err := WriteJSON(file, report.Rows); err != nil {
		return &delta.ArtifactWriteError{Artifact: "json", Path: path, Err: err}
	}
	return nil
}

func (w *Writer) writeChart(report *delta.Report, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return &delta.ArtifactWriteError{Artifact: "chart", Path: path, Err: err}
	}
	defer file.Close()

	if err := RenderChart(file, report.Rows); err != nil {
		return &delta.ArtifactWriteError{Artifact: "chart", Path: path, Err: err}
	}
	return nil
}
