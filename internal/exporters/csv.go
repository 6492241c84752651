package exporters

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// CSVHeader is the first line of every export.
var CSVHeader = []string{"ID", "Judul", "Pengarang", "Tahun"}

// CSVExporter writes the rows of a table exactly as displayed, UTF-8 encoded.
type CSVExporter struct{}

func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Export writes the header and one record per table row to w. Missing
// cells are written as empty fields.
func (e *CSVExporter) Export(w io.Writer, table Table) (ExportResult, error) {
	writer := csv.NewWriter(w)

	if err := writer.Write(CSVHeader); err != nil {
		return ExportResult{}, fmt.Errorf("failed to write header: %w", err)
	}

	result := ExportResult{}
	for row := 0; row < table.RowCount(); row++ {
		record := make([]string, table.ColumnCount())
		for col := range record {
			record[col], _ = table.Cell(row, col)
		}
		if err := writer.Write(record); err != nil {
			return result, fmt.Errorf("failed to write row %d: %w", row, err)
		}
		result.RowsWritten++
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return result, fmt.Errorf("failed to flush csv: %w", err)
	}
	return result, nil
}

// ExportFile writes the table to path, replacing any existing file.
func (e *CSVExporter) ExportFile(path string, table Table) (ExportResult, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return ExportResult{}, fmt.Errorf("failed to create export directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return ExportResult{}, fmt.Errorf("failed to create export file: %w", err)
	}

	result, err := e.Export(file, table)
	if closeErr := file.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("failed to close export file: %w", closeErr)
	}
	result.Path = path
	return result, err
}
