package exporters

// Table is a rendered grid of text cells. Cell reports false for a missing cell.
type Table interface {
	RowCount() int
	ColumnCount() int
	Cell(row, col int) (string, bool)
}

type ExportResult struct {
	RowsWritten int    `json:"rows_written"`
	Path        string `json:"path,omitempty"`
}
