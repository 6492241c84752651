package catalog

// Table columns, in display order.
const (
	ColumnID = iota
	ColumnTitle
	ColumnAuthor
	ColumnYear

	ColumnCount
)

// Headers are the column labels shown above the table.
var Headers = [ColumnCount]string{"ID", "Judul", "Pengarang", "Tahun"}

type row [ColumnCount]*string

// Grid is the in-memory table the user sees. A cell is either present with
// some text or missing. Every SetCell call, programmatic or not, is reported
// to the change listener.
type Grid struct {
	rows     []row
	selected int
	onChange func(row, col int)
}

func NewGrid() *Grid {
	return &Grid{selected: -1}
}

// OnChange registers the listener called after every cell write.
func (g *Grid) OnChange(fn func(row, col int)) {
	g.onChange = fn
}

func (g *Grid) RowCount() int {
	return len(g.rows)
}

func (g *Grid) ColumnCount() int {
	return ColumnCount
}

// Cell returns the text of a cell and whether the cell exists.
func (g *Grid) Cell(r, col int) (string, bool) {
	if !g.inRange(r, col) || g.rows[r][col] == nil {
		return "", false
	}
	return *g.rows[r][col], true
}

// SetCell writes a cell and notifies the change listener. Writes outside the
// table are dropped.
func (g *Grid) SetCell(r, col int, text string) {
	if !g.inRange(r, col) {
		return
	}
	g.rows[r][col] = &text
	if g.onChange != nil {
		g.onChange(r, col)
	}
}

// AppendRow adds an empty row (all cells missing) and returns its index.
func (g *Grid) AppendRow() int {
	g.rows = append(g.rows, row{})
	return len(g.rows) - 1
}

// Clear removes all rows and the selection.
func (g *Grid) Clear() {
	g.rows = nil
	g.selected = -1
}

// Select marks r as the current row. It reports false and clears the
// selection when r is out of range.
func (g *Grid) Select(r int) bool {
	if r < 0 || r >= len(g.rows) {
		g.selected = -1
		return false
	}
	g.selected = r
	return true
}

// Selected returns the current row, if any.
func (g *Grid) Selected() (int, bool) {
	if g.selected < 0 || g.selected >= len(g.rows) {
		return -1, false
	}
	return g.selected, true
}

// Row returns the cell texts of row r with missing cells as "".
func (g *Grid) Row(r int) []string {
	out := make([]string, ColumnCount)
	for col := range out {
		out[col], _ = g.Cell(r, col)
	}
	return out
}

func (g *Grid) inRange(r, col int) bool {
	return r >= 0 && r < len(g.rows) && col >= 0 && col < ColumnCount
}
