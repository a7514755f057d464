package sheetpdf

var _ StyledView = new(SheetView)

// SheetView is the snapshot of a worksheet table:
// raw cell values together with the cell styles, merged cell
// ranges, and column width hints read from the sheet.
//
// The first sheet row is the header row. Header holds its raw
// values and Columns returns them formatted with FormatValue.
// Rows and Styles address data rows starting at index 0.
// Merges use grid coordinates where the header row is row 0
// and the first data row is row 1.
//
// A SheetView with no header and no rows is a valid empty table.
type SheetView struct {
	Tit    string
	Header []any
	Rows   [][]any
	Styles [][]CellStyle
	Merges []MergeRange

	// Widths are the column widths in points.
	Widths []float64
}

// Title returns the title of this view.
func (view *SheetView) Title() string { return view.Tit }

// Columns returns the header row values formatted with FormatValue.
func (view *SheetView) Columns() []string {
	cols := make([]string, len(view.Header))
	for i, val := range view.Header {
		cols[i] = FormatValue(val)
	}
	return cols
}

// NumRows returns the number of data rows, not counting the header row.
func (view *SheetView) NumRows() int { return len(view.Rows) }

// Cell returns the raw value of the data cell at row and col,
// or nil if the indices are out of bounds.
func (view *SheetView) Cell(row, col int) any {
	if row < 0 || col < 0 || row >= len(view.Rows) || col >= len(view.Rows[row]) {
		return nil
	}
	return view.Rows[row][col]
}

// Style returns the style of the data cell at row and col,
// or the zero CellStyle if the indices are out of bounds.
func (view *SheetView) Style(row, col int) CellStyle {
	if row < 0 || col < 0 || row >= len(view.Styles) || col >= len(view.Styles[row]) {
		return CellStyle{}
	}
	return view.Styles[row][col]
}

// MergeRanges returns the merged cell ranges of the table
// in grid coordinates where row 0 is the header row.
func (view *SheetView) MergeRanges() []MergeRange { return view.Merges }

// ColWidths returns the column widths in points.
func (view *SheetView) ColWidths() []float64 { return view.Widths }
