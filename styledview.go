package sheetpdf

// Horizontal alignment names used for CellStyle.HAlign.
const (
	AlignLeft   = "LEFT"
	AlignCenter = "CENTER"
	AlignRight  = "RIGHT"
)

// CellStyle holds the presentation attributes of a single sheet cell.
//
// The zero value is a cell without background fill, regular font,
// and no explicit alignment.
type CellStyle struct {
	// BackgroundColor is a 6 hex digit RGB string like "4F81BD".
	// Empty means the cell has no direct RGB fill.
	// Fills based on themes, patterns, or indexed palettes
	// are not represented.
	BackgroundColor string

	Bold   bool
	Italic bool

	// HAlign is the upper-cased horizontal alignment
	// like "LEFT", "CENTER", or "RIGHT".
	HAlign string
}

// MergeRange is a rectangular range of merged cells
// in 0-based inclusive table grid coordinates
// where row 0 is the header row and
// the first data row is row 1.
type MergeRange struct {
	StartCol int
	StartRow int
	EndCol   int
	EndRow   int
}

// Contains returns true if the passed grid coordinates
// lie within the merge range.
func (m MergeRange) Contains(gridRow, col int) bool {
	return gridRow >= m.StartRow && gridRow <= m.EndRow &&
		col >= m.StartCol && col <= m.EndCol
}

// IsMaster returns true if the passed grid coordinates
// address the top-left cell of the merge range that
// represents the whole range in rendered output.
func (m MergeRange) IsMaster(gridRow, col int) bool {
	return gridRow == m.StartRow && col == m.StartCol
}

// StyledView is a View that additionally carries per cell styles,
// merged cell ranges, and column width hints of the table.
type StyledView interface {
	View

	// Style returns the style of the data cell at row and col,
	// addressed like Cell, or the zero CellStyle if the
	// indices are out of bounds.
	Style(row, col int) CellStyle

	// MergeRanges returns the merged cell ranges of the table
	// in grid coordinates where row 0 is the header row.
	MergeRanges() []MergeRange

	// ColWidths returns the column widths in points.
	// The slice may be shorter or longer than the
	// number of columns of the view.
	ColWidths() []float64
}
