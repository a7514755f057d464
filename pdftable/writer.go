// Package pdftable writes tables as PDF documents using gofpdf.
//
// Two preset configurations mirror the two export flavors:
// NewWriter produces plain banded tables with a blue header row,
// NewStyledWriter additionally reproduces the cell styles, merged
// cell ranges, and column widths of a sheetpdf.StyledView.
//
// All documents are landscape A4 with the table horizontally
// centered and the header row repeated after every page break.
package pdftable

import (
	"context"
	"errors"
	"io"
	"os"
	"reflect"

	"github.com/jung-kurt/gofpdf"

	"github.com/domonda/go-sheetpdf"
)

// Writer writes table data as PDF documents.
// It is generic over the table type T.
//
// Writer is immutable after creation, all With* methods
// return a new Writer instance with the modified configuration.
type Writer[T any] struct {
	title               string
	viewer              sheetpdf.Viewer
	columnFormatters    map[int]sheetpdf.CellFormatter
	typeFormatters      *sheetpdf.ReflectTypeCellFormatter
	fontFamily          string
	fontSize            float64
	titleFontSize       float64
	titleAlign          string
	cellAlign           string
	marginLeft          float64
	marginTop           float64
	marginRight         float64
	marginBottom        float64
	cellPadding         float64
	headerBottomPadding float64
	headerFill          Color
	headerTextColor     Color
	bandFill            *Color
	gridColor           Color
	defaultColWidth     float64
	sheetStyles         bool
	fitToPage           bool
}

// NewWriter returns a Writer preset for plain tables:
// 20 pt side and 72 pt top/bottom margins, Helvetica 8,
// a left aligned bold 14 pt title, a blue header row with
// near-white text, centered cells, and a light grey band
// on every second table row.
// Cell styles and merged ranges of StyledViews are ignored.
func NewWriter[T any]() *Writer[T] {
	return &Writer[T]{
		columnFormatters:    make(map[int]sheetpdf.CellFormatter),
		typeFormatters:      nil, // OK to use nil *sheetpdf.ReflectTypeCellFormatter
		fontFamily:          "Helvetica",
		fontSize:            8,
		titleFontSize:       14,
		titleAlign:          "L",
		cellAlign:           "C",
		marginLeft:          20,
		marginTop:           72,
		marginRight:         20,
		marginBottom:        72,
		cellPadding:         3,
		headerBottomPadding: 6,
		headerFill:          HeaderBlue,
		headerTextColor:     WhiteSmoke,
		bandFill:            &BandGrey,
		gridColor:           Grey,
		defaultColWidth:     70,
	}
}

// NewStyledWriter returns a Writer preset for styled tables:
// 72 pt margins on all sides, Helvetica 10, a centered bold
// 18 pt title, a light grey header row, left aligned cells,
// and no banding.
// Cell styles and merged ranges of StyledViews are rendered.
func NewStyledWriter[T any]() *Writer[T] {
	return &Writer[T]{
		columnFormatters:    make(map[int]sheetpdf.CellFormatter),
		fontFamily:          "Helvetica",
		fontSize:            10,
		titleFontSize:       18,
		titleAlign:          "C",
		cellAlign:           "L",
		marginLeft:          72,
		marginTop:           72,
		marginRight:         72,
		marginBottom:        72,
		cellPadding:         3,
		headerBottomPadding: 3,
		headerFill:          LightGrey,
		headerTextColor:     Black,
		gridColor:           Grey,
		defaultColWidth:     60,
		sheetStyles:         true,
	}
}

// Write writes the table as PDF to the destination writer.
// It uses the writer's configured viewer if set, otherwise calls
// sheetpdf.SelectViewer to choose a viewer for the table type.
func (w *Writer[T]) Write(ctx context.Context, dest io.Writer, table T) error {
	viewer := w.viewer
	if viewer == nil {
		var err error
		viewer, err = sheetpdf.SelectViewer(table)
		if err != nil {
			return err
		}
	}
	return w.WriteWithViewer(ctx, dest, viewer, table)
}

// WriteWithViewer writes the table as PDF using the passed viewer.
func (w *Writer[T]) WriteWithViewer(ctx context.Context, dest io.Writer, viewer sheetpdf.Viewer, table T) error {
	view, err := viewer.NewView(w.title, table)
	if err != nil {
		return err
	}
	return w.WriteView(ctx, dest, view)
}

// WriteViewFile writes a table view as PDF document to a file at path.
// No file is left behind when the rendering fails.
func (w *Writer[T]) WriteViewFile(ctx context.Context, path string, view sheetpdf.View) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, file.Close())
		if err != nil {
			err = errors.Join(err, os.Remove(path))
		}
	}()
	return w.WriteView(ctx, file, view)
}

// WriteView writes a table view as PDF to the destination writer.
//
// Every cell is formatted through the cascade of column formatters,
// type formatters, and finally sheetpdf.FormatValue.
// A view with zero columns produces a title-only document.
// Layout failures are returned as *RenderError and
// nothing is written to dest in that case.
func (w *Writer[T]) WriteView(ctx context.Context, dest io.Writer, view sheetpdf.View) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	columns := view.Columns()
	numCols := len(columns)
	numRows := view.NumRows()

	cells, err := w.formatCells(ctx, view, numCols, numRows)
	if err != nil {
		return err
	}

	var (
		styledView sheetpdf.StyledView
		viewWidths []float64
		merges     []sheetpdf.MergeRange
	)
	if sv, ok := view.(sheetpdf.StyledView); ok {
		styledView = sv
		viewWidths = sv.ColWidths()
		if w.sheetStyles {
			merges = sv.MergeRanges()
		}
	}

	pdf := gofpdf.New("L", "pt", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(w.marginLeft, w.marginTop, w.marginRight)
	pdf.SetAutoPageBreak(false, w.marginBottom)
	pdf.SetLineWidth(0.25)
	pdf.SetDrawColor(w.gridColor.R, w.gridColor.G, w.gridColor.B)
	pdf.AddPage()

	pageWidth, pageHeight := pdf.GetPageSize()
	printableWidth := pageWidth - w.marginLeft - w.marginRight
	bottomLimit := pageHeight - w.marginBottom

	title := w.title
	if title == "" {
		title = view.Title()
	}
	if title != "" {
		pdf.SetFont(w.fontFamily, "B", w.titleFontSize)
		pdf.SetTextColor(Black.R, Black.G, Black.B)
		pdf.CellFormat(printableWidth, w.titleFontSize*1.2, tr(title), "", 1, w.titleAlign, false, 0, "")
		pdf.Ln(12)
	}

	if numCols == 0 {
		return w.output(pdf, dest)
	}

	for row := 0; row < numRows; row++ {
		if view.Cell(row, numCols) != nil {
			return renderErrorf("row %d has more cells than the %d header columns", row, numCols)
		}
	}

	colWidths, tableWidth, err := w.columnWidths(viewWidths, columns, cells, numCols, printableWidth)
	if err != nil {
		return err
	}

	var (
		rowHeight    = w.fontSize + 2*w.cellPadding
		headerHeight = w.fontSize + w.cellPadding + w.headerBottomPadding
		x0           = w.marginLeft + (printableWidth-tableWidth)/2
		tallDrawn    = make(map[int]bool)
	)

	gridRowHeight := func(gridRow int) float64 {
		if gridRow == 0 {
			return headerHeight
		}
		return rowHeight
	}

	mergeAt := func(gridRow, col int) (int, *sheetpdf.MergeRange) {
		for i := range merges {
			if merges[i].Contains(gridRow, col) {
				return i, &merges[i]
			}
		}
		return -1, nil
	}

	spanWidth := func(m *sheetpdf.MergeRange) float64 {
		width := 0.0
		for col := m.StartCol; col <= m.EndCol && col < numCols; col++ {
			width += colWidths[col]
		}
		return width
	}

	spanHeight := func(m *sheetpdf.MergeRange, fromGridRow int) float64 {
		height := 0.0
		for gridRow := fromGridRow; gridRow <= m.EndRow && gridRow <= numRows; gridRow++ {
			height += gridRowHeight(gridRow)
		}
		return height
	}

	drawDataCell := func(text string, style sheetpdf.CellStyle, width, height float64, banded bool) {
		fill := false
		if banded {
			pdf.SetFillColor(w.bandFill.R, w.bandFill.G, w.bandFill.B)
			fill = true
		}
		fontStyle := ""
		align := w.cellAlign
		if w.sheetStyles {
			if style.BackgroundColor != "" {
				// malformed sheet colors are skipped, never fatal
				if bg, err := ParseHexColor(style.BackgroundColor); err == nil {
					pdf.SetFillColor(bg.R, bg.G, bg.B)
					fill = true
				}
			}
			switch {
			case style.Bold:
				fontStyle = "B"
			case style.Italic:
				fontStyle = "I"
			}
			switch style.HAlign {
			case sheetpdf.AlignLeft:
				align = "L"
			case sheetpdf.AlignCenter:
				align = "C"
			case sheetpdf.AlignRight:
				align = "R"
			}
		}
		pdf.SetFont(w.fontFamily, fontStyle, w.fontSize)
		pdf.CellFormat(width, height, tr(text), "1", 0, align, fill, 0, "")
	}

	// firstPage limits vertical header merges to the page where
	// the merged data rows actually follow the header row
	drawHeader := func(firstPage bool) {
		pdf.SetX(x0)
		pdf.SetFont(w.fontFamily, "B", w.fontSize)
		pdf.SetFillColor(w.headerFill.R, w.headerFill.G, w.headerFill.B)
		pdf.SetTextColor(w.headerTextColor.R, w.headerTextColor.G, w.headerTextColor.B)
		for col := 0; col < numCols; {
			mi, m := mergeAt(0, col)
			if m == nil || col != m.StartCol {
				pdf.CellFormat(colWidths[col], headerHeight, tr(columns[col]), "1", 0, "C", true, 0, "")
				col++
				continue
			}
			height := headerHeight
			if firstPage && m.EndRow > 0 {
				if full := spanHeight(m, 0); pdf.GetY()+full <= bottomLimit {
					height = full
					tallDrawn[mi] = true
				}
			}
			pdf.CellFormat(spanWidth(m), height, tr(columns[col]), "1", 0, "C", true, 0, "")
			col = m.EndCol + 1
		}
		pdf.Ln(headerHeight)
	}

	drawHeader(true)

	for row := 0; row < numRows; row++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if pdf.GetY()+rowHeight > bottomLimit {
			pdf.AddPage()
			drawHeader(false)
		}
		gridRow := row + 1
		banded := w.bandFill != nil && gridRow%2 == 0
		pdf.SetX(x0)
		pdf.SetTextColor(Black.R, Black.G, Black.B)
		for col := 0; col < numCols; {
			var style sheetpdf.CellStyle
			if w.sheetStyles && styledView != nil {
				style = styledView.Style(row, col)
			}
			mi, m := mergeAt(gridRow, col)
			if m == nil || col != m.StartCol {
				drawDataCell(cells[row][col], style, colWidths[col], rowHeight, banded)
				col++
				continue
			}
			width := spanWidth(m)
			switch {
			case tallDrawn[mi]:
				// area already painted by the merge's master cell
				pdf.SetX(pdf.GetX() + width)
			case gridRow == m.StartRow:
				height := rowHeight
				if m.EndRow > gridRow {
					if full := spanHeight(m, gridRow); pdf.GetY()+full <= bottomLimit {
						height = full
						tallDrawn[mi] = true
					}
				}
				drawDataCell(cells[row][col], style, width, height, banded)
			default:
				// vertical continuation that could not
				// be drawn as one merged cell
				drawDataCell("", style, width, rowHeight, banded)
			}
			col = m.EndCol + 1
		}
		pdf.Ln(rowHeight)
	}

	return w.output(pdf, dest)
}

// formatCells returns the formatted cell strings of all data rows.
func (w *Writer[T]) formatCells(ctx context.Context, view sheetpdf.View, numCols, numRows int) ([][]string, error) {
	reflectView := sheetpdf.AsReflectCellView(view)
	cells := make([][]string, numRows)
	for row := 0; row < numRows; row++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rowStrs := make([]string, numCols)
		for col := 0; col < numCols; col++ {
			if colFormatter, ok := w.columnFormatters[col]; ok {
				str, _, err := colFormatter.FormatCell(ctx, view, row, col)
				if err != nil && !errors.Is(err, errors.ErrUnsupported) {
					return nil, err
				}
				if err == nil {
					rowStrs[col] = str
					continue // next column cell
				}
			}

			str, _, err := w.typeFormatters.FormatCell(ctx, view, row, col)
			if err != nil {
				if !errors.Is(err, errors.ErrUnsupported) {
					return nil, err
				}
				// In case of errors.ErrUnsupported
				// use fallback method of formatting
				v := reflectView.ReflectCell(row, col)
				if sheetpdf.IsNullLike(v) {
					continue // leave cell string empty
				}
				if v.Kind() == reflect.Pointer {
					v = v.Elem()
				}
				str = sheetpdf.FormatValue(v.Interface())
			}
			rowStrs[col] = str
		}
		cells[row] = rowStrs
	}
	return cells, nil
}

// columnWidths returns the widths of all table columns in points
// together with their sum.
//
// Widths declared by the view win over automatic widths derived
// from the formatted cell strings. A table wider than the printable
// page width is an error unless fitToPage is enabled, which
// scales all columns down proportionally.
func (w *Writer[T]) columnWidths(viewWidths []float64, columns []string, cells [][]string, numCols int, printableWidth float64) ([]float64, float64, error) {
	colWidths := make([]float64, numCols)
	if len(viewWidths) > 0 {
		for col := 0; col < numCols; col++ {
			if col < len(viewWidths) && viewWidths[col] > 0 {
				colWidths[col] = viewWidths[col]
			} else {
				colWidths[col] = w.defaultColWidth
			}
		}
	} else {
		runeWidths := sheetpdf.StringColumnWidths(append([][]string{columns}, cells...), numCols)
		totalRunes := 0
		for col, runes := range runeWidths {
			if runes < 1 {
				runeWidths[col] = 1
			}
			totalRunes += runeWidths[col]
		}
		for col, runes := range runeWidths {
			colWidths[col] = printableWidth * float64(runes) / float64(totalRunes)
		}
	}

	tableWidth := 0.0
	for _, colWidth := range colWidths {
		tableWidth += colWidth
	}
	if tableWidth > printableWidth {
		if !w.fitToPage {
			return nil, 0, renderErrorf("table width %.1f pt exceeds printable page width %.1f pt", tableWidth, printableWidth)
		}
		scale := printableWidth / tableWidth
		for col := range colWidths {
			colWidths[col] *= scale
		}
		tableWidth = printableWidth
	}
	return colWidths, tableWidth, nil
}

func (w *Writer[T]) output(pdf *gofpdf.Fpdf, dest io.Writer) error {
	if err := pdf.Error(); err != nil {
		return &RenderError{Cause: err}
	}
	if err := pdf.Output(dest); err != nil {
		return &RenderError{Cause: err}
	}
	return nil
}

func (w *Writer[T]) clone() *Writer[T] {
	c := new(Writer[T])
	*c = *w
	return c
}

// WithTitle returns a new writer with the passed document title.
// An empty title falls back to the view's title at write time,
// if both are empty no title paragraph is rendered.
func (w *Writer[T]) WithTitle(title string) *Writer[T] {
	mod := w.clone()
	mod.title = title
	return mod
}

// WithTableViewer returns a new writer with the passed viewer.
// If not set, sheetpdf.SelectViewer will be used.
func (w *Writer[T]) WithTableViewer(viewer sheetpdf.Viewer) *Writer[T] {
	mod := w.clone()
	mod.viewer = viewer
	return mod
}

// WithColumnFormatter returns a new writer with the formatter
// registered for the column, or removed if the formatter is nil.
// Column formatters take precedence over type formatters.
func (w *Writer[T]) WithColumnFormatter(columnIndex int, formatter sheetpdf.CellFormatter) *Writer[T] {
	mod := w.clone()
	mod.columnFormatters = make(map[int]sheetpdf.CellFormatter)
	for key, val := range w.columnFormatters {
		mod.columnFormatters[key] = val
	}
	if formatter != nil {
		mod.columnFormatters[columnIndex] = formatter
	} else {
		delete(mod.columnFormatters, columnIndex)
	}
	return mod
}

// WithColumnFormatterFunc returns a new writer with the formatter
// function registered for the column.
func (w *Writer[T]) WithColumnFormatterFunc(columnIndex int, formatterFunc sheetpdf.CellFormatterFunc) *Writer[T] {
	return w.WithColumnFormatter(columnIndex, formatterFunc)
}

// WithTypeFormatters returns a new writer with the passed
// type formatter set, replacing all existing type formatters.
func (w *Writer[T]) WithTypeFormatters(formatter *sheetpdf.ReflectTypeCellFormatter) *Writer[T] {
	mod := w.clone()
	mod.typeFormatters = formatter
	return mod
}

// WithTypeFormatter returns a new writer with a formatter
// registered for the passed type.
func (w *Writer[T]) WithTypeFormatter(typ reflect.Type, fmt sheetpdf.CellFormatter) *Writer[T] {
	mod := w.clone()
	mod.typeFormatters = w.typeFormatters.WithTypeFormatter(typ, fmt)
	return mod
}

// WithTypeFormatterReflectFunc returns a new writer with a type
// formatter derived from the passed function, using the function's
// argument type as the type to format.
// Panics if the function signature is not supported,
// see sheetpdf.ReflectCellFormatterFunc.
func (w *Writer[T]) WithTypeFormatterReflectFunc(function any) *Writer[T] {
	fmt, typ, err := sheetpdf.ReflectCellFormatterFunc(function, false)
	if err != nil {
		panic(err)
	}
	return w.WithTypeFormatter(typ, fmt)
}

// WithFontFamily returns a new writer using the passed font family.
func (w *Writer[T]) WithFontFamily(fontFamily string) *Writer[T] {
	mod := w.clone()
	mod.fontFamily = fontFamily
	return mod
}

// WithFontSize returns a new writer using the passed font size
// in points for table cells.
func (w *Writer[T]) WithFontSize(fontSize float64) *Writer[T] {
	mod := w.clone()
	mod.fontSize = fontSize
	return mod
}

// WithTitleFontSize returns a new writer using the passed
// font size in points for the title paragraph.
func (w *Writer[T]) WithTitleFontSize(fontSize float64) *Writer[T] {
	mod := w.clone()
	mod.titleFontSize = fontSize
	return mod
}

// WithMargins returns a new writer with the passed
// page margins in points.
func (w *Writer[T]) WithMargins(left, top, right, bottom float64) *Writer[T] {
	mod := w.clone()
	mod.marginLeft = left
	mod.marginTop = top
	mod.marginRight = right
	mod.marginBottom = bottom
	return mod
}

// WithHeaderFill returns a new writer with the passed
// header row background color.
func (w *Writer[T]) WithHeaderFill(fill Color) *Writer[T] {
	mod := w.clone()
	mod.headerFill = fill
	return mod
}

// WithHeaderTextColor returns a new writer with the passed
// header row text color.
func (w *Writer[T]) WithHeaderTextColor(color Color) *Writer[T] {
	mod := w.clone()
	mod.headerTextColor = color
	return mod
}

// WithBandFill returns a new writer with the passed fill color
// for every second table row, or no banding if nil.
func (w *Writer[T]) WithBandFill(fill *Color) *Writer[T] {
	mod := w.clone()
	if fill != nil {
		f := *fill
		mod.bandFill = &f
	} else {
		mod.bandFill = nil
	}
	return mod
}

// WithGridColor returns a new writer with the passed
// color for the cell grid lines.
func (w *Writer[T]) WithGridColor(color Color) *Writer[T] {
	mod := w.clone()
	mod.gridColor = color
	return mod
}

// WithCellPadding returns a new writer with the passed
// vertical cell padding in points.
func (w *Writer[T]) WithCellPadding(padding float64) *Writer[T] {
	mod := w.clone()
	mod.cellPadding = padding
	return mod
}

// WithDefaultColWidth returns a new writer with the passed
// width in points for columns without a declared width.
func (w *Writer[T]) WithDefaultColWidth(width float64) *Writer[T] {
	mod := w.clone()
	mod.defaultColWidth = width
	return mod
}

// WithSheetStyles returns a new writer that renders or ignores
// the cell styles and merged ranges of StyledViews.
func (w *Writer[T]) WithSheetStyles(sheetStyles bool) *Writer[T] {
	mod := w.clone()
	mod.sheetStyles = sheetStyles
	return mod
}

// WithFitToPage returns a new writer that scales down all column
// widths proportionally when the table is wider than the printable
// page width, instead of returning a RenderError.
func (w *Writer[T]) WithFitToPage(fitToPage bool) *Writer[T] {
	mod := w.clone()
	mod.fitToPage = fitToPage
	return mod
}
