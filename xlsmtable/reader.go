// Package xlsmtable reads a single worksheet of an Excel workbook
// (.xlsm, .xlsx) into a sheetpdf.SheetView with typed cell values,
// cell styles, merged cell ranges, and column width hints.
//
// Only evaluated values are read: formula cells yield their cached
// result, never the formula text.
package xlsmtable

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/domonda/go-sheetpdf"
)

// excelizeDefaultColWidth is what excelize reports for
// columns without an explicit width entry.
const excelizeDefaultColWidth = 9.140625

// Options configure which sheet is read and how declared
// column widths are converted to points.
type Options struct {
	// SheetName is the name of the worksheet to read
	SheetName string `json:"sheetName" yaml:"sheetName"`

	// WidthScale converts declared column character widths to points
	WidthScale float64 `json:"widthScale" yaml:"widthScale"`

	// WidthFallback is the column width in points
	// used for columns without a declared width
	WidthFallback float64 `json:"widthFallback" yaml:"widthFallback"`
}

// PlainOptions returns the Options used for plain table exports.
func PlainOptions() Options {
	return Options{SheetName: "DATA", WidthScale: 7, WidthFallback: 70}
}

// StyledOptions returns the Options used for styled table exports.
func StyledOptions() Options {
	return Options{SheetName: "DATA", WidthScale: 5, WidthFallback: 60}
}

var _ sheetpdf.FileReader = new(Reader)

// Reader reads the configured worksheet of Excel workbooks.
type Reader struct {
	opts Options
}

// NewReader returns a Reader using the passed Options.
// Empty or non-positive option values are
// replaced by their PlainOptions defaults.
func NewReader(opts Options) *Reader {
	defaults := PlainOptions()
	if opts.SheetName == "" {
		opts.SheetName = defaults.SheetName
	}
	if opts.WidthScale <= 0 {
		opts.WidthScale = defaults.WidthScale
	}
	if opts.WidthFallback <= 0 {
		opts.WidthFallback = defaults.WidthFallback
	}
	return &Reader{opts: opts}
}

// ReadFile reads the sheet selected by opts from the workbook at path.
func ReadFile(ctx context.Context, path string, opts Options) (*sheetpdf.SheetView, error) {
	return NewReader(opts).ReadFile(ctx, path)
}

// ReadFile reads the configured sheet from the workbook at path.
//
// The returned view's title is the sheet name, its header row is the
// first sheet row, and its merge ranges and column widths are taken
// from the sheet. A workbook without the configured sheet results
// in a SheetNotFoundError.
func (r *Reader) ReadFile(ctx context.Context, path string) (view *sheetpdf.SheetView, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, e := excelize.OpenFile(path)
	if e != nil {
		return nil, fmt.Errorf("error opening workbook %q: %w", path, e)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	sheet := r.opts.SheetName
	index, e := f.GetSheetIndex(sheet)
	if e != nil {
		return nil, e
	}
	if index < 0 {
		return nil, &SheetNotFoundError{Path: path, Sheet: sheet}
	}

	rows, e := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if e != nil {
		return nil, fmt.Errorf("error reading sheet %q of %q: %w", sheet, path, e)
	}
	numCols := 0
	for _, row := range rows {
		if len(row) > numCols {
			numCols = len(row)
		}
	}

	props, e := f.GetWorkbookProps()
	if e != nil {
		return nil, e
	}
	date1904 := props.Date1904 != nil && *props.Date1904

	styleCache := make(map[int]styleInfo)
	grid := make([][]any, len(rows))
	styles := make([][]sheetpdf.CellStyle, len(rows))
	for rowIndex := range rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		gridRow := make([]any, numCols)
		styleRow := make([]sheetpdf.CellStyle, numCols)
		for colIndex := 0; colIndex < numCols; colIndex++ {
			cellName, e := excelize.CoordinatesToCellName(colIndex+1, rowIndex+1)
			if e != nil {
				return nil, e
			}
			info, e := cellStyleInfo(f, styleCache, sheet, cellName)
			if e != nil {
				return nil, e
			}
			styleRow[colIndex] = info.style

			var raw string
			if colIndex < len(rows[rowIndex]) {
				raw = rows[rowIndex][colIndex]
			}
			gridRow[colIndex], e = cellValue(f, sheet, cellName, raw, info.isDate, date1904)
			if e != nil {
				return nil, e
			}
		}
		grid[rowIndex] = gridRow
		styles[rowIndex] = styleRow
	}

	merges, e := mergeRanges(f, sheet)
	if e != nil {
		return nil, e
	}

	widths := make([]float64, numCols)
	for col := 0; col < numCols; col++ {
		colName, e := excelize.ColumnNumberToName(col + 1)
		if e != nil {
			return nil, e
		}
		width, e := f.GetColWidth(sheet, colName)
		if e != nil {
			return nil, e
		}
		if width == excelizeDefaultColWidth {
			widths[col] = r.opts.WidthFallback
		} else {
			widths[col] = width * r.opts.WidthScale
		}
	}

	view = &sheetpdf.SheetView{
		Tit:    sheet,
		Merges: merges,
		Widths: widths,
	}
	if len(grid) > 0 {
		view.Header = grid[0]
		view.Rows = grid[1:]
		view.Styles = styles[1:]
	}
	return view, nil
}

// cellValue converts the raw cached string of a cell
// into a typed Go value.
//
// Empty cells yield nil, bool cells bool, string and error
// cells string. Numeric cells yield int64 when the raw text
// is integral and float64 otherwise, except that cells with
// a date number format yield the serial number converted
// to time.Time.
func cellValue(f *excelize.File, sheet, cellName, raw string, isDate, date1904 bool) (any, error) {
	if raw == "" {
		return nil, nil
	}
	cellType, err := f.GetCellType(sheet, cellName)
	if err != nil {
		return nil, err
	}
	switch cellType {
	case excelize.CellTypeBool:
		return raw == "1", nil

	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		return raw, nil

	case excelize.CellTypeFormula:
		// cached string result of a formula
		return raw, nil

	case excelize.CellTypeError:
		return raw, nil

	case excelize.CellTypeDate:
		// ISO8601 typed cells, rare outside of strict OOXML
		for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
			if t, err := time.Parse(layout, raw); err == nil {
				return t, nil
			}
		}
		return raw, nil

	default: // CellTypeNumber and CellTypeUnset
		fl, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			// not a number, keep the raw string
			return raw, nil
		}
		if isDate {
			return excelize.ExcelDateToTime(fl, date1904)
		}
		if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return i, nil
		}
		return fl, nil
	}
}

type styleInfo struct {
	style  sheetpdf.CellStyle
	isDate bool
}

// cellStyleInfo returns the CellStyle and date-format flag
// for a cell, caching the conversion per style ID.
func cellStyleInfo(f *excelize.File, cache map[int]styleInfo, sheet, cellName string) (styleInfo, error) {
	styleID, err := f.GetCellStyle(sheet, cellName)
	if err != nil {
		return styleInfo{}, err
	}
	if info, ok := cache[styleID]; ok {
		return info, nil
	}
	style, err := f.GetStyle(styleID)
	if err != nil {
		return styleInfo{}, err
	}
	info := styleInfo{
		style:  cellStyleOf(style),
		isDate: isDateStyle(style),
	}
	cache[styleID] = info
	return info, nil
}

// cellStyleOf extracts the sheetpdf.CellStyle attributes
// from an excelize style.
//
// A background color is only extracted from pattern fills
// carrying a direct RGB color. Theme or indexed colors
// are not resolved.
func cellStyleOf(style *excelize.Style) sheetpdf.CellStyle {
	cellStyle := sheetpdf.CellStyle{HAlign: sheetpdf.AlignLeft}
	if style.Font != nil {
		cellStyle.Bold = style.Font.Bold
		cellStyle.Italic = style.Font.Italic
	}
	if style.Alignment != nil && style.Alignment.Horizontal != "" {
		cellStyle.HAlign = strings.ToUpper(style.Alignment.Horizontal)
	}
	if style.Fill.Type == "pattern" && style.Fill.Pattern > 0 && len(style.Fill.Color) > 0 {
		cellStyle.BackgroundColor = normalizeRGB(style.Fill.Color[0])
	}
	return cellStyle
}

// normalizeRGB reduces an ARGB or RGB hex string with optional
// '#' prefix to 6 upper-case hex digits, or "" when the
// string has no valid RGB part.
func normalizeRGB(s string) string {
	s = strings.TrimPrefix(s, "#")
	if len(s) < 6 {
		return ""
	}
	s = strings.ToUpper(s[len(s)-6:])
	for _, r := range s {
		if (r < '0' || r > '9') && (r < 'A' || r > 'F') {
			return ""
		}
	}
	return s
}

// mergeRanges returns the merged cell ranges of the sheet
// as 0-based inclusive grid coordinates.
func mergeRanges(f *excelize.File, sheet string) ([]sheetpdf.MergeRange, error) {
	mergeCells, err := f.GetMergeCells(sheet)
	if err != nil {
		return nil, err
	}
	merges := make([]sheetpdf.MergeRange, 0, len(mergeCells))
	for _, mc := range mergeCells {
		startCol, startRow, err := excelize.CellNameToCoordinates(mc.GetStartAxis())
		if err != nil {
			return nil, err
		}
		endCol, endRow, err := excelize.CellNameToCoordinates(mc.GetEndAxis())
		if err != nil {
			return nil, err
		}
		merges = append(merges, sheetpdf.MergeRange{
			StartCol: startCol - 1,
			StartRow: startRow - 1,
			EndCol:   endCol - 1,
			EndRow:   endRow - 1,
		})
	}
	return merges, nil
}
