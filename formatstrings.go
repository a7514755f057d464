package sheetpdf

import (
	"context"
)

// FormatTableAsStrings converts any supported table into
// a two dimensional string slice.
//
// A Viewer for the table type is selected with SelectViewer,
// then the resulting View is formatted with FormatViewAsStrings
// using the passed formatter and options.
func FormatTableAsStrings(ctx context.Context, table any, formatter CellFormatter, options ...Option) (rows [][]string, err error) {
	viewer, err := SelectViewer(table)
	if err != nil {
		return nil, err
	}
	view, err := viewer.NewView("", table)
	if err != nil {
		return nil, err
	}
	return FormatViewAsStrings(ctx, view, formatter, options...)
}

// FormatViewAsStrings converts a View into a two dimensional
// string slice.
//
// Every cell is formatted with the passed formatter, falling back
// to FormatValue for cells the formatter does not support.
// A nil formatter formats all cells with FormatValue.
//
// When OptionAddHeaderRow is set, the column titles of the view
// are added as first row, also passed through the formatter.
func FormatViewAsStrings(ctx context.Context, view View, formatter CellFormatter, options ...Option) (rows [][]string, err error) {
	cellFormatter := TryFormattersOrFormatValue(formatter)
	numRows := view.NumRows()
	numCols := len(view.Columns())

	if HasOption(options, OptionAddHeaderRow) {
		// view.Columns() already returns a string slice,
		// but use the formatter for any additional formatting of strings
		headerView := NewHeaderViewFrom(view)
		rowStrings := make([]string, numCols)
		for col := 0; col < numCols; col++ {
			rowStrings[col], _, err = cellFormatter.FormatCell(ctx, headerView, 0, col)
			if err != nil {
				return nil, err
			}
		}
		rows = append(rows, rowStrings)
	}

	for row := 0; row < numRows; row++ {
		rowStrings := make([]string, numCols)
		for col := 0; col < numCols; col++ {
			rowStrings[col], _, err = cellFormatter.FormatCell(ctx, view, row, col)
			if err != nil {
				return nil, err
			}
		}
		rows = append(rows, rowStrings)
	}

	return rows, nil
}
