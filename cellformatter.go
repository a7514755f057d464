package sheetpdf

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// CellFormatter is an interface for formatting view cells as strings.
type CellFormatter interface {
	// FormatCell formats the cell of the view at row and col as string
	// or returns a wrapped errors.ErrUnsupported error if
	// it doesn't support formatting the value of the cell.
	// The raw result indicates if the returned string
	// is in the raw format of the output table format and can be
	// used as is or if it has to be sanitized in some way.
	FormatCell(ctx context.Context, view View, row, col int) (str string, raw bool, err error)
}

// CellFormatterFunc implements CellFormatter for a function.
type CellFormatterFunc func(ctx context.Context, view View, row, col int) (str string, raw bool, err error)

func (f CellFormatterFunc) FormatCell(ctx context.Context, view View, row, col int) (str string, raw bool, err error) {
	return f(ctx, view, row, col)
}

// PrintfCellFormatter implements CellFormatter by calling
// fmt.Sprintf with this type's string value as format.
type PrintfCellFormatter string

func (format PrintfCellFormatter) FormatCell(ctx context.Context, view View, row, col int) (str string, raw bool, err error) {
	return fmt.Sprintf(string(format), view.Cell(row, col)), false, nil
}

// PrintfRawCellFormatter implements CellFormatter by calling
// fmt.Sprintf with this type's string value as format.
// The result will be indicated to be a raw value.
type PrintfRawCellFormatter string

func (format PrintfRawCellFormatter) FormatCell(ctx context.Context, view View, row, col int) (str string, raw bool, err error) {
	return fmt.Sprintf(string(format), view.Cell(row, col)), true, nil
}

// RawCellString implements CellFormatter by returning
// the underlying string as raw value for every cell.
type RawCellString string

func (rawStr RawCellString) FormatCell(ctx context.Context, view View, row, col int) (str string, raw bool, err error) {
	return string(rawStr), true, nil
}

// SprintCellFormatter returns a CellFormatter that formats
// any cell value using fmt.Sprint and indicates the result
// as raw depending on the passed rawResult.
func SprintCellFormatter(rawResult bool) CellFormatter {
	return CellFormatterFunc(func(ctx context.Context, view View, row, col int) (string, bool, error) {
		return fmt.Sprint(view.Cell(row, col)), rawResult, nil
	})
}

// LayoutFormatter formats time.Time cell values using
// this type's string value as time format layout.
// Formatting other cell values returns errors.ErrUnsupported.
type LayoutFormatter string

func (layout LayoutFormatter) FormatCell(ctx context.Context, view View, row, col int) (str string, raw bool, err error) {
	switch t := view.Cell(row, col).(type) {
	case time.Time:
		return t.Format(string(layout)), false, nil
	case *time.Time:
		if t == nil {
			return "", false, nil
		}
		return t.Format(string(layout)), false, nil
	default:
		return "", false, fmt.Errorf("%w: LayoutFormatter got %T", errors.ErrUnsupported, view.Cell(row, col))
	}
}

// TryFormattersOrFormatValue returns a CellFormatter that tries the
// passed formatters in order, skipping nil formatters and those that
// return a wrapped errors.ErrUnsupported error, and finally falls
// back to formatting the cell value with FormatValue.
func TryFormattersOrFormatValue(formatters ...CellFormatter) CellFormatter {
	return CellFormatterFunc(func(ctx context.Context, view View, row, col int) (string, bool, error) {
		for _, f := range formatters {
			if f == nil {
				continue
			}
			str, raw, err := f.FormatCell(ctx, view, row, col)
			if err == nil {
				return str, raw, nil
			}
			if !errors.Is(err, errors.ErrUnsupported) {
				return "", false, err
			}
		}
		return FormatValue(view.Cell(row, col)), false, nil
	})
}
