package sheetpdf

import "context"

// FileReader reads the table of a workbook file as SheetView.
type FileReader interface {
	ReadFile(ctx context.Context, path string) (*SheetView, error)
}

// CombineSheets merges the passed sheet snapshots into one table.
//
// The first sheet contributes its header row, data rows, styles,
// merged ranges, and column widths. Every following sheet is assumed
// to have the same column layout and contributes its data rows and
// styles with its own header row dropped. Column widths and the
// header always come from the first sheet.
//
// Merged ranges of following sheets are shifted down by the number
// of rows already combined so that they still cover the rows they
// came from. A range lying completely within a dropped header row
// is dropped, a range starting in it is clamped to its first data row.
//
// Calling CombineSheets without arguments returns an empty SheetView
// that renders as a table without columns and rows.
func CombineSheets(sheets ...*SheetView) *SheetView {
	combined := new(SheetView)
	for i, sheet := range sheets {
		if i == 0 {
			combined.Tit = sheet.Tit
			combined.Header = sheet.Header
			combined.Widths = sheet.Widths
		}
		offset := len(combined.Rows)
		combined.Rows = append(combined.Rows, sheet.Rows...)
		combined.Styles = append(combined.Styles, sheet.Styles...)
		for _, m := range sheet.Merges {
			if i > 0 {
				if m.EndRow == 0 {
					continue // range within the dropped header row
				}
				if m.StartRow == 0 {
					m.StartRow = 1
				}
				m.StartRow += offset
				m.EndRow += offset
			}
			combined.Merges = append(combined.Merges, m)
		}
	}
	return combined
}

// ReadAndCombine reads the tables of all passed workbook files
// with the reader and merges them with CombineSheets.
//
// Reading stops at the first error without rendering side effects,
// and the context is checked before every file.
func ReadAndCombine(ctx context.Context, reader FileReader, paths []string) (*SheetView, error) {
	sheets := make([]*SheetView, len(paths))
	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		sheet, err := reader.ReadFile(ctx, path)
		if err != nil {
			return nil, err
		}
		sheets[i] = sheet
	}
	return CombineSheets(sheets...), nil
}
