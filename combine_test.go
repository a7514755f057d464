package sheetpdf

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCombineSheets(t *testing.T) {
	t.Run("no sheets", func(t *testing.T) {
		combined := CombineSheets()
		require.Equal(t, "", combined.Title())
		require.Empty(t, combined.Columns())
		require.Zero(t, combined.NumRows())
		require.Empty(t, combined.MergeRanges())
		require.Empty(t, combined.ColWidths())
	})

	first := &SheetView{
		Tit:    "DATA",
		Header: []any{"A", "B", "C"},
		Rows: [][]any{
			{int64(1), "one", nil},
			{int64(2), "two", 2.5},
		},
		Styles: [][]CellStyle{
			{{HAlign: AlignLeft}, {}, {}},
			{{}, {Bold: true}, {}},
		},
		Merges: []MergeRange{
			{StartCol: 0, StartRow: 0, EndCol: 1, EndRow: 0}, // within the header row
			{StartCol: 2, StartRow: 1, EndCol: 2, EndRow: 2}, // covers both data rows
		},
		Widths: []float64{70, 70, 140},
	}
	second := &SheetView{
		Tit:    "DATA",
		Header: []any{"ignored", "ignored", "ignored"},
		Rows: [][]any{
			{int64(3), "three", nil},
			{int64(4), "four", nil},
			{int64(5), "five", nil},
		},
		Styles: [][]CellStyle{
			{{}, {}, {}},
			{{}, {}, {}},
			{{}, {}, {Italic: true}},
		},
		Merges: []MergeRange{
			{StartCol: 0, StartRow: 0, EndCol: 2, EndRow: 0}, // dropped with the header row
			{StartCol: 1, StartRow: 0, EndCol: 1, EndRow: 1}, // clamped to the first data row
			{StartCol: 0, StartRow: 2, EndCol: 0, EndRow: 3},
		},
		Widths: []float64{999, 999, 999},
	}

	t.Run("single sheet", func(t *testing.T) {
		combined := CombineSheets(first)
		require.Equal(t, "DATA", combined.Title())
		require.Equal(t, []string{"A", "B", "C"}, combined.Columns())
		require.Equal(t, first.Rows, combined.Rows)
		require.Equal(t, first.Styles, combined.Styles)
		require.Equal(t, first.Merges, combined.Merges)
		require.Equal(t, first.Widths, combined.ColWidths())
	})

	t.Run("two sheets", func(t *testing.T) {
		combined := CombineSheets(first, second)

		require.Equal(t, []string{"A", "B", "C"}, combined.Columns(), "header comes from the first sheet")
		require.Equal(t, first.Widths, combined.ColWidths(), "widths come from the first sheet")
		require.Equal(t, len(first.Rows)+len(second.Rows), combined.NumRows())
		require.Equal(t, int64(3), combined.Cell(2, 0), "first data row of the second sheet")
		require.True(t, combined.Style(4, 2).Italic)

		require.Equal(t, []MergeRange{
			{StartCol: 0, StartRow: 0, EndCol: 1, EndRow: 0},
			{StartCol: 2, StartRow: 1, EndCol: 2, EndRow: 2},
			{StartCol: 1, StartRow: 3, EndCol: 1, EndRow: 3},
			{StartCol: 0, StartRow: 4, EndCol: 0, EndRow: 5},
		}, combined.MergeRanges())
	})

	t.Run("row count adds up", func(t *testing.T) {
		third := &SheetView{Header: []any{"A", "B", "C"}, Rows: [][]any{{int64(6), "six", nil}}}
		combined := CombineSheets(first, second, third)
		require.Equal(t, 6, combined.NumRows())
	})
}

// pathSheetReader implements FileReader with a fixed path to sheet mapping.
type pathSheetReader map[string]*SheetView

func (r pathSheetReader) ReadFile(ctx context.Context, path string) (*SheetView, error) {
	sheet, ok := r[path]
	if !ok {
		return nil, fmt.Errorf("no test sheet for %q", path)
	}
	return sheet, nil
}

func TestReadAndCombine(t *testing.T) {
	reader := pathSheetReader{
		"a.xlsm": {Tit: "DATA", Header: []any{"A"}, Rows: [][]any{{int64(1)}, {int64(2)}}},
		"b.xlsm": {Tit: "DATA", Header: []any{"A"}, Rows: [][]any{{int64(3)}}},
	}

	combined, err := ReadAndCombine(context.Background(), reader, []string{"a.xlsm", "b.xlsm"})
	require.NoError(t, err)
	require.Equal(t, 3, combined.NumRows())
	require.Equal(t, int64(3), combined.Cell(2, 0))

	_, err = ReadAndCombine(context.Background(), reader, []string{"a.xlsm", "missing.xlsm"})
	require.Error(t, err)

	canceled, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = ReadAndCombine(canceled, reader, []string{"a.xlsm"})
	require.ErrorIs(t, err, context.Canceled)
}
