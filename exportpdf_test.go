package sheetpdf_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/domonda/go-sheetpdf"
	"github.com/domonda/go-sheetpdf/pdftable"
	"github.com/domonda/go-sheetpdf/xlsmtable"
)

// writeDataWorkbook writes a workbook with a single DATA sheet
// holding the passed rows and returns its file path.
func writeDataWorkbook(t *testing.T, name string, rows [][]any, build func(f *excelize.File)) string {
	t.Helper()

	f := excelize.NewFile()
	_, err := f.NewSheet("DATA")
	require.NoError(t, err)
	require.NoError(t, f.DeleteSheet("Sheet1"))
	for i, row := range rows {
		cellName, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("DATA", cellName, &row))
	}
	if build != nil {
		build(f)
	}
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

// The whole styled export pipeline:
// two workbooks are read, combined into one table,
// and rendered as a PDF document.
func TestExportCombinedWorkbooksAsPDF(t *testing.T) {
	ctx := context.Background()

	pathA := writeDataWorkbook(t, "a.xlsm", [][]any{
		{"Name", "Amount", "Valid"},
		{"first", 1234.5, true},
		{"second", nil, false},
	}, nil)
	pathB := writeDataWorkbook(t, "b.xlsm", [][]any{
		{"Name", "Amount", "Valid"},
		{"third"},
	}, func(f *excelize.File) {
		require.NoError(t, f.MergeCell("DATA", "A1", "B1"))
		require.NoError(t, f.MergeCell("DATA", "A2", "B2"))
	})

	reader := xlsmtable.NewReader(xlsmtable.StyledOptions())
	combined, err := sheetpdf.ReadAndCombine(ctx, reader, []string{pathA, pathB})
	require.NoError(t, err)

	require.Equal(t, "DATA", combined.Title())
	require.Equal(t, []string{"Name", "Amount", "Valid"}, combined.Columns())
	require.Equal(t, 3, combined.NumRows())
	require.Equal(t, "first", combined.Cell(0, 0))
	require.Equal(t, "third", combined.Cell(2, 0))
	// the header merge of the second workbook is dropped,
	// its data row merge is shifted below the first workbook's rows
	require.Equal(t, []sheetpdf.MergeRange{
		{StartCol: 0, StartRow: 3, EndCol: 1, EndRow: 3},
	}, combined.Merges)

	dest := new(bytes.Buffer)
	err = pdftable.NewStyledWriter[any]().
		WithTitle("Combined DATA Sheets").
		WriteView(ctx, dest, combined)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(dest.String(), "%PDF-"))
}

// A sheet with a large and a larger amount:
// values below ten million keep two decimals,
// values from ten million on are formatted without decimals.
func TestExportExampleSheet(t *testing.T) {
	ctx := context.Background()

	path := writeDataWorkbook(t, "example.xlsm", [][]any{
		{"Name", "Amount"},
		{"A", 1234567.891},
	}, func(f *excelize.File) {
		require.NoError(t, f.SetCellValue("DATA", "A3", "B"))
		// a raw numeric with a decimal point reads back as float64
		require.NoError(t, f.SetCellDefault("DATA", "B3", "12345678.0"))
	})

	view, err := xlsmtable.ReadFile(ctx, path, xlsmtable.PlainOptions())
	require.NoError(t, err)
	require.Equal(t, 1234567.891, view.Cell(0, 1))
	require.Equal(t, 12345678.0, view.Cell(1, 1))

	rows, err := sheetpdf.FormatViewAsStrings(ctx, view, nil, sheetpdf.OptionAddHeaderRow)
	require.NoError(t, err)
	require.Equal(t, [][]string{
		{"Name", "Amount"},
		{"A", "1,234,567.89"},
		{"B", "12,345,678"},
	}, rows)

	dest := new(bytes.Buffer)
	err = pdftable.NewWriter[any]().WriteView(ctx, dest, view)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(dest.String(), "%PDF-"))
}

// A workbook without a DATA sheet aborts the export
// before any output is produced.
func TestExportMissingSheet(t *testing.T) {
	ctx := context.Background()

	f := excelize.NewFile()
	path := filepath.Join(t.TempDir(), "nodata.xlsm")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	outPath := filepath.Join(t.TempDir(), "out.pdf")
	reader := xlsmtable.NewReader(xlsmtable.PlainOptions())
	combined, err := sheetpdf.ReadAndCombine(ctx, reader, []string{path})
	var notFound *xlsmtable.SheetNotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "DATA", notFound.Sheet)
	require.Equal(t, path, notFound.Path)
	require.Nil(t, combined)
	require.NoFileExists(t, outPath)
}

// The plain export pipeline for a single workbook
// written to a PDF file.
func TestExportWorkbookAsPDFFile(t *testing.T) {
	ctx := context.Background()

	path := writeDataWorkbook(t, "report.xlsm", [][]any{
		{"Invoice", "Amount"},
		{"A-1", 1234.5},
		{"A-2", 0.25},
	}, nil)

	view, err := xlsmtable.ReadFile(ctx, path, xlsmtable.PlainOptions())
	require.NoError(t, err)
	require.Equal(t, "DATA", view.Title())

	pdfPath := filepath.Join(t.TempDir(), "report.pdf")
	err = pdftable.NewWriter[any]().
		WithTitle("DATA Sheet Export").
		WriteViewFile(ctx, pdfPath, view)
	require.NoError(t, err)

	data, err := os.ReadFile(pdfPath)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "%PDF-"))
}
