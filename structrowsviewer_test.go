package sheetpdf

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStructRowsViewer_NewView(t *testing.T) {
	type Row struct {
		ID     int     `col:"ID"`
		Name   string  `col:"Name"`
		Amount float64 `col:"Amount"`
		Secret string  `col:"-"`
	}
	table := []Row{
		{ID: 1, Name: "first", Amount: 1.5, Secret: "a"},
		{ID: 2, Name: "second", Amount: 2.5, Secret: "b"},
	}

	t.Run("tagged struct slice", func(t *testing.T) {
		view, err := DefaultStructRowsViewer.NewView("Rows", table)
		require.NoError(t, err)
		require.Equal(t, "Rows", view.Title())
		require.Equal(t, []string{"ID", "Name", "Amount"}, view.Columns())
		require.Equal(t, 2, view.NumRows())
		require.Equal(t, 1, view.Cell(0, 0))
		require.Equal(t, "second", view.Cell(1, 1))
		require.Equal(t, 2.5, view.Cell(1, 2))
		require.Nil(t, view.Cell(0, 3), "the ignored field is not a column")
		require.Nil(t, view.Cell(2, 0), "row out of range")
		require.Nil(t, view.Cell(-1, 0))
	})

	t.Run("pointer to table", func(t *testing.T) {
		view, err := DefaultStructRowsViewer.NewView("", &table)
		require.NoError(t, err)
		require.Equal(t, 2, view.NumRows())
		require.Equal(t, "first", view.Cell(0, 1))
	})

	t.Run("array of structs", func(t *testing.T) {
		view, err := DefaultStructRowsViewer.NewView("", [1]Row{{ID: 3}})
		require.NoError(t, err)
		require.Equal(t, 1, view.NumRows())
		require.Equal(t, 3, view.Cell(0, 0))
	})

	t.Run("slice of struct pointers", func(t *testing.T) {
		view, err := DefaultStructRowsViewer.NewView("", []*Row{{ID: 4, Name: "ptr"}})
		require.NoError(t, err)
		require.Equal(t, "ptr", view.Cell(0, 1))
	})

	t.Run("untagged fields", func(t *testing.T) {
		type Untagged struct {
			UserName string
			Born     time.Time
		}
		view, err := DefaultStructRowsViewer.NewView("", []Untagged{{UserName: "u"}})
		require.NoError(t, err)
		require.Equal(t, []string{"User Name", "Born"}, view.Columns())
	})

	t.Run("MapIndices swap", func(t *testing.T) {
		viewer := DefaultStructRowsViewer.WithMapIndices(map[int]int{0: 1, 1: 0})
		view, err := viewer.NewView("", table)
		require.NoError(t, err)
		require.Equal(t, []string{"Name", "ID", "Amount"}, view.Columns())
		require.Equal(t, "first", view.Cell(0, 0))
		require.Equal(t, 1, view.Cell(0, 1))
		require.Equal(t, 1.5, view.Cell(0, 2))
	})

	t.Run("WithIgnoreIndex", func(t *testing.T) {
		viewer := DefaultStructRowsViewer.WithIgnoreIndex(1)
		view, err := viewer.NewView("", table)
		require.NoError(t, err)
		require.Equal(t, []string{"ID", "Amount"}, view.Columns())
		require.Equal(t, 1.5, view.Cell(0, 1))
	})

	t.Run("collision falls back to free index", func(t *testing.T) {
		viewer := DefaultStructRowsViewer.WithMapIndices(map[int]int{0: 2, 1: 2})
		view, err := viewer.NewView("", table)
		require.NoError(t, err)
		require.Equal(t, []string{"Name", "Amount", "ID"}, view.Columns())
		require.Equal(t, "first", view.Cell(0, 0))
	})

	t.Run("errors", func(t *testing.T) {
		_, err := DefaultStructRowsViewer.NewView("", 42)
		require.Error(t, err)
		_, err = DefaultStructRowsViewer.NewView("", []int{1})
		require.Error(t, err)
	})

	t.Run("ReflectCell", func(t *testing.T) {
		view, err := DefaultStructRowsViewer.NewView("", table)
		require.NoError(t, err)
		rv := AsReflectCellView(view).ReflectCell(0, 2)
		require.True(t, rv.IsValid())
		require.Equal(t, 1.5, rv.Interface())
		// Alternate between rows to exercise the row value cache
		require.Equal(t, "second", view.Cell(1, 1))
		require.Equal(t, "first", view.Cell(0, 1))
	})
}

func TestNewStructRowsView(t *testing.T) {
	rows := reflect.ValueOf([]struct{ A, B int }{{A: 1, B: 2}})

	view := NewStructRowsView("T", []string{"A", "B"}, []int{0, 1}, rows)
	require.Equal(t, "T", view.Title())
	require.Equal(t, 1, view.Cell(0, 0))
	require.Equal(t, 2, view.Cell(0, 1))

	require.Panics(t, func() {
		NewStructRowsView("", []string{"A"}, nil, reflect.ValueOf(42))
	}, "rows must be a slice or array")
	require.Panics(t, func() {
		NewStructRowsView("", []string{"A", "B"}, []int{0, 5}, rows)
	}, "index out of range")
	require.Panics(t, func() {
		NewStructRowsView("", []string{"A", "B"}, []int{0, 0}, rows)
	}, "column mapped twice")
	require.Panics(t, func() {
		NewStructRowsView("", []string{"A", "B"}, []int{0, -1}, rows)
	}, "unmapped column")
}
