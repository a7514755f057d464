package sheetpdf

import (
	"fmt"
	"reflect"
)

var _ Viewer = new(StructRowsViewer)

// StructRowsViewer implements Viewer for tables
// represented by a slice or array of structs.
type StructRowsViewer struct {
	// StructFieldNaming defines how struct fields
	// are mapped to column titles
	StructFieldNaming
	// MapIndices maps from the index of a flattened exported
	// struct field to the column index of the resulting view.
	// If MapIndices is nil, then no mapping will be performed.
	// Map to the index -1 to not create a column for a struct field.
	// Mapped indices that collide with an earlier mapping or lie
	// outside the resulting columns fall back to the next free index.
	MapIndices map[int]int
}

func (viewer *StructRowsViewer) String() string {
	return fmt.Sprintf("StructRowsViewer{%s}", viewer.StructFieldNaming.String())
}

// NewView returns a View with the passed title
// for a table that must be a slice or array of structs.
func (viewer *StructRowsViewer) NewView(title string, table any) (View, error) {
	rows := reflect.ValueOf(table)
	for rows.Kind() == reflect.Pointer && !rows.IsNil() {
		rows = rows.Elem()
	}
	if rows.Kind() != reflect.Slice && rows.Kind() != reflect.Array {
		return nil, fmt.Errorf("table must be a slice or array but is %T", table)
	}
	structType := rows.Type().Elem()
	if structType.Kind() == reflect.Pointer {
		structType = structType.Elem()
	}
	if structType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("row type must be a struct but is %s", structType)
	}

	structFields := StructFieldTypes(structType)
	indices := make([]int, len(structFields))
	fieldColumn := make([]string, len(structFields))

	// First decide which fields get a column at all.
	// The placeholder index len(structFields) marks fields
	// that still need a column index.
	numCols := 0
	for i, structField := range structFields {
		column := viewer.StructFieldColumn(structField)
		mappedIndex, hasMappedIndex := viewer.MapIndices[i]
		if column == viewer.Ignore || (hasMappedIndex && mappedIndex < 0) {
			indices[i] = -1
			continue
		}
		fieldColumn[i] = column
		indices[i] = len(structFields)
		numCols++
	}

	// Explicitly mapped fields keep their column index
	// unless it collides with an earlier mapping
	columnIndexUsed := make([]bool, numCols)
	for i := range structFields {
		if indices[i] < 0 {
			continue
		}
		mappedIndex, ok := viewer.MapIndices[i]
		if ok && mappedIndex < numCols && !columnIndexUsed[mappedIndex] {
			indices[i] = mappedIndex
			columnIndexUsed[mappedIndex] = true
		}
	}

	// The remaining fields fill up the free column indices in field order
	nextFreeColumnIndex := func() int {
		for index, used := range columnIndexUsed {
			if !used {
				return index
			}
		}
		panic("nextFreeColumnIndex should always find a free column index")
	}
	columns := make([]string, numCols)
	for i := range structFields {
		if indices[i] < 0 {
			continue
		}
		if indices[i] >= numCols {
			indices[i] = nextFreeColumnIndex()
			columnIndexUsed[indices[i]] = true
		}
		columns[indices[i]] = fieldColumn[i]
	}

	return NewStructRowsView(title, columns, indices, rows), nil
}

func (viewer *StructRowsViewer) WithTag(tag string) *StructRowsViewer {
	mod := viewer.clone()
	mod.Tag = tag
	return mod
}

func (viewer *StructRowsViewer) WithIgnore(ignore string) *StructRowsViewer {
	mod := viewer.clone()
	mod.Ignore = ignore
	return mod
}

func (viewer *StructRowsViewer) WithIgnoreUntagged() *StructRowsViewer {
	mod := viewer.clone()
	mod.Untagged = UseTitle(viewer.Ignore)
	return mod
}

func (viewer *StructRowsViewer) WithMapIndex(fieldIndex, columnIndex int) *StructRowsViewer {
	mod := viewer.clone()
	mod.MapIndices = make(map[int]int, len(viewer.MapIndices)+1)
	for i, j := range viewer.MapIndices {
		mod.MapIndices[i] = j
	}
	mod.MapIndices[fieldIndex] = columnIndex
	return mod
}

func (viewer *StructRowsViewer) WithIgnoreIndex(fieldIndex int) *StructRowsViewer {
	return viewer.WithMapIndex(fieldIndex, -1)
}

func (viewer *StructRowsViewer) WithMapIndices(mapIndices map[int]int) *StructRowsViewer {
	mod := viewer.clone()
	mod.MapIndices = mapIndices
	return mod
}

func (viewer *StructRowsViewer) clone() *StructRowsViewer {
	mod := new(StructRowsViewer)
	*mod = *viewer
	return mod
}
