package sheetpdf

import (
	"context"
	"errors"
	"fmt"
	"reflect"
)

// Ensure that ReflectTypeCellFormatter implements CellFormatter
var _ CellFormatter = new(ReflectTypeCellFormatter)

// ReflectTypeCellFormatter selects a CellFormatter based on the
// reflected type, implemented interface, or kind of a cell value.
//
// The matching hierarchy is:
//  1. exact type match via Types
//  2. implemented interface match via InterfaceTypes
//  3. reflect.Kind match via Kinds
//  4. steps 1-3 repeated for the dereferenced type of pointer cells
//  5. the Default formatter
//
// A formatter returning a wrapped errors.ErrUnsupported error passes
// matching on to the next step. Without any match and without a
// Default, errors.ErrUnsupported is returned so that
// ReflectTypeCellFormatter can be used within formatter chains.
//
// The With* methods implement an immutable builder pattern,
// they return a modified copy and leave the receiver unchanged.
// A nil ReflectTypeCellFormatter is a valid empty formatter.
type ReflectTypeCellFormatter struct {
	Types          map[reflect.Type]CellFormatter
	InterfaceTypes map[reflect.Type]CellFormatter
	Kinds          map[reflect.Kind]CellFormatter
	Default        CellFormatter
}

// NewReflectTypeCellFormatter creates a new empty ReflectTypeCellFormatter.
func NewReflectTypeCellFormatter() *ReflectTypeCellFormatter {
	return new(ReflectTypeCellFormatter)
}

// FormatCell implements CellFormatter by routing to the formatter
// registered for the cell value's type, interface, or kind.
func (f *ReflectTypeCellFormatter) FormatCell(ctx context.Context, view View, row, col int) (str string, raw bool, err error) {
	if f == nil {
		return "", false, errors.ErrUnsupported
	}
	if err = ctx.Err(); err != nil {
		return "", false, err
	}
	cellVal := AsReflectCellView(view).ReflectCell(row, col)
	if !cellVal.IsValid() {
		return "", false, errors.ErrUnsupported
	}
	cellType := cellVal.Type()
	if typeFmt, ok := f.Types[cellType]; ok {
		str, raw, err := typeFmt.FormatCell(ctx, view, row, col)
		if !errors.Is(err, errors.ErrUnsupported) {
			return str, raw, err
		}
		// Continue after errors.ErrUnsupported
	}
	for interfaceType, interfaceFmt := range f.InterfaceTypes {
		if cellType.Implements(interfaceType) {
			str, raw, err := interfaceFmt.FormatCell(ctx, view, row, col)
			if !errors.Is(err, errors.ErrUnsupported) {
				return str, raw, err
			}
			// Continue after errors.ErrUnsupported
		}
	}
	if kindFmt, ok := f.Kinds[cellType.Kind()]; ok {
		str, raw, err := kindFmt.FormatCell(ctx, view, row, col)
		if !errors.Is(err, errors.ErrUnsupported) {
			return str, raw, err
		}
		// Continue after errors.ErrUnsupported
	}
	// If a pointer type had no direct formatter
	// check if the dereferenced value type has one
	if cellType.Kind() == reflect.Pointer && !cellVal.IsNil() {
		derefCellType := cellType.Elem()
		if typeFmt, ok := f.Types[derefCellType]; ok {
			str, raw, err := typeFmt.FormatCell(ctx, DerefView(view), row, col)
			if !errors.Is(err, errors.ErrUnsupported) {
				return str, raw, err
			}
			// Continue after errors.ErrUnsupported
		}
		for interfaceType, interfaceFmt := range f.InterfaceTypes {
			if derefCellType.Implements(interfaceType) {
				str, raw, err := interfaceFmt.FormatCell(ctx, DerefView(view), row, col)
				if !errors.Is(err, errors.ErrUnsupported) {
					return str, raw, err
				}
				// Continue after errors.ErrUnsupported
			}
		}
		if kindFmt, ok := f.Kinds[derefCellType.Kind()]; ok {
			str, raw, err := kindFmt.FormatCell(ctx, DerefView(view), row, col)
			if !errors.Is(err, errors.ErrUnsupported) {
				return str, raw, err
			}
			// Continue after errors.ErrUnsupported
		}
	}
	if f.Default != nil {
		return f.Default.FormatCell(ctx, view, row, col)
	}
	return "", false, errors.ErrUnsupported
}

// WithTypeFormatter returns a copy of the formatter with fmt
// registered for the exact type typ.
func (f *ReflectTypeCellFormatter) WithTypeFormatter(typ reflect.Type, fmt CellFormatter) *ReflectTypeCellFormatter {
	mod := f.cloneOrNew()
	if mod.Types == nil {
		mod.Types = make(map[reflect.Type]CellFormatter)
	}
	mod.Types[typ] = fmt
	return mod
}

// WithInterfaceTypeFormatter returns a copy of the formatter with fmt
// registered for cell types that implement the interface type typ.
func (f *ReflectTypeCellFormatter) WithInterfaceTypeFormatter(typ reflect.Type, fmt CellFormatter) *ReflectTypeCellFormatter {
	mod := f.cloneOrNew()
	if mod.InterfaceTypes == nil {
		mod.InterfaceTypes = make(map[reflect.Type]CellFormatter)
	}
	mod.InterfaceTypes[typ] = fmt
	return mod
}

// WithKindFormatter returns a copy of the formatter with fmt
// registered for cell types of the passed reflect.Kind.
func (f *ReflectTypeCellFormatter) WithKindFormatter(kind reflect.Kind, fmt CellFormatter) *ReflectTypeCellFormatter {
	mod := f.cloneOrNew()
	if mod.Kinds == nil {
		mod.Kinds = make(map[reflect.Kind]CellFormatter)
	}
	mod.Kinds[kind] = fmt
	return mod
}

// WithDefaultFormatter returns a copy of the formatter with fmt
// as fallback for cells that no other formatter matched.
func (f *ReflectTypeCellFormatter) WithDefaultFormatter(fmt CellFormatter) *ReflectTypeCellFormatter {
	mod := f.cloneOrNew()
	mod.Default = fmt
	return mod
}

func (f *ReflectTypeCellFormatter) cloneOrNew() *ReflectTypeCellFormatter {
	if f == nil {
		return new(ReflectTypeCellFormatter)
	}
	c := &ReflectTypeCellFormatter{Default: f.Default}
	if len(f.Types) > 0 {
		c.Types = make(map[reflect.Type]CellFormatter, len(f.Types))
		for key, val := range f.Types {
			c.Types[key] = val
		}
	}
	if len(f.InterfaceTypes) > 0 {
		c.InterfaceTypes = make(map[reflect.Type]CellFormatter, len(f.InterfaceTypes))
		for key, val := range f.InterfaceTypes {
			c.InterfaceTypes[key] = val
		}
	}
	if len(f.Kinds) > 0 {
		c.Kinds = make(map[reflect.Kind]CellFormatter, len(f.Kinds))
		for key, val := range f.Kinds {
			c.Kinds[key] = val
		}
	}
	return c
}

// ReflectCellFormatterFunc converts a formatting function into a
// CellFormatterFunc and returns the reflect.Type of the cell values
// that the function formats, usable for registering the formatter
// with ReflectTypeCellFormatter.WithTypeFormatter.
//
// Accepted function signatures are:
//
//	func(cellValue V) string
//	func(cellValue V) (string, error)
//	func(ctx context.Context, cellValue V) string
//	func(ctx context.Context, cellValue V) (string, error)
func ReflectCellFormatterFunc(function any, rawResult bool) (formatter CellFormatterFunc, cellType reflect.Type, err error) {
	funcVal := reflect.ValueOf(function)
	if !funcVal.IsValid() || funcVal.Kind() != reflect.Func {
		return nil, nil, fmt.Errorf("expected formatter function, got %T", function)
	}
	funcType := funcVal.Type()

	hasCtxArg := funcType.NumIn() > 0 && funcType.In(0) == typeOfContext
	cellArg := 0
	if hasCtxArg {
		cellArg = 1
	}
	if funcType.NumIn() != cellArg+1 {
		return nil, nil, fmt.Errorf("formatter function needs exactly one cell value argument: %s", funcType)
	}
	cellType = funcType.In(cellArg)

	switch funcType.NumOut() {
	case 1:
		if funcType.Out(0) != typeOfString {
			return nil, nil, fmt.Errorf("formatter function must return a string: %s", funcType)
		}
	case 2:
		if funcType.Out(0) != typeOfString || funcType.Out(1) != typeOfError {
			return nil, nil, fmt.Errorf("formatter function must return (string, error): %s", funcType)
		}
	default:
		return nil, nil, fmt.Errorf("formatter function must return a string or (string, error): %s", funcType)
	}

	formatter = func(ctx context.Context, view View, row, col int) (string, bool, error) {
		cellVal := AsReflectCellView(view).ReflectCell(row, col)
		if !cellVal.IsValid() {
			return "", false, fmt.Errorf("%w: formatter for %s got invalid cell value", errors.ErrUnsupported, cellType)
		}
		if cellVal.Type() != cellType {
			if !cellVal.Type().ConvertibleTo(cellType) {
				return "", false, fmt.Errorf("%w: formatter for %s got cell of type %s", errors.ErrUnsupported, cellType, cellVal.Type())
			}
			cellVal = cellVal.Convert(cellType)
		}
		args := make([]reflect.Value, 0, 2)
		if hasCtxArg {
			args = append(args, reflect.ValueOf(ctx))
		}
		args = append(args, cellVal)
		results := funcVal.Call(args)
		if len(results) == 2 && !results[1].IsNil() {
			return "", false, results[1].Interface().(error)
		}
		return results[0].String(), rawResult, nil
	}
	return formatter, cellType, nil
}
