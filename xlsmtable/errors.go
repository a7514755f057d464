package xlsmtable

import "fmt"

// SheetNotFoundError is returned by ReadFile when the workbook
// at Path does not contain a sheet named Sheet.
type SheetNotFoundError struct {
	Path  string
	Sheet string
}

func (e *SheetNotFoundError) Error() string {
	return fmt.Sprintf("no %q sheet found in %q", e.Sheet, e.Path)
}
