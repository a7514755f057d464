package pdftable

import "fmt"

// RenderError is returned when a table cannot be laid out on
// the page or the PDF document could not be produced.
type RenderError struct {
	Cause error
}

func (e *RenderError) Error() string {
	return "error rendering PDF table: " + e.Cause.Error()
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

func renderErrorf(format string, args ...any) *RenderError {
	return &RenderError{Cause: fmt.Errorf(format, args...)}
}
