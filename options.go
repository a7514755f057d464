package sheetpdf

import "strings"

// Option is a bit flag for configuring
// table formatting operations.
type Option int

const (
	// OptionAddHeaderRow adds the column titles
	// as first row of the formatted output.
	OptionAddHeaderRow Option = 1 << iota
)

func (o Option) Has(option Option) bool {
	return o&option != 0
}

func (o Option) String() string {
	var b strings.Builder
	if o.Has(OptionAddHeaderRow) {
		if b.Len() > 0 {
			b.WriteString("|")
		}
		b.WriteString("AddHeaderRow")
	}
	if b.Len() == 0 {
		return "no Option"
	}
	return b.String()
}

// HasOption returns true if any of the passed
// options has the queried option flag set.
func HasOption(options []Option, option Option) bool {
	for _, o := range options {
		if o.Has(option) {
			return true
		}
	}
	return false
}
