package xlsmtable

import "github.com/xuri/excelize/v2"

// isDateStyle reports whether the number format of a cell style
// formats numeric values as dates, datetimes, or times,
// meaning the raw cell value is an Excel date serial number.
func isDateStyle(style *excelize.Style) bool {
	if isBuiltInDateFormatID(style.NumFmt) {
		return true
	}
	return style.CustomNumFmt != nil && hasDateFormatTokens(*style.CustomNumFmt)
}

// isBuiltInDateFormatID reports whether id is a built-in Excel
// numFmtId that represents a date, datetime, or time format.
//
// The recognized IDs follow ECMA-376 §18.8.30:
//
//	14–22   date and time formats
//	27–36   locale-specific CJK date formats
//	45–47   elapsed-time / seconds formats
//	50–58   locale-specific CJK date formats (variant set)
func isBuiltInDateFormatID(id int) bool {
	switch {
	case id >= 14 && id <= 22:
		return true
	case id >= 27 && id <= 36:
		return true
	case id >= 45 && id <= 47:
		return true
	case id >= 50 && id <= 58:
		return true
	}
	return false
}

// hasDateFormatTokens scans a custom number-format string for
// date/time token characters outside double-quoted literals
// and outside square-bracket sections.
//
// d, m, y, h, and s are always date/time tokens there.
// e is the Japanese era token unless preceded by a digit
// placeholder 0, #, ?, or . which makes it a scientific-notation
// exponent marker instead.
func hasDateFormatTokens(formatStr string) bool {
	inDoubleQuote := false
	inBracket := false
	var prev rune
	for _, ch := range formatStr {
		switch {
		case inDoubleQuote:
			if ch == '"' {
				inDoubleQuote = false
			}
		case inBracket:
			if ch == ']' {
				inBracket = false
			}
		case ch == '"':
			inDoubleQuote = true
		case ch == '[':
			inBracket = true
		case ch == 'd' || ch == 'D' ||
			ch == 'm' || ch == 'M' ||
			ch == 'y' || ch == 'Y' ||
			ch == 'h' || ch == 'H' ||
			ch == 's' || ch == 'S':
			return true
		case ch == 'e' || ch == 'E':
			if prev != '0' && prev != '#' && prev != '?' && prev != '.' {
				return true
			}
		}
		if !inDoubleQuote && !inBracket {
			prev = ch
		}
	}
	return false
}
