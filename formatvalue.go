package sheetpdf

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// englishNumbers groups numbers English style like "1,234,567.89".
var englishNumbers = message.NewPrinter(language.English)

// FormatValue converts a raw cell value to the string
// shown in rendered output.
//
// The rules are applied in order:
//   - time.Time values are formatted as "2006-01-02"
//   - float values are comma grouped with two decimals,
//     or with no decimals when their absolute value is 1e7 or greater
//   - nil becomes an empty string
//   - everything else is formatted with fmt.Sprint
//
// Integer values are not grouped, they take the fmt.Sprint path
// like any non-float number.
//
// FormatValue is deterministic and idempotent on its own output:
// formatting an already formatted string returns it unchanged.
func FormatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case time.Time:
		return v.Format("2006-01-02")
	case float64:
		return formatFloat(v)
	case float32:
		return formatFloat(float64(v))
	default:
		return fmt.Sprint(value)
	}
}

func formatFloat(f float64) string {
	if math.Abs(f) >= 1e7 {
		return englishNumbers.Sprintf("%.0f", f)
	}
	return englishNumbers.Sprintf("%.2f", f)
}
