package sheetpdf

import (
	"testing"
	"time"
)

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "nil", value: nil, want: ""},
		{name: "empty string", value: "", want: ""},
		{name: "string", value: "Hello", want: "Hello"},
		{name: "int", value: 42, want: "42"},
		{name: "large int not grouped", value: int64(1234567), want: "1234567"},
		{name: "bool", value: true, want: "true"},
		{name: "float zero", value: float64(0), want: "0.00"},
		{name: "float two decimals", value: 1234.5, want: "1,234.50"},
		{name: "float grouped", value: 1234567.891, want: "1,234,567.89"},
		{name: "negative float", value: -0.5, want: "-0.50"},
		{name: "float32", value: float32(2.5), want: "2.50"},
		{name: "ten million drops decimals", value: 1e7, want: "10,000,000"},
		{name: "below ten million keeps decimals", value: 9999999.99, want: "9,999,999.99"},
		{name: "big float rounded", value: 12345678.9, want: "12,345,679"},
		{name: "big negative float", value: -12345678.0, want: "-12,345,678"},
		{name: "time", value: time.Date(2024, 3, 17, 15, 4, 5, 0, time.UTC), want: "2024-03-17"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatValue(tt.value); got != tt.want {
				t.Errorf("FormatValue(%#v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestFormatValueIdempotent(t *testing.T) {
	values := []any{nil, "", 1234567.891, 12345678.9, 42, time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC)}
	for _, value := range values {
		once := FormatValue(value)
		if twice := FormatValue(once); twice != once {
			t.Errorf("FormatValue(%q) = %q, want unchanged", once, twice)
		}
	}
}
