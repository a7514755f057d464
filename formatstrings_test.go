package sheetpdf

import (
	"context"
	"reflect"
	"testing"
)

func TestFormatTableAsStrings(t *testing.T) {
	type args struct {
		table      any
		options    []Option
		formatters *ReflectTypeCellFormatter
	}
	tests := []struct {
		name     string
		args     args
		wantRows [][]string
		wantErr  bool
	}{
		{
			name: "empty [][]string",
			args: args{
				table: [][]string{},
			},
			wantRows: nil,
		},
		{
			name: "empty []struct{}",
			args: args{
				table: []struct{}{},
			},
			wantRows: nil,
		},
		{
			name: `[][]string{{"Hello", "World", "!"}} no header`,
			args: args{
				table: [][]string{{"Hello", "World", "!"}},
			},
			wantRows: nil,
		},
		{
			name: `[][]string{{"Hello", "World", "!"}} with header`,
			args: args{
				table:   [][]string{{"Hello", "World", "!"}},
				options: []Option{OptionAddHeaderRow},
			},
			wantRows: [][]string{{"Hello", "World", "!"}},
		},
		{
			name: `multiline with header`,
			args: args{
				table: [][]string{
					{"Hello", "World", "!"},
					{"A", "B", "C"},
					{"First col only"},
				},
				options: []Option{OptionAddHeaderRow},
			},
			wantRows: [][]string{
				{"Hello", "World", "!"},
				{"A", "B", "C"},
				{"First col only", "", ""},
			},
		},
		{
			name: "[][]any first row as header",
			args: args{
				table: [][]any{
					{"N", "F"},
					{int64(1), 2.5},
					{nil, 1234567.891},
				},
				options: []Option{OptionAddHeaderRow},
			},
			wantRows: [][]string{
				{"N", "F"},
				{"1", "2.50"},
				{"", "1,234,567.89"},
			},
		},
		{
			name: "[]struct with tags",
			args: args{
				table: []struct {
					Name  string  `col:"name"`
					Score float64 `col:"score"`
					Note  string  `col:"-"`
				}{
					{Name: "Ada", Score: 1234.5, Note: "not a column"},
					{Name: "Bob", Score: 0.25},
				},
				options: []Option{OptionAddHeaderRow},
			},
			wantRows: [][]string{
				{"name", "score"},
				{"Ada", "1,234.50"},
				{"Bob", "0.25"},
			},
		},
		{
			name: "type formatter overrides default formatting",
			args: args{
				table: [][]any{
					{"F"},
					{2.5},
				},
				options:    []Option{OptionAddHeaderRow},
				formatters: NewReflectTypeCellFormatter().WithTypeFormatter(reflect.TypeOf(0.0), PrintfCellFormatter("%.3f")),
			},
			wantRows: [][]string{
				{"F"},
				{"2.500"},
			},
		},
		{
			name: "unsupported table type",
			args: args{
				table: 42,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotRows, err := FormatTableAsStrings(context.Background(), tt.args.table, tt.args.formatters, tt.args.options...)
			if (err != nil) != tt.wantErr {
				t.Errorf("FormatTableAsStrings() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(gotRows, tt.wantRows) {
				t.Errorf("FormatTableAsStrings() = %v, want %v", gotRows, tt.wantRows)
			}
		})
	}
}
