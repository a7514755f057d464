// Package main provides the sheetpdf CLI that converts the DATA
// worksheet of Excel workbooks into a single PDF table document.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/domonda/go-sheetpdf"
	"github.com/domonda/go-sheetpdf/pdftable"
	"github.com/domonda/go-sheetpdf/xlsmtable"
)

var (
	outputPath string
	styled     bool
	title      string
	sheetName  string
	configPath string
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sheetpdf [input.xlsm ...]",
		Short: "Convert the DATA sheet of Excel workbooks into a PDF table",
		Long: `sheetpdf reads the DATA worksheet of one or more workbooks (.xlsm, .xlsx),
combines them into a single table, and writes it as a landscape A4 PDF.

By default a plain banded table is produced. With --styled the cell fills,
bold and italic fonts, alignments, merged cells, and column widths of the
sheets are reproduced in the PDF.

When multiple workbooks are passed, the header row is taken from the first
one and the header rows of all further workbooks are dropped.`,
		Args: cobra.MinimumNArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "DATA_export.pdf", "Output PDF file path")
	rootCmd.Flags().BoolVar(&styled, "styled", false, "Preserve sheet styling (fills, fonts, merged cells)")
	rootCmd.Flags().StringVar(&title, "title", "", "Title above the table (default depends on --styled)")
	rootCmd.Flags().StringVar(&sheetName, "sheet", "DATA", "Name of the worksheet to read")
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML profile overriding reader and writer settings")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// profile is the YAML configuration file format.
// Values not present in the file keep their flag or preset defaults.
type profile struct {
	Reader xlsmtable.Options `yaml:"reader"`
	Writer writerProfile     `yaml:"writer"`
}

type writerProfile struct {
	Title     string   `yaml:"title"`
	FontSize  float64  `yaml:"fontSize"`
	FitToPage bool     `yaml:"fitToPage"`
	Margins   *margins `yaml:"margins"`
}

type margins struct {
	Left   float64 `yaml:"left"`
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
}

func run(cmd *cobra.Command, args []string) error {
	logger := newLogger(verbose)
	ctx := cmd.Context()

	readerOpts := xlsmtable.PlainOptions()
	if styled {
		readerOpts = xlsmtable.StyledOptions()
	}
	readerOpts.SheetName = sheetName

	prof := profile{Reader: readerOpts}
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return fmt.Errorf("error reading config %q: %w", configPath, err)
		}
		if err = yaml.Unmarshal(data, &prof); err != nil {
			return fmt.Errorf("error parsing config %q: %w", configPath, err)
		}
		logger.Debug().Str("config", configPath).Msg("loaded profile")
	}
	logger.Debug().
		Str("sheet", prof.Reader.SheetName).
		Float64("widthScale", prof.Reader.WidthScale).
		Float64("widthFallback", prof.Reader.WidthFallback).
		Bool("styled", styled).
		Msg("reader options")

	reader := xlsmtable.NewReader(prof.Reader)
	sheets := make([]*sheetpdf.SheetView, len(args))
	for i, path := range args {
		sheet, err := reader.ReadFile(ctx, path)
		if err != nil {
			return err
		}
		logger.Info().Str("file", path).Int("rows", sheet.NumRows()).Msg("read sheet")
		sheets[i] = sheet
	}
	combined := sheetpdf.CombineSheets(sheets...)

	docTitle := prof.Writer.Title
	if docTitle == "" {
		docTitle = title
	}
	if docTitle == "" {
		if styled {
			docTitle = "Combined DATA Sheets"
		} else {
			docTitle = "DATA Sheet Export"
		}
	}

	var writer *pdftable.Writer[sheetpdf.View]
	if styled {
		writer = pdftable.NewStyledWriter[sheetpdf.View]()
	} else {
		writer = pdftable.NewWriter[sheetpdf.View]()
	}
	writer = writer.WithTitle(docTitle)
	if prof.Writer.FontSize > 0 {
		writer = writer.WithFontSize(prof.Writer.FontSize)
	}
	if prof.Writer.FitToPage {
		writer = writer.WithFitToPage(true)
	}
	if m := prof.Writer.Margins; m != nil {
		writer = writer.WithMargins(m.Left, m.Top, m.Right, m.Bottom)
	}

	if err := writer.WriteViewFile(ctx, outputPath, combined); err != nil {
		return err
	}
	logger.Info().
		Str("output", outputPath).
		Int("rows", combined.NumRows()).
		Int("columns", len(combined.Columns())).
		Msg("wrote PDF")
	return nil
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
