// Package main provides the CLI entry point for bookkeeper.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ukaji3/bookkeeper-go/pkg/bookkeeper"
	"github.com/ukaji3/bookkeeper-go/pkg/bookkeeper/render"
)

type flags struct {
	configPath string
	into       string
	line       int
	delimiter  string
	encoding   string
	ragged     string
	sheet      string
	noHeader   bool
	printArea  bool
	preview    bool
	noColor    bool
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	f := &flags{}

	rootCmd := &cobra.Command{
		Use:   "bookkeeper [file.csv|file.tsv|file.txt|file.xlsx]",
		Short: "Import CSV, TSV and XLSX files as markdown tables",
		Long: `bookkeeper parses a delimited text file (or one sheet of a workbook)
and inserts it as a markdown table into a document, or prints it to stdout.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := run(cmd, args, f, stdout, stderr)
			if err != nil {
				color.New(color.FgRed).Fprintf(stderr, "import failed: %v\n", err)
			}
			return err
		},
	}

	rootCmd.PersistentFlags().StringVarP(&f.configPath, "config", "c", "", "Config file path (default: ./bookkeeper.yaml)")
	rootCmd.Flags().StringVarP(&f.into, "into", "i", "", "Markdown file to insert into (default: stdout)")
	rootCmd.Flags().IntVarP(&f.line, "line", "l", 0, "1-based line to insert at (0: end of file)")
	rootCmd.Flags().StringVarP(&f.delimiter, "delimiter", "d", "", "Field delimiter: a character, comma, tab, semicolon or pipe")
	rootCmd.Flags().StringVar(&f.encoding, "encoding", "", "Input encoding label, e.g. utf-8, windows-1252")
	rootCmd.Flags().StringVar(&f.ragged, "ragged", "", "Rows with a deviating field count: reject or pad")
	rootCmd.Flags().StringVar(&f.sheet, "sheet", "", "Worksheet to import from an xlsx file (default: first)")
	rootCmd.Flags().BoolVar(&f.noHeader, "no-header", false, "Treat the first line as data and generate column names")
	rootCmd.Flags().BoolVar(&f.printArea, "print-area", false, "Restrict an xlsx import to the sheet's print area")
	rootCmd.Flags().BoolVar(&f.preview, "preview", false, "Print a terminal preview of the parsed rows to stderr")
	rootCmd.PersistentFlags().BoolVar(&f.noColor, "no-color", false, "Disable colored status output")

	rootCmd.AddCommand(newConfigCmd(f, stdout, stderr))

	return rootCmd
}

func newConfigCmd(f *flags, stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := printConfig(f, stdout)
			if err != nil {
				color.New(color.FgRed).Fprintf(stderr, "config failed: %v\n", err)
			}
			return err
		},
	}
}

func printConfig(f *flags, stdout io.Writer) error {
	if f.noColor {
		color.NoColor = true //nolint:reassign // library global
	}

	cfg, err := bookkeeper.LoadConfig(f.configPath)
	if err != nil {
		return err
	}
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	_, err = stdout.Write(out)
	return err
}

func run(cmd *cobra.Command, args []string, f *flags, stdout, stderr io.Writer) error {
	if f.noColor {
		color.NoColor = true //nolint:reassign // library global
	}

	cfg, err := bookkeeper.LoadConfig(f.configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, f, cfg)
	if err := bookkeeper.ValidateConfig(cfg); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	logger, err := bookkeeper.NewLogger(cfg.Logging, stderr)
	if err != nil {
		return err
	}

	var ed bookkeeper.Editor
	var doc *bookkeeper.FileDocument
	if f.into != "" {
		doc, err = bookkeeper.OpenFileDocument(f.into, f.line)
		if err != nil {
			return err
		}
		ed = doc
	} else {
		ed = bookkeeper.NewBuffer("", 0)
	}

	result, err := bookkeeper.Import(args, ed, *cfg, logger)
	if err != nil {
		if bookkeeper.IsSelectionError(err) && errors.Is(err, bookkeeper.ErrNoSelection) {
			logger.Debug("no file selected, nothing to do")
			return nil
		}
		return err
	}

	if f.preview {
		render.Preview(stderr, result.Table)
	}

	if !result.Inserted {
		color.New(color.FgYellow).Fprintf(stderr, "%s has no data rows, nothing inserted\n", result.Path)
		return nil
	}

	if doc == nil {
		_, err := fmt.Fprintln(stdout, ed.Text())
		return err
	}

	color.New(color.FgGreen).Fprintf(stderr, "Inserted %d rows x %d columns into %s\n",
		result.Rows, result.Columns, doc.Path())
	return nil
}

// applyFlags overrides configuration values with flags the user set explicitly.
func applyFlags(cmd *cobra.Command, f *flags, cfg *bookkeeper.Config) {
	changed := cmd.Flags().Changed

	if changed("delimiter") {
		cfg.Parse.Delimiter = f.delimiter
	}
	if changed("encoding") {
		cfg.Parse.Encoding = f.encoding
	}
	if changed("ragged") {
		cfg.Parse.Ragged = f.ragged
	}
	if changed("no-header") {
		cfg.Parse.Header = !f.noHeader
	}
	if changed("sheet") {
		cfg.XLSX.Sheet = f.sheet
	}
	if changed("print-area") {
		cfg.XLSX.PrintArea = f.printArea
	}
}
