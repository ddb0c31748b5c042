// Package bookkeeper imports CSV, TSV and XLSX files as markdown tables.
package bookkeeper

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"

	"github.com/ukaji3/bookkeeper-go/pkg/bookkeeper/parser"
)

// Sentinel validation errors.
var (
	ErrInvalidDelimiter = errors.New("invalid delimiter")
	ErrInvalidRagged    = errors.New("ragged policy must be reject or pad")
	ErrInvalidAlign     = errors.New("align must be auto or none")
	ErrInvalidLevel     = errors.New("invalid log level")
	ErrInvalidFormat    = errors.New("log format must be json or text")
	ErrInvalidSize      = errors.New("invalid max file size")
)

// Config holds all import settings.
type Config struct {
	Parse   ParseConfig   `mapstructure:"parse" yaml:"parse"`
	XLSX    XLSXConfig    `mapstructure:"xlsx" yaml:"xlsx"`
	Import  ImportConfig  `mapstructure:"import" yaml:"import"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// ParseConfig configures delimited text parsing.
type ParseConfig struct {
	// Delimiter overrides the extension-derived delimiter.
	// Accepts a single character or one of comma, tab, semicolon, pipe.
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	// Comment is a single character starting ignored lines.
	Comment   string `mapstructure:"comment" yaml:"comment"`
	Encoding  string `mapstructure:"encoding" yaml:"encoding"`
	Ragged    string `mapstructure:"ragged" yaml:"ragged"`
	Align     string `mapstructure:"align" yaml:"align"`
	Header    bool   `mapstructure:"header" yaml:"header"`
	TrimSpace bool   `mapstructure:"trim_space" yaml:"trim_space"`
}

// XLSXConfig configures workbook imports.
type XLSXConfig struct {
	Sheet     string `mapstructure:"sheet" yaml:"sheet"`
	PrintArea bool   `mapstructure:"print_area" yaml:"print_area"`
}

// ImportConfig configures the import flow.
type ImportConfig struct {
	// MaxFileSize is a human readable limit such as "10MB". Empty means unlimited.
	MaxFileSize string `mapstructure:"max_file_size" yaml:"max_file_size"`
	// Verify re-parses the rendered table before inserting it.
	Verify bool `mapstructure:"verify" yaml:"verify"`
	// Separate surrounds the table with blank lines when the cursor sits inside text.
	Separate bool `mapstructure:"separate" yaml:"separate"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Parse: ParseConfig{
			Encoding: defaultEncoding,
			Ragged:   string(parser.RaggedReject),
			Align:    string(parser.AlignAuto),
			Header:   true,
		},
		Import: ImportConfig{
			MaxFileSize: defaultMaxFileSize,
			Verify:      true,
			Separate:    true,
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}

// ParserOptions resolves parser options for the file at path.
func (c Config) ParserOptions(path string) (parser.Options, error) {
	opts := parser.Options{
		Delimiter: parser.DelimiterFor(path),
		HasHeader: c.Parse.Header,
		TrimSpace: c.Parse.TrimSpace,
		Ragged:    parser.RaggedPolicy(c.Parse.Ragged),
		Align:     parser.AlignMode(c.Parse.Align),
	}

	if c.Parse.Delimiter != "" {
		d, err := parseDelimiter(c.Parse.Delimiter)
		if err != nil {
			return opts, err
		}
		opts.Delimiter = d
	}

	if c.Parse.Comment != "" {
		r, size := utf8.DecodeRuneInString(c.Parse.Comment)
		if size != len(c.Parse.Comment) {
			return opts, fmt.Errorf("%w: comment %q", ErrInvalidDelimiter, c.Parse.Comment)
		}
		opts.Comment = r
	}

	return opts, nil
}

// XLSXOptions returns the workbook options.
func (c Config) XLSXOptions() parser.XLSXOptions {
	return parser.XLSXOptions{
		Sheet:        c.XLSX.Sheet,
		UsePrintArea: c.XLSX.PrintArea,
	}
}

// MaxFileBytes returns the size limit in bytes, 0 when unlimited.
func (c Config) MaxFileBytes() (uint64, error) {
	if strings.TrimSpace(c.Import.MaxFileSize) == "" {
		return 0, nil
	}
	n, err := humanize.ParseBytes(c.Import.MaxFileSize)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidSize, c.Import.MaxFileSize)
	}
	return n, nil
}

func parseDelimiter(s string) (rune, error) {
	switch strings.ToLower(s) {
	case "comma":
		return ',', nil
	case "tab", `\t`:
		return '\t', nil
	case "semicolon":
		return ';', nil
	case "pipe":
		return '|', nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) || r == utf8.RuneError {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDelimiter, s)
	}
	return r, nil
}
