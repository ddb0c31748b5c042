package parser

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// RaggedPolicy decides what happens to records whose field count differs from the header.
type RaggedPolicy string

const (
	// RaggedReject fails the parse with ErrFieldCount.
	RaggedReject RaggedPolicy = "reject"
	// RaggedPad pads short records with empty fields and truncates long ones.
	RaggedPad RaggedPolicy = "pad"
)

// AlignMode selects how column alignment is derived.
type AlignMode string

const (
	// AlignAuto right-aligns columns whose non-empty values are all numeric.
	AlignAuto AlignMode = "auto"
	// AlignNone leaves every column at the default alignment.
	AlignNone AlignMode = "none"
)

// Options configures parsing.
type Options struct {
	// Delimiter separates fields. Zero means comma.
	Delimiter rune
	// Comment starts a line that is ignored. Zero disables comments.
	Comment rune
	// HasHeader treats the first record as column names.
	HasHeader bool
	// TrimSpace removes surrounding whitespace from every field.
	TrimSpace bool
	// Ragged is the policy for records with a deviating field count.
	Ragged RaggedPolicy
	// Align selects column alignment detection.
	Align AlignMode
}

// DefaultOptions returns comma-separated parsing with a header row.
func DefaultOptions() Options {
	return Options{
		Delimiter: ',',
		HasHeader: true,
		Ragged:    RaggedReject,
		Align:     AlignAuto,
	}
}

// DelimiterFor returns the delimiter implied by a file extension.
// Unknown extensions fall back to comma.
func DelimiterFor(path string) rune {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsv":
		return '\t'
	default:
		return ','
	}
}

func (o Options) delimiter() rune {
	if o.Delimiter == 0 {
		return ','
	}
	return o.Delimiter
}

func (o Options) validate() error {
	d := o.delimiter()
	if !validRune(d) {
		return fmt.Errorf("%w: %q", ErrInvalidDelimiter, d)
	}
	if o.Comment != 0 && (!validRune(o.Comment) || o.Comment == d) {
		return fmt.Errorf("%w: comment %q", ErrInvalidDelimiter, o.Comment)
	}
	switch o.Ragged {
	case "", RaggedReject, RaggedPad:
	default:
		return fmt.Errorf("unknown ragged policy: %s", o.Ragged)
	}
	return nil
}

func validRune(r rune) bool {
	return r != '"' && r != '\r' && r != '\n' && utf8.ValidRune(r) && r != utf8.RuneError
}
