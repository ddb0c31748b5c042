// Package parser turns delimited text and workbook sheets into rows.
package parser

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/ukaji3/bookkeeper-go/pkg/bookkeeper/models"
)

// Parse converts delimited text into rows.
// Quotes inside unquoted fields are kept verbatim; a quoted field left open fails with ErrQuote.
// With a header (the default) the first record names the columns and is not returned.
// Empty lines are skipped. On error no rows are returned.
func Parse(content string, opts Options) ([]models.Row, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	if err := checkQuotes(content, opts.delimiter(), opts.Comment); err != nil {
		return nil, err
	}

	r := csv.NewReader(strings.NewReader(content))
	r.Comma = opts.delimiter()
	r.Comment = opts.Comment
	r.LazyQuotes = true
	if opts.Ragged == RaggedPad {
		r.FieldsPerRecord = -1
	}

	var records [][]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, convertError(err)
		}
		records = append(records, record)
	}

	return ParseRecords(records, opts)
}

// ParseRecords builds rows from records that are already split into fields.
func ParseRecords(records [][]string, opts Options) ([]models.Row, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	records = cloneRecords(records, opts.TrimSpace)

	width := len(records[0])
	data := records
	if opts.HasHeader {
		data = records[1:]
	}

	for i, record := range data {
		if len(record) == width {
			continue
		}
		if opts.Ragged != RaggedPad {
			line := i + 1
			if opts.HasHeader {
				line++
			}
			return nil, NewParseError(line, 0, ErrFieldCount)
		}
		data[i] = fit(record, width)
	}

	var aligns []models.Alignment
	if opts.Align != AlignNone {
		aligns = detectAlignments(data, width)
	}

	var columns *models.Columns
	if opts.HasHeader {
		columns = models.NewColumns(records[0], aligns)
	} else {
		columns = models.GeneratedColumns(width, aligns)
	}

	rows := make([]models.Row, 0, len(data))
	for _, record := range data {
		rows = append(rows, models.NewRow(record, columns))
	}
	return rows, nil
}

// cloneRecords copies records so callers keep their slices, trimming fields when asked.
func cloneRecords(records [][]string, trim bool) [][]string {
	out := make([][]string, len(records))
	for i, record := range records {
		out[i] = make([]string, len(record))
		for j, field := range record {
			if trim {
				field = strings.TrimSpace(field)
			}
			out[i][j] = field
		}
	}
	return out
}

// fit pads or truncates record to width fields.
func fit(record []string, width int) []string {
	if len(record) > width {
		return record[:width]
	}
	out := make([]string, width)
	copy(out, record)
	return out
}

// convertError maps encoding/csv errors onto ParseError.
func convertError(err error) error {
	var csvErr *csv.ParseError
	if !errors.As(err, &csvErr) {
		return err
	}

	cause := csvErr.Err
	switch {
	case errors.Is(cause, csv.ErrQuote), errors.Is(cause, csv.ErrBareQuote):
		cause = ErrQuote
	case errors.Is(cause, csv.ErrFieldCount):
		cause = ErrFieldCount
	}

	line := csvErr.StartLine
	if line == 0 {
		line = csvErr.Line
	}
	return NewParseError(line, csvErr.Column, cause)
}
