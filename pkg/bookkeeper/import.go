package bookkeeper

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/ukaji3/bookkeeper-go/pkg/bookkeeper/models"
	"github.com/ukaji3/bookkeeper-go/pkg/bookkeeper/parser"
	"github.com/ukaji3/bookkeeper-go/pkg/bookkeeper/render"
)

// AcceptedExtensions lists the file types a selection may contain.
var AcceptedExtensions = []string{".csv", ".txt", ".tsv", ".xlsx"}

// Result describes a finished import.
type Result struct {
	// Path is the imported file.
	Path string
	// Rows is the number of data rows parsed.
	Rows int
	// Columns is the number of columns per row.
	Columns int
	// Inserted reports whether the document was modified.
	Inserted bool
	// Text is the fragment that was inserted, without separating blank lines.
	Text string
	// Table holds the parsed rows.
	Table []models.Row
}

// Import reads the single selected file, renders it as a markdown table and
// inserts the table into ed at its cursor.
// A file without data rows leaves ed untouched and is not an error.
func Import(selection []string, ed Editor, cfg Config, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	path, err := selectFile(selection)
	if err != nil {
		return nil, err
	}

	rows, err := ReadRows(path, cfg, logger)
	if err != nil {
		return nil, err
	}

	result := &Result{Path: path, Rows: len(rows), Table: rows}
	if len(rows) == 0 {
		logger.Info("nothing to import", "file", filepath.Base(path))
		return result, nil
	}
	result.Columns = rows[0].Len()

	text := render.Fragment(rows)
	if cfg.Import.Verify {
		if err := render.Verify(text, result.Columns, result.Rows); err != nil {
			return nil, err
		}
	}
	result.Text = text

	offset := ed.Cursor()
	if cfg.Import.Separate {
		text = separate(ed.Text(), offset, text)
	}
	if err := ed.Insert(offset, text); err != nil {
		return nil, fmt.Errorf("insert table: %w", err)
	}
	result.Inserted = true

	logger.Info("imported table",
		"file", filepath.Base(path),
		"rows", result.Rows,
		"columns", result.Columns,
		"offset", offset,
	)
	return result, nil
}

// ReadRows reads and parses the file at path.
func ReadRows(path string, cfg Config, logger *slog.Logger) ([]models.Row, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}

	limit, err := cfg.MaxFileBytes()
	if err != nil {
		return nil, err
	}
	if limit > 0 && uint64(info.Size()) > limit {
		return nil, fmt.Errorf("%w: %s exceeds %s", ErrFileTooLarge,
			humanize.Bytes(uint64(info.Size())), humanize.Bytes(limit))
	}

	logger.Debug("reading file",
		"file", filepath.Base(path),
		"size", humanize.Bytes(uint64(info.Size())),
	)

	opts, err := cfg.ParserOptions(path)
	if err != nil {
		return nil, err
	}

	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		records, err := parser.ReadXLSX(path, cfg.XLSXOptions())
		if err != nil {
			return nil, fmt.Errorf("read workbook: %w", err)
		}
		return parser.ParseRecords(records, opts)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}

	content, err := parser.Decode(data, cfg.Parse.Encoding)
	if err != nil {
		return nil, err
	}

	return parser.Parse(content, opts)
}

func selectFile(selection []string) (string, error) {
	switch len(selection) {
	case 0:
		return "", NewSelectionError("", ErrNoSelection)
	case 1:
	default:
		return "", NewSelectionError("", ErrMultipleFiles)
	}

	path := selection[0]
	if strings.TrimSpace(path) == "" {
		return "", NewSelectionError("", ErrNoSelection)
	}
	if !Accepts(path) {
		return "", NewSelectionError(path, ErrUnsupportedType)
	}
	return path, nil
}

// Accepts reports whether path has an importable extension.
func Accepts(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, accepted := range AcceptedExtensions {
		if ext == accepted {
			return true
		}
	}
	return false
}

// separate pads text with blank lines so it forms its own block inside doc.
func separate(doc string, offset int, text string) string {
	if offset < 0 || offset > len(doc) {
		return text
	}
	before, after := doc[:offset], doc[offset:]

	switch {
	case before == "", strings.HasSuffix(before, "\n\n"):
	case strings.HasSuffix(before, "\n"):
		if before != "\n" {
			text = "\n" + text
		}
	default:
		text = "\n\n" + text
	}

	switch {
	case after == "":
	case strings.HasPrefix(after, "\n\n"), after == "\n":
	case strings.HasPrefix(after, "\n"):
		text += "\n"
	default:
		text += "\n\n"
	}

	return text
}
