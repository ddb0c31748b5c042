package bookkeeper

import (
	"errors"
	"fmt"

	"github.com/ukaji3/bookkeeper-go/pkg/bookkeeper/parser"
)

// ErrNoSelection indicates that no file was chosen.
var ErrNoSelection = errors.New("no file selected")

// ErrMultipleFiles indicates more than one file was chosen.
var ErrMultipleFiles = errors.New("only one file can be imported at a time")

// ErrUnsupportedType indicates a file extension that cannot be imported.
var ErrUnsupportedType = errors.New("unsupported file type")

// ErrFileTooLarge indicates the selected file exceeds the configured size limit.
var ErrFileTooLarge = errors.New("file too large")

// ParseError is returned for malformed delimited content.
type ParseError = parser.ParseError

// SelectionError represents a file selection that cannot be imported.
// Callers usually abort silently on it.
type SelectionError struct {
	Path string
	Err  error
}

func (e *SelectionError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("selection error: %v", e.Err)
	}
	return fmt.Sprintf("selection error for %q: %v", e.Path, e.Err)
}

func (e *SelectionError) Unwrap() error {
	return e.Err
}

// NewSelectionError creates a new SelectionError.
func NewSelectionError(path string, err error) *SelectionError {
	return &SelectionError{
		Path: path,
		Err:  err,
	}
}

// IsSelectionError reports whether err is a SelectionError.
func IsSelectionError(err error) bool {
	var selErr *SelectionError
	return errors.As(err, &selErr)
}
