package bookkeeper

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrCursorOutOfRange indicates an insertion offset outside the document.
var ErrCursorOutOfRange = errors.New("cursor out of range")

// Editor is a document that accepts text at a cursor.
type Editor interface {
	// Cursor returns the byte offset where imported text goes.
	Cursor() int
	// Text returns the current document content.
	Text() string
	// Insert places text at offset in a single step.
	Insert(offset int, text string) error
}

// Buffer is an in-memory Editor.
type Buffer struct {
	content string
	cursor  int
}

// NewBuffer creates a Buffer holding content with the cursor at offset.
// A negative offset places the cursor at the end.
func NewBuffer(content string, offset int) *Buffer {
	if offset < 0 || offset > len(content) {
		offset = len(content)
	}
	return &Buffer{content: content, cursor: offset}
}

// Cursor returns the cursor offset.
func (b *Buffer) Cursor() int { return b.cursor }

// Text returns the buffer content.
func (b *Buffer) Text() string { return b.content }

// Insert places text at offset and moves the cursor past it.
func (b *Buffer) Insert(offset int, text string) error {
	content, err := insertAt(b.content, offset, text)
	if err != nil {
		return err
	}
	b.content = content
	b.cursor = offset + len(text)
	return nil
}

// FileDocument is an Editor backed by a file on disk.
// Every Insert rewrites the file atomically.
type FileDocument struct {
	path    string
	mode    fs.FileMode
	content string
	cursor  int
}

// OpenFileDocument loads path, creating an empty document when the file does not exist.
// line is the 1-based line the cursor starts on; 0 or a line past the end places
// the cursor at the end of the file.
func OpenFileDocument(path string, line int) (*FileDocument, error) {
	doc := &FileDocument{path: path, mode: 0o644}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		doc.content = string(data)
		if info, statErr := os.Stat(path); statErr == nil {
			doc.mode = info.Mode().Perm()
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("open document: %w", err)
	}

	doc.cursor = lineOffset(doc.content, line)
	return doc, nil
}

// Path returns the file path.
func (d *FileDocument) Path() string { return d.path }

// Cursor returns the cursor offset.
func (d *FileDocument) Cursor() int { return d.cursor }

// Text returns the document content.
func (d *FileDocument) Text() string { return d.content }

// Insert places text at offset and writes the file.
func (d *FileDocument) Insert(offset int, text string) error {
	content, err := insertAt(d.content, offset, text)
	if err != nil {
		return err
	}
	if err := writeFileAtomic(d.path, []byte(content), d.mode); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	d.content = content
	d.cursor = offset + len(text)
	return nil
}

func insertAt(content string, offset int, text string) (string, error) {
	if offset < 0 || offset > len(content) {
		return "", fmt.Errorf("%w: %d (document has %d bytes)", ErrCursorOutOfRange, offset, len(content))
	}
	return content[:offset] + text + content[offset:], nil
}

// lineOffset returns the byte offset of the start of a 1-based line.
func lineOffset(content string, line int) int {
	if line <= 0 {
		return len(content)
	}
	offset := 0
	for i := 1; i < line; i++ {
		next := strings.IndexByte(content[offset:], '\n')
		if next < 0 {
			return len(content)
		}
		offset += next + 1
	}
	return offset
}

func writeFileAtomic(path string, data []byte, mode fs.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
