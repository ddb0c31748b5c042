package bookkeeper

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferInsert(t *testing.T) {
	t.Parallel()

	buf := NewBuffer("hello world", 5)
	require.Equal(t, 5, buf.Cursor())

	require.NoError(t, buf.Insert(buf.Cursor(), ","))
	assert.Equal(t, "hello, world", buf.Text())
	assert.Equal(t, 6, buf.Cursor())

	assert.ErrorIs(t, buf.Insert(100, "x"), ErrCursorOutOfRange)
	assert.Equal(t, "hello, world", buf.Text())
}

func TestNewBufferClampsCursor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3, NewBuffer("abc", -1).Cursor())
	assert.Equal(t, 3, NewBuffer("abc", 10).Cursor())
}

func TestLineOffset(t *testing.T) {
	t.Parallel()

	content := "one\ntwo\nthree"

	tests := []struct {
		line     int
		expected int
	}{
		{0, len(content)},
		{1, 0},
		{2, 4},
		{3, 8},
		{4, len(content)},
		{-2, len(content)},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, lineOffset(content, tt.line), "line %d", tt.line)
	}
}

func TestFileDocumentInsert(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "note.md")
	require.NoError(t, os.WriteFile(path, []byte("# Title\nText\n"), 0o600))

	doc, err := OpenFileDocument(path, 2)
	require.NoError(t, err)
	assert.Equal(t, 8, doc.Cursor())

	require.NoError(t, doc.Insert(doc.Cursor(), "inserted\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Title\ninserted\nText\n", string(data))
	assert.Equal(t, string(data), doc.Text())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFileDocumentCreatesMissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "new.md")

	doc, err := OpenFileDocument(path, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Cursor())
	assert.Equal(t, path, doc.Path())

	require.NoError(t, doc.Insert(0, "| a |\n| --- |\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "| a |\n| --- |\n", string(data))
}

func TestSeparate(t *testing.T) {
	t.Parallel()

	const table = "| a |\n| --- |\n| 1 |"

	tests := []struct {
		name     string
		doc      string
		offset   int
		expected string
	}{
		{"empty document", "", 0, table},
		{"after blank line", "intro\n\n", 7, table},
		{"after line end", "intro\n", 6, "\n" + table},
		{"mid line", "intro", 5, "\n\n" + table},
		{"before text", "outro\n", 0, table + "\n\n"},
		{"before newline", "intro\n\nmore", 6, "\n" + table + "\n"},
		{"before final newline", "intro\n", 5, "\n\n" + table},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, separate(tt.doc, tt.offset, table), tt.name)
	}
}
