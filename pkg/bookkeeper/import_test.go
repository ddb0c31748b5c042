package bookkeeper_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/bookkeeper-go/pkg/bookkeeper"
	"github.com/ukaji3/bookkeeper-go/pkg/bookkeeper/parser"
	"github.com/ukaji3/bookkeeper-go/pkg/bookkeeper/render"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestImport(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "people.csv", "name,age\nAlice,30\nBob,25")
	buf := bookkeeper.NewBuffer("", 0)

	result, err := bookkeeper.Import([]string{path}, buf, bookkeeper.DefaultConfig(), nil)
	require.NoError(t, err)

	expected := "| name | age |\n| --- | ---: |\n| Alice | 30 |\n| Bob | 25 |"
	assert.Equal(t, expected, buf.Text())
	assert.Equal(t, expected, result.Text)
	assert.True(t, result.Inserted)
	assert.Equal(t, 2, result.Rows)
	assert.Equal(t, 2, result.Columns)
	assert.Equal(t, path, result.Path)

	require.Len(t, result.Table, 2)
	assert.Equal(t, []string{"Bob", "25"}, result.Table[1].Fields())
}

func TestImportBareQuote(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "parts.csv", "item,size\n12\" pipe,3\n")
	buf := bookkeeper.NewBuffer("", 0)

	_, err := bookkeeper.Import([]string{path}, buf, bookkeeper.DefaultConfig(), nil)
	require.NoError(t, err)
	assert.Equal(t, "| item | size |\n| --- | ---: |\n| 12\" pipe | 3 |", buf.Text())
}

func TestImportBackslashPipe(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "paths.csv", "path\nx\\|y\n")
	buf := bookkeeper.NewBuffer("", 0)

	_, err := bookkeeper.Import([]string{path}, buf, bookkeeper.DefaultConfig(), nil)
	require.NoError(t, err)
	assert.Equal(t, "| path |\n| --- |\n| x\\\\\\|y |", buf.Text())
}

func TestImportTSV(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "people.tsv", "name\tnote\nAlice\ta, b\n")
	buf := bookkeeper.NewBuffer("", 0)

	_, err := bookkeeper.Import([]string{path}, buf, bookkeeper.DefaultConfig(), nil)
	require.NoError(t, err)

	assert.Equal(t, "| name | note |\n| --- | --- |\n| Alice | a, b |", buf.Text())
}

func TestImportIntoDocument(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "people.csv", "name,age\nAlice,30\n")
	notePath := writeFile(t, "note.md", "# Title\nText\n")

	doc, err := bookkeeper.OpenFileDocument(notePath, 2)
	require.NoError(t, err)

	_, err = bookkeeper.Import([]string{path}, doc, bookkeeper.DefaultConfig(), nil)
	require.NoError(t, err)

	data, err := os.ReadFile(notePath)
	require.NoError(t, err)
	assert.Equal(t, "# Title\n\n| name | age |\n| --- | ---: |\n| Alice | 30 |\n\nText\n", string(data))

	shapes, err := render.Inspect(data)
	require.NoError(t, err)
	assert.Equal(t, []render.TableShape{{Columns: 2, Rows: 1}}, shapes)
}

func TestImportVerbatim(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "people.csv", "name\nAlice\n")
	buf := bookkeeper.NewBuffer("before", 6)

	cfg := bookkeeper.DefaultConfig()
	cfg.Import.Separate = false

	_, err := bookkeeper.Import([]string{path}, buf, cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, "before| name |\n| --- |\n| Alice |", buf.Text())
}

func TestImportSelectionErrors(t *testing.T) {
	t.Parallel()

	csvPath := writeFile(t, "a.csv", "x\n1\n")

	tests := []struct {
		name      string
		selection []string
		expected  error
	}{
		{"nil selection", nil, bookkeeper.ErrNoSelection},
		{"empty selection", []string{}, bookkeeper.ErrNoSelection},
		{"blank path", []string{" "}, bookkeeper.ErrNoSelection},
		{"two files", []string{csvPath, csvPath}, bookkeeper.ErrMultipleFiles},
		{"wrong type", []string{"data.json"}, bookkeeper.ErrUnsupportedType},
	}

	for _, tt := range tests {
		buf := bookkeeper.NewBuffer("keep", 4)

		result, err := bookkeeper.Import(tt.selection, buf, bookkeeper.DefaultConfig(), nil)
		assert.Nil(t, result, tt.name)
		assert.True(t, bookkeeper.IsSelectionError(err), tt.name)
		assert.ErrorIs(t, err, tt.expected, tt.name)
		assert.Equal(t, "keep", buf.Text(), tt.name)
	}
}

func TestImportEmptyIsNoOp(t *testing.T) {
	t.Parallel()

	for _, content := range []string{"", "name,age\n", "\n\n"} {
		path := writeFile(t, "empty.csv", content)
		buf := bookkeeper.NewBuffer("keep", 4)

		result, err := bookkeeper.Import([]string{path}, buf, bookkeeper.DefaultConfig(), nil)
		require.NoError(t, err)
		assert.False(t, result.Inserted)
		assert.Zero(t, result.Rows)
		assert.Equal(t, "keep", buf.Text())
	}
}

func TestImportParseError(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "bad.csv", "a,\"b\n1,2")
	buf := bookkeeper.NewBuffer("", 0)

	result, err := bookkeeper.Import([]string{path}, buf, bookkeeper.DefaultConfig(), nil)
	assert.Nil(t, result)

	var parseErr *bookkeeper.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 1, parseErr.Line)
	assert.ErrorIs(t, err, parser.ErrQuote)
	assert.False(t, bookkeeper.IsSelectionError(err))
	assert.Empty(t, buf.Text())
}

func TestImportFileTooLarge(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "big.csv", "name,age\nAlice,30\nBob,25\n")

	cfg := bookkeeper.DefaultConfig()
	cfg.Import.MaxFileSize = "10B"

	_, err := bookkeeper.Import([]string{path}, bookkeeper.NewBuffer("", 0), cfg, nil)
	assert.ErrorIs(t, err, bookkeeper.ErrFileTooLarge)
}

func TestImportMissingFile(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "missing.csv")

	_, err := bookkeeper.Import([]string{missing}, bookkeeper.NewBuffer("", 0), bookkeeper.DefaultConfig(), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestImportWindows1252(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "menu.csv", "item\ncaf\xe9\n")

	cfg := bookkeeper.DefaultConfig()
	cfg.Parse.Encoding = "windows-1252"

	buf := bookkeeper.NewBuffer("", 0)
	_, err := bookkeeper.Import([]string{path}, buf, cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, "| item |\n| --- |\n| café |", buf.Text())
}

func TestImportXLSX(t *testing.T) {
	t.Parallel()

	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "name"))
	require.NoError(t, f.SetCellValue("Sheet1", "B1", "age"))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", "Alice"))
	require.NoError(t, f.SetCellValue("Sheet1", "B2", 30))

	path := filepath.Join(t.TempDir(), "people.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	buf := bookkeeper.NewBuffer("", 0)
	result, err := bookkeeper.Import([]string{path}, buf, bookkeeper.DefaultConfig(), nil)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Rows)
	assert.Equal(t, "| name | age |\n| --- | ---: |\n| Alice | 30 |", buf.Text())
}

func TestAccepts(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"a.csv", "a.txt", "a.tsv", "a.xlsx", "A.CSV"} {
		assert.True(t, bookkeeper.Accepts(path), path)
	}
	for _, path := range []string{"a.json", "a", "a.xls"} {
		assert.False(t, bookkeeper.Accepts(path), path)
	}
}
