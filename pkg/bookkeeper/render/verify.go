package render

import (
	"errors"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// ErrInvalidFragment indicates rendered markdown that does not parse as the expected table.
var ErrInvalidFragment = errors.New("invalid markdown fragment")

// TableShape describes a GFM table found in a markdown document.
type TableShape struct {
	Columns int
	Rows    int
}

var tableEngine = goldmark.New(goldmark.WithExtensions(extension.Table))

// Inspect parses markdown and returns the shape of every table in document order.
func Inspect(src []byte) ([]TableShape, error) {
	doc := tableEngine.Parser().Parse(text.NewReader(src))

	var shapes []TableShape
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case east.KindTable:
			shapes = append(shapes, TableShape{})
		case east.KindTableHeader:
			shapes[len(shapes)-1].Columns = n.ChildCount()
		case east.KindTableRow:
			shapes[len(shapes)-1].Rows++
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk markdown: %w", err)
	}
	return shapes, nil
}

// Verify checks that fragment is exactly one table with the given number of
// columns and body rows.
func Verify(fragment string, columns, rows int) error {
	shapes, err := Inspect([]byte(fragment))
	if err != nil {
		return err
	}
	if len(shapes) != 1 {
		return fmt.Errorf("%w: found %d tables", ErrInvalidFragment, len(shapes))
	}
	got := shapes[0]
	if got.Columns != columns || got.Rows != rows {
		return fmt.Errorf("%w: got %dx%d table, expected %dx%d",
			ErrInvalidFragment, got.Rows, got.Columns, rows, columns)
	}
	return nil
}
