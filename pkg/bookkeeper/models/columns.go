package models

import "strconv"

// Alignment is the markdown alignment of a table column.
type Alignment int

const (
	// AlignDefault renders the delimiter cell as "---".
	AlignDefault Alignment = iota
	// AlignLeft renders the delimiter cell as ":---".
	AlignLeft
	// AlignRight renders the delimiter cell as "---:".
	AlignRight
)

// delimiterCell returns the GFM delimiter-row cell for the alignment.
func (a Alignment) delimiterCell() string {
	switch a {
	case AlignLeft:
		return ":---"
	case AlignRight:
		return "---:"
	default:
		return "---"
	}
}

// Columns is the column metadata shared by every Row of one parse.
type Columns struct {
	names  []string
	index  map[string]int
	aligns []Alignment
}

// NewColumns creates column metadata from header names.
// aligns may be shorter than names; missing entries default to AlignDefault.
// When a name repeats, lookups by name resolve to its first occurrence.
func NewColumns(names []string, aligns []Alignment) *Columns {
	c := &Columns{
		names:  append([]string(nil), names...),
		index:  make(map[string]int, len(names)),
		aligns: make([]Alignment, len(names)),
	}
	copy(c.aligns, aligns)
	for i, name := range names {
		if _, ok := c.index[name]; !ok {
			c.index[name] = i
		}
	}
	return c
}

// GeneratedColumns creates n columns named "Column 1" .. "Column n".
func GeneratedColumns(n int, aligns []Alignment) *Columns {
	names := make([]string, n)
	for i := range names {
		names[i] = "Column " + strconv.Itoa(i+1)
	}
	return NewColumns(names, aligns)
}

// Len returns the number of columns.
func (c *Columns) Len() int {
	return len(c.names)
}

// Names returns a copy of the column names in source order.
func (c *Columns) Names() []string {
	return append([]string(nil), c.names...)
}

// Index returns the position of the named column.
func (c *Columns) Index(name string) (int, bool) {
	i, ok := c.index[name]
	return i, ok
}

// Alignment returns the alignment of column i.
func (c *Columns) Alignment(i int) Alignment {
	if i < 0 || i >= len(c.aligns) {
		return AlignDefault
	}
	return c.aligns[i]
}

// Header renders the header line followed by the delimiter row.
// The result ends with a newline.
func (c *Columns) Header() string {
	delims := make([]string, len(c.aligns))
	for i, a := range c.aligns {
		delims[i] = a.delimiterCell()
	}
	return tableLine(c.names) + "\n" + joinCells(delims) + "\n"
}
