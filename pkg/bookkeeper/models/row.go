// Package models defines the records produced by an import.
package models

// Row represents one parsed record of delimited text.
type Row struct {
	// fields holds the values in source column order.
	fields []string
	// columns is shared by every Row of the same parse.
	columns *Columns
}

// NewRow creates a Row over a copy of fields.
func NewRow(fields []string, columns *Columns) Row {
	return Row{
		fields:  append([]string(nil), fields...),
		columns: columns,
	}
}

// Fields returns a copy of the field values.
func (r Row) Fields() []string {
	return append([]string(nil), r.fields...)
}

// Len returns the number of fields.
func (r Row) Len() int {
	return len(r.fields)
}

// At returns the field at position i, or "" when out of range.
func (r Row) At(i int) string {
	if i < 0 || i >= len(r.fields) {
		return ""
	}
	return r.fields[i]
}

// Field returns the value of the named column.
func (r Row) Field(name string) (string, bool) {
	if r.columns == nil {
		return "", false
	}
	i, ok := r.columns.Index(name)
	if !ok || i >= len(r.fields) {
		return "", false
	}
	return r.fields[i], true
}

// Columns returns the shared column metadata.
func (r Row) Columns() *Columns {
	return r.columns
}

// Header renders the markdown table header for the row's columns.
// Rows without column metadata fall back to generated names.
func (r Row) Header() string {
	if r.columns == nil {
		return GeneratedColumns(len(r.fields), nil).Header()
	}
	return r.columns.Header()
}

// ToMarkdown renders the row as one markdown table line without a trailing newline.
func (r Row) ToMarkdown() string {
	return tableLine(r.fields)
}
