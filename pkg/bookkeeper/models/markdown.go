package models

import "strings"

var cellEscaper = strings.NewReplacer(
	`\`, `\\`,
	"|", `\|`,
	"\r\n", "<br>",
	"\n", "<br>",
	"\r", "<br>",
)

// EscapeCell makes a value safe to place inside a GFM table cell.
func EscapeCell(s string) string {
	return cellEscaper.Replace(s)
}

// tableLine renders escaped values as a single table line.
func tableLine(values []string) string {
	cells := make([]string, len(values))
	for i, v := range values {
		cells[i] = EscapeCell(v)
	}
	return joinCells(cells)
}

func joinCells(cells []string) string {
	if len(cells) == 0 {
		return "|"
	}
	return "| " + strings.Join(cells, " | ") + " |"
}
