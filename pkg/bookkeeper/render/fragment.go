// Package render turns parsed rows into markdown and checks the result.
package render

import (
	"strings"

	"github.com/ukaji3/bookkeeper-go/pkg/bookkeeper/models"
)

// Fragment renders the header of the first row followed by every row, one per line.
// It returns "" for no rows.
func Fragment(rows []models.Row) string {
	if len(rows) == 0 {
		return ""
	}

	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = row.ToMarkdown()
	}
	return rows[0].Header() + strings.Join(lines, "\n")
}
