package render

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/ukaji3/bookkeeper-go/pkg/bookkeeper/models"
)

// Preview writes a terminal table of rows to w.
func Preview(w io.Writer, rows []models.Row) {
	if len(rows) == 0 {
		return
	}

	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)

	columns := rows[0].Columns()
	if columns == nil {
		columns = models.GeneratedColumns(rows[0].Len(), nil)
	}
	header := make(table.Row, 0, columns.Len())
	configs := make([]table.ColumnConfig, 0, columns.Len())
	for i, name := range columns.Names() {
		header = append(header, name)
		if columns.Alignment(i) == models.AlignRight {
			configs = append(configs, table.ColumnConfig{Number: i + 1, Align: text.AlignRight})
		}
	}
	tbl.AppendHeader(header)
	tbl.SetColumnConfigs(configs)

	for _, row := range rows {
		cells := make(table.Row, row.Len())
		for i, field := range row.Fields() {
			cells[i] = field
		}
		tbl.AppendRow(cells)
	}

	tbl.AppendFooter(table.Row{"Total", len(rows)})
	tbl.Render()
}
