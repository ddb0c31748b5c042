package parser

import (
	"errors"
	"fmt"

	"github.com/ukaji3/bookkeeper-go/pkg/bookkeeper/models"
	"github.com/xuri/excelize/v2"
)

// ErrSheetNotFound indicates the requested worksheet does not exist.
var ErrSheetNotFound = errors.New("sheet not found")

// XLSXOptions selects what part of a workbook becomes records.
type XLSXOptions struct {
	// Sheet is the worksheet name. Empty selects the first sheet.
	Sheet string
	// UsePrintArea restricts records to the sheet's first print area, if it has one.
	UsePrintArea bool
}

// ReadXLSX returns the records of one worksheet.
// Records are trimmed to the bounding box of non-empty cells and padded to equal width.
func ReadXLSX(path string, opts XLSXOptions) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readSheet(f, opts)
}

func readSheet(f *excelize.File, opts XLSXOptions) ([][]string, error) {
	sheetName := opts.Sheet
	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, nil
		}
		sheetName = sheets[0]
	} else if idx, _ := f.GetSheetIndex(sheetName); idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrSheetNotFound, sheetName)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	if opts.UsePrintArea {
		areas, err := ExtractPrintAreas(f)
		if err != nil {
			return nil, err
		}
		if list := areas[sheetName]; len(list) > 0 && list[0].Valid() {
			rows = clipToArea(rows, list[0])
		}
	}

	return trimToBounds(rows), nil
}

// clipToArea keeps only the cells inside area (1-based, inclusive).
func clipToArea(rows [][]string, area models.PrintArea) [][]string {
	var out [][]string
	for rowIdx := area.R1 - 1; rowIdx < area.R2 && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		var clipped []string
		for colIdx := area.C1 - 1; colIdx < area.C2 && colIdx < len(row); colIdx++ {
			clipped = append(clipped, row[colIdx])
		}
		out = append(out, clipped)
	}
	return out
}

// trimToBounds cuts rows down to the bounding box of non-empty cells.
// Empty rows inside the box are dropped and every record has the box width.
func trimToBounds(rows [][]string) [][]string {
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return nil
	}

	width := maxCol - minCol + 1
	var out [][]string
	for rowIdx := minRow; rowIdx <= maxRow; rowIdx++ {
		row := rows[rowIdx]
		record := make([]string, width)
		hasData := false
		for colIdx := minCol; colIdx <= maxCol && colIdx < len(row); colIdx++ {
			record[colIdx-minCol] = row[colIdx]
			if row[colIdx] != "" {
				hasData = true
			}
		}
		if hasData {
			out = append(out, record)
		}
	}
	return out
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}
