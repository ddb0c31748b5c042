package parser

import (
	"strings"

	"github.com/ukaji3/bookkeeper-go/pkg/bookkeeper/models"
	"github.com/xuri/excelize/v2"
)

// ExtractPrintAreas extracts print areas from a workbook.
// Returns a map of sheet name to list of print areas.
func ExtractPrintAreas(f *excelize.File) (map[string][]models.PrintArea, error) {
	result := make(map[string][]models.PrintArea)

	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, "_xlnm.Print_Area") {
			continue
		}
		sheetName, areas := parsePrintAreaReference(dn.RefersTo)
		if sheetName == "" {
			sheetName = dn.Scope
		}
		if sheetName != "" && len(areas) > 0 {
			result[sheetName] = append(result[sheetName], areas...)
		}
	}

	return result, nil
}

// parsePrintAreaReference parses a print area reference string.
// Format: 'SheetName'!$A$1:$D$10 or SheetName!$A$1:$D$10, comma separated.
func parsePrintAreaReference(ref string) (string, []models.PrintArea) {
	var areas []models.PrintArea
	var sheetName string

	for _, part := range strings.Split(strings.TrimPrefix(ref, "="), ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		idx := strings.LastIndex(part, "!")
		if idx < 0 {
			continue
		}
		if sheetName == "" {
			sheetName = strings.ReplaceAll(strings.Trim(part[:idx], "'"), "''", "'")
		}
		if area := parseRangeToArea(part[idx+1:]); area != nil {
			areas = append(areas, *area)
		}
	}

	return sheetName, areas
}

// parseRangeToArea parses a range string like $A$1:$D$10 to PrintArea.
func parseRangeToArea(rangeStr string) *models.PrintArea {
	parts := strings.Split(strings.ReplaceAll(rangeStr, "$", ""), ":")
	if len(parts) != 2 {
		return nil
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return nil
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return nil
	}

	return &models.PrintArea{
		R1: startRow,
		C1: startCol,
		R2: endRow,
		C2: endCol,
	}
}
