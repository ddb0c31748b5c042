package parser

import (
	"strconv"
	"strings"

	"github.com/ukaji3/bookkeeper-go/pkg/bookkeeper/models"
)

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}

// isNumeric reports whether s holds an integer or decimal number.
func isNumeric(s string) bool {
	_, ok := parseValue(strings.TrimSpace(s)).(string)
	return !ok
}

// detectAlignments right-aligns every column whose non-empty values are all numeric.
// Columns without any value keep the default alignment.
func detectAlignments(records [][]string, width int) []models.Alignment {
	aligns := make([]models.Alignment, width)
	for col := 0; col < width; col++ {
		seen := false
		numeric := true
		for _, record := range records {
			if col >= len(record) || strings.TrimSpace(record[col]) == "" {
				continue
			}
			seen = true
			if !isNumeric(record[col]) {
				numeric = false
				break
			}
		}
		if seen && numeric {
			aligns[col] = models.AlignRight
		}
	}
	return aligns
}
