package parser

import (
	"testing"

	"github.com/ukaji3/bookkeeper-go/pkg/bookkeeper/models"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"hello", "hello"},
		{"", ""},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %v (type: %T), expected %v (type: %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}

func TestDetectAlignments(t *testing.T) {
	records := [][]string{
		{"Alice", "30", "", "1.5"},
		{"Bob", " 25 ", "", "n/a"},
		{"Carol", "", "", "2"},
	}

	expected := []models.Alignment{
		models.AlignDefault,
		models.AlignRight,
		models.AlignDefault,
		models.AlignDefault,
	}

	result := detectAlignments(records, 4)
	for i := range expected {
		if result[i] != expected[i] {
			t.Errorf("column %d: got alignment %v, expected %v", i, result[i], expected[i])
		}
	}
}
