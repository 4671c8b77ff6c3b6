package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumeric(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"12.00", "12"},
		{"12.50", "12.5"},
		{"12.34", "12.34"},
		{"", ""},
		{"   ", ""},
		{"N/A", "N/A"},
		{"0-5", "0-5"},
		{"10", "10"},
		{"7.0", "7"},
		{"3.14159", "3.14"},
		{" 8.10 ", "8.1"},
		{"0.001", "0"},
		{"-2.5", "-2.5"},
		{"-3.00", "-3"},
		{"1e2", "100"},
		{"0", "0"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatNumeric(tt.input), "FormatNumeric(%q)", tt.input)
	}
}

func TestFormatNumericNeverLeavesTrailingZeros(t *testing.T) {
	inputs := []string{"0", "1.0", "1.10", "2.00", "2.50", "99.90", "-4.20", "1234567.00"}

	for _, input := range inputs {
		got := FormatNumeric(input)
		assert.False(t, strings.HasSuffix(got, ".0"), "FormatNumeric(%q) = %q has a trailing .0", input, got)
		assert.False(t, strings.HasSuffix(got, "."), "FormatNumeric(%q) = %q has a trailing dot", input, got)
		if dot := strings.IndexByte(got, '.'); dot >= 0 {
			assert.LessOrEqual(t, len(got)-dot-1, 2, "FormatNumeric(%q) = %q has more than two decimals", input, got)
		}
	}
}
