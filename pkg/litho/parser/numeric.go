package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatNumeric normalizes a raw numeric-or-text cell value into its
// canonical display form: a plain integer when the value is mathematically
// integral, otherwise two decimal places with trailing zeros stripped
// ("12.50" becomes "12.5", "12.00" becomes "12"). Text that does not parse
// as a number survives verbatim so labels like "N/A" pass through.
func FormatNumeric(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return ""
	}

	number, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(number, 0) || math.IsNaN(number) {
		return text
	}

	if number == math.Trunc(number) {
		if math.Abs(number) < 1<<53 {
			return strconv.FormatInt(int64(number), 10)
		}
		return strconv.FormatFloat(number, 'f', -1, 64)
	}

	formatted := strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", number), "0"), ".")
	if formatted == "" {
		return text
	}
	return formatted
}
