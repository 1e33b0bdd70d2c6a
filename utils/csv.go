package utils

import (
	"strconv"
	"strings"
)

// EscapeCSV quotes a single CSV cell when needed: values containing a quote,
// comma, or newline are wrapped in double quotes with inner quotes doubled.
// Everything else passes through untouched.
func EscapeCSV(value string) string {
	if strings.ContainsAny(value, "\",\n") {
		return "\"" + strings.ReplaceAll(value, "\"", "\"\"") + "\""
	}
	return value
}

// BuildCSV renders a fixed header row plus data rows into CSV text.
// Each cell is escaped individually; rows are joined with newlines.
func BuildCSV(header []string, rows [][]string) string {
	var b strings.Builder

	writeRow := func(cells []string) {
		for i, cell := range cells {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(EscapeCSV(cell))
		}
	}

	writeRow(header)
	for _, row := range rows {
		b.WriteByte('\n')
		writeRow(row)
	}

	return b.String()
}

// FormatNumber renders a numeric cell the way the reports expect: integral
// values without a decimal part, everything else with full precision.
func FormatNumber(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatDecimal renders a currency or rate value with exactly two decimals.
func FormatDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
