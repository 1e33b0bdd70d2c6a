package utils

import (
	"strconv"
	"strings"
)

// FormatSoles formats an amount as a string like "S/ 12,500.00".
// Uses comma as thousands separator and always two decimals (Peruvian soles).
func FormatSoles(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	s := strconv.FormatFloat(amount, 'f', 2, 64)
	intPart, decPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	// Pre-allocate: digits + separators + "S/ " + decimals
	b.Grow(len(s) + len(intPart)/3 + 4)
	if neg {
		b.WriteString("-S/ ")
	} else {
		b.WriteString("S/ ")
	}

	// Insert separators from the left.
	rem := len(intPart) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(intPart[:rem])
	for i := rem; i < len(intPart); i += 3 {
		b.WriteByte(',')
		b.WriteString(intPart[i : i+3])
	}

	b.WriteByte('.')
	b.WriteString(decPart)

	return b.String()
}
