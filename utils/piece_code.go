package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// PieceCodePrefix is the fixed prefix of synthesized piece codes.
const PieceCodePrefix = "PZ-2025-"

// PieceCode derives the display identifier for an order: the fixed prefix
// followed by the order id zero-padded to 6 digits. The code is never
// persisted, only derived.
func PieceCode(orderID int64) string {
	return fmt.Sprintf("%s%06d", PieceCodePrefix, orderID)
}

// ParsePieceCode resolves an order id from either a full piece code
// ("PZ-2025-000042") or a bare numeric order id ("42"). The numeric suffix
// after the last hyphen is what counts. Returns 0 and false when nothing
// numeric can be extracted.
func ParsePieceCode(code string) (int64, bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return 0, false
	}

	last := code
	if idx := strings.LastIndex(code, "-"); idx >= 0 {
		last = code[idx+1:]
	}

	n, err := strconv.ParseInt(last, 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
