package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPieceCode(t *testing.T) {
	assert.Equal(t, "PZ-2025-000042", PieceCode(42))
	assert.Equal(t, "PZ-2025-000001", PieceCode(1))
	assert.Equal(t, "PZ-2025-1234567", PieceCode(1234567))
}

func TestParsePieceCode(t *testing.T) {
	id, ok := ParsePieceCode("PZ-2025-000042")
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)

	// A bare order id resolves identically.
	id, ok = ParsePieceCode("42")
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)

	id, ok = ParsePieceCode(" PZ-2025-000007 ")
	assert.True(t, ok)
	assert.Equal(t, int64(7), id)
}

func TestParsePieceCodeInvalid(t *testing.T) {
	for _, in := range []string{"", "PZ-2025-", "PZ-2025-abc", "abc", "PZ-2025-000000", "-5"} {
		_, ok := ParsePieceCode(in)
		assert.False(t, ok, "input %q", in)
	}
}
