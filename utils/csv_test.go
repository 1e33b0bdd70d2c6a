package utils

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeCSV(t *testing.T) {
	assert.Equal(t, "plain", EscapeCSV("plain"))
	assert.Equal(t, "\"a,b\"", EscapeCSV("a,b"))
	assert.Equal(t, "\"say \"\"hi\"\"\"", EscapeCSV("say \"hi\""))
	assert.Equal(t, "\"line\nbreak\"", EscapeCSV("line\nbreak"))
	assert.Equal(t, "", EscapeCSV(""))
}

func TestBuildCSVRoundTrip(t *testing.T) {
	header := []string{"Cliente", "Especie", "Total"}
	rows := [][]string{
		{"Comercial \"Don Pedro\", S.A.C.", "VACUNO", "21859.24"},
		{"Linea\nDos", "PORCINO", "0.00"},
		{"Normal", "OVINO", "12.50"},
	}

	out := BuildCSV(header, rows)

	// Parsing the encoded text back must reproduce every field exactly,
	// including values containing commas, quotes, and newlines.
	parsed, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, parsed, 4)
	assert.Equal(t, header, parsed[0])
	for i, row := range rows {
		assert.Equal(t, row, parsed[i+1])
	}
}

func TestBuildCSVHeaderOnly(t *testing.T) {
	out := BuildCSV([]string{"A", "B"}, nil)
	assert.Equal(t, "A,B", out)
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "1250", FormatNumber(1250))
	assert.Equal(t, "1250.5", FormatNumber(1250.5))
	assert.Equal(t, "0", FormatNumber(0))
}

func TestFormatDecimal(t *testing.T) {
	assert.Equal(t, "18.40", FormatDecimal(18.4))
	assert.Equal(t, "0.00", FormatDecimal(0))
	assert.Equal(t, "21859.24", FormatDecimal(21859.239999))
}

func TestFormatSoles(t *testing.T) {
	assert.Equal(t, "S/ 0.00", FormatSoles(0))
	assert.Equal(t, "S/ 950.50", FormatSoles(950.5))
	assert.Equal(t, "S/ 12,500.00", FormatSoles(12500))
	assert.Equal(t, "S/ 1,234,567.89", FormatSoles(1234567.89))
	assert.Equal(t, "-S/ 1,500.25", FormatSoles(-1500.25))
}
