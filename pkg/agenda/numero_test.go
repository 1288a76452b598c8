package agenda

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeFloat(t *testing.T) {
	assert.Equal(t, 1.5, SafeFloat(1.5, 0))
	assert.Equal(t, 0.0, SafeFloat(math.NaN(), 0))
	assert.Equal(t, 8.0, SafeFloat(math.Inf(1), 8.0))
	assert.Equal(t, 8.0, SafeFloat(math.Inf(-1), 8.0))
}

func TestSafeInt(t *testing.T) {
	assert.Equal(t, 3, SafeInt(3.9, 0))
	assert.Equal(t, 7, SafeInt(math.NaN(), 7))
	assert.Equal(t, 7, SafeInt(math.Inf(1), 7))
}

func TestParseNumero(t *testing.T) {
	v, ok := ParseNumero("Slump 120,5 mm")
	require.True(t, ok)
	assert.Equal(t, 120.5, v)

	v, ok = ParseNumero("12.5")
	require.True(t, ok)
	assert.Equal(t, 12.5, v)

	v, ok = ParseNumero("25")
	require.True(t, ok)
	assert.Equal(t, 25.0, v)

	_, ok = ParseNumero("sem numero")
	assert.False(t, ok)
	_, ok = ParseNumero("")
	assert.False(t, ok)
}

func TestSomenteDigitos(t *testing.T) {
	assert.Equal(t, "12345678000190", SomenteDigitos("12.345.678/0001-90"))
	assert.Equal(t, "", SomenteDigitos("abc"))
}

func TestFmtBR(t *testing.T) {
	assert.Equal(t, "1.234,50", FmtBR(1234.5, 2, false))
	assert.Equal(t, "1.234,5", FmtBR(1234.5, 2, true))
	assert.Equal(t, "8", FmtBR(8.0, 2, true))
	assert.Equal(t, "0,00", FmtBR(0, 2, false))
	assert.Equal(t, "-1.000", FmtBR(-1000, 0, false))
	assert.Equal(t, "0", FmtBR(math.NaN(), 0, false))
}
