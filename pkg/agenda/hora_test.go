package agenda

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHora(t *testing.T) {
	testCases := []struct {
		entrada string
		hora    int
		minuto  int
		ok      bool
	}{
		{"08:00", 8, 0, true},
		{"17:30", 17, 30, true},
		{"08:00:59", 8, 0, true},
		{"800", 8, 0, true},
		{"1730", 17, 30, true},
		{"000", 0, 0, true},
		{"2359", 23, 59, true},
		{" 9:15 ", 9, 15, true},
		{"24:00", 0, 0, false},
		{"12:60", 0, 0, false},
		{"2400", 0, 0, false},
		{"99", 0, 0, false},
		{"12345", 0, 0, false},
		{"abc", 0, 0, false},
		{"", 0, 0, false},
		{"08:xx", 0, 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.entrada, func(t *testing.T) {
			h, ok := ParseHora(tc.entrada)
			require.Equal(t, tc.ok, ok)
			if ok {
				assert.Equal(t, tc.hora, h.Hora)
				assert.Equal(t, tc.minuto, h.Minuto)
			}
		})
	}
}

func TestCalcHoraFim(t *testing.T) {
	assert.Equal(t, "10:00", CalcHoraFim("08:00", 120))
	assert.Equal(t, "08:00", CalcHoraFim("08:00", 0))
	assert.Equal(t, "10:30", CalcHoraFim("09:30", 60))

	// passa da meia-noite e embrulha para o começo do dia
	assert.Equal(t, "01:00", CalcHoraFim("23:30", 90))

	assert.Equal(t, "", CalcHoraFim("xx", 60))
	assert.Equal(t, "", CalcHoraFim("08:00", -10))
}

func TestDataHora(t *testing.T) {
	inicio, ok := DataHora("2026-03-10", HoraMin{Hora: 8, Minuto: 30})
	require.True(t, ok)
	assert.Equal(t, "2026-03-10T08:30:00Z", inicio.Format("2006-01-02T15:04:05Z07:00"))

	// timestamps com hora embutida são aparados para o dia
	_, ok = DataHora("2026-03-10T00:00:00", HoraMin{})
	assert.True(t, ok)

	_, ok = DataHora("10/03/2026", HoraMin{})
	assert.False(t, ok)
}
