package agenda

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func hm(h, m int) HoraMin { return HoraMin{Hora: h, Minuto: m} }

func TestIntervalosSobrepoem(t *testing.T) {
	testCases := []struct {
		nome                   string
		aIni, aFim, bIni, bFim HoraMin
		esperado               bool
	}{
		{"cruzamento parcial", hm(8, 0), hm(10, 0), hm(9, 0), hm(11, 0), true},
		{"contido", hm(8, 0), hm(12, 0), hm(9, 0), hm(10, 0), true},
		{"identico", hm(8, 0), hm(10, 0), hm(8, 0), hm(10, 0), true},
		{"encostado nao conta", hm(8, 0), hm(9, 0), hm(9, 0), hm(10, 0), false},
		{"disjunto", hm(8, 0), hm(9, 0), hm(10, 0), hm(11, 0), false},
		{"fim antes do inicio e normalizado", hm(10, 0), hm(8, 0), hm(9, 0), hm(11, 0), true},
		{"intervalo vazio", hm(9, 0), hm(9, 0), hm(8, 0), hm(10, 0), false},
	}

	for _, tc := range testCases {
		t.Run(tc.nome, func(t *testing.T) {
			assert.Equal(t, tc.esperado, IntervalosSobrepoem(tc.aIni, tc.aFim, tc.bIni, tc.bFim))
			// simetria
			assert.Equal(t, tc.esperado, IntervalosSobrepoem(tc.bIni, tc.bFim, tc.aIni, tc.aFim))
		})
	}
}
