package agenda

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalcCaminhoes(t *testing.T) {
	assert.Equal(t, 3, CalcCaminhoes(24.0, 8.0))
	assert.Equal(t, 4, CalcCaminhoes(24.01, 8.0))
	assert.Equal(t, 1, CalcCaminhoes(0.5, 8.0))

	assert.Equal(t, 0, CalcCaminhoes(0, 8.0))
	assert.Equal(t, 0, CalcCaminhoes(-5, 8.0))
	assert.Equal(t, 0, CalcCaminhoes(24, 0))
	assert.Equal(t, 0, CalcCaminhoes(math.NaN(), 8.0))
	assert.Equal(t, 0, CalcCaminhoes(math.Inf(1), 8.0))
	assert.Equal(t, 0, CalcCaminhoes(24, math.NaN()))
}

func TestCalcCaminhoesMonotonico(t *testing.T) {
	anterior := 0
	for v := 0.0; v <= 120; v += 0.5 {
		atual := CalcCaminhoes(v, 8.0)
		assert.GreaterOrEqual(t, atual, anterior, "volume %v", v)
		anterior = atual
	}
}

func TestCalcCorposProva(t *testing.T) {
	assert.Equal(t, 18, CalcCorposProva(3, 6))
	assert.Equal(t, 0, CalcCorposProva(0, 6))
	assert.Equal(t, 0, CalcCorposProva(3, 0))
	assert.Equal(t, 0, CalcCorposProva(-1, 6))
}

func TestDuracaoPadraoMin(t *testing.T) {
	// 30 m³ no caminhão padrão de 8 m³ dá 4 caminhões
	assert.Equal(t, 108, DuracaoPadraoMin(30))
	assert.Equal(t, 60, DuracaoPadraoMin(0))
	assert.Equal(t, 72, DuracaoPadraoMin(8))
	assert.Equal(t, 60, DuracaoPadraoMin(math.NaN()))
}
