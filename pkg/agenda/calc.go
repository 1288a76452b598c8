package agenda

import "math"

// CapCaminhaoPadraoM3 é a capacidade assumida de um caminhão betoneira
// quando o formulário não informa outra.
const CapCaminhaoPadraoM3 = 8.0

// CalcCaminhoes estima quantos caminhões são necessários para o volume.
// Volume ou capacidade não positivos (ou não finitos) resultam em zero.
func CalcCaminhoes(volumeM3, capCaminhaoM3 float64) int {
	volumeM3 = SafeFloat(volumeM3, 0)
	capCaminhaoM3 = SafeFloat(capCaminhaoM3, 0)
	if volumeM3 <= 0 || capCaminhaoM3 <= 0 {
		return 0
	}
	return int(math.Ceil(volumeM3 / capCaminhaoM3))
}

// CalcCorposProva estima os corpos de prova moldados no dia.
func CalcCorposProva(caminhoes, cpsPorCaminhao int) int {
	if caminhoes <= 0 || cpsPorCaminhao <= 0 {
		return 0
	}
	return caminhoes * cpsPorCaminhao
}

// DuracaoPadraoMin pré-preenche a duração de uma concretagem nova: uma hora
// de preparação mais 12 minutos por caminhão no tamanho padrão. Nunca é
// recalculada depois de gravada.
func DuracaoPadraoMin(volumeM3 float64) int {
	return 60 + CalcCaminhoes(volumeM3, CapCaminhaoPadraoM3)*12
}
