package agenda

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var reNumero = regexp.MustCompile(`[-+]?\d+(?:[.,]\d+)?`)

// SafeFloat devolve padrao quando v não é um número finito.
func SafeFloat(v float64, padrao float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return padrao
	}
	return v
}

// SafeInt converte v truncando; NaN e infinito caem no padrao.
func SafeInt(v float64, padrao int) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return padrao
	}
	return int(v)
}

// ParseNumero extrai o primeiro número de um texto livre, aceitando vírgula
// ou ponto como separador decimal. "Slump 120,5 mm" devolve 120.5.
func ParseNumero(s string) (float64, bool) {
	match := reNumero.FindString(s)
	if match == "" {
		return 0, false
	}
	match = strings.ReplaceAll(match, ",", ".")
	v, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// SomenteDigitos remove tudo que não for dígito decimal.
func SomenteDigitos(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FmtBR formata um número na convenção pt-BR: vírgula decimal e ponto como
// separador de milhar. Com aparar ligado, zeros finais da fração (e uma
// vírgula pendurada) são removidos.
func FmtBR(v float64, decimais int, aparar bool) string {
	if decimais < 0 {
		decimais = 0
	}
	texto := strconv.FormatFloat(SafeFloat(v, 0), 'f', decimais, 64)

	inteiro, fracao := texto, ""
	if i := strings.IndexByte(texto, '.'); i >= 0 {
		inteiro, fracao = texto[:i], texto[i+1:]
	}

	negativo := strings.HasPrefix(inteiro, "-")
	inteiro = strings.TrimPrefix(inteiro, "-")

	var grupos []string
	for len(inteiro) > 3 {
		grupos = append([]string{inteiro[len(inteiro)-3:]}, grupos...)
		inteiro = inteiro[:len(inteiro)-3]
	}
	grupos = append([]string{inteiro}, grupos...)
	resultado := strings.Join(grupos, ".")
	if negativo {
		resultado = "-" + resultado
	}

	if aparar {
		fracao = strings.TrimRight(fracao, "0")
	}
	if fracao != "" {
		resultado += "," + fracao
	}
	return resultado
}
