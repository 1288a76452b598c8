package agenda

// CapacidadeMinima garante uma capacidade de equipe utilizável. Valores
// menores que 1 viram 1.
func CapacidadeMinima(capacidade int) int {
	if capacidade < 1 {
		return 1
	}
	return capacidade
}

// ColaboradoresProjetados soma os colaboradores já comprometidos com os da
// concretagem sendo criada; equipe não informada conta como uma pessoa.
func ColaboradoresProjetados(comprometidos, colabQtd int) int {
	if colabQtd < 1 {
		colabQtd = 1
	}
	return comprometidos + colabQtd
}

// AcimaDaCapacidade avalia a projeção de incluir mais colabQtd pessoas no
// dia. O aviso é informativo, nunca bloqueia a gravação.
func AcimaDaCapacidade(comprometidos, colabQtd, capacidade int) bool {
	return ColaboradoresProjetados(comprometidos, colabQtd) > CapacidadeMinima(capacidade)
}

// DiaSobrecarregado diz se o dia já atingiu a capacidade configurada.
func DiaSobrecarregado(comprometidos, capacidade int) bool {
	return comprometidos >= CapacidadeMinima(capacidade)
}
