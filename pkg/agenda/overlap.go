package agenda

// IntervalosSobrepoem decide se dois intervalos de minutos do dia se cruzam,
// com semântica meio-aberta: encostar no extremo não conta. Intervalos com
// fim antes do início são invertidos antes da comparação, então um intervalo
// que de fato atravessa a meia-noite é tratado como o intervalo curto
// reverso. Quem precisa de madrugada de verdade compara instantes absolutos.
func IntervalosSobrepoem(aIni, aFim, bIni, bFim HoraMin) bool {
	a0, a1 := aIni.Minutos(), aFim.Minutos()
	if a1 < a0 {
		a0, a1 = a1, a0
	}
	b0, b1 := bIni.Minutos(), bFim.Minutos()
	if b1 < b0 {
		b0, b1 = b1, b0
	}

	ini := a0
	if b0 > ini {
		ini = b0
	}
	fim := a1
	if b1 < fim {
		fim = b1
	}
	return ini < fim
}
