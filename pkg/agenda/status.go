package agenda

import "strings"

// Dados antigos misturam grafias acentuadas e sem acento; a troca cobre os
// acentos usados nos nomes de status e rótulos em português.
var trocaAcentos = strings.NewReplacer(
	"á", "a", "à", "a", "â", "a", "ã", "a",
	"é", "e", "ê", "e",
	"í", "i",
	"ó", "o", "ô", "o", "õ", "o",
	"ú", "u", "ü", "u",
	"ç", "c",
)

// NormalizarStatus reduz um status de texto livre à forma canônica de
// comparação: minúsculas, sem acentos, sem espaços nas pontas.
func NormalizarStatus(s string) string {
	return trocaAcentos.Replace(strings.ToLower(strings.TrimSpace(s)))
}

var statusComprometidos = map[string]bool{
	"agendado":   true,
	"aguardando": true,
	"confirmado": true,
	"execucao":   true,
}

// StatusComprometido diz se o status ainda conta para conflitos e
// capacidade. Concluído e cancelado ficam de fora.
func StatusComprometido(s string) bool {
	return statusComprometidos[NormalizarStatus(s)]
}

// StatusCancelado casa por prefixo para pegar variações como "Cancelada"
// e "Cancelado pelo cliente".
func StatusCancelado(s string) bool {
	return strings.HasPrefix(NormalizarStatus(s), "cancel")
}

// StatusEncerrado cobre os dois status terminais: cancelado e concluído.
// Agendamentos encerrados não disputam mais bomba nem equipe.
func StatusEncerrado(s string) bool {
	return StatusCancelado(s) || NormalizarStatus(s) == "concluido"
}
