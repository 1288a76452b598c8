// Pacote agenda concentra as regras de agendamento de concretagens: horas do
// dia, sobreposição de intervalos, detecção de conflitos de bomba e equipe,
// capacidade diária e as quantidades derivadas do volume.
package agenda

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// HoraMin é uma hora do dia em hora e minuto, sem data e sem fuso.
type HoraMin struct {
	Hora   int
	Minuto int
}

func (h HoraMin) Minutos() int { return h.Hora*60 + h.Minuto }

func (h HoraMin) String() string { return fmt.Sprintf("%02d:%02d", h.Hora, h.Minuto) }

// ParseHora aceita "HH:MM", "HH:MM:SS" e strings só de dígitos com 3 ou 4
// caracteres ("800" vira 08:00, "1730" vira 17:30). Entrada ilegível ou fora
// de faixa devolve ok == false; a função nunca entra em pânico.
func ParseHora(s string) (HoraMin, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return HoraMin{}, false
	}

	var horaTxt, minTxt string
	if strings.Contains(s, ":") {
		partes := strings.Split(s, ":")
		if len(partes) != 2 && len(partes) != 3 {
			return HoraMin{}, false
		}
		horaTxt, minTxt = partes[0], partes[1]
	} else {
		if len(s) != 3 && len(s) != 4 {
			return HoraMin{}, false
		}
		horaTxt, minTxt = s[:len(s)-2], s[len(s)-2:]
	}

	hora, err := strconv.Atoi(strings.TrimSpace(horaTxt))
	if err != nil {
		return HoraMin{}, false
	}
	minuto, err := strconv.Atoi(strings.TrimSpace(minTxt))
	if err != nil {
		return HoraMin{}, false
	}
	if hora < 0 || hora > 23 || minuto < 0 || minuto > 59 {
		return HoraMin{}, false
	}
	return HoraMin{Hora: hora, Minuto: minuto}, true
}

// CalcHoraFim soma a duração à hora de início e devolve "HH:MM". O resultado
// usa módulo de 24h: uma concretagem que atravessa a meia-noite informa um
// fim numericamente anterior ao início. Entrada inválida devolve "".
func CalcHoraFim(horaInicio string, duracaoMin int) string {
	inicio, ok := ParseHora(horaInicio)
	if !ok || duracaoMin < 0 {
		return ""
	}
	total := (inicio.Minutos() + duracaoMin) % (24 * 60)
	return HoraMin{Hora: total / 60, Minuto: total % 60}.String()
}

// DataHora combina uma data ISO ("YYYY-MM-DD", prefixos mais longos são
// aceitos) com uma hora do dia num instante absoluto em UTC.
func DataHora(data string, h HoraMin) (time.Time, bool) {
	data = strings.TrimSpace(data)
	if len(data) > 10 {
		data = data[:10]
	}
	dia, err := time.Parse("2006-01-02", data)
	if err != nil {
		return time.Time{}, false
	}
	return dia.Add(time.Duration(h.Minutos()) * time.Minute), true
}
