package agenda

import (
	"sort"
	"strings"
	"time"
)

// Motivos de conflito devolvidos por EncontrarConflitos.
const (
	MotivoBomba  = "bomba"
	MotivoEquipe = "equipe"
	MotivoAgenda = "agenda"
)

// Dimensões de recurso usadas na varredura em lote.
const (
	RecursoEquipe = "equipe"
	RecursoBomba  = "bomba"
)

// Agendamento é a visão mínima de uma concretagem que os detectores de
// conflito precisam enxergar.
type Agendamento struct {
	ID         int64
	Obra       string
	Data       string
	HoraInicio string
	DuracaoMin int
	Bomba      string
	Equipe     string
	Status     string
}

// Candidato é a concretagem sendo criada ou editada, ainda não gravada.
type Candidato struct {
	Data       string
	HoraInicio string
	DuracaoMin int
	Bomba      string
	Equipe     string
}

// Conflito é um agendamento já gravado que colide com o candidato.
type Conflito struct {
	ID         int64    `json:"id"`
	Obra       string   `json:"obra"`
	HoraInicio string   `json:"hora_inicio"`
	DuracaoMin int      `json:"duracao_min"`
	Bomba      string   `json:"bomba,omitempty"`
	Equipe     string   `json:"equipe,omitempty"`
	Motivos    []string `json:"motivos"`
}

// ConflitoRecurso é um par de agendamentos disputando o mesmo recurso,
// achado pela varredura em lote.
type ConflitoRecurso struct {
	Tipo    string      `json:"tipo"`
	Recurso string      `json:"recurso"`
	A       Agendamento `json:"a"`
	B       Agendamento `json:"b"`
}

// inicioFim resolve um agendamento em instantes absolutos. A duração é
// somada ao início, então uma concretagem que vira a noite termina no dia
// seguinte em vez de embrulhar no mesmo dia.
func inicioFim(data, horaInicio string, duracaoMin int) (time.Time, time.Time, bool) {
	h, ok := ParseHora(horaInicio)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	inicio, ok := DataHora(data, h)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	if duracaoMin < 0 {
		duracaoMin = 0
	}
	return inicio, inicio.Add(time.Duration(duracaoMin) * time.Minute), true
}

// EncontrarConflitos compara o candidato com os agendamentos já gravados do
// mesmo dia. Rótulos de bomba e equipe casam sem caixa e sem espaços nas
// pontas; rótulo em branco nunca colide. Sem nenhum rótulo informado, todo
// agendamento do dia que cruza o horário conta, com motivo "agenda".
// Agendamentos encerrados (cancelados ou concluídos) ficam de fora. O
// resultado é consultivo: quem chama decide se grava mesmo assim.
func EncontrarConflitos(c Candidato, existentes []Agendamento) []Conflito {
	novoIni, novoFim, ok := inicioFim(c.Data, c.HoraInicio, c.DuracaoMin)
	if !ok {
		return nil
	}

	bomba := strings.ToLower(strings.TrimSpace(c.Bomba))
	equipe := strings.ToLower(strings.TrimSpace(c.Equipe))

	var conflitos []Conflito
	for _, e := range existentes {
		if StatusEncerrado(e.Status) {
			continue
		}

		var motivos []string
		if bomba != "" && bomba == strings.ToLower(strings.TrimSpace(e.Bomba)) {
			motivos = append(motivos, MotivoBomba)
		}
		if equipe != "" && equipe == strings.ToLower(strings.TrimSpace(e.Equipe)) {
			motivos = append(motivos, MotivoEquipe)
		}
		if bomba == "" && equipe == "" {
			motivos = []string{MotivoAgenda}
		}
		if len(motivos) == 0 {
			continue
		}

		ini, fim, ok := inicioFim(e.Data, e.HoraInicio, e.DuracaoMin)
		if !ok {
			continue
		}
		if !(novoIni.Before(fim) && ini.Before(novoFim)) {
			continue
		}

		conflitos = append(conflitos, Conflito{
			ID:         e.ID,
			Obra:       e.Obra,
			HoraInicio: e.HoraInicio,
			DuracaoMin: e.DuracaoMin,
			Bomba:      e.Bomba,
			Equipe:     e.Equipe,
			Motivos:    motivos,
		})
	}
	return conflitos
}

type itemVarredura struct {
	ag     Agendamento
	inicio time.Time
	fim    time.Time
}

// DetectarConflitosAgenda varre um lote de agendamentos já carregados e
// aponta pares que disputam a mesma equipe ou a mesma bomba. Dentro de cada
// grupo os itens são ordenados por início e só pares adjacentes são
// comparados; com grupos pequenos, qualquer cadeia real de sobreposição
// aparece em algum par adjacente.
func DetectarConflitosAgenda(items []Agendamento) []ConflitoRecurso {
	var resultado []ConflitoRecurso
	resultado = append(resultado, varrerRecurso(items, RecursoEquipe)...)
	resultado = append(resultado, varrerRecurso(items, RecursoBomba)...)
	return resultado
}

func varrerRecurso(items []Agendamento, tipo string) []ConflitoRecurso {
	grupos := make(map[string][]itemVarredura)
	var chaves []string

	for _, ag := range items {
		if StatusCancelado(ag.Status) {
			continue
		}

		rotulo := ag.Equipe
		if tipo == RecursoBomba {
			rotulo = ag.Bomba
		}
		rotulo = strings.TrimSpace(rotulo)
		if rotulo == "" {
			continue
		}

		hora := ag.HoraInicio
		if strings.TrimSpace(hora) == "" {
			hora = "00:00"
		}
		inicio, fim, ok := inicioFim(ag.Data, hora, ag.DuracaoMin)
		if !ok {
			continue
		}

		chave := strings.ToLower(rotulo)
		if _, existe := grupos[chave]; !existe {
			chaves = append(chaves, chave)
		}
		grupos[chave] = append(grupos[chave], itemVarredura{ag: ag, inicio: inicio, fim: fim})
	}

	var conflitos []ConflitoRecurso
	for _, chave := range chaves {
		grupo := grupos[chave]
		sort.SliceStable(grupo, func(i, j int) bool {
			return grupo[i].inicio.Before(grupo[j].inicio)
		})
		for i := 0; i+1 < len(grupo); i++ {
			a, b := grupo[i], grupo[i+1]
			if a.fim.After(b.inicio) {
				rotulo := strings.TrimSpace(a.ag.Equipe)
				if tipo == RecursoBomba {
					rotulo = strings.TrimSpace(a.ag.Bomba)
				}
				conflitos = append(conflitos, ConflitoRecurso{
					Tipo:    tipo,
					Recurso: rotulo,
					A:       a.ag,
					B:       b.ag,
				})
			}
		}
	}
	return conflitos
}
