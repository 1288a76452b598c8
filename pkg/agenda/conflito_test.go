package agenda

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncontrarConflitosMesmaBomba(t *testing.T) {
	existentes := []Agendamento{
		{ID: 1, Obra: "Torre Sul", Data: "2024-03-10", HoraInicio: "08:00", DuracaoMin: 120, Bomba: "P1", Status: "Agendado"},
	}
	candidato := Candidato{Data: "2024-03-10", HoraInicio: "09:30", DuracaoMin: 60, Bomba: "P1"}

	conflitos := EncontrarConflitos(candidato, existentes)
	require.Len(t, conflitos, 1)
	assert.Equal(t, int64(1), conflitos[0].ID)
	assert.Equal(t, []string{MotivoBomba}, conflitos[0].Motivos)
}

func TestEncontrarConflitosBombaDiferente(t *testing.T) {
	existentes := []Agendamento{
		{ID: 1, Data: "2024-03-10", HoraInicio: "08:00", DuracaoMin: 120, Bomba: "P1", Status: "Agendado"},
	}
	candidato := Candidato{Data: "2024-03-10", HoraInicio: "09:30", DuracaoMin: 60, Bomba: "P2"}

	assert.Empty(t, EncontrarConflitos(candidato, existentes))
}

func TestEncontrarConflitosSemFiltroCaiNaAgenda(t *testing.T) {
	existentes := []Agendamento{
		{ID: 1, Data: "2024-03-10", HoraInicio: "08:00", DuracaoMin: 120, Bomba: "P1", Equipe: "Alfa", Status: "Agendado"},
	}
	candidato := Candidato{Data: "2024-03-10", HoraInicio: "09:30", DuracaoMin: 60}

	conflitos := EncontrarConflitos(candidato, existentes)
	require.Len(t, conflitos, 1)
	assert.Equal(t, []string{MotivoAgenda}, conflitos[0].Motivos)
}

func TestEncontrarConflitosEquipeSemCaixa(t *testing.T) {
	existentes := []Agendamento{
		{ID: 2, Data: "2024-03-10", HoraInicio: "08:00", DuracaoMin: 120, Equipe: " alfa ", Status: "Confirmado"},
	}
	candidato := Candidato{Data: "2024-03-10", HoraInicio: "09:00", DuracaoMin: 60, Equipe: "ALFA"}

	conflitos := EncontrarConflitos(candidato, existentes)
	require.Len(t, conflitos, 1)
	assert.Equal(t, []string{MotivoEquipe}, conflitos[0].Motivos)
}

func TestEncontrarConflitosEncostadoNaoColide(t *testing.T) {
	existentes := []Agendamento{
		{ID: 1, Data: "2024-03-10", HoraInicio: "08:00", DuracaoMin: 60, Bomba: "P1", Status: "Agendado"},
	}
	candidato := Candidato{Data: "2024-03-10", HoraInicio: "09:00", DuracaoMin: 60, Bomba: "P1"}

	assert.Empty(t, EncontrarConflitos(candidato, existentes))
}

func TestEncontrarConflitosIgnoraEncerrados(t *testing.T) {
	existentes := []Agendamento{
		{ID: 1, Data: "2024-03-10", HoraInicio: "08:00", DuracaoMin: 120, Bomba: "P1", Status: "Cancelado"},
		{ID: 2, Data: "2024-03-10", HoraInicio: "08:00", DuracaoMin: 120, Bomba: "P1", Status: "Concluído"},
		{ID: 3, Data: "2024-03-10", HoraInicio: "08:00", DuracaoMin: 120, Bomba: "P1", Status: "Agendado"},
	}
	candidato := Candidato{Data: "2024-03-10", HoraInicio: "08:30", DuracaoMin: 60, Bomba: "P1"}

	conflitos := EncontrarConflitos(candidato, existentes)
	require.Len(t, conflitos, 1)
	assert.Equal(t, int64(3), conflitos[0].ID)
}

func TestEncontrarConflitosHoraInvalida(t *testing.T) {
	existentes := []Agendamento{
		{ID: 1, Data: "2024-03-10", HoraInicio: "08:00", DuracaoMin: 120, Bomba: "P1", Status: "Agendado"},
	}
	candidato := Candidato{Data: "2024-03-10", HoraInicio: "xx:yy", DuracaoMin: 60, Bomba: "P1"}

	assert.Nil(t, EncontrarConflitos(candidato, existentes))
}

func TestEncontrarConflitosViradaDeNoite(t *testing.T) {
	// 23:00 + 120 min termina 01:00 do dia seguinte em tempo absoluto
	existentes := []Agendamento{
		{ID: 1, Data: "2024-03-10", HoraInicio: "23:00", DuracaoMin: 120, Bomba: "P1", Status: "Agendado"},
	}
	candidato := Candidato{Data: "2024-03-10", HoraInicio: "23:30", DuracaoMin: 30, Bomba: "P1"}

	conflitos := EncontrarConflitos(candidato, existentes)
	require.Len(t, conflitos, 1)

	// começando exatamente no fim absoluto (01:00 do dia 11) não colide
	tarde := Candidato{Data: "2024-03-11", HoraInicio: "01:00", DuracaoMin: 60, Bomba: "P1"}
	assert.Empty(t, EncontrarConflitos(tarde, existentes))
}

func TestDetectarConflitosAgenda(t *testing.T) {
	items := []Agendamento{
		{ID: 1, Data: "2024-03-10", HoraInicio: "08:00", DuracaoMin: 120, Equipe: "Alfa", Bomba: "P1", Status: "Agendado"},
		{ID: 2, Data: "2024-03-10", HoraInicio: "09:00", DuracaoMin: 60, Equipe: "Alfa", Bomba: "P2", Status: "Confirmado"},
		{ID: 3, Data: "2024-03-10", HoraInicio: "11:00", DuracaoMin: 60, Equipe: "Beta", Bomba: "P1", Status: "Agendado"},
	}

	conflitos := DetectarConflitosAgenda(items)
	require.Len(t, conflitos, 1)
	assert.Equal(t, RecursoEquipe, conflitos[0].Tipo)
	assert.Equal(t, "Alfa", conflitos[0].Recurso)
	assert.Equal(t, int64(1), conflitos[0].A.ID)
	assert.Equal(t, int64(2), conflitos[0].B.ID)
}

func TestDetectarConflitosAgendaBomba(t *testing.T) {
	items := []Agendamento{
		{ID: 1, Data: "2024-03-10", HoraInicio: "08:00", DuracaoMin: 240, Bomba: "P1", Status: "Agendado"},
		{ID: 2, Data: "2024-03-10", HoraInicio: "10:00", DuracaoMin: 60, Bomba: "p1", Status: "Agendado"},
	}

	conflitos := DetectarConflitosAgenda(items)
	require.Len(t, conflitos, 1)
	assert.Equal(t, RecursoBomba, conflitos[0].Tipo)
	assert.Equal(t, "P1", conflitos[0].Recurso)
}

func TestDetectarConflitosAgendaIgnoraCancelados(t *testing.T) {
	items := []Agendamento{
		{ID: 1, Data: "2024-03-10", HoraInicio: "08:00", DuracaoMin: 240, Bomba: "P1", Status: "Cancelado"},
		{ID: 2, Data: "2024-03-10", HoraInicio: "10:00", DuracaoMin: 60, Bomba: "P1", Status: "Agendado"},
	}

	assert.Empty(t, DetectarConflitosAgenda(items))
}

func TestDetectarConflitosAgendaRotuloEmBranco(t *testing.T) {
	items := []Agendamento{
		{ID: 1, Data: "2024-03-10", HoraInicio: "08:00", DuracaoMin: 240, Status: "Agendado"},
		{ID: 2, Data: "2024-03-10", HoraInicio: "09:00", DuracaoMin: 60, Status: "Agendado"},
	}

	// sem bomba e sem equipe ninguém agrupa com ninguém
	assert.Empty(t, DetectarConflitosAgenda(items))
}

func TestDetectarConflitosAgendaHoraVaziaViraMeiaNoite(t *testing.T) {
	items := []Agendamento{
		{ID: 1, Data: "2024-03-10", HoraInicio: "", DuracaoMin: 600, Equipe: "Alfa", Status: "Agendado"},
		{ID: 2, Data: "2024-03-10", HoraInicio: "07:00", DuracaoMin: 60, Equipe: "Alfa", Status: "Agendado"},
	}

	conflitos := DetectarConflitosAgenda(items)
	require.Len(t, conflitos, 1)
	assert.Equal(t, int64(1), conflitos[0].A.ID)
}

func TestCapacidade(t *testing.T) {
	assert.Equal(t, 1, CapacidadeMinima(0))
	assert.Equal(t, 1, CapacidadeMinima(-3))
	assert.Equal(t, 12, CapacidadeMinima(12))

	assert.Equal(t, 11, ColaboradoresProjetados(10, 1))
	assert.Equal(t, 11, ColaboradoresProjetados(10, 0))

	assert.True(t, AcimaDaCapacidade(10, 3, 12))
	assert.False(t, AcimaDaCapacidade(10, 2, 12))

	assert.True(t, DiaSobrecarregado(12, 12))
	assert.False(t, DiaSobrecarregado(11, 12))
}
