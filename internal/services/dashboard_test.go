package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"agenda-concretagem/internal/dto"
	"agenda-concretagem/pkg/agenda"
	"agenda-concretagem/pkg/constants"
	"agenda-concretagem/pkg/types"
)

type stubAgendaService struct {
	periodo []dto.ConcretagemDTO
}

func (s *stubAgendaService) Listar(ctx context.Context, filter types.Filter) ([]dto.ConcretagemDTO, uint64, error) {
	return nil, 0, nil
}

func (s *stubAgendaService) ListarPeriodo(ctx context.Context, dataDe, dataAte string) ([]dto.ConcretagemDTO, error) {
	return s.periodo, nil
}

func (s *stubAgendaService) Buscar(ctx context.Context, id int64) (*dto.ConcretagemDTO, error) {
	return nil, nil
}

func (s *stubAgendaService) Criar(ctx context.Context, payload dto.CreateConcretagemDTO, criadoPor string) (*dto.SalvarConcretagemRespostaDTO, error) {
	return nil, nil
}

func (s *stubAgendaService) Atualizar(ctx context.Context, id int64, payload dto.UpdateConcretagemDTO, alteradoPor string) (*dto.SalvarConcretagemRespostaDTO, error) {
	return nil, nil
}

func (s *stubAgendaService) ExcluirComFallback(ctx context.Context, id int64, usuario string) (bool, error) {
	return false, nil
}

func (s *stubAgendaService) VerificarConflitos(ctx context.Context, payload dto.ConsultaConflitoDTO) ([]agenda.Conflito, error) {
	return nil, nil
}

func (s *stubAgendaService) Historico(ctx context.Context, id int64, limit int) ([]dto.HistoricoDTO, error) {
	return nil, nil
}

func (s *stubAgendaService) Estimar(payload dto.EstimativaDTO) dto.EstimativaRespostaDTO {
	return dto.EstimativaRespostaDTO{}
}

type stubCapacidadeService struct{}

func (s *stubCapacidadeService) CapacidadeEquipe(ctx context.Context) int { return 12 }

func (s *stubCapacidadeService) DefinirCapacidade(ctx context.Context, capacidade int, atualizadoPor string) error {
	return nil
}

func (s *stubCapacidadeService) CapacidadeDoDia(ctx context.Context, data string, colabExtra int) dto.CapacidadeDTO {
	return dto.CapacidadeDTO{Data: data, Comprometido: 0, Capacidade: 12}
}

func TestDashboardTotaisNormalizaStatusLegados(t *testing.T) {
	agendaSvc := &stubAgendaService{periodo: []dto.ConcretagemDTO{
		{ID: 1, TipoServico: constants.ServicoConcretagem, Status: "AGENDADO", VolumeM3: 10},
		{ID: 2, TipoServico: constants.ServicoConcretagem, Status: " Confirmado ", VolumeM3: 20},
		{ID: 3, TipoServico: constants.ServicoConcretagem, Status: "Execução", VolumeM3: 8},
		{ID: 4, TipoServico: constants.ServicoConcretagem, Status: "Cancelado", VolumeM3: 50},
		{ID: 5, TipoServico: "Ensaio de Solo", Status: constants.StatusAgendado},
	}}
	svc := NewDashboardService(agendaSvc, &stubCapacidadeService{}, time.UTC, zap.NewNop())

	painel, err := svc.ProximosDias(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, 2, painel.Totais.Agendadas)
	assert.Equal(t, 1, painel.Totais.Confirmadas)
	// volume soma apenas concretagens com status comprometido
	assert.InDelta(t, 38.0, painel.Totais.VolumeM3, 0.001)
	assert.Len(t, painel.Capacidade, 3)
	assert.NotNil(t, painel.Conflitos)
}
