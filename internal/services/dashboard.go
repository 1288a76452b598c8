package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"agenda-concretagem/internal/dto"
	"agenda-concretagem/pkg/agenda"
	"agenda-concretagem/pkg/constants"
)

type DashboardServiceInterface interface {
	ProximosDias(ctx context.Context, dias int) (*dto.DashboardDTO, error)
}

type DashboardService struct {
	concretagemService ConcretagemServiceInterface
	configService      ConfigServiceInterface
	fuso               *time.Location
	logger             *zap.Logger
}

func NewDashboardService(
	concretagemService ConcretagemServiceInterface,
	configService ConfigServiceInterface,
	fuso *time.Location,
	logger *zap.Logger,
) DashboardServiceInterface {
	return &DashboardService{
		concretagemService: concretagemService,
		configService:      configService,
		fuso:               fuso,
		logger:             logger,
	}
}

// ProximosDias monta o painel do período de hoje até hoje+dias-1: agenda
// ordenada, conflitos de bomba e equipe do lote e a ocupação de cada dia.
func (s *DashboardService) ProximosDias(ctx context.Context, dias int) (*dto.DashboardDTO, error) {
	if dias < 1 {
		dias = 7
	}
	hoje := time.Now().In(s.fuso)
	dataDe := hoje.Format("2006-01-02")
	dataAte := hoje.AddDate(0, 0, dias-1).Format("2006-01-02")

	proximas, err := s.concretagemService.ListarPeriodo(ctx, dataDe, dataAte)
	if err != nil {
		return nil, err
	}

	items := make([]agenda.Agendamento, 0, len(proximas))
	for _, p := range proximas {
		items = append(items, agenda.Agendamento{
			ID:         p.ID,
			Obra:       p.Obra,
			Data:       p.Data,
			HoraInicio: p.HoraInicio,
			DuracaoMin: p.DuracaoMin,
			Bomba:      p.Bomba,
			Equipe:     p.Equipe,
			Status:     p.Status,
		})
	}
	conflitos := agenda.DetectarConflitosAgenda(items)
	if conflitos == nil {
		conflitos = []agenda.ConflitoRecurso{}
	}

	capacidade := make([]dto.CapacidadeDTO, 0, dias)
	for d := 0; d < dias; d++ {
		data := hoje.AddDate(0, 0, d).Format("2006-01-02")
		capacidade = append(capacidade, s.configService.CapacidadeDoDia(ctx, data, 0))
	}

	totais := dto.DashboardTotaisDTO{}
	for _, p := range proximas {
		// linhas legadas trazem grafias acentuadas e maiúsculas variadas
		switch agenda.NormalizarStatus(p.Status) {
		case "agendado":
			totais.Agendadas++
		case "confirmado":
			totais.Confirmadas++
		}
		if p.TipoServico == constants.ServicoConcretagem && agenda.StatusComprometido(p.Status) {
			totais.VolumeM3 += p.VolumeM3
		}
	}

	return &dto.DashboardDTO{
		Proximas:   proximas,
		Conflitos:  conflitos,
		Capacidade: capacidade,
		Totais:     totais,
	}, nil
}
