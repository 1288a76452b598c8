package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"agenda-concretagem/internal/dto"
	"agenda-concretagem/internal/entities"
	"agenda-concretagem/internal/repositories"
	"agenda-concretagem/pkg/agenda"
	"agenda-concretagem/pkg/constants"
	apperrors "agenda-concretagem/pkg/errors"
	"agenda-concretagem/pkg/types"
)

type ConcretagemServiceInterface interface {
	Listar(ctx context.Context, filter types.Filter) ([]dto.ConcretagemDTO, uint64, error)
	ListarPeriodo(ctx context.Context, dataDe, dataAte string) ([]dto.ConcretagemDTO, error)
	Buscar(ctx context.Context, id int64) (*dto.ConcretagemDTO, error)
	Criar(ctx context.Context, payload dto.CreateConcretagemDTO, criadoPor string) (*dto.SalvarConcretagemRespostaDTO, error)
	Atualizar(ctx context.Context, id int64, payload dto.UpdateConcretagemDTO, alteradoPor string) (*dto.SalvarConcretagemRespostaDTO, error)
	ExcluirComFallback(ctx context.Context, id int64, usuario string) (bool, error)
	VerificarConflitos(ctx context.Context, payload dto.ConsultaConflitoDTO) ([]agenda.Conflito, error)
	Historico(ctx context.Context, id int64, limit int) ([]dto.HistoricoDTO, error)
	Estimar(payload dto.EstimativaDTO) dto.EstimativaRespostaDTO
}

type ConcretagemService struct {
	concretagemRepo repositories.ConcretagemRepositoryInterface
	obraRepo        repositories.ObraRepositoryInterface
	historicoRepo   repositories.HistoricoRepositoryInterface
	configService   ConfigServiceInterface
	logger          *zap.Logger
}

func NewConcretagemService(
	concretagemRepo repositories.ConcretagemRepositoryInterface,
	obraRepo repositories.ObraRepositoryInterface,
	historicoRepo repositories.HistoricoRepositoryInterface,
	configService ConfigServiceInterface,
	logger *zap.Logger,
) ConcretagemServiceInterface {
	return &ConcretagemService{
		concretagemRepo: concretagemRepo,
		obraRepo:        obraRepo,
		historicoRepo:   historicoRepo,
		configService:   configService,
		logger:          logger,
	}
}

func concretagemParaDTO(c *entities.Concretagem, obra *entities.Obra) dto.ConcretagemDTO {
	out := dto.ConcretagemDTO{
		ID:          c.ID,
		TipoServico: c.TipoServico,
		Data:        c.Data,
		HoraInicio:  c.HoraInicio,
		HoraFim:     agenda.CalcHoraFim(c.HoraInicio, c.DuracaoMin),
		DuracaoMin:  c.DuracaoMin,
		VolumeM3:    c.VolumeM3,
		SlumpTxt:    c.SlumpTxt.String,
		Usina:       c.Usina.String,
		Bomba:       c.Bomba,
		Equipe:      c.Equipe,
		ColabQtd:    c.ColabQtd,
		Status:      c.Status,
		Observacoes: c.Observacoes.String,
		CriadoPor:   c.CriadoPor.String,
		AlteradoPor: c.AlteradoPor.String,
	}
	if c.ObraID.Valid {
		id := c.ObraID.Int64
		out.ObraID = &id
	}
	if c.FckMpa.Valid {
		v := c.FckMpa.Float64
		out.FckMpa = &v
	}
	if c.SlumpMm.Valid {
		v := c.SlumpMm.Float64
		out.SlumpMm = &v
	}
	if c.CapCaminhaoM3.Valid {
		v := c.CapCaminhaoM3.Float64
		out.CapCaminhaoM3 = &v
	}
	if c.CpsPorCaminhao.Valid {
		v := c.CpsPorCaminhao.Int
		out.CpsPorCaminhao = &v
	}
	out.CaminhoesEst = c.CaminhoesEst.Int
	out.FormasEst = c.FormasEst.Int
	if c.CriadoEm != nil {
		out.CriadoEm = c.CriadoEm.Local().Format("2006-01-02 15:04:05")
	}
	if obra != nil {
		out.Obra = obra.Nome
		out.Cliente = obra.Cliente.String
		out.Cidade = obra.Cidade.String
		out.Responsavel = obra.Responsavel.String
	}
	return out
}

// mapaDeObras carrega as obras uma vez e indexa por id, para achatar nome e
// cliente nas listagens sem uma consulta por linha.
func (s *ConcretagemService) mapaDeObras(ctx context.Context) map[int64]*entities.Obra {
	obras, _, err := s.obraRepo.GetObras(ctx, types.Filter{})
	if err != nil {
		s.logger.Warn("Não foi possível carregar as obras para a listagem", zap.Error(err))
		return nil
	}
	m := make(map[int64]*entities.Obra, len(obras))
	for i := range obras {
		m[obras[i].ID] = &obras[i]
	}
	return m
}

func (s *ConcretagemService) obraDe(m map[int64]*entities.Obra, c *entities.Concretagem) *entities.Obra {
	if m == nil || !c.ObraID.Valid {
		return nil
	}
	return m[c.ObraID.Int64]
}

func (s *ConcretagemService) Listar(ctx context.Context, filter types.Filter) ([]dto.ConcretagemDTO, uint64, error) {
	items, total, err := s.concretagemRepo.GetConcretagens(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	obras := s.mapaDeObras(ctx)
	out := make([]dto.ConcretagemDTO, 0, len(items))
	for i := range items {
		out = append(out, concretagemParaDTO(&items[i], s.obraDe(obras, &items[i])))
	}
	return out, total, nil
}

func (s *ConcretagemService) ListarPeriodo(ctx context.Context, dataDe, dataAte string) ([]dto.ConcretagemDTO, error) {
	items, err := s.concretagemRepo.GetPorPeriodo(ctx, dataDe, dataAte)
	if err != nil {
		return nil, err
	}
	obras := s.mapaDeObras(ctx)
	out := make([]dto.ConcretagemDTO, 0, len(items))
	for i := range items {
		out = append(out, concretagemParaDTO(&items[i], s.obraDe(obras, &items[i])))
	}
	return out, nil
}

func (s *ConcretagemService) Buscar(ctx context.Context, id int64) (*dto.ConcretagemDTO, error) {
	c, err := s.concretagemRepo.FindConcretagem(ctx, id)
	if err != nil {
		return nil, err
	}
	var obra *entities.Obra
	if c.ObraID.Valid {
		obra, _ = s.obraRepo.FindObra(ctx, c.ObraID.Int64)
	}
	out := concretagemParaDTO(c, obra)
	return &out, nil
}

// paraAgendamentos projeta as entidades na visão mínima que o detector de
// conflitos usa, já com o nome da obra resolvido.
func (s *ConcretagemService) paraAgendamentos(ctx context.Context, items []entities.Concretagem) []agenda.Agendamento {
	obras := s.mapaDeObras(ctx)
	out := make([]agenda.Agendamento, 0, len(items))
	for i := range items {
		c := &items[i]
		nome := ""
		if o := s.obraDe(obras, c); o != nil {
			nome = o.Nome
		}
		out = append(out, agenda.Agendamento{
			ID:         c.ID,
			Obra:       nome,
			Data:       c.Data,
			HoraInicio: c.HoraInicio,
			DuracaoMin: c.DuracaoMin,
			Bomba:      c.Bomba,
			Equipe:     c.Equipe,
			Status:     c.Status,
		})
	}
	return out
}

func (s *ConcretagemService) conflitosDoDia(ctx context.Context, candidato agenda.Candidato, ignorarID int64) ([]agenda.Conflito, error) {
	doDia, err := s.concretagemRepo.GetPorData(ctx, candidato.Data, ignorarID)
	if err != nil {
		return nil, err
	}
	return agenda.EncontrarConflitos(candidato, s.paraAgendamentos(ctx, doDia)), nil
}

func snapshot(v interface{}) []byte {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return raw
}

func (s *ConcretagemService) registrarHistorico(ctx context.Context, acao string, id int64, detalhes interface{}, usuario string) {
	err := s.historicoRepo.Append(ctx, entities.Historico{
		Acao:       acao,
		Entidade:   constants.EntidadeConcretagens,
		EntidadeID: id,
		Detalhes:   snapshot(detalhes),
		Usuario:    usuario,
	})
	if err != nil {
		s.logger.Error("Não foi possível gravar o histórico",
			zap.String("acao", acao), zap.Int64("id", id), zap.Error(err))
	}
}

func (s *ConcretagemService) Criar(ctx context.Context, payload dto.CreateConcretagemDTO, criadoPor string) (*dto.SalvarConcretagemRespostaDTO, error) {
	if !constants.IsTipoServicoValido(payload.TipoServico) {
		return nil, apperrors.NewInvalidInputError("tipo de serviço desconhecido: %s", payload.TipoServico)
	}
	hora, ok := agenda.ParseHora(payload.HoraInicio)
	if !ok {
		return nil, apperrors.NewInvalidInputError("hora de início inválida: %s", payload.HoraInicio)
	}

	c := entities.Concretagem{
		TipoServico: payload.TipoServico,
		Data:        payload.Data,
		HoraInicio:  hora.String(),
		ColabQtd:    1,
		Status:      constants.StatusAgendado,
		CriadoPor:   null.StringFrom(criadoPor),
	}
	if payload.ObraID != nil {
		c.ObraID = null.Int64From(*payload.ObraID)
	}
	if payload.ColabQtd != nil && *payload.ColabQtd >= 1 {
		c.ColabQtd = *payload.ColabQtd
	}
	if payload.Status != nil && *payload.Status != "" {
		c.Status = *payload.Status
	}
	if payload.Bomba != nil {
		c.Bomba = strings.TrimSpace(*payload.Bomba)
	}
	if payload.Equipe != nil {
		c.Equipe = strings.TrimSpace(*payload.Equipe)
	}
	if payload.Usina != nil {
		c.Usina = null.StringFrom(*payload.Usina)
	}
	if payload.Observacoes != nil {
		c.Observacoes = null.StringFrom(*payload.Observacoes)
	}

	if c.TipoServico == constants.ServicoConcretagem {
		volume := 0.0
		if payload.VolumeM3 != nil {
			volume = agenda.SafeFloat(*payload.VolumeM3, 0)
		}
		capCaminhao := agenda.CapCaminhaoPadraoM3
		if payload.CapCaminhaoM3 != nil && *payload.CapCaminhaoM3 > 0 {
			capCaminhao = *payload.CapCaminhaoM3
		}
		cps := constants.CpsPorCaminhaoPadrao
		if payload.CpsPorCaminhao != nil && *payload.CpsPorCaminhao >= 1 {
			cps = *payload.CpsPorCaminhao
		}

		caminhoes := agenda.CalcCaminhoes(volume, capCaminhao)
		c.VolumeM3 = volume
		c.CapCaminhaoM3 = null.Float64From(capCaminhao)
		c.CpsPorCaminhao = null.IntFrom(cps)
		c.CaminhoesEst = null.IntFrom(caminhoes)
		c.FormasEst = null.IntFrom(agenda.CalcCorposProva(caminhoes, cps))

		if payload.FckMpa != nil {
			c.FckMpa = null.Float64From(*payload.FckMpa)
		}
		if payload.Slump != nil && strings.TrimSpace(*payload.Slump) != "" {
			c.SlumpTxt = null.StringFrom(*payload.Slump)
			if mm, ok := agenda.ParseNumero(*payload.Slump); ok {
				c.SlumpMm = null.Float64From(mm)
			}
		}

		c.DuracaoMin = agenda.DuracaoPadraoMin(volume)
		if payload.DuracaoMin != nil && *payload.DuracaoMin > 0 {
			c.DuracaoMin = *payload.DuracaoMin
		}
	} else {
		// serviços de campo não volumétricos: sem volume, sem estimativas,
		// uma hora de duração salvo indicação contrária
		c.DuracaoMin = 60
		if payload.DuracaoMin != nil && *payload.DuracaoMin > 0 {
			c.DuracaoMin = *payload.DuracaoMin
		}
	}

	conflitos, err := s.conflitosDoDia(ctx, agenda.Candidato{
		Data:       c.Data,
		HoraInicio: c.HoraInicio,
		DuracaoMin: c.DuracaoMin,
		Bomba:      c.Bomba,
		Equipe:     c.Equipe,
	}, 0)
	if err != nil {
		return nil, err
	}

	created, err := s.concretagemRepo.CreateConcretagem(ctx, c)
	if err != nil {
		s.logger.Error("Erro ao criar concretagem", zap.Error(err))
		return nil, err
	}
	s.registrarHistorico(ctx, constants.AcaoCreate, created.ID, map[string]interface{}{"after": created}, criadoPor)
	s.logger.Info("Concretagem criada",
		zap.Int64("id", created.ID),
		zap.String("data", created.Data),
		zap.Int("conflitos", len(conflitos)),
	)

	var obra *entities.Obra
	if created.ObraID.Valid {
		obra, _ = s.obraRepo.FindObra(ctx, created.ObraID.Int64)
	}
	if conflitos == nil {
		conflitos = []agenda.Conflito{}
	}
	return &dto.SalvarConcretagemRespostaDTO{
		Concretagem: concretagemParaDTO(created, obra),
		Conflitos:   conflitos,
		Capacidade:  s.configService.CapacidadeDoDia(ctx, created.Data, created.ColabQtd),
	}, nil
}

func (s *ConcretagemService) Atualizar(ctx context.Context, id int64, payload dto.UpdateConcretagemDTO, alteradoPor string) (*dto.SalvarConcretagemRespostaDTO, error) {
	before, err := s.concretagemRepo.FindConcretagem(ctx, id)
	if err != nil {
		return nil, err
	}

	set := map[string]interface{}{}

	tipo := before.TipoServico
	if payload.TipoServico != nil {
		if !constants.IsTipoServicoValido(*payload.TipoServico) {
			return nil, apperrors.NewInvalidInputError("tipo de serviço desconhecido: %s", *payload.TipoServico)
		}
		tipo = *payload.TipoServico
		set["tipo_servico"] = tipo
	}

	data := before.Data
	if payload.Data != nil {
		data = *payload.Data
		set["data"] = data
	}
	horaInicio := before.HoraInicio
	if payload.HoraInicio != nil {
		hora, ok := agenda.ParseHora(*payload.HoraInicio)
		if !ok {
			return nil, apperrors.NewInvalidInputError("hora de início inválida: %s", *payload.HoraInicio)
		}
		horaInicio = hora.String()
		set["hora_inicio"] = horaInicio
	}
	duracao := before.DuracaoMin
	if payload.DuracaoMin != nil && *payload.DuracaoMin > 0 {
		duracao = *payload.DuracaoMin
		set["duracao_min"] = duracao
	}
	bomba := before.Bomba
	if payload.Bomba != nil {
		bomba = strings.TrimSpace(*payload.Bomba)
		set["bomba"] = bomba
	}
	equipe := before.Equipe
	if payload.Equipe != nil {
		equipe = strings.TrimSpace(*payload.Equipe)
		set["equipe"] = equipe
	}
	colab := before.ColabQtd
	if payload.ColabQtd != nil && *payload.ColabQtd >= 1 {
		colab = *payload.ColabQtd
		set["colab_qtd"] = colab
	}
	if payload.ObraID != nil {
		set["obra_id"] = *payload.ObraID
	}
	if payload.Status != nil && *payload.Status != "" {
		set["status"] = *payload.Status
	}
	if payload.Usina != nil {
		set["usina"] = *payload.Usina
	}
	if payload.Observacoes != nil {
		set["observacoes"] = *payload.Observacoes
	}

	if tipo == constants.ServicoConcretagem {
		volume := before.VolumeM3
		if payload.VolumeM3 != nil {
			volume = agenda.SafeFloat(*payload.VolumeM3, 0)
			set["volume_m3"] = volume
		}
		capCaminhao := before.CapCaminhaoM3.Float64
		if payload.CapCaminhaoM3 != nil && *payload.CapCaminhaoM3 > 0 {
			capCaminhao = *payload.CapCaminhaoM3
			set["cap_caminhao_m3"] = capCaminhao
		}
		if capCaminhao <= 0 {
			capCaminhao = agenda.CapCaminhaoPadraoM3
		}
		cps := before.CpsPorCaminhao.Int
		if payload.CpsPorCaminhao != nil && *payload.CpsPorCaminhao >= 1 {
			cps = *payload.CpsPorCaminhao
			set["cps_por_caminhao"] = cps
		}
		if cps <= 0 {
			cps = constants.CpsPorCaminhaoPadrao
		}

		// estimativas só se mexem quando alguma entrada delas mudou
		if payload.VolumeM3 != nil || payload.CapCaminhaoM3 != nil || payload.CpsPorCaminhao != nil {
			caminhoes := agenda.CalcCaminhoes(volume, capCaminhao)
			set["caminhoes_est"] = caminhoes
			set["formas_est"] = agenda.CalcCorposProva(caminhoes, cps)
		}

		if payload.FckMpa != nil {
			set["fck_mpa"] = *payload.FckMpa
		}
		if payload.Slump != nil {
			set["slump_txt"] = *payload.Slump
			if mm, ok := agenda.ParseNumero(*payload.Slump); ok {
				set["slump_mm"] = mm
			} else {
				set["slump_mm"] = nil
			}
		}
	} else if payload.TipoServico != nil {
		// mudou para serviço não volumétrico: zera os campos de concreto
		set["volume_m3"] = 0.0
		set["fck_mpa"] = nil
		set["slump_mm"] = nil
		set["slump_txt"] = nil
		set["cap_caminhao_m3"] = nil
		set["cps_por_caminhao"] = nil
		set["caminhoes_est"] = 0
		set["formas_est"] = 0
	}

	if len(set) > 0 {
		set["alterado_por"] = alteradoPor
	}

	conflitos, err := s.conflitosDoDia(ctx, agenda.Candidato{
		Data:       data,
		HoraInicio: horaInicio,
		DuracaoMin: duracao,
		Bomba:      bomba,
		Equipe:     equipe,
	}, id)
	if err != nil {
		return nil, err
	}

	updated, err := s.concretagemRepo.UpdateConcretagem(ctx, id, set)
	if err != nil {
		return nil, err
	}
	s.registrarHistorico(ctx, constants.AcaoUpdate, id, map[string]interface{}{
		"before": before,
		"after":  updated,
	}, alteradoPor)

	var obra *entities.Obra
	if updated.ObraID.Valid {
		obra, _ = s.obraRepo.FindObra(ctx, updated.ObraID.Int64)
	}
	if conflitos == nil {
		conflitos = []agenda.Conflito{}
	}
	return &dto.SalvarConcretagemRespostaDTO{
		Concretagem: concretagemParaDTO(updated, obra),
		Conflitos:   conflitos,
		Capacidade:  s.configService.CapacidadeDoDia(ctx, updated.Data, updated.ColabQtd),
	}, nil
}

// ExcluirComFallback tenta o hard-delete e confere relendo o registro. Se a
// linha sobreviver à exclusão (por exemplo, por política de acesso no banco),
// o registro é marcado como cancelado com uma nota e o histórico recebe
// CANCEL_FALLBACK em vez de DELETE. Devolve true quando apagou de verdade.
func (s *ConcretagemService) ExcluirComFallback(ctx context.Context, id int64, usuario string) (bool, error) {
	before, err := s.concretagemRepo.FindConcretagem(ctx, id)
	if err != nil {
		return false, err
	}

	if err := s.concretagemRepo.DeleteConcretagem(ctx, id); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.logger.Warn("Exclusão falhou, conferindo se a linha sobreviveu", zap.Int64("id", id), zap.Error(err))
	}

	_, err = s.concretagemRepo.FindConcretagem(ctx, id)
	if errors.Is(err, apperrors.ErrNotFound) {
		s.registrarHistorico(ctx, constants.AcaoDelete, id, map[string]interface{}{"before": before}, usuario)
		s.logger.Info("Concretagem excluída", zap.Int64("id", id), zap.String("por", usuario))
		return true, nil
	}
	if err != nil {
		return false, err
	}

	nota := "Exclusão indisponível; registro cancelado automaticamente."
	obs := strings.TrimSpace(before.Observacoes.String)
	if obs != "" {
		nota = obs + "\n" + nota
	}
	if err := s.concretagemRepo.MarcarCancelada(ctx, id, nota, usuario); err != nil {
		return false, err
	}
	s.registrarHistorico(ctx, constants.AcaoCancelFallback, id, map[string]interface{}{
		"before": before,
		"after":  map[string]string{"status": constants.StatusCancelado},
	}, usuario)
	s.logger.Warn("Exclusão caiu no fallback de cancelamento", zap.Int64("id", id))
	return false, nil
}

func (s *ConcretagemService) VerificarConflitos(ctx context.Context, payload dto.ConsultaConflitoDTO) ([]agenda.Conflito, error) {
	var ignorar int64
	if payload.IgnorarID != nil {
		ignorar = *payload.IgnorarID
	}
	conflitos, err := s.conflitosDoDia(ctx, agenda.Candidato{
		Data:       payload.Data,
		HoraInicio: payload.HoraInicio,
		DuracaoMin: payload.DuracaoMin,
		Bomba:      payload.Bomba,
		Equipe:     payload.Equipe,
	}, ignorar)
	if err != nil {
		return nil, err
	}
	if conflitos == nil {
		conflitos = []agenda.Conflito{}
	}
	return conflitos, nil
}

func (s *ConcretagemService) Historico(ctx context.Context, id int64, limit int) ([]dto.HistoricoDTO, error) {
	items, err := s.historicoRepo.ListarPorEntidade(ctx, constants.EntidadeConcretagens, id, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.HistoricoDTO, 0, len(items))
	for _, h := range items {
		out = append(out, dto.HistoricoDTO{
			ID:         h.ID,
			Acao:       h.Acao,
			Entidade:   h.Entidade,
			EntidadeID: h.EntidadeID,
			Detalhes:   h.Detalhes,
			Usuario:    h.Usuario,
			CriadoEm:   h.CriadoEm.Local().Format("2006-01-02 15:04:05"),
		})
	}
	return out, nil
}

// Estimar alimenta as estimativas ao vivo do formulário sem tocar no banco.
func (s *ConcretagemService) Estimar(payload dto.EstimativaDTO) dto.EstimativaRespostaDTO {
	capCaminhao := payload.CapCaminhaoM3
	if capCaminhao <= 0 {
		capCaminhao = agenda.CapCaminhaoPadraoM3
	}
	cps := payload.CpsPorCaminhao
	if cps <= 0 {
		cps = constants.CpsPorCaminhaoPadrao
	}
	caminhoes := agenda.CalcCaminhoes(payload.VolumeM3, capCaminhao)
	return dto.EstimativaRespostaDTO{
		CaminhoesEst:     caminhoes,
		FormasEst:        agenda.CalcCorposProva(caminhoes, cps),
		DuracaoPadraoMin: agenda.DuracaoPadraoMin(payload.VolumeM3),
		VolumeFormatado:  agenda.FmtBR(payload.VolumeM3, 2, true),
	}
}
