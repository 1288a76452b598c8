package services

import (
	"context"
	"errors"
	"strconv"

	"go.uber.org/zap"

	"agenda-concretagem/internal/dto"
	"agenda-concretagem/internal/repositories"
	"agenda-concretagem/pkg/agenda"
	"agenda-concretagem/pkg/constants"
	apperrors "agenda-concretagem/pkg/errors"
)

type ConfigServiceInterface interface {
	CapacidadeEquipe(ctx context.Context) int
	DefinirCapacidade(ctx context.Context, capacidade int, atualizadoPor string) error
	CapacidadeDoDia(ctx context.Context, data string, colabExtra int) dto.CapacidadeDTO
}

type ConfigService struct {
	configRepo      repositories.ConfigRepositoryInterface
	concretagemRepo repositories.ConcretagemRepositoryInterface
	logger          *zap.Logger
}

func NewConfigService(
	configRepo repositories.ConfigRepositoryInterface,
	concretagemRepo repositories.ConcretagemRepositoryInterface,
	logger *zap.Logger,
) ConfigServiceInterface {
	return &ConfigService{
		configRepo:      configRepo,
		concretagemRepo: concretagemRepo,
		logger:          logger,
	}
}

// CapacidadeEquipe lê o limite diário de colaboradores. Instalações antigas
// gravavam a chave capacidade_colaboradores; ela ainda é aceita como
// fallback. Valor ausente ou ilegível cai no padrão.
func (s *ConfigService) CapacidadeEquipe(ctx context.Context) int {
	for _, chave := range []string{constants.ChaveCapacidadeEquipe, constants.ChaveCapacidadeLegada} {
		valor, err := s.configRepo.Get(ctx, chave)
		if err != nil {
			if !errors.Is(err, apperrors.ErrNotFound) {
				s.logger.Warn("Erro ao ler configuração de capacidade", zap.String("chave", chave), zap.Error(err))
			}
			continue
		}
		if n, err := strconv.Atoi(valor); err == nil {
			return agenda.CapacidadeMinima(n)
		}
	}
	return constants.CapacidadePadraoEquipe
}

// DefinirCapacidade grava o limite nas duas chaves para que versões antigas
// ainda em produção leiam o mesmo valor.
func (s *ConfigService) DefinirCapacidade(ctx context.Context, capacidade int, atualizadoPor string) error {
	capacidade = agenda.CapacidadeMinima(capacidade)
	valor := strconv.Itoa(capacidade)

	if err := s.configRepo.Set(ctx, constants.ChaveCapacidadeEquipe, valor, atualizadoPor); err != nil {
		return err
	}
	if err := s.configRepo.Set(ctx, constants.ChaveCapacidadeLegada, valor, atualizadoPor); err != nil {
		return err
	}
	s.logger.Info("Capacidade da equipe atualizada", zap.Int("capacidade", capacidade), zap.String("por", atualizadoPor))
	return nil
}

// CapacidadeDoDia soma os colaboradores comprometidos na data e projeta o
// efeito de colabExtra pessoas a mais. Se a soma falhar, a resposta sai com
// Indisponivel em vez de fingir um dia vazio.
func (s *ConfigService) CapacidadeDoDia(ctx context.Context, data string, colabExtra int) dto.CapacidadeDTO {
	capacidade := s.CapacidadeEquipe(ctx)

	comprometido, err := s.concretagemRepo.ColaboradoresComprometidos(ctx, data)
	if err != nil {
		s.logger.Error("Não foi possível apurar colaboradores comprometidos",
			zap.String("data", data), zap.Error(err))
		return dto.CapacidadeDTO{
			Data:         data,
			Capacidade:   capacidade,
			Indisponivel: true,
		}
	}

	out := dto.CapacidadeDTO{
		Data:         data,
		Comprometido: comprometido,
		Capacidade:   capacidade,
		Acima:        agenda.DiaSobrecarregado(comprometido, capacidade),
	}
	if colabExtra > 0 {
		out.Projetado = comprometido + colabExtra
		out.Acima = agenda.AcimaDaCapacidade(comprometido, colabExtra, capacidade)
	}
	return out
}
