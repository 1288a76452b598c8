package services

import (
	"context"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"agenda-concretagem/internal/dto"
	"agenda-concretagem/internal/entities"
	"agenda-concretagem/internal/integrations/cnpj"
	"agenda-concretagem/internal/repositories"
	"agenda-concretagem/pkg/agenda"
	"agenda-concretagem/pkg/types"
)

type ObraServiceInterface interface {
	GetObras(ctx context.Context, filter types.Filter) ([]dto.ObraDTO, uint64, error)
	FindObra(ctx context.Context, id int64) (*dto.ObraDTO, error)
	CreateObra(ctx context.Context, payload dto.CreateObraDTO, criadoPor string) (*dto.ObraDTO, error)
	UpdateObra(ctx context.Context, id int64, payload dto.UpdateObraDTO, alteradoPor string) (*dto.ObraDTO, error)
	DeleteObra(ctx context.Context, id int64) error
	ConsultarCNPJ(ctx context.Context, cnpjBruto string) (*dto.CNPJDTO, error)
}

type ObraService struct {
	obraRepo   repositories.ObraRepositoryInterface
	cnpjClient *cnpj.Client
	logger     *zap.Logger
}

func NewObraService(
	obraRepo repositories.ObraRepositoryInterface,
	cnpjClient *cnpj.Client,
	logger *zap.Logger,
) ObraServiceInterface {
	return &ObraService{
		obraRepo:   obraRepo,
		cnpjClient: cnpjClient,
		logger:     logger,
	}
}

func obraParaDTO(o *entities.Obra) dto.ObraDTO {
	out := dto.ObraDTO{
		ID:           o.ID,
		Nome:         o.Nome,
		Cliente:      o.Cliente.String,
		CNPJ:         o.CNPJ.String,
		RazaoSocial:  o.RazaoSocial.String,
		NomeFantasia: o.NomeFantasia.String,
		Endereco:     o.Endereco.String,
		Cidade:       o.Cidade.String,
		UF:           o.UF.String,
		CEP:          o.CEP.String,
		Responsavel:  o.Responsavel.String,
		Telefone:     o.Telefone.String,
		Observacoes:  o.Observacoes.String,
		Ativo:        o.Ativo,
	}
	if o.CriadoEm != nil {
		out.CriadoEm = o.CriadoEm.Local().Format("2006-01-02 15:04:05")
	}
	return out
}

func (s *ObraService) GetObras(ctx context.Context, filter types.Filter) ([]dto.ObraDTO, uint64, error) {
	obras, total, err := s.obraRepo.GetObras(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.ObraDTO, 0, len(obras))
	for i := range obras {
		out = append(out, obraParaDTO(&obras[i]))
	}
	return out, total, nil
}

func (s *ObraService) FindObra(ctx context.Context, id int64) (*dto.ObraDTO, error) {
	obra, err := s.obraRepo.FindObra(ctx, id)
	if err != nil {
		return nil, err
	}
	out := obraParaDTO(obra)
	return &out, nil
}

func nullDePonteiro(v *string) null.String {
	if v == nil {
		return null.String{}
	}
	return null.StringFrom(*v)
}

func (s *ObraService) CreateObra(ctx context.Context, payload dto.CreateObraDTO, criadoPor string) (*dto.ObraDTO, error) {
	obra := entities.Obra{
		Nome:         payload.Nome,
		Cliente:      nullDePonteiro(payload.Cliente),
		RazaoSocial:  nullDePonteiro(payload.RazaoSocial),
		NomeFantasia: nullDePonteiro(payload.NomeFantasia),
		Endereco:     nullDePonteiro(payload.Endereco),
		Cidade:       nullDePonteiro(payload.Cidade),
		UF:           nullDePonteiro(payload.UF),
		CEP:          nullDePonteiro(payload.CEP),
		Responsavel:  nullDePonteiro(payload.Responsavel),
		Telefone:     nullDePonteiro(payload.Telefone),
		Observacoes:  nullDePonteiro(payload.Observacoes),
		Ativo:        true,
		CriadoPor:    null.StringFrom(criadoPor),
	}
	if payload.CNPJ != nil {
		obra.CNPJ = null.StringFrom(agenda.SomenteDigitos(*payload.CNPJ))
	}

	created, err := s.obraRepo.CreateObra(ctx, obra)
	if err != nil {
		s.logger.Error("Erro ao criar obra", zap.Error(err))
		return nil, err
	}
	s.logger.Info("Obra criada", zap.Int64("id", created.ID), zap.String("nome", created.Nome))
	out := obraParaDTO(created)
	return &out, nil
}

func (s *ObraService) UpdateObra(ctx context.Context, id int64, payload dto.UpdateObraDTO, alteradoPor string) (*dto.ObraDTO, error) {
	set := map[string]interface{}{}
	if payload.Nome != nil {
		set["nome"] = *payload.Nome
	}
	if payload.Cliente != nil {
		set["cliente"] = *payload.Cliente
	}
	if payload.CNPJ != nil {
		set["cnpj"] = agenda.SomenteDigitos(*payload.CNPJ)
	}
	if payload.RazaoSocial != nil {
		set["razao_social"] = *payload.RazaoSocial
	}
	if payload.NomeFantasia != nil {
		set["nome_fantasia"] = *payload.NomeFantasia
	}
	if payload.Endereco != nil {
		set["endereco"] = *payload.Endereco
	}
	if payload.Cidade != nil {
		set["cidade"] = *payload.Cidade
	}
	if payload.UF != nil {
		set["uf"] = *payload.UF
	}
	if payload.CEP != nil {
		set["cep"] = *payload.CEP
	}
	if payload.Responsavel != nil {
		set["responsavel"] = *payload.Responsavel
	}
	if payload.Telefone != nil {
		set["telefone"] = *payload.Telefone
	}
	if payload.Observacoes != nil {
		set["observacoes"] = *payload.Observacoes
	}
	if payload.Ativo != nil {
		set["ativo"] = *payload.Ativo
	}
	if len(set) > 0 {
		set["alterado_por"] = alteradoPor
	}

	updated, err := s.obraRepo.UpdateObra(ctx, id, set)
	if err != nil {
		return nil, err
	}
	out := obraParaDTO(updated)
	return &out, nil
}

func (s *ObraService) DeleteObra(ctx context.Context, id int64) error {
	return s.obraRepo.DeleteObra(ctx, id)
}

func (s *ObraService) ConsultarCNPJ(ctx context.Context, cnpjBruto string) (*dto.CNPJDTO, error) {
	return s.cnpjClient.Consultar(ctx, cnpjBruto)
}
