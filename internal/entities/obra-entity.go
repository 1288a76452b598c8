package entities

import (
	"github.com/aarondl/null/v8"

	"agenda-concretagem/pkg/types"
)

type Obra struct {
	ID           int64       `json:"id"`
	Nome         string      `json:"nome"`
	Cliente      null.String `json:"cliente"`
	Cidade       null.String `json:"cidade"`
	UF           null.String `json:"uf"`
	CEP          null.String `json:"cep"`
	Endereco     null.String `json:"endereco"`
	Responsavel  null.String `json:"responsavel"`
	Telefone     null.String `json:"telefone"`
	CNPJ         null.String `json:"cnpj"`
	RazaoSocial  null.String `json:"razao_social"`
	NomeFantasia null.String `json:"nome_fantasia"`
	Observacoes  null.String `json:"observacoes"`
	Ativo        bool        `json:"ativo"`
	CriadoPor    null.String `json:"criado_por"`
	AlteradoPor  null.String `json:"alterado_por"`

	types.BaseEntity
}
