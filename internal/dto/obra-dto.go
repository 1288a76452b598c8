package dto

type CreateObraDTO struct {
	Nome         string  `json:"nome" validate:"required,min=2,max=200"`
	Cliente      *string `json:"cliente,omitempty"`
	CNPJ         *string `json:"cnpj,omitempty" validate:"omitempty,cnpj"`
	RazaoSocial  *string `json:"razao_social,omitempty"`
	NomeFantasia *string `json:"nome_fantasia,omitempty"`
	Endereco     *string `json:"endereco,omitempty"`
	Cidade       *string `json:"cidade,omitempty"`
	UF           *string `json:"uf,omitempty" validate:"omitempty,len=2"`
	CEP          *string `json:"cep,omitempty"`
	Responsavel  *string `json:"responsavel,omitempty"`
	Telefone     *string `json:"telefone,omitempty"`
	Observacoes  *string `json:"observacoes,omitempty"`
}

type UpdateObraDTO struct {
	Nome         *string `json:"nome,omitempty" validate:"omitempty,min=2,max=200"`
	Cliente      *string `json:"cliente,omitempty"`
	CNPJ         *string `json:"cnpj,omitempty" validate:"omitempty,cnpj"`
	RazaoSocial  *string `json:"razao_social,omitempty"`
	NomeFantasia *string `json:"nome_fantasia,omitempty"`
	Endereco     *string `json:"endereco,omitempty"`
	Cidade       *string `json:"cidade,omitempty"`
	UF           *string `json:"uf,omitempty" validate:"omitempty,len=2"`
	CEP          *string `json:"cep,omitempty"`
	Responsavel  *string `json:"responsavel,omitempty"`
	Telefone     *string `json:"telefone,omitempty"`
	Observacoes  *string `json:"observacoes,omitempty"`
	Ativo        *bool   `json:"ativo,omitempty"`
}

type ObraDTO struct {
	ID           int64  `json:"id"`
	Nome         string `json:"nome"`
	Cliente      string `json:"cliente,omitempty"`
	CNPJ         string `json:"cnpj,omitempty"`
	RazaoSocial  string `json:"razao_social,omitempty"`
	NomeFantasia string `json:"nome_fantasia,omitempty"`
	Endereco     string `json:"endereco,omitempty"`
	Cidade       string `json:"cidade,omitempty"`
	UF           string `json:"uf,omitempty"`
	CEP          string `json:"cep,omitempty"`
	Responsavel  string `json:"responsavel,omitempty"`
	Telefone     string `json:"telefone,omitempty"`
	Observacoes  string `json:"observacoes,omitempty"`
	Ativo        bool   `json:"ativo"`
	CriadoEm     string `json:"criado_em,omitempty"`
}
