package dto

// CNPJDTO é o resultado normalizado da consulta de CNPJ, igual para
// qualquer provedor que tenha respondido.
type CNPJDTO struct {
	CNPJ            string `json:"cnpj"`
	RazaoSocial     string `json:"razao_social"`
	NomeFantasia    string `json:"nome_fantasia,omitempty"`
	Endereco        string `json:"endereco,omitempty"`
	Cidade          string `json:"cidade,omitempty"`
	UF              string `json:"uf,omitempty"`
	CEP             string `json:"cep,omitempty"`
	ClienteSugerido string `json:"cliente_sugerido"`
}
