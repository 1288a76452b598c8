package dto

import "encoding/json"

type HistoricoDTO struct {
	ID         int64           `json:"id"`
	Acao       string          `json:"acao"`
	Entidade   string          `json:"entidade"`
	EntidadeID int64           `json:"entidade_id"`
	Detalhes   json.RawMessage `json:"detalhes,omitempty"`
	Usuario    string          `json:"usuario"`
	CriadoEm   string          `json:"criado_em"`
}
