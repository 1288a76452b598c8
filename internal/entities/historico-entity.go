package entities

import "time"

// Historico é um registro de auditoria apenas-inserção: nunca é alterado
// nem excluído. Detalhes carrega o JSON {"before": ..., "after": ...}.
type Historico struct {
	ID         int64     `json:"id"`
	Acao       string    `json:"acao"`
	Entidade   string    `json:"entidade"`
	EntidadeID int64     `json:"entidade_id"`
	Detalhes   []byte    `json:"detalhes"`
	Usuario    string    `json:"usuario"`
	CriadoEm   time.Time `json:"criado_em"`
}
