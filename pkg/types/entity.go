package types

import "time"

type BaseEntity struct {
	CriadoEm     *time.Time `json:"criado_em" db:"criado_em"`
	AtualizadoEm *time.Time `json:"atualizado_em" db:"atualizado_em"`
}
