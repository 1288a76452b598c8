package entities

import (
	"github.com/aarondl/null/v8"

	"agenda-concretagem/pkg/types"
)

type Usuario struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Nome         string    `json:"nome"`
	Perfil       string    `json:"perfil"`
	SenhaHash    string    `json:"-"`
	Ativo        bool      `json:"ativo"`
	UltimoLogin  null.Time `json:"ultimo_login"`

	types.BaseEntity
}
