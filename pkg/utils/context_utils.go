package utils

import (
	"context"

	"agenda-concretagem/pkg/contextkeys"
	apperrors "agenda-concretagem/pkg/errors"
)

func GetUserIDFromCtx(ctx context.Context) (int64, error) {
	id, ok := ctx.Value(contextkeys.UserIDKey).(int64)
	if !ok || id == 0 {
		return 0, apperrors.ErrUsuarioNaoEncontradoNoContexto
	}
	return id, nil
}

// GetUsernameFromCtx devolve o usuário que assina os campos de auditoria
// (criado_por/alterado_por e histórico).
func GetUsernameFromCtx(ctx context.Context) (string, error) {
	u, ok := ctx.Value(contextkeys.UsernameKey).(string)
	if !ok || u == "" {
		return "", apperrors.ErrUsuarioNaoEncontradoNoContexto
	}
	return u, nil
}

func GetPerfilFromCtx(ctx context.Context) string {
	p, _ := ctx.Value(contextkeys.PerfilKey).(string)
	return p
}
