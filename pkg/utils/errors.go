package utils

import (
	"net/http"

	apperrors "agenda-concretagem/pkg/errors"
)

var ErrorList = map[error]int{
	apperrors.ErrNotFound:                       http.StatusNotFound,
	apperrors.ErrBadRequest:                     http.StatusBadRequest,
	apperrors.ErrNaoAutorizado:                  http.StatusUnauthorized,
	apperrors.ErrAcessoNegado:                   http.StatusForbidden,
	apperrors.ErrCredenciaisInvalidas:           http.StatusUnauthorized,
	apperrors.ErrUsuarioInativo:                 http.StatusForbidden,
	apperrors.ErrCabecalhoAuthVazio:             http.StatusUnauthorized,
	apperrors.ErrCabecalhoAuthInvalido:          http.StatusUnauthorized,
	apperrors.ErrTokenInvalido:                  http.StatusUnauthorized,
	apperrors.ErrTokenExpirado:                  http.StatusUnauthorized,
	apperrors.ErrTokenNaoEhAccess:               http.StatusUnauthorized,
	apperrors.ErrMetodoAssinaturaInvalido:       http.StatusUnauthorized,
	apperrors.ErrUsuarioNaoEncontradoNoContexto: http.StatusUnauthorized,
	apperrors.ErrCapacidadeIndisponivel:         http.StatusServiceUnavailable,
}
