package utils

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apperrors "agenda-concretagem/pkg/errors"
)

type HttpResponse struct {
	Status  bool        `json:"status"`
	Body    interface{} `json:"body,omitempty"`
	Message string      `json:"message"`
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int) error {
	return ctx.JSON(code, &HttpResponse{
		Status:  true,
		Body:    body,
		Message: message,
	})
}

func ErrorResponse(ctx echo.Context, err error) error {
	message := err.Error()
	code := http.StatusInternalServerError

	for sentinela, statusCode := range ErrorList {
		if errors.Is(err, sentinela) {
			message = sentinela.Error()
			code = statusCode
			break
		}
	}

	var entradaInvalida *apperrors.InvalidInputError
	if errors.As(err, &entradaInvalida) {
		message = entradaInvalida.Message
		code = http.StatusBadRequest
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		if m, ok := httpErr.Message.(string); ok {
			message = m
		}
	}

	var validacao validator.ValidationErrors
	if errors.As(err, &validacao) {
		message = "dados inválidos: " + validacao.Error()
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, &HttpResponse{
		Status:  false,
		Body:    struct{}{},
		Message: message,
	})
}
