package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"agenda-concretagem/internal/dto"
	"agenda-concretagem/internal/services"
	apperrors "agenda-concretagem/pkg/errors"
	"agenda-concretagem/pkg/utils"
)

type ConfigController struct {
	configService services.ConfigServiceInterface
	logger        *zap.Logger
}

func NewConfigController(configService services.ConfigServiceInterface, logger *zap.Logger) *ConfigController {
	return &ConfigController{configService: configService, logger: logger}
}

func (c *ConfigController) CapacidadeEquipe(ctx echo.Context) error {
	capacidade := c.configService.CapacidadeEquipe(ctx.Request().Context())
	return utils.SuccessResponse(ctx, dto.CapacidadeEquipeDTO{Capacidade: capacidade}, "Capacidade da equipe", http.StatusOK)
}

func (c *ConfigController) DefinirCapacidade(ctx echo.Context) error {
	var payload dto.CapacidadeEquipeDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	usuario, err := utils.GetUsernameFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	if err := c.configService.DefinirCapacidade(ctx.Request().Context(), payload.Capacidade, usuario); err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, payload, "Capacidade atualizada", http.StatusOK)
}

// CapacidadeDoDia projeta a ocupação de colaboradores de uma data, somando
// opcionalmente o efetivo de um agendamento ainda não gravado.
func (c *ConfigController) CapacidadeDoDia(ctx echo.Context) error {
	data := ctx.QueryParam("data")
	if data == "" {
		return utils.ErrorResponse(ctx, apperrors.NewInvalidInputError("informe a data"))
	}
	colabExtra := 0
	if bruto := ctx.QueryParam("colab_qtd"); bruto != "" {
		valor, err := strconv.Atoi(bruto)
		if err != nil || valor < 0 {
			return utils.ErrorResponse(ctx, apperrors.NewInvalidInputError("colab_qtd inválido: %s", bruto))
		}
		colabExtra = valor
	}

	capacidade := c.configService.CapacidadeDoDia(ctx.Request().Context(), data, colabExtra)
	return utils.SuccessResponse(ctx, capacidade, "Capacidade do dia", http.StatusOK)
}
