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

type ObraController struct {
	obraService services.ObraServiceInterface
	logger      *zap.Logger
}

func NewObraController(obraService services.ObraServiceInterface, logger *zap.Logger) *ObraController {
	return &ObraController{obraService: obraService, logger: logger}
}

func parseID(ctx echo.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewInvalidInputError("id inválido: %s", ctx.Param("id"))
	}
	return id, nil
}

func (c *ObraController) GetObras(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	obras, total, err := c.obraService.GetObras(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, map[string]interface{}{
		"obras": obras,
		"total": total,
	}, "Lista de obras", http.StatusOK)
}

func (c *ObraController) FindObra(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	obra, err := c.obraService.FindObra(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, obra, "Obra encontrada", http.StatusOK)
}

func (c *ObraController) CreateObra(ctx echo.Context) error {
	var payload dto.CreateObraDTO
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

	obra, err := c.obraService.CreateObra(ctx.Request().Context(), payload, usuario)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, obra, "Obra criada", http.StatusCreated)
}

func (c *ObraController) UpdateObra(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	var payload dto.UpdateObraDTO
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

	obra, err := c.obraService.UpdateObra(ctx.Request().Context(), id, payload, usuario)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, obra, "Obra atualizada", http.StatusOK)
}

func (c *ObraController) DeleteObra(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	if err := c.obraService.DeleteObra(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, nil, "Obra excluída", http.StatusOK)
}

// ConsultarCNPJ pré-preenche o formulário de obra com os dados cadastrais
// do CNPJ informado.
func (c *ObraController) ConsultarCNPJ(ctx echo.Context) error {
	payload, err := c.obraService.ConsultarCNPJ(ctx.Request().Context(), ctx.Param("cnpj"))
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, payload, "CNPJ consultado", http.StatusOK)
}
