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

type ConcretagemController struct {
	concretagemService services.ConcretagemServiceInterface
	logger             *zap.Logger
}

func NewConcretagemController(
	concretagemService services.ConcretagemServiceInterface,
	logger *zap.Logger,
) *ConcretagemController {
	return &ConcretagemController{concretagemService: concretagemService, logger: logger}
}

func (c *ConcretagemController) Listar(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	concretagens, total, err := c.concretagemService.Listar(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, map[string]interface{}{
		"concretagens": concretagens,
		"total":        total,
	}, "Agenda de concretagens", http.StatusOK)
}

// ListarPeriodo devolve a agenda de um intervalo de datas já ordenada por
// data e hora de início. Usada pelo calendário semanal.
func (c *ConcretagemController) ListarPeriodo(ctx echo.Context) error {
	dataDe := ctx.QueryParam("data_de")
	dataAte := ctx.QueryParam("data_ate")
	if dataDe == "" || dataAte == "" {
		return utils.ErrorResponse(ctx, apperrors.NewInvalidInputError("informe data_de e data_ate"))
	}

	concretagens, err := c.concretagemService.ListarPeriodo(ctx.Request().Context(), dataDe, dataAte)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, concretagens, "Agenda do período", http.StatusOK)
}

func (c *ConcretagemController) Buscar(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	concretagem, err := c.concretagemService.Buscar(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, concretagem, "Concretagem encontrada", http.StatusOK)
}

func (c *ConcretagemController) Criar(ctx echo.Context) error {
	var payload dto.CreateConcretagemDTO
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

	resposta, err := c.concretagemService.Criar(ctx.Request().Context(), payload, usuario)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, resposta, "Concretagem agendada", http.StatusCreated)
}

func (c *ConcretagemController) Atualizar(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	var payload dto.UpdateConcretagemDTO
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

	resposta, err := c.concretagemService.Atualizar(ctx.Request().Context(), id, payload, usuario)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, resposta, "Concretagem atualizada", http.StatusOK)
}

// Excluir tenta a remoção definitiva e informa no corpo se o registro foi de
// fato apagado ou apenas cancelado como contingência.
func (c *ConcretagemController) Excluir(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	usuario, err := utils.GetUsernameFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	hardDeleted, err := c.concretagemService.ExcluirComFallback(ctx.Request().Context(), id, usuario)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	mensagem := "Concretagem excluída"
	if !hardDeleted {
		mensagem = "Exclusão indisponível; registro cancelado"
	}
	return utils.SuccessResponse(ctx, dto.ExclusaoRespostaDTO{HardDeleted: hardDeleted}, mensagem, http.StatusOK)
}

func (c *ConcretagemController) VerificarConflitos(ctx echo.Context) error {
	var payload dto.ConsultaConflitoDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	conflitos, err := c.concretagemService.VerificarConflitos(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, conflitos, "Conflitos verificados", http.StatusOK)
}

func (c *ConcretagemController) Historico(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	limit, _ := strconv.Atoi(ctx.QueryParam("limit"))

	historico, err := c.concretagemService.Historico(ctx.Request().Context(), id, limit)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, historico, "Histórico da concretagem", http.StatusOK)
}

func (c *ConcretagemController) Estimar(ctx echo.Context) error {
	var payload dto.EstimativaDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	return utils.SuccessResponse(ctx, c.concretagemService.Estimar(payload), "Estimativas calculadas", http.StatusOK)
}
