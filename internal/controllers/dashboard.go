package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"agenda-concretagem/internal/services"
	"agenda-concretagem/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
	logger           *zap.Logger
}

func NewDashboardController(dashboardService services.DashboardServiceInterface, logger *zap.Logger) *DashboardController {
	return &DashboardController{dashboardService: dashboardService, logger: logger}
}

func (c *DashboardController) ProximosDias(ctx echo.Context) error {
	dias, _ := strconv.Atoi(ctx.QueryParam("dias"))

	painel, err := c.dashboardService.ProximosDias(ctx.Request().Context(), dias)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, painel, "Visão geral da agenda", http.StatusOK)
}
