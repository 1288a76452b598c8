package routes

import (
	"github.com/labstack/echo/v4"

	"agenda-concretagem/internal/controllers"
)

func runRelatorioRouter(secureGroup *echo.Group, relatorioCtrl *controllers.RelatorioController) {
	secureGroup.GET("/relatorios/agenda", relatorioCtrl.RelatorioPeriodo)
}
