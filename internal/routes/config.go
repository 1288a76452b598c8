package routes

import (
	"github.com/labstack/echo/v4"

	"agenda-concretagem/internal/controllers"
	"agenda-concretagem/pkg/middleware"
)

func runConfigRouter(secureGroup *echo.Group, configCtrl *controllers.ConfigController, authMW *middleware.AuthMiddleware) {
	{
		secureGroup.GET("/config/capacidade", configCtrl.CapacidadeEquipe)
		secureGroup.PUT("/config/capacidade", configCtrl.DefinirCapacidade, authMW.ApenasAdmin)
		secureGroup.GET("/capacidade/dia", configCtrl.CapacidadeDoDia)
	}
}
