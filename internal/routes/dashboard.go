package routes

import (
	"github.com/labstack/echo/v4"

	"agenda-concretagem/internal/controllers"
)

func runDashboardRouter(secureGroup *echo.Group, dashboardCtrl *controllers.DashboardController) {
	secureGroup.GET("/dashboard", dashboardCtrl.ProximosDias)
}
