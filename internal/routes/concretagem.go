package routes

import (
	"github.com/labstack/echo/v4"

	"agenda-concretagem/internal/controllers"
)

func runConcretagemRouter(secureGroup *echo.Group, concretagemCtrl *controllers.ConcretagemController) {
	{
		secureGroup.GET("/concretagens", concretagemCtrl.Listar)
		secureGroup.GET("/concretagens/periodo", concretagemCtrl.ListarPeriodo)
		secureGroup.POST("/concretagens", concretagemCtrl.Criar)
		secureGroup.POST("/concretagens/conflitos", concretagemCtrl.VerificarConflitos)
		secureGroup.POST("/concretagens/estimar", concretagemCtrl.Estimar)
		secureGroup.GET("/concretagens/:id", concretagemCtrl.Buscar)
		secureGroup.PUT("/concretagens/:id", concretagemCtrl.Atualizar)
		secureGroup.DELETE("/concretagens/:id", concretagemCtrl.Excluir)
		secureGroup.GET("/concretagens/:id/historico", concretagemCtrl.Historico)
	}
}
