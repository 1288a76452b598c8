package routes

import (
	"github.com/labstack/echo/v4"

	"agenda-concretagem/internal/controllers"
)

func runObraRouter(secureGroup *echo.Group, obraCtrl *controllers.ObraController) {
	{
		secureGroup.GET("/obras", obraCtrl.GetObras)
		secureGroup.POST("/obras", obraCtrl.CreateObra)
		secureGroup.GET("/obras/:id", obraCtrl.FindObra)
		secureGroup.PUT("/obras/:id", obraCtrl.UpdateObra)
		secureGroup.DELETE("/obras/:id", obraCtrl.DeleteObra)
		secureGroup.GET("/cnpj/:cnpj", obraCtrl.ConsultarCNPJ)
	}
}
