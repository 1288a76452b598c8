package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"agenda-concretagem/internal/repositories"
	"agenda-concretagem/internal/routes"
	"agenda-concretagem/internal/services"
	"agenda-concretagem/pkg/config"
	"agenda-concretagem/pkg/customvalidator"
	"agenda-concretagem/pkg/database/postgresql"
	applogger "agenda-concretagem/pkg/logger"
	"agenda-concretagem/pkg/service"
	"agenda-concretagem/pkg/utils"
)

func main() {
	e := echo.New()
	logger := applogger.NewLogger()
	cfg := config.New()

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("Pânico capturado",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				utils.ErrorResponse(c, echo.NewHTTPError(http.StatusInternalServerError, "Erro interno do servidor"))
			}
			return err
		},
	}))

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
		ExposeHeaders:    []string{"Content-Disposition"},
	}))

	v := validator.New()
	if err := customvalidator.RegisterCustomValidations(v); err != nil {
		logger.Fatal("Erro ao registrar as validações customizadas", zap.Error(err))
	}
	e.Validator = utils.NewValidator(v)

	dbConn := postgresql.ConnectDB()
	defer dbConn.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logger.Fatal("Não foi possível conectar ao Redis", zap.Error(err), zap.String("address", cfg.Redis.Address))
	}
	log.Println("✅ Conectado ao Redis")

	jwtSvc := service.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL, cfg.JWT.RefreshTokenTTL)

	// Primeira subida em banco vazio: cria o usuário administrador padrão
	usuarioRepo := repositories.NewUsuarioRepository(dbConn)
	authService := services.NewAuthService(usuarioRepo, jwtSvc, logger)
	adminUser := os.Getenv("ADMIN_USERNAME")
	if adminUser == "" {
		adminUser = "admin"
	}
	adminSenha := os.Getenv("ADMIN_PASSWORD")
	if adminSenha == "" {
		adminSenha = "admin123"
	}
	if err := authService.EnsureDefaultAdmin(context.Background(), adminUser, adminSenha); err != nil {
		logger.Fatal("Não foi possível garantir o administrador padrão", zap.Error(err))
	}

	loggers := &routes.Loggers{
		Main:   logger,
		Auth:   logger.Named("auth"),
		Agenda: logger.Named("agenda"),
	}
	routes.InitRouter(e, dbConn, redisClient, jwtSvc, loggers, cfg)

	logger.Info("🚀 Servidor iniciado", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		logger.Fatal("Erro ao iniciar o servidor", zap.Error(err))
	}
}
