package routes

import (
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"agenda-concretagem/internal/controllers"
	"agenda-concretagem/internal/integrations/cnpj"
	"agenda-concretagem/internal/repositories"
	"agenda-concretagem/internal/services"
	"agenda-concretagem/pkg/config"
	"agenda-concretagem/pkg/middleware"
	"agenda-concretagem/pkg/service"
)

type Loggers struct {
	Main   *zap.Logger
	Auth   *zap.Logger
	Agenda *zap.Logger
}

func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, jwtSvc service.JWTService, loggers *Loggers, cfg *config.Config) {
	loggers.Main.Info("InitRouter: registrando rotas")

	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, loggers.Auth)

	fuso, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		loggers.Main.Warn("Fuso horário inválido, usando UTC", zap.String("tz", cfg.App.Timezone), zap.Error(err))
		fuso = time.UTC
	}

	// --- REPOSITÓRIOS ---
	usuarioRepo := repositories.NewUsuarioRepository(dbConn)
	obraRepo := repositories.NewObraRepository(dbConn)
	concretagemRepo := repositories.NewConcretagemRepository(dbConn)
	historicoRepo := repositories.NewHistoricoRepository(dbConn)
	configRepo := repositories.NewConfigRepository(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	// --- SERVIÇOS ---
	cnpjClient := cnpj.NewClient(cacheRepo, cfg.App.CNPJCacheTTL, loggers.Main)
	authService := services.NewAuthService(usuarioRepo, jwtSvc, loggers.Auth)
	obraService := services.NewObraService(obraRepo, cnpjClient, loggers.Main)
	configService := services.NewConfigService(configRepo, concretagemRepo, loggers.Main)
	concretagemService := services.NewConcretagemService(concretagemRepo, obraRepo, historicoRepo, configService, loggers.Agenda)
	dashboardService := services.NewDashboardService(concretagemService, configService, fuso, loggers.Agenda)

	// --- CONTROLLERS ---
	authController := controllers.NewAuthController(authService, loggers.Auth)
	obraController := controllers.NewObraController(obraService, loggers.Main)
	concretagemController := controllers.NewConcretagemController(concretagemService, loggers.Agenda)
	configController := controllers.NewConfigController(configService, loggers.Main)
	dashboardController := controllers.NewDashboardController(dashboardService, loggers.Agenda)
	relatorioController := controllers.NewRelatorioController(concretagemService, loggers.Agenda)

	// --- ROTAS ---
	secureGroup := api.Group("", authMW.Auth)

	runAuthRouter(api, authController)
	runObraRouter(secureGroup, obraController)
	runConcretagemRouter(secureGroup, concretagemController)
	runConfigRouter(secureGroup, configController, authMW)
	runDashboardRouter(secureGroup, dashboardController)
	runRelatorioRouter(secureGroup, relatorioController)

	loggers.Main.Info("InitRouter: rotas registradas")
}
