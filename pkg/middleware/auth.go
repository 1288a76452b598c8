package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"agenda-concretagem/pkg/contextkeys"
	apperrors "agenda-concretagem/pkg/errors"
	"agenda-concretagem/pkg/service"
	"agenda-concretagem/pkg/utils"
)

type AuthMiddleware struct {
	jwtService service.JWTService
	logger     *zap.Logger
}

func NewAuthMiddleware(jwtSvc service.JWTService, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtSvc,
		logger:     logger,
	}
}

// Auth valida o bearer token e injeta a identidade no contexto da requisição.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			m.logger.Warn("AuthMiddleware: cabeçalho Authorization vazio")
			return utils.ErrorResponse(c, apperrors.ErrCabecalhoAuthVazio)
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			m.logger.Warn("AuthMiddleware: formato inválido do cabeçalho Authorization")
			return utils.ErrorResponse(c, apperrors.ErrCabecalhoAuthInvalido)
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			m.logger.Warn("AuthMiddleware: token rejeitado", zap.Error(err))
			return utils.ErrorResponse(c, err)
		}

		if claims.IsRefreshToken {
			m.logger.Warn("AuthMiddleware: tentativa de acesso com refresh token")
			return utils.ErrorResponse(c, apperrors.ErrTokenNaoEhAccess)
		}

		ctx := c.Request().Context()
		ctx = context.WithValue(ctx, contextkeys.UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, contextkeys.UsernameKey, claims.Username)
		ctx = context.WithValue(ctx, contextkeys.PerfilKey, claims.Perfil)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// ApenasAdmin restringe a rota ao perfil admin (usado pela config de capacidade
// e pela gestão de usuários).
func (m *AuthMiddleware) ApenasAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		perfil := utils.GetPerfilFromCtx(c.Request().Context())
		if perfil != "admin" {
			m.logger.Warn("AuthMiddleware: acesso negado, perfil insuficiente", zap.String("perfil", perfil))
			return utils.ErrorResponse(c, apperrors.ErrAcessoNegado)
		}
		return next(c)
	}
}
