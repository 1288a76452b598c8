package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"agenda-concretagem/internal/dto"
	"agenda-concretagem/internal/entities"
	"agenda-concretagem/internal/repositories"
	"agenda-concretagem/pkg/constants"
	apperrors "agenda-concretagem/pkg/errors"
	"agenda-concretagem/pkg/service"
	"agenda-concretagem/pkg/utils"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.TokenDTO, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.TokenDTO, error)
	EnsureDefaultAdmin(ctx context.Context, username, senha string) error
}

type AuthService struct {
	usuarioRepo repositories.UsuarioRepositoryInterface
	jwtService  service.JWTService
	logger      *zap.Logger
}

func NewAuthService(
	usuarioRepo repositories.UsuarioRepositoryInterface,
	jwtService service.JWTService,
	logger *zap.Logger,
) AuthServiceInterface {
	return &AuthService{
		usuarioRepo: usuarioRepo,
		jwtService:  jwtService,
		logger:      logger,
	}
}

func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.TokenDTO, error) {
	usuario, err := s.usuarioRepo.FindPorUsername(ctx, payload.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrCredenciaisInvalidas
		}
		return nil, err
	}
	if !usuario.Ativo {
		return nil, apperrors.ErrUsuarioInativo
	}
	if err := utils.ComparePasswords(usuario.SenhaHash, payload.Senha); err != nil {
		s.logger.Warn("Tentativa de login com senha incorreta", zap.String("username", payload.Username))
		return nil, apperrors.ErrCredenciaisInvalidas
	}

	accessToken, refreshToken, err := s.jwtService.GenerateTokens(usuario.ID, usuario.Username, usuario.Perfil)
	if err != nil {
		return nil, err
	}

	if err := s.usuarioRepo.RegistrarLogin(ctx, usuario.ID); err != nil {
		s.logger.Warn("Não foi possível registrar o último login", zap.Error(err))
	}

	return &dto.TokenDTO{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Usuario: dto.UsuarioDTO{
			ID:       usuario.ID,
			Username: usuario.Username,
			Nome:     usuario.Nome,
			Perfil:   usuario.Perfil,
		},
	}, nil
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenDTO, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, apperrors.ErrTokenInvalido
	}
	if !claims.IsRefreshToken {
		return nil, apperrors.ErrTokenInvalido
	}

	usuario, err := s.usuarioRepo.FindUsuario(ctx, claims.UserID)
	if err != nil {
		return nil, apperrors.ErrCredenciaisInvalidas
	}
	if !usuario.Ativo {
		return nil, apperrors.ErrUsuarioInativo
	}

	access, refresh, err := s.jwtService.GenerateTokens(usuario.ID, usuario.Username, usuario.Perfil)
	if err != nil {
		return nil, err
	}
	return &dto.TokenDTO{
		AccessToken:  access,
		RefreshToken: refresh,
		Usuario: dto.UsuarioDTO{
			ID:       usuario.ID,
			Username: usuario.Username,
			Nome:     usuario.Nome,
			Perfil:   usuario.Perfil,
		},
	}, nil
}

// EnsureDefaultAdmin cria o usuário administrador inicial quando a base está
// vazia, para a primeira entrada no sistema.
func (s *AuthService) EnsureDefaultAdmin(ctx context.Context, username, senha string) error {
	total, err := s.usuarioRepo.CountUsuarios(ctx)
	if err != nil {
		return err
	}
	if total > 0 {
		return nil
	}

	hash, err := utils.HashPassword(senha)
	if err != nil {
		return err
	}
	_, err = s.usuarioRepo.CreateUsuario(ctx, entities.Usuario{
		Username:  username,
		Nome:      "Administrador",
		Perfil:    constants.PerfilAdmin,
		SenhaHash: hash,
		Ativo:     true,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil
		}
		return err
	}
	s.logger.Info("Usuário administrador padrão criado", zap.String("username", username))
	return nil
}
