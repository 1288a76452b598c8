package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"agenda-concretagem/internal/entities"
	apperrors "agenda-concretagem/pkg/errors"
)

const (
	usuarioTable  = "usuarios"
	usuarioFields = "id, username, nome, perfil, senha_hash, ativo, ultimo_login, criado_em, atualizado_em"
)

type UsuarioRepositoryInterface interface {
	FindUsuario(ctx context.Context, id int64) (*entities.Usuario, error)
	FindPorUsername(ctx context.Context, username string) (*entities.Usuario, error)
	CreateUsuario(ctx context.Context, u entities.Usuario) (*entities.Usuario, error)
	RegistrarLogin(ctx context.Context, id int64) error
	CountUsuarios(ctx context.Context) (int64, error)
}

type usuarioRepository struct{ storage *pgxpool.Pool }

func NewUsuarioRepository(storage *pgxpool.Pool) UsuarioRepositoryInterface {
	return &usuarioRepository{storage: storage}
}

func scanUsuario(row pgx.Row) (*entities.Usuario, error) {
	var u entities.Usuario
	err := row.Scan(&u.ID, &u.Username, &u.Nome, &u.Perfil, &u.SenhaHash,
		&u.Ativo, &u.UltimoLogin, &u.CriadoEm, &u.AtualizadoEm)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepository) FindUsuario(ctx context.Context, id int64) (*entities.Usuario, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", usuarioFields, usuarioTable)
	return scanUsuario(r.storage.QueryRow(ctx, query, id))
}

func (r *usuarioRepository) FindPorUsername(ctx context.Context, username string) (*entities.Usuario, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE LOWER(username) = LOWER($1) LIMIT 1", usuarioFields, usuarioTable)
	return scanUsuario(r.storage.QueryRow(ctx, query, username))
}

func (r *usuarioRepository) CreateUsuario(ctx context.Context, u entities.Usuario) (*entities.Usuario, error) {
	query := fmt.Sprintf(`INSERT INTO %s (username, nome, perfil, senha_hash, ativo)
		VALUES ($1, $2, $3, $4, $5) RETURNING %s`, usuarioTable, usuarioFields)
	created, err := scanUsuario(r.storage.QueryRow(ctx, query, u.Username, u.Nome, u.Perfil, u.SenhaHash, u.Ativo))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.ErrConflict
		}
		return nil, err
	}
	return created, nil
}

func (r *usuarioRepository) RegistrarLogin(ctx context.Context, id int64) error {
	query := fmt.Sprintf("UPDATE %s SET ultimo_login = NOW() WHERE id = $1", usuarioTable)
	_, err := r.storage.Exec(ctx, query, id)
	return err
}

func (r *usuarioRepository) CountUsuarios(ctx context.Context) (int64, error) {
	var total int64
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", usuarioTable)
	if err := r.storage.QueryRow(ctx, query).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
