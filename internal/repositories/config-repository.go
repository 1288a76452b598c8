package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	apperrors "agenda-concretagem/pkg/errors"
)

const configTable = "config"

type ConfigRepositoryInterface interface {
	Get(ctx context.Context, chave string) (string, error)
	Set(ctx context.Context, chave, valor, atualizadoPor string) error
}

type configRepository struct{ storage *pgxpool.Pool }

func NewConfigRepository(storage *pgxpool.Pool) ConfigRepositoryInterface {
	return &configRepository{storage: storage}
}

func (r *configRepository) Get(ctx context.Context, chave string) (string, error) {
	query := fmt.Sprintf("SELECT valor FROM %s WHERE chave = $1", configTable)
	var valor string
	err := r.storage.QueryRow(ctx, query, chave).Scan(&valor)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", err
	}
	return valor, nil
}

func (r *configRepository) Set(ctx context.Context, chave, valor, atualizadoPor string) error {
	query := fmt.Sprintf(`INSERT INTO %s (chave, valor, atualizado_por, atualizado_em)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (chave) DO UPDATE
		SET valor = EXCLUDED.valor, atualizado_por = EXCLUDED.atualizado_por, atualizado_em = NOW()`, configTable)
	_, err := r.storage.Exec(ctx, query, chave, valor, atualizadoPor)
	return err
}
