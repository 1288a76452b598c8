package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"agenda-concretagem/internal/entities"
)

const (
	historicoTable  = "historico"
	historicoFields = "id, acao, entidade, entidade_id, detalhes, usuario, criado_em"
)

// O histórico é apenas-inserção: nenhuma operação de alteração ou exclusão
// existe aqui, nem mesmo quando a entidade auditada é apagada.
type HistoricoRepositoryInterface interface {
	Append(ctx context.Context, h entities.Historico) error
	ListarPorEntidade(ctx context.Context, entidade string, entidadeID int64, limit int) ([]entities.Historico, error)
}

type historicoRepository struct{ storage *pgxpool.Pool }

func NewHistoricoRepository(storage *pgxpool.Pool) HistoricoRepositoryInterface {
	return &historicoRepository{storage: storage}
}

func (r *historicoRepository) Append(ctx context.Context, h entities.Historico) error {
	query := fmt.Sprintf(`INSERT INTO %s (acao, entidade, entidade_id, detalhes, usuario)
		VALUES ($1, $2, $3, $4, $5)`, historicoTable)
	_, err := r.storage.Exec(ctx, query, h.Acao, h.Entidade, h.EntidadeID, h.Detalhes, h.Usuario)
	return err
}

func (r *historicoRepository) ListarPorEntidade(ctx context.Context, entidade string, entidadeID int64, limit int) ([]entities.Historico, error) {
	if limit <= 0 {
		limit = 50
	}
	query := fmt.Sprintf(`SELECT %s FROM %s
		WHERE entidade = $1 AND entidade_id = $2
		ORDER BY criado_em DESC, id DESC
		LIMIT $3`, historicoFields, historicoTable)

	rows, err := r.storage.Query(ctx, query, entidade, entidadeID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]entities.Historico, 0)
	for rows.Next() {
		var h entities.Historico
		if err := rows.Scan(&h.ID, &h.Acao, &h.Entidade, &h.EntidadeID, &h.Detalhes, &h.Usuario, &h.CriadoEm); err != nil {
			return nil, err
		}
		items = append(items, h)
	}
	return items, rows.Err()
}
