package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"agenda-concretagem/internal/entities"
	db "agenda-concretagem/internal/infrastructure/bd"
	apperrors "agenda-concretagem/pkg/errors"
	"agenda-concretagem/pkg/types"
)

const (
	obraTable  = "obras"
	obraFields = "id, nome, cliente, cnpj, razao_social, nome_fantasia, endereco, cidade, uf, cep, responsavel, telefone, observacoes, ativo, criado_por, alterado_por, criado_em, atualizado_em"
)

var obraAllowedFields = map[string]string{
	"nome":    "nome",
	"cliente": "cliente",
	"cidade":  "cidade",
	"uf":      "uf",
	"ativo":   "ativo",
	"id":      "id",
}

type ObraRepositoryInterface interface {
	GetObras(ctx context.Context, filter types.Filter) ([]entities.Obra, uint64, error)
	FindObra(ctx context.Context, id int64) (*entities.Obra, error)
	CreateObra(ctx context.Context, obra entities.Obra) (*entities.Obra, error)
	UpdateObra(ctx context.Context, id int64, set map[string]interface{}) (*entities.Obra, error)
	DeleteObra(ctx context.Context, id int64) error
}

type obraRepository struct{ storage *pgxpool.Pool }

func NewObraRepository(storage *pgxpool.Pool) ObraRepositoryInterface {
	return &obraRepository{storage: storage}
}

func scanObra(row pgx.Row) (*entities.Obra, error) {
	var o entities.Obra
	err := row.Scan(&o.ID, &o.Nome, &o.Cliente, &o.CNPJ, &o.RazaoSocial, &o.NomeFantasia,
		&o.Endereco, &o.Cidade, &o.UF, &o.CEP, &o.Responsavel, &o.Telefone,
		&o.Observacoes, &o.Ativo, &o.CriadoPor, &o.AlteradoPor, &o.CriadoEm, &o.AtualizadoEm)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *obraRepository) GetObras(ctx context.Context, filter types.Filter) ([]entities.Obra, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	base := psql.Select(obraFields).From(obraTable)
	if filter.Search != "" {
		pat := "%" + filter.Search + "%"
		base = base.Where(sq.Or{
			sq.ILike{"nome": pat},
			sq.ILike{"cliente": pat},
			sq.ILike{"cidade": pat},
		})
	}
	base = db.ApplyListParams(base, filter, obraAllowedFields)
	if len(filter.Sort) == 0 {
		base = base.OrderBy("nome ASC")
	}

	query, args, err := base.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	obras := make([]entities.Obra, 0)
	for rows.Next() {
		o, err := scanObra(rows)
		if err != nil {
			return nil, 0, err
		}
		obras = append(obras, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total uint64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", obraTable)
	if err := r.storage.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, err
	}
	return obras, total, nil
}

func (r *obraRepository) FindObra(ctx context.Context, id int64) (*entities.Obra, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", obraFields, obraTable)
	return scanObra(r.storage.QueryRow(ctx, query, id))
}

func (r *obraRepository) CreateObra(ctx context.Context, obra entities.Obra) (*entities.Obra, error) {
	query := fmt.Sprintf(`INSERT INTO %s
		(nome, cliente, cnpj, razao_social, nome_fantasia, endereco, cidade, uf, cep, responsavel, telefone, observacoes, ativo, criado_por)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING %s`, obraTable, obraFields)
	row := r.storage.QueryRow(ctx, query,
		obra.Nome, obra.Cliente, obra.CNPJ, obra.RazaoSocial, obra.NomeFantasia,
		obra.Endereco, obra.Cidade, obra.UF, obra.CEP, obra.Responsavel,
		obra.Telefone, obra.Observacoes, obra.Ativo, obra.CriadoPor)
	created, err := scanObra(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.ErrConflict
		}
		return nil, err
	}
	return created, nil
}

func (r *obraRepository) UpdateObra(ctx context.Context, id int64, set map[string]interface{}) (*entities.Obra, error) {
	if len(set) == 0 {
		return r.FindObra(ctx, id)
	}

	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	builder := psql.Update(obraTable).
		SetMap(set).
		Set("atualizado_em", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + obraFields)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}
	return scanObra(r.storage.QueryRow(ctx, query, args...))
}

func (r *obraRepository) DeleteObra(ctx context.Context, id int64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", obraTable)
	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
