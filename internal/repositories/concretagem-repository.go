package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"agenda-concretagem/internal/entities"
	db "agenda-concretagem/internal/infrastructure/bd"
	apperrors "agenda-concretagem/pkg/errors"
	"agenda-concretagem/pkg/types"
)

const concretagemTable = "concretagens"

// A coluna data é DATE no banco; to_char mantém o formato ISO que o resto
// do sistema espera, independente do estilo de data da sessão.
const concretagemFields = `id, obra_id, tipo_servico, to_char(data, 'YYYY-MM-DD') AS data, hora_inicio,
	duracao_min, volume_m3, fck_mpa, slump_mm, slump_txt, usina, bomba, equipe, colab_qtd,
	cap_caminhao_m3, cps_por_caminhao, caminhoes_est, formas_est, status, observacoes,
	criado_por, alterado_por, criado_em, atualizado_em`

var concretagemAllowedFields = map[string]string{
	"id":           "id",
	"obra_id":      "obra_id",
	"tipo_servico": "tipo_servico",
	"data":         "data",
	"bomba":        "bomba",
	"equipe":       "equipe",
	"status":       "status",
	"usina":        "usina",
}

type ConcretagemRepositoryInterface interface {
	GetConcretagens(ctx context.Context, filter types.Filter) ([]entities.Concretagem, uint64, error)
	GetPorPeriodo(ctx context.Context, dataDe, dataAte string) ([]entities.Concretagem, error)
	GetPorData(ctx context.Context, data string, ignorarID int64) ([]entities.Concretagem, error)
	FindConcretagem(ctx context.Context, id int64) (*entities.Concretagem, error)
	CreateConcretagem(ctx context.Context, c entities.Concretagem) (*entities.Concretagem, error)
	UpdateConcretagem(ctx context.Context, id int64, set map[string]interface{}) (*entities.Concretagem, error)
	DeleteConcretagem(ctx context.Context, id int64) error
	MarcarCancelada(ctx context.Context, id int64, observacoes, alteradoPor string) error
	ColaboradoresComprometidos(ctx context.Context, data string) (int, error)
}

type concretagemRepository struct{ storage *pgxpool.Pool }

func NewConcretagemRepository(storage *pgxpool.Pool) ConcretagemRepositoryInterface {
	return &concretagemRepository{storage: storage}
}

func scanConcretagem(row pgx.Row) (*entities.Concretagem, error) {
	var c entities.Concretagem
	err := row.Scan(&c.ID, &c.ObraID, &c.TipoServico, &c.Data, &c.HoraInicio,
		&c.DuracaoMin, &c.VolumeM3, &c.FckMpa, &c.SlumpMm, &c.SlumpTxt, &c.Usina,
		&c.Bomba, &c.Equipe, &c.ColabQtd, &c.CapCaminhaoM3, &c.CpsPorCaminhao,
		&c.CaminhoesEst, &c.FormasEst, &c.Status, &c.Observacoes,
		&c.CriadoPor, &c.AlteradoPor, &c.CriadoEm, &c.AtualizadoEm)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *concretagemRepository) collect(ctx context.Context, query string, args ...interface{}) ([]entities.Concretagem, error) {
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]entities.Concretagem, 0)
	for rows.Next() {
		c, err := scanConcretagem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

func (r *concretagemRepository) GetConcretagens(ctx context.Context, filter types.Filter) ([]entities.Concretagem, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	base := psql.Select(concretagemFields).From(concretagemTable)
	base = db.ApplyListParams(base, filter, concretagemAllowedFields)
	if len(filter.Sort) == 0 {
		base = base.OrderBy("data ASC", "hora_inicio ASC", "id ASC")
	}

	query, args, err := base.ToSql()
	if err != nil {
		return nil, 0, err
	}

	items, err := r.collect(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}

	var total uint64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", concretagemTable)
	if err := r.storage.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *concretagemRepository) GetPorPeriodo(ctx context.Context, dataDe, dataAte string) ([]entities.Concretagem, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s
		WHERE data >= $1 AND data <= $2
		ORDER BY data ASC, hora_inicio ASC, id ASC`, concretagemFields, concretagemTable)
	return r.collect(ctx, query, dataDe, dataAte)
}

// GetPorData devolve a agenda de um dia, deixando de fora o próprio registro
// em edição quando ignorarID > 0.
func (r *concretagemRepository) GetPorData(ctx context.Context, data string, ignorarID int64) ([]entities.Concretagem, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s
		WHERE data = $1 AND id <> $2
		ORDER BY hora_inicio ASC, id ASC`, concretagemFields, concretagemTable)
	return r.collect(ctx, query, data, ignorarID)
}

func (r *concretagemRepository) FindConcretagem(ctx context.Context, id int64) (*entities.Concretagem, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", concretagemFields, concretagemTable)
	return scanConcretagem(r.storage.QueryRow(ctx, query, id))
}

func (r *concretagemRepository) CreateConcretagem(ctx context.Context, c entities.Concretagem) (*entities.Concretagem, error) {
	query := fmt.Sprintf(`INSERT INTO %s
		(obra_id, tipo_servico, data, hora_inicio, duracao_min, volume_m3, fck_mpa, slump_mm, slump_txt,
		 usina, bomba, equipe, colab_qtd, cap_caminhao_m3, cps_por_caminhao, caminhoes_est, formas_est,
		 status, observacoes, criado_por)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING %s`, concretagemTable, concretagemFields)
	row := r.storage.QueryRow(ctx, query,
		c.ObraID, c.TipoServico, c.Data, c.HoraInicio, c.DuracaoMin, c.VolumeM3, c.FckMpa, c.SlumpMm, c.SlumpTxt,
		c.Usina, c.Bomba, c.Equipe, c.ColabQtd, c.CapCaminhaoM3, c.CpsPorCaminhao, c.CaminhoesEst, c.FormasEst,
		c.Status, c.Observacoes, c.CriadoPor)
	return scanConcretagem(row)
}

func (r *concretagemRepository) UpdateConcretagem(ctx context.Context, id int64, set map[string]interface{}) (*entities.Concretagem, error) {
	if len(set) == 0 {
		return r.FindConcretagem(ctx, id)
	}

	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	builder := psql.Update(concretagemTable).
		SetMap(set).
		Set("atualizado_em", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + concretagemFields)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}
	return scanConcretagem(r.storage.QueryRow(ctx, query, args...))
}

func (r *concretagemRepository) DeleteConcretagem(ctx context.Context, id int64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", concretagemTable)
	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *concretagemRepository) MarcarCancelada(ctx context.Context, id int64, observacoes, alteradoPor string) error {
	query := fmt.Sprintf(`UPDATE %s
		SET status = 'Cancelado', observacoes = $2, alterado_por = $3, atualizado_em = NOW()
		WHERE id = $1`, concretagemTable)
	result, err := r.storage.Exec(ctx, query, id, observacoes, alteradoPor)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ColaboradoresComprometidos soma os colaboradores dos agendamentos ativos do
// dia. Registros sem equipe informada contam como uma pessoa; a grafia antiga
// 'Execução' ainda existe em dados importados e continua contando.
func (r *concretagemRepository) ColaboradoresComprometidos(ctx context.Context, data string) (int, error) {
	query := fmt.Sprintf(`SELECT COALESCE(SUM(COALESCE(colab_qtd, 1)), 0)
		FROM %s
		WHERE data = $1
		  AND status IN ('Agendado', 'Aguardando', 'Confirmado', 'Execucao', 'Execução')`, concretagemTable)
	var total int
	if err := r.storage.QueryRow(ctx, query, data).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
