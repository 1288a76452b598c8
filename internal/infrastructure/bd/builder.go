package db

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"agenda-concretagem/pkg/types"
)

// Chaves de filtro tratadas como intervalo de datas em vez de igualdade.
const (
	filtroDataDe  = "data_de"
	filtroDataAte = "data_ate"
)

// ApplyListParams aplica filtros, ordenação e paginação da query string sobre
// o builder. Só colunas presentes em allowedMap entram no SQL; o resto é
// ignorado em silêncio. Os filtros data_de/data_ate viram um intervalo sobre
// a coluna mapeada em "data".
func ApplyListParams(builder sq.SelectBuilder, filter types.Filter, allowedMap map[string]string) sq.SelectBuilder {
	for jsonField, val := range filter.Filter {
		if jsonField == filtroDataDe || jsonField == filtroDataAte {
			dataCol, ok := allowedMap["data"]
			if !ok {
				continue
			}
			if s, ok := val.(string); ok && s != "" {
				if jsonField == filtroDataDe {
					builder = builder.Where(sq.GtOrEq{dataCol: s})
				} else {
					builder = builder.Where(sq.LtOrEq{dataCol: s})
				}
			}
			continue
		}

		dbCol, ok := allowedMap[jsonField]
		if !ok {
			continue
		}

		if s, ok := val.(string); ok && strings.Contains(s, ",") {
			builder = builder.Where(sq.Eq{dbCol: strings.Split(s, ",")})
		} else {
			builder = builder.Where(sq.Eq{dbCol: val})
		}
	}

	for jsonField, dir := range filter.Sort {
		dbCol, ok := allowedMap[jsonField]
		if !ok {
			continue
		}
		sqlDir := "ASC"
		if strings.ToLower(dir) == "desc" {
			sqlDir = "DESC"
		}
		builder = builder.OrderBy(fmt.Sprintf("%s %s", dbCol, sqlDir))
	}

	if filter.WithPagination {
		if filter.Limit > 0 {
			builder = builder.Limit(uint64(filter.Limit))
		}
		if filter.Offset >= 0 {
			builder = builder.Offset(uint64(filter.Offset))
		}
	}

	return builder
}
