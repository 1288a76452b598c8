package utils

import (
	"net/url"
	"strconv"
	"strings"

	"agenda-concretagem/pkg/types"
)

func Pagination(pageInput, limitInput interface{}) (int, int) {
	page, limit := 1, 10

	switch v := pageInput.(type) {
	case string:
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			page = p
		}
	case int:
		if v > 0 {
			page = v
		}
	}

	switch v := limitInput.(type) {
	case string:
		if l, err := strconv.Atoi(v); err == nil && l > 0 {
			limit = l
		}
	case int:
		if v > 0 {
			limit = v
		}
	}

	return page, limit
}

// ParseFilterFromQuery monta o Filter a partir da query string:
// ?search=...&sort[data]=desc&filter[status]=Agendado&limit=10&offset=0
func ParseFilterFromQuery(values url.Values) types.Filter {
	f := types.Filter{
		Search: strings.TrimSpace(values.Get("search")),
		Sort:   map[string]string{},
		Filter: map[string]interface{}{},
		Limit:  10,
		Offset: 0,
	}

	for key, vals := range values {
		if len(vals) == 0 {
			continue
		}
		if strings.HasPrefix(key, "sort[") && strings.HasSuffix(key, "]") {
			campo := key[len("sort[") : len(key)-1]
			f.Sort[campo] = vals[0]
		}
		if strings.HasPrefix(key, "filter[") && strings.HasSuffix(key, "]") {
			campo := key[len("filter[") : len(key)-1]
			f.Filter[campo] = vals[0]
		}
	}

	if l, err := strconv.Atoi(values.Get("limit")); err == nil && l > 0 {
		f.Limit = l
	}
	if o, err := strconv.Atoi(values.Get("offset")); err == nil && o >= 0 {
		f.Offset = o
	}
	f.WithPagination = values.Get("withPagination") == "true" || values.Get("limit") != ""

	return f
}
