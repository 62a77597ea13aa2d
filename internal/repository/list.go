package repository

import (
	"context"
	"net/url"

	"gorm.io/gorm"

	"github.com/Aaron-Ontoyin/enerlytics-backend/pkg/query"
)

// listResource runs the shared list pipeline: parse the raw query params
// against the entity's field set (AND block), expand the search term over
// the entity's text fields (OR block), then count and fetch one page.
// Extra filters are appended to the parsed AND block; callers use them for
// fixed server-side constraints such as excluding expired alerts.
func listResource[T any](ctx context.Context, db *gorm.DB, params url.Values, fields query.FieldSet, searchFields []string, page query.PageParams, extra ...query.Filter) (*query.PaginatedResponse[T], error) {
	tx := db.WithContext(ctx).Model(new(T))

	filters := append(query.ParseFilters(params, fields), extra...)
	tx, err := query.Apply(tx, filters, fields, query.CombineAnd)
	if err != nil {
		return nil, err
	}

	if term := params.Get("search"); term != "" {
		search := query.SearchFilters(term, searchFields)
		tx, err = query.Apply(tx, search, fields, query.CombineOr)
		if err != nil {
			return nil, err
		}
	}

	return query.Paginate[T](tx, page, fields)
}
