package query

import (
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

const (
	defaultSortBy    = "created_at"
	defaultSortOrder = "desc"
)

// PageParams is a validated pagination request. Construct via ParsePageParams
// or fill the fields directly for internal queries.
type PageParams struct {
	Page      int
	Size      int
	SortBy    string
	SortOrder string
}

// Offset is the row offset implied by page and size.
func (p PageParams) Offset() int {
	return (p.Page - 1) * p.Size
}

// DefaultPageParams returns the first page with the given size and default
// ordering.
func DefaultPageParams(size int) PageParams {
	return PageParams{
		Page:      1,
		Size:      size,
		SortBy:    defaultSortBy,
		SortOrder: defaultSortOrder,
	}
}

// ParsePageParams validates pagination parameters at the request boundary.
// page must be >= 1 and size within [1, maxSize]; violations are client
// errors and never reach the engine.
func ParsePageParams(params map[string][]string, defaultSize, maxSize int) (PageParams, error) {
	p := DefaultPageParams(defaultSize)

	if raw := first(params["page"]); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return PageParams{}, fmt.Errorf("page must be a positive integer")
		}
		p.Page = n
	}

	if raw := first(params["size"]); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxSize {
			return PageParams{}, fmt.Errorf("size must be between 1 and %d", maxSize)
		}
		p.Size = n
	}

	if raw := first(params["sort_by"]); raw != "" {
		p.SortBy = raw
	}

	switch raw := strings.ToLower(first(params["sort_order"])); raw {
	case "":
	case "asc", "desc":
		p.SortOrder = raw
	default:
		return PageParams{}, fmt.Errorf("sort_order must be asc or desc")
	}

	return p, nil
}

// PaginatedResponse is the uniform page envelope returned by every list
// endpoint.
type PaginatedResponse[T any] struct {
	Items   []T   `json:"items"`
	Total   int64 `json:"total"`
	Page    int   `json:"page"`
	Size    int   `json:"size"`
	Pages   int   `json:"pages"`
	HasNext bool  `json:"has_next"`
	HasPrev bool  `json:"has_prev"`
}

// Map converts the envelope's items, keeping the page metadata. Used by
// services translating models into response DTOs.
func Map[T, U any](page *PaginatedResponse[T], fn func(T) U) *PaginatedResponse[U] {
	items := make([]U, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, fn(item))
	}
	return &PaginatedResponse[U]{
		Items:   items,
		Total:   page.Total,
		Page:    page.Page,
		Size:    page.Size,
		Pages:   page.Pages,
		HasNext: page.HasNext,
		HasPrev: page.HasPrev,
	}
}

// Paginate executes tx twice, first a count of everything matching the
// compiled predicate and then the requested page. The sort field
// is resolved through the same FieldSet that gates filtering; an unknown
// sort_by falls back to created_at rather than reaching the ORDER BY clause.
// Both statements run sequentially on the same handle; no retries are
// attempted and store errors propagate unmodified.
func Paginate[T any](tx *gorm.DB, params PageParams, fields FieldSet) (*PaginatedResponse[T], error) {
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, err
	}

	pages := int((total + int64(params.Size) - 1) / int64(params.Size))
	if pages < 1 {
		pages = 1
	}

	column, ok := fields.Resolve(params.SortBy)
	if !ok {
		column = defaultSortBy
	}
	direction := "DESC"
	if strings.EqualFold(params.SortOrder, "asc") {
		direction = "ASC"
	}

	items := make([]T, 0, params.Size)
	err := tx.Order(column + " " + direction).
		Offset(params.Offset()).
		Limit(params.Size).
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	return &PaginatedResponse[T]{
		Items:   items,
		Total:   total,
		Page:    params.Page,
		Size:    params.Size,
		Pages:   pages,
		HasNext: params.Page < pages,
		HasPrev: params.Page > 1,
	}, nil
}
