package constants

// Pagination Query Parameters
const (
	QueryParamPage      = "page"
	QueryParamSize      = "size"
	QueryParamSortBy    = "sort_by"
	QueryParamSortOrder = "sort_order"
	QueryParamSearch    = "search"
)

// Default Pagination Values
const (
	DefaultPage      = 1
	DefaultPageSize  = 100
	DefaultSortBy    = "created_at"
	DefaultSortOrder = "desc"
)

// Pagination Limits
const (
	MinPage     = 1
	MinPageSize = 1
	MaxPageSize = 500
)

// Sort Orders
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Bulk Operation Limits
const (
	MaxBulkReadings = 500
)
