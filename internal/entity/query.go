package entity

import "strings"

const (
	DefaultPage  = 1
	DefaultLimit = 10

	DefaultSortBy        = "created_at"
	DefaultSortDirection = "desc"
)

// Allow-list of sort keys. Anything outside of it falls back to the default
// ordering instead of being interpolated into the query.
var tenderSortColumns = map[string]string{
	"created_at":       "created_at",
	"reference_code":   "reference_code",
	"request_name":     "request_name",
	"phase":            "phase",
	"state":            "state",
	"procedure_type":   "procedure_type",
	"base_total_price": "base_total_price",
	"total_lotes":      "total_lotes",
}

// service + repo input model for the tender listing.
// All filters are optional and conjunctive.
type TenderListQuery struct {
	Page  int
	Limit int

	Search        string
	Phase         string
	State         string
	ProcedureType string
	MinPrice      *float64
	MaxPrice      *float64

	SortBy        string
	SortDirection string
}

func (q *TenderListQuery) Normalize() {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	if q.SortBy == "" {
		q.SortBy = DefaultSortBy
	}
	if q.SortDirection == "" {
		q.SortDirection = DefaultSortDirection
	}
}

func (q *TenderListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// OrderClause resolves the sort key against the allow-list. An unrecognized
// key is not an error: the listing silently keeps the default ordering.
func (q *TenderListQuery) OrderClause() string {
	column, ok := tenderSortColumns[q.SortBy]
	if !ok {
		column = DefaultSortBy
	}

	direction := "DESC"
	if strings.EqualFold(q.SortDirection, "asc") {
		direction = "ASC"
	}

	return column + " " + direction
}
