package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTenderListQueryNormalize(t *testing.T) {
	query := &TenderListQuery{}
	query.Normalize()

	assert.Equal(t, DefaultPage, query.Page)
	assert.Equal(t, DefaultLimit, query.Limit)
	assert.Equal(t, DefaultSortBy, query.SortBy)
	assert.Equal(t, DefaultSortDirection, query.SortDirection)
}

func TestTenderListQueryNormalizeKeepsExplicitValues(t *testing.T) {
	query := &TenderListQuery{Page: 3, Limit: 25, SortBy: "phase", SortDirection: "asc"}
	query.Normalize()

	assert.Equal(t, 3, query.Page)
	assert.Equal(t, 25, query.Limit)
	assert.Equal(t, "phase", query.SortBy)
	assert.Equal(t, "asc", query.SortDirection)
}

func TestTenderListQueryOffset(t *testing.T) {
	query := &TenderListQuery{Page: 1, Limit: 10}
	assert.Equal(t, 0, query.Offset())

	query = &TenderListQuery{Page: 4, Limit: 25}
	assert.Equal(t, 75, query.Offset())
}

func TestTenderListQueryOrderClause(t *testing.T) {
	query := &TenderListQuery{SortBy: "base_total_price", SortDirection: "asc"}
	assert.Equal(t, "base_total_price ASC", query.OrderClause())

	query = &TenderListQuery{SortBy: "created_at", SortDirection: "desc"}
	assert.Equal(t, "created_at DESC", query.OrderClause())
}

func TestTenderListQueryOrderClauseUnknownSortKeyFallsBack(t *testing.T) {
	// An unrecognized sort key is not an error, the listing keeps the
	// default ordering.
	query := &TenderListQuery{SortBy: "no_such_column; DROP TABLE tender", SortDirection: "desc"}
	assert.Equal(t, "created_at DESC", query.OrderClause())
}

func TestTenderListQueryOrderClauseDirectionDefaultsToDesc(t *testing.T) {
	query := &TenderListQuery{SortBy: "phase", SortDirection: "sideways"}
	assert.Equal(t, "phase DESC", query.OrderClause())
}
