package entity

// Pagination describes the page of results that was returned: Total is the
// number of tenders matching the filters before paging was applied.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

func NewPagination(page int, limit int, total int) Pagination {
	return Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
	}
}
