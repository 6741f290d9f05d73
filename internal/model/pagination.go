package model

// PaginationInfo describes one page of a collection response.
// Pages is always ceil(Total/Limit).
type PaginationInfo struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// PaginatedResponse wraps one page of items together with paging metadata.
type PaginatedResponse[T any] struct {
	Data       []T            `json:"data"`
	Pagination PaginationInfo `json:"pagination"`
}

// PageRequest selects a 1-based page of results.
type PageRequest struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Normalize clamps a page request to sane values.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 10
	}
	return p
}
