package domain

const (
	// DefaultPageLimit is the page size when the client sends none.
	DefaultPageLimit = 20
	// MaxPageLimit bounds one page of trips.
	MaxPageLimit = 100
)

// PaginationParams is a 1-indexed page request for the trip list.
type PaginationParams struct {
	Page  int
	Limit int
}

// NewPaginationParams reads the optional page and limit query values.
// Missing or non-positive values become page 1 and DefaultPageLimit; limits
// above MaxPageLimit are lowered to it.
func NewPaginationParams(page, limit *int) PaginationParams {
	p := PaginationParams{Page: 1, Limit: DefaultPageLimit}
	if page != nil && *page > 0 {
		p.Page = *page
	}
	if limit != nil && *limit > 0 {
		p.Limit = min(*limit, MaxPageLimit)
	}
	return p
}

// Offset is the number of rows that precede this page.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}
