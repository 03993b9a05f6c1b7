package paginator

// NewPaginator builds pagination metadata from a completed query.
func NewPaginator(total, count, perPage int64, currentPage int) Paginator {
	if currentPage < DefaultPage {
		currentPage = DefaultPage
	}
	if perPage < 1 {
		perPage = DefaultLimit
	}

	return Paginator{
		Total:       total,
		Count:       count,
		PerPage:     perPage,
		CurrentPage: currentPage,
	}
}

// Adjust normalizes the pagination parameters to valid values.
func (p *PaginateQuery) Adjust() {
	if p.Page < DefaultPage {
		p.Page = DefaultPage
	}

	if p.Limit < 1 {
		p.Limit = DefaultLimit
	} else if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
}

// Offset returns the number of rows to skip for the current page.
func (p PaginateQuery) Offset() int64 {
	return int64(p.Page-1) * p.Limit
}

// TotalPages returns the total number of pages.
func (p Paginator) TotalPages() int {
	if p.PerPage <= 0 {
		return 0
	}

	pages := p.Total / p.PerPage
	if p.Total%p.PerPage != 0 {
		pages++
	}

	return int(pages)
}

// HasNextPage reports whether there is a page after the current one.
func (p Paginator) HasNextPage() bool {
	return p.CurrentPage < p.TotalPages()
}

// HasPreviousPage reports whether there is a page before the current one.
func (p Paginator) HasPreviousPage() bool {
	return p.CurrentPage > DefaultPage
}

// ToResponse converts the paginator to its response format.
func (p Paginator) ToResponse() PaginatorResponse {
	return PaginatorResponse{
		Total:       p.Total,
		Count:       p.Count,
		PerPage:     p.PerPage,
		CurrentPage: p.CurrentPage,
		TotalPages:  p.TotalPages(),
		HasNext:     p.HasNextPage(),
		HasPrev:     p.HasPreviousPage(),
	}
}

// ToPaginator builds pagination metadata from the query and a result size.
func (p PaginateQuery) ToPaginator(total, count int64) Paginator {
	return NewPaginator(total, count, p.Limit, p.Page)
}
