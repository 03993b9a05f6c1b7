package paginator

import "testing"

func TestPaginateQuery_Adjust(t *testing.T) {
	tests := []struct {
		name      string
		in        PaginateQuery
		wantPage  int
		wantLimit int64
	}{
		{name: "zero values", in: PaginateQuery{}, wantPage: 1, wantLimit: DefaultLimit},
		{name: "negative page", in: PaginateQuery{Page: -3, Limit: 10}, wantPage: 1, wantLimit: 10},
		{name: "limit above max", in: PaginateQuery{Page: 2, Limit: 5000}, wantPage: 2, wantLimit: MaxLimit},
		{name: "valid passthrough", in: PaginateQuery{Page: 3, Limit: 25}, wantPage: 3, wantLimit: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := tt.in
			q.Adjust()
			if q.Page != tt.wantPage || q.Limit != tt.wantLimit {
				t.Errorf("Adjust() = page %d limit %d, want page %d limit %d", q.Page, q.Limit, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestPaginateQuery_Offset(t *testing.T) {
	q := PaginateQuery{Page: 4, Limit: 10}
	if got := q.Offset(); got != 30 {
		t.Errorf("Offset() = %d, want 30", got)
	}
}

func TestPaginator_TotalPages(t *testing.T) {
	tests := []struct {
		name string
		p    Paginator
		want int
	}{
		{name: "exact division", p: Paginator{Total: 40, PerPage: 10}, want: 4},
		{name: "partial last page", p: Paginator{Total: 37, PerPage: 10}, want: 4},
		{name: "empty", p: Paginator{Total: 0, PerPage: 10}, want: 0},
		{name: "zero per page", p: Paginator{Total: 10, PerPage: 0}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.TotalPages(); got != tt.want {
				t.Errorf("TotalPages() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPaginator_Navigation(t *testing.T) {
	p := NewPaginator(37, 10, 10, 2)
	if !p.HasNextPage() {
		t.Error("page 2 of 4 should have a next page")
	}
	if !p.HasPreviousPage() {
		t.Error("page 2 should have a previous page")
	}

	last := NewPaginator(37, 7, 10, 4)
	if last.HasNextPage() {
		t.Error("last page should not have a next page")
	}

	first := NewPaginator(37, 10, 10, 1)
	if first.HasPreviousPage() {
		t.Error("first page should not have a previous page")
	}
}

func TestPaginator_ToResponse(t *testing.T) {
	resp := NewPaginator(37, 7, 10, 4).ToResponse()
	if resp.Total != 37 || resp.Count != 7 || resp.TotalPages != 4 {
		t.Errorf("ToResponse() = %+v", resp)
	}
	if resp.HasNext || !resp.HasPrev {
		t.Errorf("ToResponse() navigation = %+v", resp)
	}
}

func TestNewPaginator_Normalizes(t *testing.T) {
	p := NewPaginator(5, 5, 0, 0)
	if p.CurrentPage != DefaultPage || p.PerPage != DefaultLimit {
		t.Errorf("NewPaginator() = %+v, want normalized page and per-page", p)
	}
}
