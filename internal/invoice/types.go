package invoice

import (
	"net/url"

	"fieldservice-srv/internal/model"
	"fieldservice-srv/pkg/paginator"
)

type ListInput struct {
	Params url.Values
	Path   string
}

type ListOutput struct {
	Invoices   []model.Invoice
	Pagination paginator.Paginator
	Path       string
}

type DetailInput struct {
	ID string
}

type MarkPaidInput struct {
	ID string
}

type RevenueSummaryInput struct {
	Params     url.Values
	Path       string
	MinRevenue float64
}

type RevenueSummaryOutput struct {
	Rows       []model.CustomerRevenue
	Pagination paginator.Paginator
	Path       string
}
