package repository

import "net/url"

type ListInvoicesOptions struct {
	Params url.Values
	Path   string
}

type RevenueSummaryOptions struct {
	Params     url.Values
	Path       string
	MinRevenue float64
}
