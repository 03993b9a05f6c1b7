package repository

import (
	"context"

	"fieldservice-srv/internal/model"
	"fieldservice-srv/pkg/query"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	ListInvoices(ctx context.Context, sc model.Scope, opt ListInvoicesOptions) (query.Page[model.Invoice], error)
	GetInvoiceByID(ctx context.Context, sc model.Scope, id string) (model.Invoice, error)
	MarkInvoicePaid(ctx context.Context, sc model.Scope, id string) (model.Invoice, error)
	RevenueSummary(ctx context.Context, sc model.Scope, opt RevenueSummaryOptions) (query.Page[model.CustomerRevenue], error)
}
