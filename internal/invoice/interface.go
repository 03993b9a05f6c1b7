package invoice

import (
	"context"

	"fieldservice-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, input DetailInput) (model.Invoice, error)
	MarkPaid(ctx context.Context, sc model.Scope, input MarkPaidInput) (model.Invoice, error)
	RevenueSummary(ctx context.Context, sc model.Scope, input RevenueSummaryInput) (RevenueSummaryOutput, error)
}
