package workorder

import (
	"context"

	"fieldservice-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, input DetailInput) (model.WorkOrder, error)
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.WorkOrder, error)
	UpdateStatus(ctx context.Context, sc model.Scope, input UpdateStatusInput) (model.WorkOrder, error)
	Assign(ctx context.Context, sc model.Scope, input AssignInput) (model.WorkOrder, error)
}
