package repository

import (
	"context"

	"fieldservice-srv/internal/model"
	"fieldservice-srv/pkg/query"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	ListWorkOrders(ctx context.Context, sc model.Scope, opt ListWorkOrdersOptions) (query.Page[model.WorkOrder], error)
	GetWorkOrderByID(ctx context.Context, sc model.Scope, id string) (model.WorkOrder, error)
	CreateWorkOrder(ctx context.Context, sc model.Scope, opt CreateWorkOrderOptions) (model.WorkOrder, error)
	UpdateWorkOrderStatus(ctx context.Context, sc model.Scope, opt UpdateWorkOrderStatusOptions) (model.WorkOrder, error)
	AssignWorkOrder(ctx context.Context, sc model.Scope, opt AssignWorkOrderOptions) (model.WorkOrder, error)
	CustomerExists(ctx context.Context, sc model.Scope, customerID string) (bool, error)
}
