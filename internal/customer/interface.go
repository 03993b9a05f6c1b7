package customer

import (
	"context"

	"fieldservice-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, input DetailInput) (model.Customer, error)
	GetSettings(ctx context.Context, sc model.Scope, input GetSettingsInput) (model.CustomerSettings, error)
	UpdateSettings(ctx context.Context, sc model.Scope, input UpdateSettingsInput) (model.CustomerSettings, error)
}
