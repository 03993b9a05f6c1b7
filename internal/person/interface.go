package person

import (
	"context"

	"fieldservice-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, input DetailInput) (model.Person, error)
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Person, error)
}
