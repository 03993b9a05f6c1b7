package repository

import (
	"context"

	"fieldservice-srv/internal/model"
	"fieldservice-srv/pkg/query"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	ListPeople(ctx context.Context, sc model.Scope, opt ListPeopleOptions) (query.Page[model.Person], error)
	GetPersonByID(ctx context.Context, sc model.Scope, id string) (model.Person, error)
	CreatePerson(ctx context.Context, sc model.Scope, opt CreatePersonOptions) (model.Person, error)
}
