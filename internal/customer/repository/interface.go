package repository

import (
	"context"

	"fieldservice-srv/internal/model"
	"fieldservice-srv/pkg/query"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	ListCustomers(ctx context.Context, sc model.Scope, opt ListCustomersOptions) (query.Page[model.Customer], error)
	GetCustomerByID(ctx context.Context, sc model.Scope, id string) (model.Customer, error)
	GetCustomerSettings(ctx context.Context, sc model.Scope, customerID string) (model.CustomerSettings, error)
	UpsertCustomerSettings(ctx context.Context, sc model.Scope, opt UpsertCustomerSettingsOptions) (model.CustomerSettings, error)
}

// CacheRepository caches decrypted customer settings. The consumer reads
// settings on every work-order event, the cache keeps that off Postgres.
//
//go:generate mockery --name CacheRepository
type CacheRepository interface {
	GetSettings(ctx context.Context, tenantID, customerID string) (model.CustomerSettings, error)
	SaveSettings(ctx context.Context, settings model.CustomerSettings) error
	InvalidateSettings(ctx context.Context, tenantID, customerID string) error
}
