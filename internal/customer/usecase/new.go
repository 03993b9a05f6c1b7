package usecase

import (
	"fieldservice-srv/internal/customer"
	"fieldservice-srv/internal/customer/repository"
	"fieldservice-srv/pkg/log"
)

type implUseCase struct {
	repo  repository.PostgresRepository
	cache repository.CacheRepository
	l     log.Logger
}

// New - Factory function
func New(
	repo repository.PostgresRepository,
	cache repository.CacheRepository,
	l log.Logger,
) customer.UseCase {
	return &implUseCase{
		repo:  repo,
		cache: cache,
		l:     l,
	}
}
