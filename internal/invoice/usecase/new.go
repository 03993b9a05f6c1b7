package usecase

import (
	"fieldservice-srv/internal/invoice"
	"fieldservice-srv/internal/invoice/repository"
	"fieldservice-srv/pkg/log"
)

type implUseCase struct {
	repo repository.PostgresRepository
	l    log.Logger
}

// New - Factory function
func New(repo repository.PostgresRepository, l log.Logger) invoice.UseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
