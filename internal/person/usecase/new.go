package usecase

import (
	"fieldservice-srv/internal/person"
	"fieldservice-srv/internal/person/repository"
	"fieldservice-srv/pkg/log"
)

type implUseCase struct {
	repo repository.PostgresRepository
	l    log.Logger
}

// New - Factory function
func New(repo repository.PostgresRepository, l log.Logger) person.UseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
