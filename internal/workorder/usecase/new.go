package usecase

import (
	"fieldservice-srv/internal/workorder"
	"fieldservice-srv/internal/workorder/repository"
	"fieldservice-srv/pkg/kafka"
	"fieldservice-srv/pkg/log"
)

type implUseCase struct {
	repo     repository.PostgresRepository
	producer kafka.IProducer
	l        log.Logger
}

// New - Factory function
func New(
	repo repository.PostgresRepository,
	producer kafka.IProducer,
	l log.Logger,
) workorder.UseCase {
	return &implUseCase{
		repo:     repo,
		producer: producer,
		l:        l,
	}
}
