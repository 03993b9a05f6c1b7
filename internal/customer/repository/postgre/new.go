package postgre

import (
	"database/sql"

	"fieldservice-srv/internal/customer/repository"
	"fieldservice-srv/pkg/encrypter"
	"fieldservice-srv/pkg/log"
)

type implRepository struct {
	db  *sql.DB
	enc encrypter.Encrypter
	l   log.Logger
}

// New - Factory function. The encrypter protects webhook secrets at rest.
func New(db *sql.DB, enc encrypter.Encrypter, l log.Logger) repository.PostgresRepository {
	return &implRepository{
		db:  db,
		enc: enc,
		l:   l,
	}
}
