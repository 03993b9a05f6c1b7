package redis

import (
	"fieldservice-srv/internal/customer/repository"
	"fieldservice-srv/pkg/log"
	pkgRedis "fieldservice-srv/pkg/redis"
)

type implCacheRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
}

// New - Factory
func New(redis pkgRedis.IRedis, l log.Logger) repository.CacheRepository {
	return &implCacheRepository{
		redis: redis,
		l:     l,
	}
}
