package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	customerHTTP "fieldservice-srv/internal/customer/delivery/http"
	customerPostgre "fieldservice-srv/internal/customer/repository/postgre"
	customerRedis "fieldservice-srv/internal/customer/repository/redis"
	customerUsecase "fieldservice-srv/internal/customer/usecase"
	"fieldservice-srv/internal/middleware"
)

func (srv *HTTPServer) setupCustomerDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := customerPostgre.New(srv.postgresDB, srv.encrypter, srv.l)
	cacheRepo := customerRedis.New(srv.redisClient, srv.l)

	uc := customerUsecase.New(repo, cacheRepo, srv.l)

	handler := customerHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Customer domain registered")
	return nil
}
