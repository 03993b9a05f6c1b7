package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"fieldservice-srv/internal/middleware"
	personHTTP "fieldservice-srv/internal/person/delivery/http"
	personPostgre "fieldservice-srv/internal/person/repository/postgre"
	personUsecase "fieldservice-srv/internal/person/usecase"
)

func (srv *HTTPServer) setupPersonDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := personPostgre.New(srv.postgresDB, srv.l)

	uc := personUsecase.New(repo, srv.l)

	handler := personHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Person domain registered")
	return nil
}
