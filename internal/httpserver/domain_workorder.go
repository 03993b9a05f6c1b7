package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"fieldservice-srv/internal/middleware"
	workorderHTTP "fieldservice-srv/internal/workorder/delivery/http"
	workorderPostgre "fieldservice-srv/internal/workorder/repository/postgre"
	workorderUsecase "fieldservice-srv/internal/workorder/usecase"
)

func (srv *HTTPServer) setupWorkOrderDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := workorderPostgre.New(srv.postgresDB, srv.l)

	uc := workorderUsecase.New(repo, srv.producer, srv.l)

	handler := workorderHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Work order domain registered")
	return nil
}
