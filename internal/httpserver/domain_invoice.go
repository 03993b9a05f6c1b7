package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	invoiceHTTP "fieldservice-srv/internal/invoice/delivery/http"
	invoicePostgre "fieldservice-srv/internal/invoice/repository/postgre"
	invoiceUsecase "fieldservice-srv/internal/invoice/usecase"
	"fieldservice-srv/internal/middleware"
)

func (srv *HTTPServer) setupInvoiceDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := invoicePostgre.New(srv.postgresDB, srv.l)

	uc := invoiceUsecase.New(repo, srv.l)

	handler := invoiceHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Invoice domain registered")
	return nil
}
