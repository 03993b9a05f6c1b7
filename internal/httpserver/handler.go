package httpserver

import (
	"context"

	"fieldservice-srv/internal/middleware"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv *HTTPServer) mapHandlers() error {
	ctx := context.Background()

	mw := middleware.New(srv.l, srv.jwtManager, srv.config.Cookie, srv.config.InternalConfig.InternalKey, srv.config, srv.encrypter)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	root := srv.gin.Group("")

	if err := srv.setupWorkOrderDomain(ctx, root, mw); err != nil {
		return err
	}
	if err := srv.setupInvoiceDomain(ctx, root, mw); err != nil {
		return err
	}
	if err := srv.setupPersonDomain(ctx, root, mw); err != nil {
		return err
	}
	if err := srv.setupCustomerDomain(ctx, root, mw); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))
	srv.gin.Use(mw.Locale())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}
