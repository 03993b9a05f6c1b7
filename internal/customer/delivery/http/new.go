package http

import (
	"fieldservice-srv/internal/customer"
	"fieldservice-srv/internal/middleware"
	"fieldservice-srv/pkg/discord"
	"fieldservice-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface cho customer HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      customer.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc customer.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
