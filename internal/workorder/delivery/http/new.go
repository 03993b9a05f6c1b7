package http

import (
	"fieldservice-srv/internal/middleware"
	"fieldservice-srv/internal/workorder"
	"fieldservice-srv/pkg/discord"
	"fieldservice-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface cho work order HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      workorder.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc workorder.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
