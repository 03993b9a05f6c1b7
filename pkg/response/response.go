package response

import (
	"context"
	"fmt"
	"net/http"

	"fieldservice-srv/pkg/discord"
	pkgErrors "fieldservice-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK renders a success envelope with the given data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   "Success",
		Data:      data,
	})
}

// Error renders an error envelope. HTTPErrors keep their status code and
// message; anything else becomes a 500 and is reported to Discord when a
// client is configured.
func Error(c *gin.Context, err error, discordClient discord.IDiscord) {
	if httpErr, ok := err.(*pkgErrors.HTTPError); ok {
		c.JSON(httpErr.Code, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
		return
	}

	if discordClient != nil {
		_ = discordClient.SendError(context.Background(), "Internal Server Error",
			fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path), err)
	}

	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Internal server error",
	})
}

// ErrorWithMap maps a domain error through the given mapping before rendering.
func ErrorWithMap(c *gin.Context, err error, mapping ErrorMapping, discordClient discord.IDiscord) {
	if httpErr, ok := mapping[err]; ok {
		Error(c, httpErr, discordClient)
		return
	}
	Error(c, err, discordClient)
}

// BadRequest renders a 400 envelope with the binding/validation details.
func BadRequest(c *gin.Context, details any) {
	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: http.StatusBadRequest,
		Message:   "Bad request",
		Errors:    details,
	})
}

// Unauthorized renders a 401 envelope.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   "Unauthorized",
	})
}

// NotFound renders a 404 envelope.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, Resp{
		ErrorCode: http.StatusNotFound,
		Message:   "Not found",
	})
}

// PanicError reports a recovered panic to Discord and renders a 500 envelope.
func PanicError(c *gin.Context, recovered any, discordClient discord.IDiscord) {
	if discordClient != nil {
		_ = discordClient.SendError(context.Background(), "Panic recovered",
			fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path),
			fmt.Errorf("%v", recovered))
	}

	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Internal server error",
	})
}
