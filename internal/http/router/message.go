package router

import (
	"github.com/gin-gonic/gin"

	"cluey.app/bridge/internal/http/handler"
)

// MessageRouter registers at the engine root: the wire contract predates route
// grouping and external callers depend on the exact paths.
func MessageRouter(router *gin.Engine, handler *handler.MessageHandler) {
	router.POST("/send", handler.Send)
	router.GET("/incidents/:alertId/messages", handler.List)
}
