package router

import (
	"github.com/gin-gonic/gin"

	"cluey.app/bridge/internal/http/handler"
)

func IncidentRouter(router *gin.RouterGroup, handler *handler.IncidentHandler) {
	router.POST("/start", handler.Start)
}
