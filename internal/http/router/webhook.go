package router

import (
	"github.com/gin-gonic/gin"

	"cluey.app/bridge/internal/http/handler/webhook"
)

func WebhookRouter(router *gin.RouterGroup, handler *webhook.TwilioWebhookHandler) {
	router.POST("", handler.HandleMessage)
}
