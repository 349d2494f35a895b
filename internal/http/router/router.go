package router

import (
	"github.com/gin-gonic/gin"

	"cluey.app/bridge/internal/http/handler"
	"cluey.app/bridge/internal/http/handler/webhook"
	"cluey.app/bridge/internal/service"
)

func SetupRoutes(router *gin.Engine, services *service.Services) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	incidentHandler := handler.NewIncidentHandler(services.Incidents())
	IncidentRouter(router.Group("/incident"), incidentHandler)

	messageHandler := handler.NewMessageHandler(services.Relay())
	MessageRouter(router, messageHandler)

	twilioHandler := webhook.NewTwilioWebhookHandler(services.Relay())
	WebhookRouter(router.Group("/webhook"), twilioHandler)
}
