package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"cluey.app/bridge/internal/http/dto"
	"cluey.app/bridge/internal/service"
)

type MessageHandler struct {
	relay service.RelayService
}

func NewMessageHandler(relay service.RelayService) *MessageHandler {
	return &MessageHandler{relay: relay}
}

func (h *MessageHandler) Send(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid send request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.relay.Send(ctx, req.AlertID, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrUnknownAlert):
			c.JSON(http.StatusNotFound, gin.H{"error": "no participant bound to this alert"})
		case errors.Is(err, service.ErrDeliveryFailed):
			slog.ErrorContext(ctx, "delivery failed", "error", err, "alert_id", req.AlertID)
			c.JSON(http.StatusBadGateway, gin.H{"error": "message delivery failed"})
		default:
			slog.ErrorContext(ctx, "failed to send message", "error", err, "alert_id", req.AlertID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send message"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.SendMessageResponse{
		Status:  "sent",
		SID:     result.SID,
		AlertID: result.AlertID,
	})
}

func (h *MessageHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	alertID := c.Param("alertId")

	// No existence check: an alert with no history is an empty log, not an
	// error.
	records, err := h.relay.Messages(ctx, alertID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list messages", "error", err, "alert_id", alertID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list messages"})
		return
	}

	c.JSON(http.StatusOK, dto.ToMessageResponses(records))
}
