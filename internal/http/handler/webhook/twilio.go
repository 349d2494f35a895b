package webhook

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"cluey.app/bridge/internal/service"
	"cluey.app/bridge/internal/service/channel"
)

// TwilioWebhookHandler receives inbound WhatsApp messages. Twilio posts
// form-encoded payloads and retries on anything but a well-formed 200, so the
// handler acknowledges unconditionally and keeps routing failures internal.
type TwilioWebhookHandler struct {
	relay service.RelayService
}

func NewTwilioWebhookHandler(relay service.RelayService) *TwilioWebhookHandler {
	return &TwilioWebhookHandler{relay: relay}
}

func (h *TwilioWebhookHandler) HandleMessage(c *gin.Context) {
	ctx := c.Request.Context()

	from := c.PostForm("From")
	// Twilio omits Body for media-only messages; an empty text record is
	// still a record.
	body := c.PostForm("Body")

	result, err := h.relay.Receive(ctx, from, body)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownParticipant):
			slog.InfoContext(ctx, "inbound message from unbound sender", "from", from)
		case errors.Is(err, service.ErrInvalidRequest):
			slog.WarnContext(ctx, "inbound webhook without sender address")
		default:
			slog.ErrorContext(ctx, "failed to relay inbound message", "error", err, "from", from)
		}
		h.ack(c)
		return
	}

	slog.InfoContext(ctx, "inbound message recorded", "alert_id", result.AlertID, "record_id", result.RecordID)
	h.ack(c)
}

func (h *TwilioWebhookHandler) ack(c *gin.Context) {
	c.Data(http.StatusOK, "text/xml", []byte(channel.NeutralAck()))
}
