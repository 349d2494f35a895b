package channel

import (
	"context"
	"fmt"
	"time"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
	"github.com/twilio/twilio-go/twiml"

	"cluey.app/bridge/core/config"
)

// sendTimeout caps a single delivery attempt. The Twilio SDK doesn't thread a
// context through its calls, so the bound lives on the HTTP client itself.
const sendTimeout = 10 * time.Second

type twilioSender struct {
	client *twilio.RestClient
	from   string
}

// NewTwilioSender builds a Sender backed by the Twilio Messaging API.
func NewTwilioSender(cfg config.TwilioConfig) Sender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	client.Client.SetTimeout(sendTimeout)

	return &twilioSender{
		client: client,
		from:   cfg.WhatsAppFrom,
	}
}

func (s *twilioSender) Send(_ context.Context, to, body string) (string, error) {
	params := &openapi.CreateMessageParams{}
	params.SetFrom(s.from)
	params.SetTo(to)
	params.SetBody(body)

	msg, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return "", fmt.Errorf("sending whatsapp message: %w", err)
	}
	if msg.Sid == nil {
		return "", fmt.Errorf("twilio returned message without sid")
	}

	return *msg.Sid, nil
}

// NeutralAck renders the empty TwiML document Twilio expects from a webhook.
// Returning it unconditionally keeps the channel from retrying on internal
// routing failures.
func NeutralAck() string {
	doc, err := twiml.Messages(nil)
	if err != nil {
		// twiml.Messages can only fail on marshalling, which an empty
		// document never does.
		return `<?xml version="1.0" encoding="UTF-8"?><Response></Response>`
	}
	return doc
}
