package webhook_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"cluey.app/bridge/internal/http/handler/webhook"
	"cluey.app/bridge/internal/model"
	"cluey.app/bridge/internal/service"
)

type fakeRelayService struct {
	receiveFn func(ctx context.Context, participant, text string) (*service.ReceiveResult, error)
	received  []receivedMessage
}

type receivedMessage struct {
	participant string
	text        string
}

func (f *fakeRelayService) Send(ctx context.Context, alertID, text string) (*service.SendResult, error) {
	return nil, service.ErrUnknownAlert
}

func (f *fakeRelayService) Receive(ctx context.Context, participant, text string) (*service.ReceiveResult, error) {
	f.received = append(f.received, receivedMessage{participant: participant, text: text})
	if f.receiveFn != nil {
		return f.receiveFn(ctx, participant, text)
	}
	return &service.ReceiveResult{AlertID: "A1", RecordID: "in-1"}, nil
}

func (f *fakeRelayService) Messages(ctx context.Context, alertID string) ([]model.MessageRecord, error) {
	return []model.MessageRecord{}, nil
}

var _ = Describe("TwilioWebhookHandler", func() {
	var (
		router *gin.Engine
		relay  *fakeRelayService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		relay = &fakeRelayService{}
		h := webhook.NewTwilioWebhookHandler(relay)
		router.POST("/webhook", h.HandleMessage)
	})

	post := func(form url.Values) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("routes the message and acks with TwiML", func() {
		w := post(url.Values{"From": {"whatsapp:+100"}, "Body": {"hi"}})

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Header().Get("Content-Type")).To(ContainSubstring("text/xml"))
		Expect(w.Body.String()).To(ContainSubstring("<Response"))

		Expect(relay.received).To(HaveLen(1))
		Expect(relay.received[0].participant).To(Equal("whatsapp:+100"))
		Expect(relay.received[0].text).To(Equal("hi"))
	})

	It("acks an unknown sender with 200 and no error to the channel", func() {
		relay.receiveFn = func(ctx context.Context, participant, text string) (*service.ReceiveResult, error) {
			return nil, service.ErrUnknownParticipant
		}

		w := post(url.Values{"From": {"whatsapp:+999"}, "Body": {"hi"}})

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring("<Response"))
	})

	It("acks even when the relay fails internally", func() {
		relay.receiveFn = func(ctx context.Context, participant, text string) (*service.ReceiveResult, error) {
			return nil, context.DeadlineExceeded
		}

		w := post(url.Values{"From": {"whatsapp:+100"}, "Body": {"hi"}})

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring("<Response"))
	})

	It("treats a missing body as an empty message", func() {
		w := post(url.Values{"From": {"whatsapp:+100"}})

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(relay.received).To(HaveLen(1))
		Expect(relay.received[0].text).To(BeEmpty())
	})
})
