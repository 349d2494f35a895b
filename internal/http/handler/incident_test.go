package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"cluey.app/bridge/internal/http/handler"
	"cluey.app/bridge/internal/service"
)

var _ = Describe("IncidentHandler", func() {
	var (
		router    *gin.Engine
		incidents *fakeIncidentService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		incidents = &fakeIncidentService{}
		h := handler.NewIncidentHandler(incidents)
		router.POST("/incident/start", h.Start)
	})

	post := func(body map[string]any) *httptest.ResponseRecorder {
		payload, err := json.Marshal(body)
		Expect(err).NotTo(HaveOccurred())

		req := httptest.NewRequest(http.MethodPost, "/incident/start", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("starts a session and echoes the binding", func() {
		var captured service.StartIncidentParams
		incidents.startFn = func(ctx context.Context, params service.StartIncidentParams) (*service.StartIncidentResult, error) {
			captured = params
			return &service.StartIncidentResult{AlertID: params.AlertID, Participant: params.Participant}, nil
		}

		w := post(map[string]any{
			"alertId":     "A1",
			"participant": "whatsapp:+100",
			"pid":         "u-7",
			"clueyToken":  "tok-abc",
		})

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(captured.OwnerID).To(Equal("u-7"))
		Expect(captured.Credential).To(Equal("tok-abc"))

		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["status"]).To(Equal("started"))
		Expect(resp["alertId"]).To(Equal("A1"))
		Expect(resp["participant"]).To(Equal("whatsapp:+100"))
	})

	It("rejects a request missing required fields with 400", func() {
		w := post(map[string]any{"participant": "whatsapp:+100"})
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("maps internal failures to 500", func() {
		incidents.startFn = func(ctx context.Context, params service.StartIncidentParams) (*service.StartIncidentResult, error) {
			return nil, context.DeadlineExceeded
		}

		w := post(map[string]any{"alertId": "A1", "participant": "whatsapp:+100"})
		Expect(w.Code).To(Equal(http.StatusInternalServerError))
	})
})
