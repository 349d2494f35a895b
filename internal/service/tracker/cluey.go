package tracker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"cluey.app/bridge/core/config"
)

// requestTimeout matches the bound the Cluey API itself documents for
// synchronous writes.
const requestTimeout = 15 * time.Second

type clueyTracker struct {
	baseURL      string
	serviceToken string
	httpClient   *http.Client
}

// NewClueyTracker builds a Tracker against the Cluey REST API. Cluey has no
// Go SDK; this speaks its JSON-over-HTTP surface directly.
func NewClueyTracker(cfg config.ClueyConfig) Tracker {
	return &clueyTracker{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		serviceToken: cfg.ServiceToken,
		httpClient:   &http.Client{Timeout: requestTimeout},
	}
}

type addNoteRequest struct {
	Text string `json:"text"`
}

func (t *clueyTracker) AddNote(ctx context.Context, credential, alertID, text string) error {
	token := credential
	if token == "" {
		token = t.serviceToken
	}
	if token == "" {
		return fmt.Errorf("no cluey credential available for alert %s", alertID)
	}

	payload, err := json.Marshal(addNoteRequest{Text: text})
	if err != nil {
		return fmt.Errorf("encoding note: %w", err)
	}

	url := fmt.Sprintf("%s/alerts/%s/notes", t.baseURL, alertID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building cluey request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling cluey: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("cluey api error: status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}
