package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cluey.app/bridge/common/id"
	"cluey.app/bridge/common/logger"
	"cluey.app/bridge/internal/model"
	"cluey.app/bridge/internal/store"
)

type StartIncidentParams struct {
	AlertID     string
	Participant string
	OwnerID     string
	Credential  string
}

type StartIncidentResult struct {
	AlertID     string
	Participant string
}

// IncidentService manages the participant↔alert session lifecycle.
type IncidentService interface {
	// Start binds the participant to the alert and opens the conversation
	// log with a system record. Rebinding an already-bound participant is
	// idempotent at the binding level; the log is not deduplicated, so
	// repeated starts leave one system record each as an audit trail.
	Start(ctx context.Context, params StartIncidentParams) (*StartIncidentResult, error)
}

type incidentService struct {
	bindings    store.BindingStore
	credentials store.CredentialStore
	messages    store.MessageStore
}

func NewIncidentService(bindings store.BindingStore, credentials store.CredentialStore, messages store.MessageStore) IncidentService {
	return &incidentService{
		bindings:    bindings,
		credentials: credentials,
		messages:    messages,
	}
}

func (s *incidentService) Start(ctx context.Context, params StartIncidentParams) (*StartIncidentResult, error) {
	if params.AlertID == "" || params.Participant == "" {
		return nil, fmt.Errorf("%w: alertId and participant are required", ErrInvalidRequest)
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		AlertID:     logger.Ptr(params.AlertID),
		Participant: logger.Ptr(params.Participant),
		Component:   "bridge.incident",
	})

	if params.OwnerID != "" && params.Credential != "" {
		if err := s.credentials.Set(ctx, params.OwnerID, params.Credential); err != nil {
			return nil, fmt.Errorf("storing owner credential: %w", err)
		}
	}

	if err := s.bindings.Bind(ctx, model.Binding{
		AlertID:     params.AlertID,
		Participant: params.Participant,
		OwnerID:     params.OwnerID,
		CreatedAt:   time.Now().UTC(),
	}); err != nil {
		return nil, fmt.Errorf("binding participant: %w", err)
	}

	record := model.MessageRecord{
		ID:        id.System(),
		Direction: model.DirectionSystem,
		Text:      fmt.Sprintf("WhatsApp conversation started for alert %s", params.AlertID),
		Timestamp: time.Now().UnixMilli(),
	}
	if err := s.messages.Append(ctx, params.AlertID, record); err != nil {
		return nil, fmt.Errorf("appending system record: %w", err)
	}

	slog.InfoContext(ctx, "incident session started", "owner_set", params.OwnerID != "")

	return &StartIncidentResult{
		AlertID:     params.AlertID,
		Participant: params.Participant,
	}, nil
}
