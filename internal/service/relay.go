package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"

	"cluey.app/bridge/common/id"
	"cluey.app/bridge/common/logger"
	"cluey.app/bridge/internal/model"
	"cluey.app/bridge/internal/service/channel"
	"cluey.app/bridge/internal/service/tracker"
	"cluey.app/bridge/internal/store"
)

// forwardTimeout bounds the detached Cluey forward. It is deliberately wider
// than the tracker's own request timeout.
const forwardTimeout = 20 * time.Second

type SendResult struct {
	SID     string
	AlertID string
}

type ReceiveResult struct {
	AlertID  string
	RecordID string
}

// RelayService routes messages in both directions using the binding registry
// and records every routed message in the alert's log.
type RelayService interface {
	// Send delivers text to the participant bound to the alert. The
	// outbound record is appended only after confirmed delivery, so the
	// log never claims a message that was not dispatched.
	Send(ctx context.Context, alertID, text string) (*SendResult, error)

	// Receive routes an inbound channel message to the bound alert. The
	// Cluey forward, when configured, is detached and best-effort: its
	// failure never fails the receive or blocks the channel ack.
	Receive(ctx context.Context, participant, text string) (*ReceiveResult, error)

	// Messages returns the alert's log in insertion order. An unknown
	// alert yields an empty slice; existence is deliberately not checked.
	Messages(ctx context.Context, alertID string) ([]model.MessageRecord, error)
}

type relayService struct {
	bindings    store.BindingStore
	credentials store.CredentialStore
	messages    store.MessageStore
	sender      channel.Sender
	tracker     tracker.Tracker
	forward     bool
}

func NewRelayService(
	bindings store.BindingStore,
	credentials store.CredentialStore,
	messages store.MessageStore,
	sender channel.Sender,
	tr tracker.Tracker,
	forward bool,
) RelayService {
	return &relayService{
		bindings:    bindings,
		credentials: credentials,
		messages:    messages,
		sender:      sender,
		tracker:     tr,
		forward:     forward,
	}
}

func (s *relayService) Send(ctx context.Context, alertID, text string) (*SendResult, error) {
	if alertID == "" {
		return nil, fmt.Errorf("%w: alertId is required", ErrInvalidRequest)
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		AlertID:   logger.Ptr(alertID),
		Component: "bridge.relay.outbound",
	})

	participant, err := s.bindings.ResolveAlert(ctx, alertID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUnknownAlert
		}
		return nil, fmt.Errorf("resolving alert binding: %w", err)
	}

	sid, err := s.sender.Send(ctx, participant, text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	record := model.MessageRecord{
		ID:        sid,
		Direction: model.DirectionOutbound,
		Text:      text,
		Timestamp: time.Now().UnixMilli(),
	}
	if err := s.messages.Append(ctx, alertID, record); err != nil {
		// Delivered but not recorded. Surface the store failure; the
		// message itself is already on its way.
		return nil, fmt.Errorf("appending outbound record: %w", err)
	}

	slog.InfoContext(ctx, "outbound message relayed", "sid", sid)

	return &SendResult{SID: sid, AlertID: alertID}, nil
}

func (s *relayService) Receive(ctx context.Context, participant, text string) (*ReceiveResult, error) {
	if participant == "" {
		return nil, fmt.Errorf("%w: sender address is required", ErrInvalidRequest)
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		Participant: logger.Ptr(participant),
		Component:   "bridge.relay.inbound",
	})

	binding, err := s.bindings.ResolveParticipant(ctx, participant)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUnknownParticipant
		}
		return nil, fmt.Errorf("resolving participant binding: %w", err)
	}

	record := model.MessageRecord{
		ID:        id.Inbound(),
		Direction: model.DirectionInbound,
		Text:      text,
		Timestamp: time.Now().UnixMilli(),
	}
	if err := s.messages.Append(ctx, binding.AlertID, record); err != nil {
		return nil, fmt.Errorf("appending inbound record: %w", err)
	}

	slog.InfoContext(ctx, "inbound message relayed", "alert_id", binding.AlertID, "record_id", record.ID)

	if s.forward && binding.OwnerID != "" {
		// Detached from the request: the channel ack must not wait on
		// Cluey, and a Cluey outage must not lose the record above.
		go s.forwardToCluey(context.WithoutCancel(ctx), binding, text)
	}

	return &ReceiveResult{AlertID: binding.AlertID, RecordID: record.ID}, nil
}

func (s *relayService) Messages(ctx context.Context, alertID string) ([]model.MessageRecord, error) {
	return s.messages.List(ctx, alertID)
}

func (s *relayService) forwardToCluey(ctx context.Context, binding *model.Binding, text string) {
	ctx, cancel := context.WithTimeout(ctx, forwardTimeout)
	defer cancel()

	sc := logger.StartSpan(ctx, "bridge.forward", trace.WithSpanKind(trace.SpanKindClient))
	defer sc.End()
	ctx = sc.Context()

	credential, err := s.credentials.Get(ctx, binding.OwnerID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		slog.WarnContext(ctx, "cluey forward skipped: credential lookup failed", "error", err, "owner_id", binding.OwnerID)
		return
	}

	if err := s.tracker.AddNote(ctx, credential, binding.AlertID, text); err != nil {
		sc.RecordError(err)
		slog.WarnContext(ctx, "cluey forward failed", "error", err, "alert_id", binding.AlertID)
		return
	}

	slog.DebugContext(ctx, "cluey forward delivered", "alert_id", binding.AlertID)
}
