package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields contains structured fields automatically added to all logs within
// a context. Fields flow through context enrichment, so routing context
// (alert_id, participant, etc.) shows up in every log statement without each
// call site repeating it.
type LogFields struct {
	AlertID     *string // bound incident/alert id
	Participant *string // channel address (phone number)
	MessageID   *string // channel SID or generated record id
	OwnerID     *string // user owning the alert
	Component   string  // component name, e.g. "bridge.relay.inbound"
}

// WithLogFields enriches context with structured log fields.
// Multiple calls merge fields, with newer non-nil/non-empty values taking precedence.
// Context timeouts and cancellation are preserved.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	existing := GetLogFields(ctx)
	merged := mergeFields(existing, fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields retrieves log fields from context.
// Returns empty LogFields if none are set.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, next LogFields) LogFields {
	result := existing

	if next.AlertID != nil {
		result.AlertID = next.AlertID
	}
	if next.Participant != nil {
		result.Participant = next.Participant
	}
	if next.MessageID != nil {
		result.MessageID = next.MessageID
	}
	if next.OwnerID != nil {
		result.OwnerID = next.OwnerID
	}
	if next.Component != "" {
		result.Component = next.Component
	}

	return result
}

// Ptr is a helper to create a pointer from a value.
// Useful for setting LogFields inline: logger.WithLogFields(ctx, logger.LogFields{AlertID: logger.Ptr(id)})
func Ptr[T any](v T) *T {
	return &v
}
