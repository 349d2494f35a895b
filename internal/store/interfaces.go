package store

import (
	"context"
	"errors"

	"cluey.app/bridge/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// MessageStore defines the contract for the append-only per-alert message log
type MessageStore interface {
	// Append adds a record to the end of the alert's log. It never
	// deduplicates by record id.
	Append(ctx context.Context, alertID string, record model.MessageRecord) error
	// List returns the full log in insertion order. An alert with no
	// history yields an empty slice, not an error.
	List(ctx context.Context, alertID string) ([]model.MessageRecord, error)
}

// BindingStore defines the contract for the participant↔alert binding map
type BindingStore interface {
	// Bind writes both lookup directions atomically, overwriting any
	// previous binding for the participant (last write wins).
	Bind(ctx context.Context, binding model.Binding) error
	// ResolveParticipant returns the binding for a channel address.
	ResolveParticipant(ctx context.Context, participant string) (*model.Binding, error)
	// ResolveAlert returns the participant bound to an alert.
	ResolveAlert(ctx context.Context, alertID string) (string, error)
}

// CredentialStore defines the contract for per-owner Cluey tokens
type CredentialStore interface {
	Set(ctx context.Context, ownerID, credential string) error
	Get(ctx context.Context, ownerID string) (string, error)
}
