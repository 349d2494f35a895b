package model

import "time"

// Binding is the active association between a channel participant and an
// alert. At most one binding exists per participant; starting a new alert for
// an already-bound participant replaces the prior binding (last write wins).
type Binding struct {
	AlertID     string
	Participant string
	// OwnerID identifies the user owning the alert. Empty when the caller
	// didn't supply one; the per-owner Cluey credential is keyed by it.
	OwnerID   string
	CreatedAt time.Time
}
