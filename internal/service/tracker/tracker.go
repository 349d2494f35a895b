package tracker

import "context"

// Tracker posts conversation activity to the incident tracking backend on
// behalf of an alert owner. Calls are best-effort from the relay's point of
// view: the caller observes failures but never depends on success.
type Tracker interface {
	// AddNote appends a free-text note to the alert. credential is the
	// per-owner token; implementations fall back to their service token
	// when it is empty.
	AddNote(ctx context.Context, credential, alertID, text string) error
}
