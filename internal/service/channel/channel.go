package channel

import "context"

// Sender delivers a message to a channel address. Implementations make at
// most one delivery attempt per call and must bound how long it can take.
type Sender interface {
	// Send returns the channel-assigned message id (SID) on success.
	Send(ctx context.Context, to, body string) (string, error)
}
