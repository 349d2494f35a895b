package service

import "errors"

var (
	// ErrInvalidRequest means required fields were missing. Nothing is
	// mutated when it is returned.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUnknownAlert means no participant is bound to the alert id.
	ErrUnknownAlert = errors.New("no participant bound to alert")

	// ErrUnknownParticipant means no alert is bound to the sender. This is
	// the normal outcome for messages from unrecognized numbers.
	ErrUnknownParticipant = errors.New("no alert bound to participant")

	// ErrDeliveryFailed wraps a channel delivery error. There is exactly
	// one delivery attempt per call; the caller decides whether to retry.
	ErrDeliveryFailed = errors.New("message delivery failed")
)
