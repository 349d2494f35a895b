package model

// Direction classifies who produced a message record.
type Direction string

const (
	DirectionSystem   Direction = "system"
	DirectionInbound  Direction = "inbound"
	DirectionOutbound Direction = "outbound"
)

// MessageRecord is one entry in an alert's conversation log. Records are
// immutable once appended; the log itself is append-only and iteration order
// is insertion order.
type MessageRecord struct {
	// ID is unique within the alert's log: the Twilio SID for outbound
	// records, a generated "in-"/"sys-" id otherwise.
	ID        string    `json:"id"`
	Direction Direction `json:"direction"`
	// Text may be empty for inbound records where the channel omits a body.
	Text string `json:"text"`
	// Timestamp is wall-clock unix milliseconds at record creation. Appends
	// are ordered; timestamps are not guaranteed monotonic across writers.
	Timestamp int64 `json:"timestamp"`
}
