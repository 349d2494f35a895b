package store

import "fmt"

// Key layout. Bindings are written in both directions so the outbound relay
// can resolve by alert id and the inbound relay by participant address.

func messagesKey(alertID string) string {
	return fmt.Sprintf("incident:%s:messages", alertID)
}

func alertParticipantKey(alertID string) string {
	return fmt.Sprintf("incident:%s:participant", alertID)
}

func participantAlertKey(participant string) string {
	return fmt.Sprintf("participant:%s:incident", participant)
}

func participantOwnerKey(participant string) string {
	return fmt.Sprintf("participant:%s:owner", participant)
}

func participantBoundAtKey(participant string) string {
	return fmt.Sprintf("participant:%s:bound_at", participant)
}

func ownerCredentialKey(ownerID string) string {
	return fmt.Sprintf("owner:%s:credential", ownerID)
}
