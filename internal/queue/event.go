// Package queue defines message payloads exchanged over the message broker.
package queue

// Session lifecycle event types published to the "session.events" queue.
const (
	EventSignedIn  = "session.signed_in"
	EventSignedOut = "session.signed_out"
	EventVerified  = "hawker.verified"
)

// SessionEvent is published when a session is created or destroyed, or when
// an admin verifies a hawker.  It carries enough for downstream consumers to
// audit sign-ins and trigger approval notifications without calling back into
// the data API.
type SessionEvent struct {
	EventID    string `json:"event_id"`
	Type       string `json:"type"`
	UserID     string `json:"user_id"`
	Role       string `json:"role,omitempty"`
	Email      string `json:"email,omitempty"`
	OccurredAt string `json:"occurred_at"`
}
