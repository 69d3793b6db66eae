package pubsub

import "time"

// Outcome is the result of one profile view activation.
type Outcome string

const (
	OutcomeLoaded         Outcome = "loaded"
	OutcomeEmpty          Outcome = "empty"
	OutcomeSessionMissing Outcome = "session_missing"
	OutcomeSessionExpired Outcome = "session_expired"
	OutcomeFailed         Outcome = "failed"
)

// ViewOutcome is published once per profile view activation.
type ViewOutcome struct {
	RequestID string    `json:"request_id"`
	Outcome   Outcome   `json:"outcome"`
	Status    int       `json:"status,omitempty"`
	Message   string    `json:"message,omitempty"`
	At        time.Time `json:"at"`
}

// ProfileViewOutcome is the topic carrying ViewOutcome events.
var ProfileViewOutcome = NewEvent[ViewOutcome]("profile.view.outcome")
