package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for the profile view's failure modes.
var (
	// ErrNoCredential means no session credential was found for the request.
	ErrNoCredential = errors.New("no session credential")

	// ErrUnauthorized means the backend rejected the credential as invalid or expired.
	ErrUnauthorized = errors.New("session credential rejected")
)

// Notification texts shown to the user.
const (
	MsgSessionExpired  = "Your session has expired. Please log in again."
	MsgFetchFailed     = "Failed to fetch profile data."
	MsgProfileNotFound = "Profile not found."
)

// BackendError is returned for any failed profile fetch other than an
// authorization failure. Status is 0 when no response was received.
type BackendError struct {
	Status  int
	Message string
	Err     error
}

func (e *BackendError) Error() string {
	switch {
	case e.Status == 0 && e.Err != nil:
		return fmt.Sprintf("profile backend unreachable: %v", e.Err)
	case e.Message != "":
		return fmt.Sprintf("profile backend returned %d: %s", e.Status, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("profile backend returned %d: %v", e.Status, e.Err)
	default:
		return fmt.Sprintf("profile backend returned %d", e.Status)
	}
}

func (e *BackendError) Unwrap() error { return e.Err }

// NotificationMessage maps a fetch error to the text shown to the user.
func NotificationMessage(err error) string {
	if errors.Is(err, ErrUnauthorized) {
		return MsgSessionExpired
	}
	var be *BackendError
	if errors.As(err, &be) && be.Message != "" {
		return be.Message
	}
	return MsgFetchFailed
}
