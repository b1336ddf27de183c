package plan

import "fmt"

// SessionNotFoundError signals an unknown or expired plan session.
type SessionNotFoundError struct {
	SessionID string
}

func (e *SessionNotFoundError) Error() string {
	return fmt.Sprintf("plan session %s not found or expired", e.SessionID)
}

// StepBlockedError signals a forward transition the wizard does not allow.
type StepBlockedError struct {
	Message string
}

func (e *StepBlockedError) Error() string {
	return e.Message
}
