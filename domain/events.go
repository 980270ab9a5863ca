package domain

import "time"

// AuditEventType defines the type of audit event
type AuditEventType string

const (
	// Registration events
	UserRegistrationEvent        AuditEventType = "USER_REGISTERED"
	UserRegistrationFailureEvent AuditEventType = "USER_REGISTRATION_FAILED"

	// Two-stage login events
	PasswordVerifiedEvent    AuditEventType = "PASSWORD_VERIFIED"
	PasswordRejectedEvent    AuditEventType = "PASSWORD_REJECTED"
	SecondFactorPassedEvent  AuditEventType = "SECOND_FACTOR_PASSED"
	SecondFactorFailedEvent  AuditEventType = "SECOND_FACTOR_FAILED"
	SecondFactorExpiredEvent AuditEventType = "SECOND_FACTOR_EXPIRED"

	// Session events
	UserLogoutEvent AuditEventType = "USER_LOGOUT"
)

// AuditEvent represents a security-relevant event in the authentication flow.
// It never carries passwords, hashes, secrets or submitted codes.
type AuditEvent struct {
	EventType AuditEventType `json:"event_type"`
	UserID    uint           `json:"user_id,omitempty"`
	Username  string         `json:"username,omitempty"`
	SessionID string         `json:"session_id,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
	Success   bool           `json:"success"`
	ErrorMsg  string         `json:"error_msg,omitempty"`
}

// NewAuditEvent creates a new audit event with common fields populated
func NewAuditEvent(eventType AuditEventType, userID uint) *AuditEvent {
	return &AuditEvent{
		EventType: eventType,
		UserID:    userID,
		Timestamp: time.Now().UTC(),
		Success:   true,
	}
}

// WithError marks the event as failed
func (e *AuditEvent) WithError(err error) *AuditEvent {
	e.Success = false
	if err != nil {
		e.ErrorMsg = err.Error()
	}
	return e
}

// WithUsername sets the username field
func (e *AuditEvent) WithUsername(username string) *AuditEvent {
	e.Username = username
	return e
}

// WithSession sets the session field
func (e *AuditEvent) WithSession(sessionID string) *AuditEvent {
	e.SessionID = sessionID
	return e
}
