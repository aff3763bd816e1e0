package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session represents a timed study session (domain entity)
type Session struct {
	CreatedAt time.Time
	EndedAt   *time.Time
	ID        string
	StartedAt time.Time
	Subject   *string
	Synced    bool
	UserID    *string
}

// NewSession creates an unsynced, running session started at now
func NewSession(subject *string, now time.Time) Session {
	return Session{
		CreatedAt: now,
		ID:        uuid.New().String(),
		StartedAt: now,
		Subject:   subject,
	}
}

// IsRunning reports whether the session has not been ended yet
func (s Session) IsRunning() bool {
	return s.EndedAt == nil
}

// Duration returns (end or now) - start. It is never stored.
func (s Session) Duration() time.Duration {
	return s.DurationAt(time.Now())
}

// DurationAt is Duration with an explicit "now" for running sessions
func (s Session) DurationAt(now time.Time) time.Duration {
	end := now
	if s.EndedAt != nil {
		end = *s.EndedAt
	}
	return end.Sub(s.StartedAt)
}

// DurationSeconds returns the duration truncated to whole seconds
func (s Session) DurationSeconds() int {
	return int(s.Duration() / time.Second)
}

// SubjectOr returns the subject label or fallback when unset
func (s Session) SubjectOr(fallback string) string {
	if s.Subject == nil || *s.Subject == "" {
		return fallback
	}
	return *s.Subject
}

// Ended returns a copy ended at the given time. Ending is a local mutation,
// so the copy is no longer synced.
func (s Session) Ended(at time.Time) Session {
	s.EndedAt = &at
	s.Synced = false
	return s
}
