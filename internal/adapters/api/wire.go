package api

import (
	"time"

	"studyflow/internal/domain"
)

// SessionPayload is the JSON form of a session
type SessionPayload struct {
	CreatedAt time.Time  `json:"created_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
	ID        string     `json:"id"`
	StartedAt time.Time  `json:"started_at"`
	Subject   *string    `json:"subject,omitempty"`
	UserID    *string    `json:"user_id,omitempty"`
}

// ReflectionPayload is the JSON form of a reflection
type ReflectionPayload struct {
	Completion      string    `json:"completion"`
	CreatedAt       time.Time `json:"created_at"`
	Difficulty      int       `json:"difficulty"`
	EfficiencyScore *float64  `json:"efficiency_score,omitempty"`
	ID              string    `json:"id"`
	SessionID       string    `json:"session_id"`
	TaskText        string    `json:"task_text"`
	UserID          *string   `json:"user_id,omitempty"`
}

// SessionUpload is the body of POST /api/sessions
type SessionUpload struct {
	Reflections []ReflectionPayload `json:"reflections"`
	Session     SessionPayload      `json:"session"`
}

// Ack acknowledges an upload
type Ack struct {
	OK bool `json:"ok"`
}

// ScoreResponse is the body returned by POST /api/reflections/score
type ScoreResponse struct {
	Score float64 `json:"score"`
}

// ErrorResponse is returned with non-2xx statuses
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewSessionPayload converts a domain session
func NewSessionPayload(s domain.Session) SessionPayload {
	return SessionPayload{
		CreatedAt: s.CreatedAt,
		EndedAt:   s.EndedAt,
		ID:        s.ID,
		StartedAt: s.StartedAt,
		Subject:   s.Subject,
		UserID:    s.UserID,
	}
}

// Domain converts the payload back. Synced is a local flag and is not sent.
func (p SessionPayload) Domain() domain.Session {
	return domain.Session{
		CreatedAt: p.CreatedAt,
		EndedAt:   p.EndedAt,
		ID:        p.ID,
		StartedAt: p.StartedAt,
		Subject:   p.Subject,
		UserID:    p.UserID,
	}
}

// NewReflectionPayload converts a domain reflection
func NewReflectionPayload(r domain.Reflection) ReflectionPayload {
	return ReflectionPayload{
		Completion:      string(r.Completion),
		CreatedAt:       r.CreatedAt,
		Difficulty:      r.Difficulty,
		EfficiencyScore: r.EfficiencyScore,
		ID:              r.ID,
		SessionID:       r.SessionID,
		TaskText:        r.TaskText,
		UserID:          r.UserID,
	}
}

// Domain converts the payload back and validates it
func (p ReflectionPayload) Domain() (domain.Reflection, error) {
	r := domain.Reflection{
		Completion:      domain.CompletionStatus(p.Completion),
		CreatedAt:       p.CreatedAt,
		Difficulty:      p.Difficulty,
		EfficiencyScore: p.EfficiencyScore,
		ID:              p.ID,
		SessionID:       p.SessionID,
		TaskText:        p.TaskText,
		UserID:          p.UserID,
	}
	if err := r.Validate(); err != nil {
		return domain.Reflection{}, err
	}
	return r, nil
}

func reflectionPayloads(reflections []domain.Reflection) []ReflectionPayload {
	out := make([]ReflectionPayload, len(reflections))
	for i, r := range reflections {
		out[i] = NewReflectionPayload(r)
	}
	return out
}
