package storage

import (
	"time"

	"studyflow/internal/domain"
)

// sessionModelToDomain converts a SessionModel (GORM) to domain.Session
func sessionModelToDomain(m SessionModel) domain.Session {
	return domain.Session{
		CreatedAt: m.CreatedAt,
		EndedAt:   m.EndedAt,
		ID:        m.ID,
		StartedAt: m.StartedAt,
		Subject:   m.Subject,
		Synced:    m.Synced,
		UserID:    m.UserID,
	}
}

// domainToSessionModel converts a domain.Session to SessionModel (GORM).
// Timestamps are stored in UTC.
func domainToSessionModel(s domain.Session) SessionModel {
	createdAt := s.CreatedAt
	if createdAt.IsZero() {
		createdAt = s.StartedAt
	}

	var endedAt *time.Time
	if s.EndedAt != nil {
		utc := s.EndedAt.UTC()
		endedAt = &utc
	}

	return SessionModel{
		CreatedAt: createdAt.UTC(),
		EndedAt:   endedAt,
		ID:        s.ID,
		StartedAt: s.StartedAt.UTC(),
		Subject:   s.Subject,
		Synced:    s.Synced,
		UserID:    s.UserID,
	}
}

// reflectionModelToDomain converts a ReflectionModel (GORM) to domain.Reflection
func reflectionModelToDomain(m ReflectionModel) domain.Reflection {
	taskText := ""
	if m.TaskText != nil {
		taskText = *m.TaskText
	}

	return domain.Reflection{
		Completion:      domain.CompletionStatus(m.Completion),
		CreatedAt:       m.CreatedAt,
		Difficulty:      m.Difficulty,
		EfficiencyScore: m.EfficiencyScore,
		ID:              m.ID,
		SessionID:       m.SessionID,
		TaskText:        taskText,
		UserID:          m.UserID,
	}
}

// domainToReflectionModel converts a domain.Reflection to ReflectionModel (GORM)
func domainToReflectionModel(r domain.Reflection) ReflectionModel {
	var taskText *string
	if r.TaskText != "" {
		text := r.TaskText
		taskText = &text
	}

	return ReflectionModel{
		Completion:      string(r.Completion),
		CreatedAt:       r.CreatedAt.UTC(),
		Difficulty:      r.Difficulty,
		EfficiencyScore: r.EfficiencyScore,
		ID:              r.ID,
		SessionID:       r.SessionID,
		TaskText:        taskText,
		UserID:          r.UserID,
	}
}
