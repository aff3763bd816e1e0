package ports

import (
	"context"
	"time"

	"studyflow/internal/domain"
)

// SessionReader reads durable session data
type SessionReader interface {
	FetchSessions(ctx context.Context) ([]domain.Session, error)
	FetchSessionsSince(ctx context.Context, since time.Time) ([]domain.Session, error)
	FetchUnsyncedSessions(ctx context.Context) ([]domain.Session, error)
	GetSession(ctx context.Context, id string) (*domain.Session, error)
}

// SessionWriter upserts sessions and records sync acknowledgments
type SessionWriter interface {
	MarkSessionSynced(ctx context.Context, id string) error
	SaveSession(ctx context.Context, session domain.Session) error
}

// ReflectionReader reads durable reflection data
type ReflectionReader interface {
	FetchAllReflections(ctx context.Context) ([]domain.Reflection, error)
	FetchReflections(ctx context.Context, sessionID string) ([]domain.Reflection, error)
}

// ReflectionWriter upserts reflections
type ReflectionWriter interface {
	SaveReflection(ctx context.Context, reflection domain.Reflection) error
}

// RecordStore is the composite interface for the durable record store
type RecordStore interface {
	SessionReader
	SessionWriter
	ReflectionReader
	ReflectionWriter
	Close() error
}
