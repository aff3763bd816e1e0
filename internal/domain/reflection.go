package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CompletionStatus is the self-assessed completion of a session's task
type CompletionStatus string

const (
	CompletionComplete CompletionStatus = "complete"
	CompletionNone     CompletionStatus = "none"
	CompletionPartial  CompletionStatus = "partial"
)

// Difficulty bounds (inclusive)
const (
	MaxDifficulty = 5
	MinDifficulty = 1
)

// CompletionStatuses lists every valid status in display order
var CompletionStatuses = []CompletionStatus{
	CompletionComplete,
	CompletionPartial,
	CompletionNone,
}

// ParseCompletionStatus parses a status name. "yes" and "no" are accepted as
// aliases of complete and none.
func ParseCompletionStatus(s string) (CompletionStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "complete", "yes":
		return CompletionComplete, nil
	case "partial":
		return CompletionPartial, nil
	case "none", "no":
		return CompletionNone, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCompletion, s)
}

// Valid reports whether the status is one of the known values
func (c CompletionStatus) Valid() bool {
	switch c {
	case CompletionComplete, CompletionPartial, CompletionNone:
		return true
	}
	return false
}

// Value maps the status to its weight in the efficiency score
func (c CompletionStatus) Value() float64 {
	switch c {
	case CompletionComplete:
		return 1.0
	case CompletionPartial:
		return 0.5
	default:
		return 0.0
	}
}

// Reflection is a self-assessment attached to a session
type Reflection struct {
	Completion      CompletionStatus
	CreatedAt       time.Time
	Difficulty      int
	EfficiencyScore *float64
	ID              string
	SessionID       string
	TaskText        string
	UserID          *string
}

// NewReflection creates a validated reflection for a session
func NewReflection(sessionID, taskText string, completion CompletionStatus, difficulty int, now time.Time) (Reflection, error) {
	r := Reflection{
		Completion: completion,
		CreatedAt:  now,
		Difficulty: difficulty,
		ID:         uuid.New().String(),
		SessionID:  sessionID,
		TaskText:   taskText,
	}
	if err := r.Validate(); err != nil {
		return Reflection{}, err
	}
	return r, nil
}

// Validate checks the reflection invariants
func (r Reflection) Validate() error {
	if r.SessionID == "" {
		return fmt.Errorf("%w: missing session id", ErrReflectionInvalid)
	}
	if !r.Completion.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidCompletion, r.Completion)
	}
	if r.Difficulty < MinDifficulty || r.Difficulty > MaxDifficulty {
		return fmt.Errorf("%w: got %d", ErrInvalidDifficulty, r.Difficulty)
	}
	return nil
}

// AttachScore sets the efficiency score. A score is attached at most once;
// a new reflection must be created to record a different one.
func (r *Reflection) AttachScore(score float64) error {
	if r.EfficiencyScore != nil {
		return ErrScoreAlreadySet
	}
	r.EfficiencyScore = &score
	return nil
}
