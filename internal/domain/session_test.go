package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	subject := "Linear algebra"

	s := NewSession(&subject, now)

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, now, s.StartedAt)
	assert.Equal(t, now, s.CreatedAt)
	assert.Nil(t, s.EndedAt)
	assert.False(t, s.Synced)
	assert.True(t, s.IsRunning())
	assert.Equal(t, "Linear algebra", s.SubjectOr("-"))
}

func TestNewSession_UniqueIDs(t *testing.T) {
	now := time.Now()
	a := NewSession(nil, now)
	b := NewSession(nil, now)

	assert.NotEqual(t, a.ID, b.ID, "each session should get its own id")
}

func TestSession_DurationAt(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		ended    *time.Time
		now      time.Time
		expected time.Duration
	}{
		{"running uses now", nil, start.Add(90 * time.Second), 90 * time.Second},
		{"ended uses end", ptr(start.Add(25 * time.Minute)), start.Add(2 * time.Hour), 25 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Session{StartedAt: start, EndedAt: tt.ended}
			assert.Equal(t, tt.expected, s.DurationAt(tt.now))
		})
	}
}

func TestSession_EndedResetsSynced(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s := Session{ID: "s1", StartedAt: start, Synced: true}

	ended := s.Ended(start.Add(time.Hour))

	require.NotNil(t, ended.EndedAt)
	assert.Equal(t, start.Add(time.Hour), *ended.EndedAt)
	assert.False(t, ended.Synced, "ending is a local mutation")
	assert.True(t, s.Synced, "original copy must be untouched")
	assert.Nil(t, s.EndedAt)
}

func TestSession_SubjectOr(t *testing.T) {
	empty := ""
	assert.Equal(t, "untitled", Session{}.SubjectOr("untitled"))
	assert.Equal(t, "untitled", Session{Subject: &empty}.SubjectOr("untitled"))
}

func TestNewReflection_Validation(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name       string
		sessionID  string
		completion CompletionStatus
		difficulty int
		wantErr    error
	}{
		{"valid", "s1", CompletionComplete, 3, nil},
		{"lower bound", "s1", CompletionNone, 1, nil},
		{"upper bound", "s1", CompletionPartial, 5, nil},
		{"difficulty too low", "s1", CompletionComplete, 0, ErrInvalidDifficulty},
		{"difficulty too high", "s1", CompletionComplete, 6, ErrInvalidDifficulty},
		{"unknown completion", "s1", CompletionStatus("maybe"), 3, ErrInvalidCompletion},
		{"missing session", "", CompletionComplete, 3, ErrReflectionInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewReflection(tt.sessionID, "task", tt.completion, tt.difficulty, now)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, r.ID)
			assert.Equal(t, tt.sessionID, r.SessionID)
			assert.Nil(t, r.EfficiencyScore)
		})
	}
}

func TestReflection_AttachScoreOnce(t *testing.T) {
	r, err := NewReflection("s1", "", CompletionPartial, 2, time.Now())
	require.NoError(t, err)

	require.NoError(t, r.AttachScore(42.5))
	require.NotNil(t, r.EfficiencyScore)
	assert.Equal(t, 42.5, *r.EfficiencyScore)

	err = r.AttachScore(10)
	assert.ErrorIs(t, err, ErrScoreAlreadySet)
	assert.Equal(t, 42.5, *r.EfficiencyScore, "score must not be recomputed in place")
}

func TestParseCompletionStatus(t *testing.T) {
	tests := []struct {
		input    string
		expected CompletionStatus
	}{
		{"complete", CompletionComplete},
		{"COMPLETE", CompletionComplete},
		{"yes", CompletionComplete},
		{"partial", CompletionPartial},
		{" none ", CompletionNone},
		{"no", CompletionNone},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCompletionStatus(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := ParseCompletionStatus("done")
	assert.ErrorIs(t, err, ErrInvalidCompletion)
}

func ptr[T any](v T) *T {
	return &v
}
