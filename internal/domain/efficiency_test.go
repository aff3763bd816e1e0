package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculateEfficiency_Complete(t *testing.T) {
	score := CalculateEfficiency(CompletionComplete, 5, 30)

	assert.GreaterOrEqual(t, score, 0.0)
	assert.LessOrEqual(t, score, 100.0)
	assert.Greater(t, score, 50.0, "high difficulty and complete should score high")
}

func TestCalculateEfficiency_Incomplete(t *testing.T) {
	score := CalculateEfficiency(CompletionNone, 5, 30)

	assert.Less(t, score, 30.0)
}

func TestCalculateEfficiency_EdgeCases(t *testing.T) {
	tests := []struct {
		name       string
		completion CompletionStatus
		difficulty int
		minutes    float64
		check      func(t *testing.T, score float64)
	}{
		{"zero duration", CompletionComplete, 5, 0, func(t *testing.T, s float64) { assert.Equal(t, 0.0, s) }},
		{"negative duration clamps", CompletionComplete, 5, -10, func(t *testing.T, s float64) { assert.Equal(t, 0.0, s) }},
		{"capped at 100", CompletionComplete, 5, 120, func(t *testing.T, s float64) { assert.Equal(t, 100.0, s) }},
		{"min difficulty positive", CompletionComplete, 1, 30, func(t *testing.T, s float64) { assert.Greater(t, s, 0.0) }},
		{"partial is half of complete", CompletionPartial, 1, 5, func(t *testing.T, s float64) {
			assert.InDelta(t, CalculateEfficiency(CompletionComplete, 1, 5)/2, s, 0.01)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, CalculateEfficiency(tt.completion, tt.difficulty, tt.minutes))
		})
	}
}

func TestCalculateEfficiency_RoundsToTwoDecimals(t *testing.T) {
	// 0.2 * ln(11) / 1.5 * 100 = 31.9720...
	score := CalculateEfficiency(CompletionComplete, 1, 10)
	assert.Equal(t, 31.97, score)
}

func TestScoreForSession_UsesSessionDuration(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s := Session{StartedAt: start}.Ended(start.Add(10 * time.Minute))
	r := Reflection{Completion: CompletionComplete, Difficulty: 1}

	assert.Equal(t, CalculateEfficiency(CompletionComplete, 1, 10), ScoreForSession(r, s))
}

func TestScoreForSession_CountsAtLeastOneSecond(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s := Session{StartedAt: start}.Ended(start)
	r := Reflection{Completion: CompletionComplete, Difficulty: 5}

	assert.Greater(t, ScoreForSession(r, s), 0.0)
}
