package domain

import (
	"math"
	"time"
)

// CalculateEfficiency scores a reflection on a 0..100 scale:
// completion (1/0.5/0) * difficulty/5 * ln(1 + minutes), normalized by 1.5
// and rounded to two decimals.
func CalculateEfficiency(completion CompletionStatus, difficulty int, minutes float64) float64 {
	if minutes < 0 {
		minutes = 0
	}
	difficultyFactor := float64(difficulty) / float64(MaxDifficulty)
	timeFactor := math.Log1p(minutes)
	base := completion.Value() * difficultyFactor * timeFactor

	normalized := math.Min(math.Max(base/1.5*100.0, 0.0), 100.0)
	return math.Round(normalized*100) / 100
}

// ScoreForSession scores a reflection using the session's duration,
// counting at least one second.
func ScoreForSession(r Reflection, s Session) float64 {
	d := s.Duration()
	if d < time.Second {
		d = time.Second
	}
	return CalculateEfficiency(r.Completion, r.Difficulty, d.Minutes())
}
