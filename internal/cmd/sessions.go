package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"studyflow/internal/domain"
	"studyflow/internal/theme"
)

// SessionsCmd lists and views sessions
type SessionsCmd struct {
	List SessionsListCmd `cmd:"list" help:"List sessions" default:"1"`
	View SessionsViewCmd `cmd:"view" help:"View a session and its reflections"`
}

// SessionsListCmd lists sessions
type SessionsListCmd struct {
	Format   string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Since    string `help:"Only sessions started since this time (e.g. 'yesterday', 'last monday', '2026-03-01')"`
	Unsynced bool   `help:"Only sessions waiting for upload"`
}

// sessionJSON is the JSON form of a session in CLI output
type sessionJSON struct {
	DurationSeconds int              `json:"duration_seconds"`
	EndedAt         *time.Time       `json:"ended_at,omitempty"`
	ID              string           `json:"id"`
	Reflections     []reflectionJSON `json:"reflections,omitempty"`
	StartedAt       time.Time        `json:"started_at"`
	Subject         string           `json:"subject,omitempty"`
	Synced          bool             `json:"synced"`
}

type reflectionJSON struct {
	Completion      string    `json:"completion"`
	CreatedAt       time.Time `json:"created_at"`
	Difficulty      int       `json:"difficulty"`
	EfficiencyScore *float64  `json:"efficiency_score,omitempty"`
	ID              string    `json:"id"`
	TaskText        string    `json:"task_text,omitempty"`
}

func toSessionJSON(s domain.Session, reflections []domain.Reflection) sessionJSON {
	out := sessionJSON{
		DurationSeconds: s.DurationSeconds(),
		EndedAt:         s.EndedAt,
		ID:              s.ID,
		StartedAt:       s.StartedAt,
		Subject:         s.SubjectOr(""),
		Synced:          s.Synced,
	}
	for _, r := range reflections {
		out.Reflections = append(out.Reflections, reflectionJSON{
			Completion:      string(r.Completion),
			CreatedAt:       r.CreatedAt,
			Difficulty:      r.Difficulty,
			EfficiencyScore: r.EfficiencyScore,
			ID:              r.ID,
			TaskText:        r.TaskText,
		})
	}
	return out
}

// Run executes the list command
func (s *SessionsListCmd) Run(container *Container) error {
	ctx := context.Background()
	cache := container.Cache

	var sessions []domain.Session
	switch {
	case s.Since != "":
		since, err := parseSince(s.Since, time.Now())
		if err != nil {
			return err
		}
		sessions = cache.FetchSessionsSince(ctx, since)
	case s.Unsynced:
		sessions = cache.FetchUnsyncedSessions(ctx)
	default:
		sessions = cache.Sessions()
	}

	if s.Unsynced && s.Since != "" {
		filtered := sessions[:0]
		for _, session := range sessions {
			if !session.Synced {
				filtered = append(filtered, session)
			}
		}
		sessions = filtered
	}

	if s.Format == "json" {
		out := make([]sessionJSON, len(sessions))
		for i, session := range sessions {
			out[i] = toSessionJSON(session, nil)
		}
		return printJSON(out)
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions found.")
		return nil
	}

	reflectionCounts := make(map[string]int)
	for _, r := range cache.Reflections() {
		reflectionCounts[r.SessionID]++
	}

	rows := make([][]string, 0, len(sessions))
	for _, session := range sessions {
		rows = append(rows, []string{
			shortID(session.ID),
			session.SubjectOr("-"),
			humanize.Time(session.StartedAt),
			formatDuration(session),
			fmt.Sprintf("%d", reflectionCounts[session.ID]),
			theme.SyncBadge(session.Synced),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(theme.MutedStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return theme.HeaderStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers("ID", "SUBJECT", "STARTED", "DURATION", "REFLECTIONS", "SYNC").
		Rows(rows...)

	fmt.Println(t.Render())
	return nil
}

// formatDuration renders a session's duration, marking running sessions
func formatDuration(s domain.Session) string {
	d := s.Duration().Round(time.Second).String()
	if s.IsRunning() {
		return theme.RunningStyle.Render(d + " ●")
	}
	return d
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
