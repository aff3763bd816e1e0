package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"studyflow/internal/domain"
	"studyflow/internal/theme"
)

// SessionsViewCmd views a specific session
type SessionsViewCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	ID     string `arg:"" help:"Session id or prefix"`
}

// Run executes the view command
func (s *SessionsViewCmd) Run(container *Container) error {
	session, err := findSession(container.Cache, s.ID)
	if err != nil {
		return err
	}
	reflections := container.Cache.FetchReflections(context.Background(), session.ID)

	if s.Format == "json" {
		return printJSON(toSessionJSON(session, reflections))
	}
	s.printTable(session, reflections)
	return nil
}

func (s *SessionsViewCmd) printTable(session domain.Session, reflections []domain.Reflection) {
	label := theme.LabelStyle.Render

	fmt.Printf("%s %s\n", label("Session:"), theme.TitleStyle.Render(session.ID))
	fmt.Printf("%s %s\n", label("Subject:"), session.SubjectOr("-"))
	fmt.Printf("%s %s (%s)\n", label("Started:"),
		session.StartedAt.Local().Format("2006-01-02 15:04:05"), humanize.Time(session.StartedAt))
	if session.EndedAt != nil {
		fmt.Printf("%s %s\n", label("Ended:"), session.EndedAt.Local().Format("2006-01-02 15:04:05"))
	} else {
		fmt.Printf("%s %s\n", label("Ended:"), theme.RunningStyle.Render("running"))
	}
	fmt.Printf("%s %s\n", label("Duration:"), session.Duration().Round(time.Second))
	fmt.Printf("%s %s\n", label("Sync:"), theme.SyncBadge(session.Synced))

	if len(reflections) == 0 {
		fmt.Printf("\n%s\n", theme.MutedStyle.Render("No reflections."))
		return
	}

	fmt.Printf("\n%s\n", theme.HeaderStyle.Render(fmt.Sprintf("Reflections (%d)", len(reflections))))
	for _, r := range reflections {
		task := r.TaskText
		if task == "" {
			task = "-"
		}
		fmt.Printf("  %s  %-8s  difficulty %d  score %s  %s\n",
			theme.MutedStyle.Render(humanize.Time(r.CreatedAt)),
			r.Completion,
			r.Difficulty,
			theme.FormatScore(r.EfficiencyScore),
			task)
	}
}
