package cmd

import (
	"fmt"
	"time"

	"studyflow/internal/domain"
	"studyflow/internal/theme"
)

// StopCmd ends a running session
type StopCmd struct {
	ID string `arg:"" optional:"" help:"Session id or prefix (defaults to the latest running session)"`
}

// Run executes the stop command
func (s *StopCmd) Run(container *Container) error {
	var session domain.Session
	if s.ID == "" {
		open, ok := container.Cache.LatestOpenSession()
		if !ok {
			return fmt.Errorf("no running session")
		}
		session = open
	} else {
		found, err := findSession(container.Cache, s.ID)
		if err != nil {
			return err
		}
		session = found
	}

	if !session.IsRunning() {
		return fmt.Errorf("session %s already ended", shortID(session.ID))
	}

	ended, ok := container.Cache.EndSession(session)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, session.ID)
	}

	fmt.Printf("Ended session %s after %s\n",
		theme.TitleStyle.Render(shortID(ended.ID)),
		ended.Duration().Round(time.Second))
	return nil
}
