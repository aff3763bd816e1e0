package cmd

import (
	"fmt"
	"strings"

	"studyflow/internal/theme"
)

// StartCmd starts a new study session
type StartCmd struct {
	Subject string `help:"What you are studying" short:"s"`
}

// Run executes the start command
func (s *StartCmd) Run(container *Container) error {
	var subject *string
	if trimmed := strings.TrimSpace(s.Subject); trimmed != "" {
		subject = &trimmed
	}

	if open, ok := container.Cache.LatestOpenSession(); ok {
		fmt.Printf("%s session %s is still running\n",
			theme.MutedStyle.Render("note:"), shortID(open.ID))
	}

	session := container.Cache.CreateSession(subject)

	fmt.Printf("Started session %s (%s)\n",
		theme.TitleStyle.Render(shortID(session.ID)),
		session.SubjectOr("no subject"))
	return nil
}
