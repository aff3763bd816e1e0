package cmd

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"studyflow/internal/config"
	"studyflow/internal/theme"
)

// StatusCmd summarizes the local store and sync state
type StatusCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

type statusJSON struct {
	APIURL      string  `json:"api_url"`
	DBPath      string  `json:"db_path"`
	Degraded    bool    `json:"degraded"`
	OpenSession *string `json:"open_session,omitempty"`
	Reflections int     `json:"reflections"`
	Sessions    int     `json:"sessions"`
	Unsynced    int     `json:"unsynced"`
}

// Run executes the status command
func (s *StatusCmd) Run(container *Container) error {
	cache := container.Cache

	status := statusJSON{
		APIURL:      container.Config.APIURL,
		DBPath:      config.GetDBPath(),
		Degraded:    cache.Degraded(),
		Reflections: len(cache.Reflections()),
		Sessions:    len(cache.Sessions()),
		Unsynced:    cache.UnsyncedCount(),
	}
	open, running := cache.LatestOpenSession()
	if running {
		status.OpenSession = &open.ID
	}

	if s.Format == "json" {
		return printJSON(status)
	}

	label := theme.LabelStyle.Render
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d\n", label("Sessions:   "), status.Sessions)
	fmt.Fprintf(&b, "%s %d\n", label("Reflections:"), status.Reflections)

	unsynced := theme.SyncedStyle.Render("0")
	if status.Unsynced > 0 {
		unsynced = theme.UnsyncedStyle.Render(fmt.Sprintf("%d", status.Unsynced))
	}
	fmt.Fprintf(&b, "%s %s\n", label("Unsynced:   "), unsynced)

	if running {
		fmt.Fprintf(&b, "%s %s %s\n", label("Running:    "),
			theme.RunningStyle.Render(shortID(open.ID)),
			theme.MutedStyle.Render("started "+humanize.Time(open.StartedAt)))
	}

	store := status.DBPath
	if status.Degraded {
		store = theme.ErrorStyle.Render("unavailable (memory only)")
	}
	fmt.Fprintf(&b, "%s %s\n", label("Store:      "), store)
	fmt.Fprintf(&b, "%s %s", label("Service:    "), status.APIURL)

	fmt.Println(theme.BoxStyle.Render(b.String()))
	return nil
}
