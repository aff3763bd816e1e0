package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"studyflow/internal/config"
	"studyflow/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	APIURL      string           `help:"Base URL of the StudyFlow service (overrides $STUDYFLOW_API_URL and settings)" name:"api-url"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables rotation)"`
	MaxLogFiles int              `help:"Maximum number of rotated log files to keep" default:"-1"`

	Start    StartCmd    `cmd:"start" help:"Start a study session"`
	Stop     StopCmd     `cmd:"stop" help:"End a study session"`
	Reflect  ReflectCmd  `cmd:"reflect" help:"Attach a reflection to a session"`
	Sessions SessionsCmd `cmd:"sessions" help:"List and view sessions"`
	Status   StatusCmd   `cmd:"status" help:"Show local store and sync status"`
	Sync     SyncCmd     `cmd:"sync" help:"Upload unsynced sessions once"`
	Daemon   DaemonCmd   `cmd:"daemon" help:"Run the background sync worker until interrupted"`
	Remote   RemoteCmd   `cmd:"remote" help:"Reference StudyFlow service"`
	Settings SettingsCmd `cmd:"settings" help:"Show settings file location and values"`

	// Internal fields (not flags)
	Container *Container      `kong:"-"`
	resolved  config.Resolved `kong:"-"`
}

// AfterApply loads configuration, initializes logging and builds the
// container. Precedence: CLI flags > env vars (.env included) > settings.json > defaults
func (c *CLI) AfterApply() error {
	if err := loadDotEnv(".env", config.GetEnvPath()); err != nil {
		return err
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}
	resolved, err := settings.Resolve()
	if err != nil {
		return err
	}

	if c.Debug {
		resolved.Debug = true
	}
	if c.MaxLogFiles >= 0 {
		resolved.MaxLogFiles = c.MaxLogFiles
	}
	if c.APIURL != "" {
		resolved.APIURL = c.APIURL
	}

	// Initialize logging first and get the log file path
	logFilePath, err := logging.Initialize(resolved.Debug, c.DebugFile, config.GetLogDir(), resolved.MaxLogFiles)
	if err != nil {
		return err
	}

	// GORM's logger and any child process read the debug settings from the environment
	if resolved.Debug || c.DebugFile != "" {
		os.Setenv("STUDYFLOW_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("STUDYFLOW_DEBUG_FILE", logFilePath)
		}
	}
	os.Setenv("STUDYFLOW_MAX_LOG_FILES", strconv.Itoa(resolved.MaxLogFiles))

	logging.Logger.Debug("Configuration resolved",
		"api_url", resolved.APIURL,
		"sync_interval", resolved.SyncInterval,
		"backoff_cap", resolved.BackoffCap,
		"home", config.GetHome())

	// Create container AFTER logging is initialized so the store logs through it
	c.resolved = resolved
	c.Container = NewContainer(context.Background(), resolved)

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

// loadDotEnv loads each .env file that exists. Variables already set in the
// environment are kept.
func loadDotEnv(paths ...string) error {
	for _, path := range paths {
		err := godotenv.Load(path)
		if err == nil {
			logging.Logger.Debug("Loaded environment file", "path", path)
			continue
		}
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}
