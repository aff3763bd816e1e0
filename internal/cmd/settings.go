package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"text/tabwriter"
	"time"

	"studyflow/internal/config"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Init SettingsInitCmd `cmd:"init" help:"Write a settings file with the default values"`
	Meta SettingsMetaCmd `cmd:"meta" help:"Show settings file location and available options" default:"1"`
	Show SettingsShowCmd `cmd:"show" help:"Show the resolved configuration"`
}

// SettingsInitCmd writes settings.json populated with defaults
type SettingsInitCmd struct {
	Force bool `help:"Overwrite an existing settings file"`
}

// Run executes the init command
func (s *SettingsInitCmd) Run() error {
	path := config.GetSettingsPath()
	if _, err := os.Stat(path); err == nil && !s.Force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := config.SaveSettings(config.DefaultSettings()); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run() error {
	settingsFile := config.GetSettingsPath()
	example := config.GetSettingsExample()

	if s.Format == "json" {
		return printJSON(map[string]any{
			"settings_file": settingsFile,
			"format":        example,
		})
	}

	fmt.Printf("Settings file: %s\n\n", settingsFile)
	fmt.Println("Example settings.json:")
	fmt.Println()

	keys := make([]string, 0, len(example))
	for key := range example {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, key := range keys {
		data, _ := json.Marshal(example[key])
		fmt.Fprintf(w, "%s\t%s\n", key, data)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Create or edit this file to configure studyflow.")
	fmt.Println("Environment variables (STUDYFLOW_*) and flags take precedence.")
	return nil
}

// SettingsShowCmd displays the configuration after flags, env and file are applied
type SettingsShowCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the show command
func (s *SettingsShowCmd) Run(container *Container) error {
	cfg := container.Config
	values := map[string]any{
		"api_url":                 cfg.APIURL,
		"backoff_cap_seconds":     int(cfg.BackoffCap / time.Second),
		"debug":                   cfg.Debug,
		"max_concurrent_writes":   cfg.MaxConcurrentWrites,
		"max_log_files":           cfg.MaxLogFiles,
		"request_timeout_seconds": int(cfg.RequestTimeout / time.Second),
		"sync_interval_seconds":   int(cfg.SyncInterval / time.Second),
	}

	if s.Format == "json" {
		return printJSON(values)
	}

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, key := range keys {
		fmt.Fprintf(w, "%s\t%v\n", key, values[key])
	}
	w.Flush()
	return nil
}
