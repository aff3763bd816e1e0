package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Defaults applied when neither settings.json nor the environment set a value
const (
	DefaultAPIURL                = "http://localhost:8080"
	DefaultBackoffCapSeconds     = 300
	DefaultMaxConcurrentWrites   = 4
	DefaultMaxLogFiles           = 10
	DefaultRequestTimeoutSeconds = 10
	DefaultSyncIntervalSeconds   = 30
)

// Settings represents the structure of $STUDYFLOW_HOME/settings.json
type Settings struct {
	APIURL                string `json:"api_url,omitempty"`
	BackoffCapSeconds     *int   `json:"backoff_cap_seconds,omitempty"`
	Debug                 *bool  `json:"debug,omitempty"`
	MaxConcurrentWrites   *int   `json:"max_concurrent_writes,omitempty"`
	MaxLogFiles           *int   `json:"max_log_files,omitempty"`
	RequestTimeoutSeconds *int   `json:"request_timeout_seconds,omitempty"`
	SyncIntervalSeconds   *int   `json:"sync_interval_seconds,omitempty"`
}

// Resolved is the effective configuration after defaults and environment
// overrides. CLI flags are applied on top by the commands.
type Resolved struct {
	APIURL              string
	BackoffCap          time.Duration
	Debug               bool
	MaxConcurrentWrites int
	MaxLogFiles         int
	RequestTimeout      time.Duration
	SyncInterval        time.Duration
}

// LoadSettings loads settings from $STUDYFLOW_HOME/settings.json
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom loads settings from an explicit path
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	return &settings, nil
}

// DefaultSettings returns settings with every field set to its default
func DefaultSettings() *Settings {
	debug := false
	backoffCap := DefaultBackoffCapSeconds
	maxWrites := DefaultMaxConcurrentWrites
	maxLogFiles := DefaultMaxLogFiles
	timeout := DefaultRequestTimeoutSeconds
	interval := DefaultSyncIntervalSeconds

	return &Settings{
		APIURL:                DefaultAPIURL,
		BackoffCapSeconds:     &backoffCap,
		Debug:                 &debug,
		MaxConcurrentWrites:   &maxWrites,
		MaxLogFiles:           &maxLogFiles,
		RequestTimeoutSeconds: &timeout,
		SyncIntervalSeconds:   &interval,
	}
}

// SaveSettings saves settings to $STUDYFLOW_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// Resolve merges defaults, settings.json and STUDYFLOW_* environment
// variables, in increasing precedence. Invalid environment values are
// reported rather than silently ignored.
func (s *Settings) Resolve() (Resolved, error) {
	if s == nil {
		s = &Settings{}
	}

	r := Resolved{
		APIURL:              DefaultAPIURL,
		BackoffCap:          DefaultBackoffCapSeconds * time.Second,
		MaxConcurrentWrites: DefaultMaxConcurrentWrites,
		MaxLogFiles:         DefaultMaxLogFiles,
		RequestTimeout:      DefaultRequestTimeoutSeconds * time.Second,
		SyncInterval:        DefaultSyncIntervalSeconds * time.Second,
	}

	if s.APIURL != "" {
		r.APIURL = s.APIURL
	}
	if s.BackoffCapSeconds != nil {
		r.BackoffCap = time.Duration(*s.BackoffCapSeconds) * time.Second
	}
	if s.Debug != nil {
		r.Debug = *s.Debug
	}
	if s.MaxConcurrentWrites != nil {
		r.MaxConcurrentWrites = *s.MaxConcurrentWrites
	}
	if s.MaxLogFiles != nil {
		r.MaxLogFiles = *s.MaxLogFiles
	}
	if s.RequestTimeoutSeconds != nil {
		r.RequestTimeout = time.Duration(*s.RequestTimeoutSeconds) * time.Second
	}
	if s.SyncIntervalSeconds != nil {
		r.SyncInterval = time.Duration(*s.SyncIntervalSeconds) * time.Second
	}

	if v := os.Getenv("STUDYFLOW_API_URL"); v != "" {
		r.APIURL = v
	}
	if v := os.Getenv("STUDYFLOW_DEBUG"); v != "" {
		r.Debug = v == "1" || v == "true"
	}

	ints := []struct {
		env string
		set func(int)
	}{
		{"STUDYFLOW_BACKOFF_CAP_SECONDS", func(n int) { r.BackoffCap = time.Duration(n) * time.Second }},
		{"STUDYFLOW_MAX_CONCURRENT_WRITES", func(n int) { r.MaxConcurrentWrites = n }},
		{"STUDYFLOW_MAX_LOG_FILES", func(n int) { r.MaxLogFiles = n }},
		{"STUDYFLOW_REQUEST_TIMEOUT_SECONDS", func(n int) { r.RequestTimeout = time.Duration(n) * time.Second }},
		{"STUDYFLOW_SYNC_INTERVAL_SECONDS", func(n int) { r.SyncInterval = time.Duration(n) * time.Second }},
	}
	for _, e := range ints {
		v := os.Getenv(e.env)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Resolved{}, fmt.Errorf("invalid %s=%q: must be a non-negative integer", e.env, v)
		}
		e.set(n)
	}

	return r, nil
}
