package config

import (
	"os"
	"path/filepath"
)

// GetHome returns STUDYFLOW_HOME or the ~/.studyflow default
func GetHome() string {
	home := os.Getenv("STUDYFLOW_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".studyflow"
		}
		return filepath.Join(homeDir, ".studyflow")
	}
	return ExpandPath(home)
}

// GetDBPath returns $STUDYFLOW_HOME/studyflow.db
func GetDBPath() string {
	return filepath.Join(GetHome(), "studyflow.db")
}

// GetRemoteDBPath returns $STUDYFLOW_HOME/remote.db, used by the reference server
func GetRemoteDBPath() string {
	return filepath.Join(GetHome(), "remote.db")
}

// GetSettingsPath returns $STUDYFLOW_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetHome(), "settings.json")
}

// GetLogDir returns $STUDYFLOW_HOME/logs
func GetLogDir() string {
	return filepath.Join(GetHome(), "logs")
}

// GetEnvPath returns $STUDYFLOW_HOME/.env
func GetEnvPath() string {
	return filepath.Join(GetHome(), ".env")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
