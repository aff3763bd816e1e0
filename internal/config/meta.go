package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings
// This automatically stays in sync when new fields are added to Settings
func GetSettingsExample() map[string]any {
	var s Settings
	t := reflect.TypeOf(s)
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		// Extract the JSON field name (before comma)
		jsonName := strings.Split(jsonTag, ",")[0]
		example[jsonName] = exampleValue(field.Type, jsonName)
	}

	return example
}

// exampleValue returns the default for a field, based on type and name
func exampleValue(t reflect.Type, fieldName string) any {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Bool:
		return false
	case reflect.Int:
		switch fieldName {
		case "backoff_cap_seconds":
			return DefaultBackoffCapSeconds
		case "max_concurrent_writes":
			return DefaultMaxConcurrentWrites
		case "max_log_files":
			return DefaultMaxLogFiles
		case "request_timeout_seconds":
			return DefaultRequestTimeoutSeconds
		case "sync_interval_seconds":
			return DefaultSyncIntervalSeconds
		}
		return 0
	case reflect.String:
		if fieldName == "api_url" {
			return DefaultAPIURL
		}
		return ""
	}
	return nil
}
