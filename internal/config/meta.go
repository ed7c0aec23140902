package config

import (
	"reflect"
	"sort"
	"strings"
)

// SettingsOption describes one settings.json key with an example value
type SettingsOption struct {
	Example any    `json:"example"`
	Key     string `json:"key"`
}

// GetSettingsExample uses reflection to generate example settings.
// This stays in sync when new fields are added to Settings.
func GetSettingsExample() []SettingsOption {
	t := reflect.TypeOf(Settings{})
	options := make([]SettingsOption, 0, t.NumField())

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		key := strings.Split(jsonTag, ",")[0]
		options = append(options, SettingsOption{
			Example: generateExampleValue(field.Type, key),
			Key:     key,
		})
	}

	sort.Slice(options, func(i, j int) bool { return options[i].Key < options[j].Key })
	return options
}

// generateExampleValue creates appropriate example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			return fieldName == "debug"
		case reflect.Int:
			switch fieldName {
			case "max_log_files":
				return DefaultMaxLogFiles
			case "history_limit":
				return DefaultHistoryLimit
			}
			return 10
		}
	}

	if t.Kind() == reflect.String {
		switch fieldName {
		case "backend":
			return DefaultBackend
		case "default_format":
			return "table"
		case "history_db_path":
			return "~/.arlon/history.db"
		default:
			return "example"
		}
	}

	return nil
}
