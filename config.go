// FILE: config.go
package joblog

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/lixenwraith/config"
)

// configPrefix is the TOML table the logger settings are read from
const configPrefix = "joblog."

// Config holds all logger configuration values
type Config struct {
	// Console output
	ConsoleTarget string `toml:"console_target"` // "stdout" or "stderr"

	// Formatting
	TimestampFormat string `toml:"timestamp_format"` // Go time layout, second precision by default
	Indent          string `toml:"indent"`           // Indentation unit per open section

	// Usage fields
	ReportDisk bool   `toml:"report_disk"` // Show filesystem usage after the memory field
	DiskPath   string `toml:"disk_path"`   // Directory whose filesystem is sampled

	// Error handling
	TerminateOnSectionError bool `toml:"terminate_on_section_error"` // CompleteSection on empty stack exits the process
	InternalErrorsToStderr  bool `toml:"internal_errors_to_stderr"`  // Report sink write failures on stderr
}

// defaultConfig is the single source for all configurable default values
var defaultConfig = Config{
	ConsoleTarget: "stdout",

	TimestampFormat: "2006-01-02 15:04:05",
	Indent:          "  ",

	ReportDisk: false,
	DiskPath:   ".",

	TerminateOnSectionError: false,
	InternalErrorsToStderr:  true,
}

// DefaultConfig returns a copy of the default configuration
func DefaultConfig() *Config {
	copiedConfig := defaultConfig
	return &copiedConfig
}

// NewConfigFromFile loads the [joblog] table of a TOML file and returns a validated Config.
// A missing file yields the defaults.
func NewConfigFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	loader := config.New()

	if err := loader.RegisterStruct(configPrefix, *cfg); err != nil {
		return nil, fmt.Errorf("failed to register config struct: %w", err)
	}

	if err := loader.Load(path, nil); err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	if err := extractConfig(loader, configPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to extract config values: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NewConfigFromDefaults creates a Config with default values and applies overrides
// keyed by toml tag
func NewConfigFromDefaults(overrides map[string]any) (*Config, error) {
	cfg := DefaultConfig()

	if err := applyOverrides(cfg, overrides); err != nil {
		return nil, fmt.Errorf("failed to apply overrides: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// extractConfig copies values found by the loader into cfg, keeping defaults for missing keys
func extractConfig(loader *config.Config, prefix string, cfg *Config) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tomlTag := field.Tag.Get("toml")
		if tomlTag == "" {
			continue
		}

		val, found := loader.Get(prefix + tomlTag)
		if !found {
			continue
		}

		if err := setFieldValue(v.Field(i), val); err != nil {
			return fmt.Errorf("failed to set field %s: %w", field.Name, err)
		}
	}

	return nil
}

// applyOverrides applies a map of overrides to the Config struct
func applyOverrides(cfg *Config, overrides map[string]any) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	fieldMap := make(map[string]reflect.Value)
	for i := 0; i < t.NumField(); i++ {
		if tomlTag := t.Field(i).Tag.Get("toml"); tomlTag != "" {
			fieldMap[tomlTag] = v.Field(i)
		}
	}

	for key, value := range overrides {
		fieldValue, exists := fieldMap[key]
		if !exists {
			return fmt.Errorf("unknown config key: %s: %w", key, ErrInvalidArgument)
		}

		if err := setFieldValue(fieldValue, value); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
	}

	return nil
}

// setFieldValue sets a reflect.Value with type checking
func setFieldValue(field reflect.Value, value any) error {
	switch field.Kind() {
	case reflect.String:
		strVal, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T: %w", value, ErrInvalidArgument)
		}
		field.SetString(strVal)

	case reflect.Bool:
		boolVal, ok := value.(bool)
		if !ok {
			return fmt.Errorf("expected bool, got %T: %w", value, ErrInvalidArgument)
		}
		field.SetBool(boolVal)

	default:
		return fmt.Errorf("unsupported field type: %v", field.Kind())
	}

	return nil
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	if c.ConsoleTarget != "stdout" && c.ConsoleTarget != "stderr" {
		return fmtErrorf("invalid console_target: '%s' (use stdout or stderr): %w", c.ConsoleTarget, ErrInvalidArgument)
	}

	if strings.TrimSpace(c.TimestampFormat) == "" {
		return fmtErrorf("timestamp_format cannot be empty: %w", ErrInvalidArgument)
	}

	if strings.ContainsAny(c.Indent, "\r\n") {
		return fmtErrorf("indent cannot contain line breaks: %w", ErrInvalidArgument)
	}

	if c.ReportDisk && strings.TrimSpace(c.DiskPath) == "" {
		return fmtErrorf("disk_path cannot be empty when report_disk is enabled: %w", ErrInvalidArgument)
	}

	return nil
}

// Clone creates a copy of the configuration
func (c *Config) Clone() *Config {
	copiedConfig := *c
	return &copiedConfig
}
