// FILE: override.go
package joblog

import (
	"fmt"
	"strconv"
	"strings"
)

// ApplyOverride applies string key-value overrides to the logger's current configuration.
// Each override should be in the format "key=value". String values may be quoted,
// which is the only way to pass leading or trailing spaces (e.g. indent="    ").
//
// Example:
//
//	logger := joblog.NewLogger()
//	err := logger.ApplyOverride(
//	    "console_target=stderr",
//	    "report_disk=true",
//	    "disk_path=/scratch",
//	)
func (l *Logger) ApplyOverride(overrides ...string) error {
	cfg := l.GetConfig()

	var errors []error

	for _, override := range overrides {
		key, value, err := parseKeyValue(override)
		if err != nil {
			errors = append(errors, err)
			continue
		}

		if err := applyConfigField(cfg, key, value); err != nil {
			errors = append(errors, err)
		}
	}

	if len(errors) > 0 {
		return combineConfigErrors(errors)
	}

	return l.ApplyConfig(cfg)
}

// combineConfigErrors combines multiple configuration errors into a single error.
func combineConfigErrors(errors []error) error {
	if len(errors) == 0 {
		return nil
	}
	if len(errors) == 1 {
		return errors[0]
	}

	var sb strings.Builder
	sb.WriteString("joblog: multiple configuration errors:")
	for i, err := range errors {
		errMsg := strings.TrimPrefix(err.Error(), "joblog: ")
		sb.WriteString(fmt.Sprintf("\n  %d. %s", i+1, errMsg))
	}
	return fmt.Errorf("%s: %w", sb.String(), ErrInvalidArgument)
}

// applyConfigField applies a single key-value override to a Config.
func applyConfigField(cfg *Config, key, value string) error {
	switch key {
	case "console_target":
		cfg.ConsoleTarget = unquote(value)
	case "timestamp_format":
		cfg.TimestampFormat = unquote(value)
	case "indent":
		cfg.Indent = unquote(value)
	case "disk_path":
		cfg.DiskPath = unquote(value)

	case "report_disk":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for report_disk '%s': %w", value, ErrInvalidArgument)
		}
		cfg.ReportDisk = boolVal
	case "terminate_on_section_error":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for terminate_on_section_error '%s': %w", value, ErrInvalidArgument)
		}
		cfg.TerminateOnSectionError = boolVal
	case "internal_errors_to_stderr":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for internal_errors_to_stderr '%s': %w", value, ErrInvalidArgument)
		}
		cfg.InternalErrorsToStderr = boolVal

	default:
		return fmtErrorf("unknown configuration key '%s': %w", key, ErrInvalidArgument)
	}

	return nil
}

// unquote strips one level of Go string quoting, returning the input unchanged otherwise
func unquote(value string) string {
	if len(value) >= 2 && (value[0] == '"' || value[0] == '`') {
		if s, err := strconv.Unquote(value); err == nil {
			return s
		}
	}
	return value
}
