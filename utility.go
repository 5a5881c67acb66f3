// FILE: utility.go
package joblog

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds, match with errors.Is
var (
	// ErrInvalidArgument reports a malformed sink specification or config value
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrAlreadyConfigured reports an attempt to register a second file sink
	ErrAlreadyConfigured = errors.New("file sink already configured")
	// ErrNoOpenSection reports CompleteSection with an empty section stack
	ErrNoOpenSection = errors.New(noOpenSection)
	// ErrSampling reports a failed memory or disk usage query
	ErrSampling = errors.New("usage sampling failed")
	// ErrUser is matched by every *UserError returned from Error
	ErrUser = errors.New("user error")
)

// UserError carries the message of a recoverable ERROR record back to the caller.
// Message is the plain text, without timestamp, indentation or severity tag.
type UserError struct {
	Message string
	cause   error
}

func (e *UserError) Error() string {
	return e.Message
}

// Is matches ErrUser
func (e *UserError) Is(target error) bool {
	return target == ErrUser
}

// Unwrap returns the kind the error was raised for, if any
func (e *UserError) Unwrap() error {
	return e.cause
}

// fmtErrorf wrapper
func fmtErrorf(format string, args ...any) error {
	if !strings.HasPrefix(format, "joblog: ") {
		format = "joblog: " + format
	}
	return fmt.Errorf(format, args...)
}

// combineErrors helper
func combineErrors(err1, err2 error) error {
	if err1 == nil {
		return err2
	}
	if err2 == nil {
		return err1
	}
	return fmt.Errorf("%v; %w", err1, err2)
}

// parseKeyValue splits a "key=value" string.
func parseKeyValue(arg string) (string, string, error) {
	parts := strings.SplitN(strings.TrimSpace(arg), "=", 2)
	if len(parts) != 2 {
		return "", "", fmtErrorf("invalid format in override string '%s', expected key=value: %w", arg, ErrInvalidArgument)
	}
	key := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])
	if key == "" {
		return "", "", fmtErrorf("key cannot be empty in override string '%s': %w", arg, ErrInvalidArgument)
	}
	return key, value, nil
}
