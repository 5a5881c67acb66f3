// FILE: interface.go
package joblog

import (
	"fmt"
)

// Logger instance methods for the four severities.
// Arguments are joined with single spaces; composite values are dumped on one line.

// Status logs a progress message.
func (l *Logger) Status(args ...any) {
	l.emit(SeverityStatus, renderArgs(args))
}

// Info logs an informational message.
func (l *Logger) Info(args ...any) {
	l.emit(SeverityInfo, renderArgs(args))
}

// Warning logs a warning message.
func (l *Logger) Warning(args ...any) {
	l.emit(SeverityWarning, renderArgs(args))
}

// Statusf logs a progress message with printf-style formatting.
func (l *Logger) Statusf(format string, args ...any) {
	l.emit(SeverityStatus, fmt.Sprintf(format, args...))
}

// Infof logs an informational message with printf-style formatting.
func (l *Logger) Infof(format string, args ...any) {
	l.emit(SeverityInfo, fmt.Sprintf(format, args...))
}

// Warningf logs a warning message with printf-style formatting.
func (l *Logger) Warningf(format string, args ...any) {
	l.emit(SeverityWarning, fmt.Sprintf(format, args...))
}

// Error logs an error message, then acts on outcome.
//
// OutcomeRecoverable returns a *UserError holding the message as passed, without
// indentation or severity tag. OutcomeFatal writes a blank line to every sink and
// exits the process with status 1; it does not return.
func (l *Logger) Error(outcome Outcome, args ...any) error {
	return l.raise(outcome, renderArgs(args), nil)
}

// Errorf is Error with printf-style formatting.
func (l *Logger) Errorf(outcome Outcome, format string, args ...any) error {
	return l.raise(outcome, fmt.Sprintf(format, args...), nil)
}

// Fatal logs an error message and exits the process with status 1.
func (l *Logger) Fatal(args ...any) {
	_ = l.Error(OutcomeFatal, args...)
}

// Fatalf logs a formatted error message and exits the process with status 1.
func (l *Logger) Fatalf(format string, args ...any) {
	_ = l.Errorf(OutcomeFatal, format, args...)
}

// raise writes the ERROR record under the lock and exits after releasing it
func (l *Logger) raise(outcome Outcome, message string, cause error) error {
	l.mu.Lock()
	l.ensureReady()
	err := l.errorLocked(outcome, message, cause)
	l.mu.Unlock()

	l.terminate(outcome)
	return err
}

// errorLocked writes the ERROR record, plus the blank line of OutcomeFatal. Caller holds l.mu.
// cause is the error kind the record was raised for, nil for caller messages.
func (l *Logger) errorLocked(outcome Outcome, message string, cause error) error {
	l.emitLocked(SeverityError, l.state.depth(), message, "")

	if outcome == OutcomeFatal {
		l.writeSinks("\n")
	}
	return &UserError{Message: message, cause: cause}
}

// terminate exits for OutcomeFatal. Caller must not hold l.mu.
func (l *Logger) terminate(outcome Outcome) {
	if outcome == OutcomeFatal {
		l.exit(fatalExitCode)
	}
	// Returns only when the exit function was replaced
}
