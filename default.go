// --- File: default.go ---
package joblog

import (
	"sync/atomic"
)

// defaultLogger backs the package-level functions
var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(NewLogger())
}

// Default returns the logger used by the package-level functions
func Default() *Logger {
	return defaultLogger.Load()
}

// SetDefault replaces the logger used by the package-level functions
func SetDefault(l *Logger) {
	if l != nil {
		defaultLogger.Store(l)
	}
}

// Default package-level functions that delegate to the default logger

// Init configures the sinks of the default logger, see Logger.Init
func Init(title string, sinks ...SinkRef) error {
	return Default().Init(title, sinks...)
}

// Close returns the default logger to the uninitialized state
func Close() {
	Default().Close()
}

// AddSink registers one more sink on the default logger
func AddSink(ref SinkRef) error {
	return Default().AddSink(ref)
}

// IsInitialized reports whether the default logger has sinks
func IsInitialized() bool {
	return Default().IsInitialized()
}

// ListSinks returns the sinks of the default logger
func ListSinks() []SinkRef {
	return Default().ListSinks()
}

// StartSection opens a section on the default logger
func StartSection(title string) {
	Default().StartSection(title)
}

// CompleteSection closes the innermost section of the default logger
func CompleteSection() error {
	return Default().CompleteSection()
}

// Status logs a progress message
func Status(args ...any) {
	Default().Status(args...)
}

// Info logs an informational message
func Info(args ...any) {
	Default().Info(args...)
}

// Warning logs a warning message
func Warning(args ...any) {
	Default().Warning(args...)
}

// Error logs an error message and acts on outcome
func Error(outcome Outcome, args ...any) error {
	return Default().Error(outcome, args...)
}

// Statusf logs a formatted progress message
func Statusf(format string, args ...any) {
	Default().Statusf(format, args...)
}

// Infof logs a formatted informational message
func Infof(format string, args ...any) {
	Default().Infof(format, args...)
}

// Warningf logs a formatted warning message
func Warningf(format string, args ...any) {
	Default().Warningf(format, args...)
}

// Errorf logs a formatted error message and acts on outcome
func Errorf(outcome Outcome, format string, args ...any) error {
	return Default().Errorf(outcome, format, args...)
}

// Fatal logs an error message and exits with status 1
func Fatal(args ...any) {
	Default().Fatal(args...)
}

// Fatalf logs a formatted error message and exits with status 1
func Fatalf(format string, args ...any) {
	Default().Fatalf(format, args...)
}

// Section runs fn inside a section of the default logger
func Section(title string, fn func() error) error {
	return Default().Section(title, fn)
}

// Sections returns the open section titles of the default logger
func Sections() []string {
	return Default().Sections()
}

// SectionDepth returns the number of open sections of the default logger
func SectionDepth() int {
	return Default().SectionDepth()
}

// SetReportMemory toggles the memory usage field of the default logger
func SetReportMemory(enable bool) {
	Default().SetReportMemory(enable)
}

// SetReportDisk toggles the disk usage field of the default logger
func SetReportDisk(enable bool) {
	Default().SetReportDisk(enable)
}
