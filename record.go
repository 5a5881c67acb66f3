// FILE: lixenwraith/joblog/record.go
package joblog

import (
	"fmt"
	"os"
	"strings"
)

// logRecord represents a single log entry, discarded once written
type logRecord struct {
	timestamp string
	severity  Severity
	text      string // indentation + severity label + " " + message
}

// newRecord builds a record indented to depth open sections
func (l *Logger) newRecord(severity Severity, depth int, message string) logRecord {
	var sb strings.Builder
	for i := 0; i < depth; i++ {
		sb.WriteString(l.cfg.Indent)
	}
	sb.WriteString(severity.String())
	sb.WriteByte(' ')
	sb.WriteString(message)

	return logRecord{
		timestamp: l.now().Format(l.cfg.TimestampFormat),
		severity:  severity,
		text:      sb.String(),
	}
}

// lineFormat snapshots the current display settings
func (l *Logger) lineFormat() lineFormat {
	return lineFormat{
		reportMemory: l.state.reportMemory,
		reportDisk:   l.state.reportDisk,
		diskPath:     l.cfg.DiskPath,
		sampler:      l.sampler,
	}
}

// emitLocked formats a record at the given depth and writes it to every sink.
// trailer is appended after the line terminator. Caller holds l.mu.
func (l *Logger) emitLocked(severity Severity, depth int, message, trailer string) {
	record := l.newRecord(severity, depth, message)
	l.writeSinks(formatLine(record, l.lineFormat()) + "\n" + trailer)
}

// emit is the shared path of the severity operations
func (l *Logger) emit(severity Severity, message string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.ensureReady()
	l.emitLocked(severity, l.state.depth(), message, "")
}

// internalLog handles writing internal logger diagnostics to stderr, if enabled.
func (l *Logger) internalLog(format string, args ...any) {
	if !l.cfg.InternalErrorsToStderr {
		return
	}

	if !strings.HasPrefix(format, "joblog: ") {
		format = "joblog: " + format
	}

	fmt.Fprintf(os.Stderr, format, args...)
}
