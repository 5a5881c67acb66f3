package joblog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// SinkKind distinguishes the console from a log file.
type SinkKind int

const (
	SinkConsole SinkKind = iota
	SinkFile
)

// SinkRef identifies a destination for log lines.
// File paths are stored in absolute form once registered.
type SinkRef struct {
	Kind SinkKind
	Path string
}

// ConsoleSink returns the console sink
func ConsoleSink() SinkRef {
	return SinkRef{Kind: SinkConsole}
}

// FileSink returns a file sink for path, which may be relative and need not exist
func FileSink(path string) SinkRef {
	return SinkRef{Kind: SinkFile, Path: path}
}

// ParseSink maps a command-line or config value to a sink.
// The empty string and "-" select the console, anything else is a file path.
func ParseSink(value string) SinkRef {
	if value == "" || value == "-" {
		return ConsoleSink()
	}
	return FileSink(value)
}

// String returns "console" or the file path
func (r SinkRef) String() string {
	if r.Kind == SinkConsole {
		return "console"
	}
	return r.Path
}

// normalizeSink validates a single sink and makes file paths absolute
func normalizeSink(ref SinkRef) (SinkRef, error) {
	switch ref.Kind {
	case SinkConsole:
		return ConsoleSink(), nil
	case SinkFile:
		if ref.Path == "" {
			return SinkRef{}, fmtErrorf("file sink path cannot be empty: %w", ErrInvalidArgument)
		}
		abs, err := filepath.Abs(ref.Path)
		if err != nil {
			return SinkRef{}, fmtErrorf("failed to resolve log file path '%s': %v: %w", ref.Path, err, ErrInvalidArgument)
		}
		return FileSink(abs), nil
	default:
		return SinkRef{}, fmtErrorf("unknown sink kind %d: %w", ref.Kind, ErrInvalidArgument)
	}
}

// resolveSinks checks the sink list given to Init: one sink of either kind,
// or one console plus one file in any order.
func resolveSinks(refs []SinkRef) ([]SinkRef, error) {
	switch len(refs) {
	case 1:
		ref, err := normalizeSink(refs[0])
		if err != nil {
			return nil, err
		}
		return []SinkRef{ref}, nil

	case 2:
		first, err := normalizeSink(refs[0])
		if err != nil {
			return nil, err
		}
		second, err := normalizeSink(refs[1])
		if err != nil {
			return nil, err
		}
		if first.Kind == second.Kind {
			return nil, fmtErrorf("two sinks must be one console and one file, got %s and %s: %w", first, second, ErrInvalidArgument)
		}
		return []SinkRef{first, second}, nil

	default:
		return nil, fmtErrorf("expected one or two sinks, got %d: %w", len(refs), ErrInvalidArgument)
	}
}

// consoleWriter returns the configured console destination
func (l *Logger) consoleWriter() io.Writer {
	if l.console != nil {
		return l.console
	}
	if l.cfg.ConsoleTarget == "stderr" {
		return os.Stderr
	}
	return os.Stdout
}

// writeSinks appends text to every sink independently.
// A failing sink does not prevent the others from receiving the text.
func (l *Logger) writeSinks(text string) {
	var errs error
	for _, ref := range l.state.sinks {
		var err error
		switch ref.Kind {
		case SinkConsole:
			_, err = io.WriteString(l.consoleWriter(), text)
		case SinkFile:
			err = appendToFile(ref.Path, text)
		}
		if err != nil {
			errs = combineErrors(errs, fmt.Errorf("write to %s failed: %w", ref, err))
		}
	}
	if errs != nil {
		l.internalLog("%v\n", errs)
	}
}
