// FILE: lixenwraith/joblog/logger.go
package joblog

import (
	"io"
	"os"
	"sync"
	"time"
)

// Logger is the core struct that encapsulates all logger functionality.
// All operations are synchronous and serialized by a single mutex.
type Logger struct {
	mu      sync.Mutex
	cfg     *Config
	state   State
	sampler UsageSampler
	console io.Writer // nil selects os.Stdout or os.Stderr from the config
	now     func() time.Time
	exit    func(code int)
}

// NewLogger creates a new, uninitialized Logger with default settings.
// The first emit, section or AddSink call initializes it to console output.
func NewLogger() *Logger {
	return &Logger{
		cfg:     DefaultConfig(),
		sampler: RuntimeSampler{},
		now:     time.Now,
		exit:    os.Exit,
	}
}

// ApplyConfig validates and applies a configuration.
// Sinks and open sections are left untouched; display flags take effect on the next record.
func (l *Logger) ApplyConfig(cfg *Config) error {
	if cfg == nil {
		return fmtErrorf("configuration cannot be nil: %w", ErrInvalidArgument)
	}

	if err := cfg.validate(); err != nil {
		return fmtErrorf("invalid configuration: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	oldCfg := l.cfg
	l.cfg = cfg.Clone()
	if l.state.initialized() && oldCfg.ReportDisk != l.cfg.ReportDisk {
		l.state.reportDisk = l.cfg.ReportDisk
	}
	return nil
}

// GetConfig returns a copy of current configuration
func (l *Logger) GetConfig() *Config {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cfg.Clone()
}

// Init configures the sinks, replacing any previous configuration entirely.
// sinks is either a single sink or one console sink plus one file sink.
// A non-empty title opens a section as StartSection does.
func (l *Logger) Init(title string, sinks ...SinkRef) error {
	resolved, err := resolveSinks(sinks)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.initLocked(resolved)
	if title != "" {
		l.startSectionLocked(title)
	}
	return nil
}

// initLocked replaces the whole state with validated sinks. Caller holds l.mu.
func (l *Logger) initLocked(sinks []SinkRef) {
	if l.state.initialized() {
		l.state.reset()
	}
	l.state.sinks = sinks
	l.state.sections = nil
	l.state.reportMemory = true
	l.state.reportDisk = l.cfg.ReportDisk
}

// ensureReady initializes to console output if nothing is configured yet.
// An initialized logger is never touched. Caller holds l.mu.
func (l *Logger) ensureReady() {
	if l.state.initialized() {
		return
	}
	l.initLocked([]SinkRef{ConsoleSink()})
}

// Close returns the logger to the uninitialized state.
// Later emits reinitialize it to console output.
func (l *Logger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state.reset()
}

// AddSink registers one more sink. Adding an already registered sink is a no-op;
// adding a second, different file sink fails with ErrAlreadyConfigured.
func (l *Logger) AddSink(ref SinkRef) error {
	normalized, err := normalizeSink(ref)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.ensureReady()

	if l.state.hasSink(normalized) {
		return nil
	}
	if normalized.Kind == SinkFile {
		if existing, ok := l.state.fileSink(); ok {
			return fmtErrorf("cannot add '%s', logging to '%s' already: %w", normalized.Path, existing.Path, ErrAlreadyConfigured)
		}
	}
	l.state.sinks = append(l.state.sinks, normalized)
	return nil
}

// IsInitialized reports whether any sink is configured
func (l *Logger) IsInitialized() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state.initialized()
}

// ListSinks returns a copy of the configured sinks, nil when uninitialized
func (l *Logger) ListSinks() []SinkRef {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.state.initialized() {
		return nil
	}
	sinks := make([]SinkRef, len(l.state.sinks))
	copy(sinks, l.state.sinks)
	return sinks
}

// SetReportMemory toggles the memory usage field
func (l *Logger) SetReportMemory(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.ensureReady()
	l.state.reportMemory = enable
}

// SetReportDisk toggles the disk usage field
func (l *Logger) SetReportDisk(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.ensureReady()
	l.state.reportDisk = enable
}
