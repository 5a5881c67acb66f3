// FILE: lixenwraith/joblog/builder.go
package joblog

import (
	"io"
	"time"
)

// Builder provides a fluent API for building loggers.
// It wraps a Config instance plus the collaborators a Logger is wired with.
type Builder struct {
	cfg     *Config
	sampler UsageSampler
	console io.Writer
	now     func() time.Time
	exit    func(int)
	err     error // Accumulate errors for deferred handling
}

// NewBuilder creates a new configuration builder with default values.
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// Build creates a new, uninitialized Logger with the specified configuration.
func (b *Builder) Build() (*Logger, error) {
	if b.err != nil {
		return nil, b.err
	}

	logger := NewLogger()
	if err := logger.ApplyConfig(b.cfg); err != nil {
		return nil, err
	}

	if b.sampler != nil {
		logger.sampler = b.sampler
	}
	if b.console != nil {
		logger.console = b.console
	}
	if b.now != nil {
		logger.now = b.now
	}
	if b.exit != nil {
		logger.exit = b.exit
	}

	return logger, nil
}

// Config replaces the whole configuration.
func (b *Builder) Config(cfg *Config) *Builder {
	if cfg == nil {
		b.err = fmtErrorf("configuration cannot be nil: %w", ErrInvalidArgument)
		return b
	}
	b.cfg = cfg.Clone()
	return b
}

// ConfigFile loads the configuration from a TOML file.
func (b *Builder) ConfigFile(path string) *Builder {
	if b.err != nil {
		return b
	}
	cfg, err := NewConfigFromFile(path)
	if err != nil {
		b.err = err
		return b
	}
	b.cfg = cfg
	return b
}

// ConsoleTarget selects "stdout" or "stderr" for the console sink.
func (b *Builder) ConsoleTarget(target string) *Builder {
	b.cfg.ConsoleTarget = target
	return b
}

// Console sends console output to w instead of stdout/stderr.
func (b *Builder) Console(w io.Writer) *Builder {
	b.console = w
	return b
}

// TimestampFormat sets the Go time layout of the timestamp column.
func (b *Builder) TimestampFormat(format string) *Builder {
	b.cfg.TimestampFormat = format
	return b
}

// Indent sets the indentation unit per open section.
func (b *Builder) Indent(indent string) *Builder {
	b.cfg.Indent = indent
	return b
}

// ReportDisk enables the disk usage field.
func (b *Builder) ReportDisk(enable bool) *Builder {
	b.cfg.ReportDisk = enable
	return b
}

// DiskPath sets the directory whose filesystem usage is reported.
func (b *Builder) DiskPath(path string) *Builder {
	b.cfg.DiskPath = path
	return b
}

// TerminateOnSectionError makes CompleteSection without an open section exit the process.
func (b *Builder) TerminateOnSectionError(enable bool) *Builder {
	b.cfg.TerminateOnSectionError = enable
	return b
}

// InternalErrorsToStderr toggles reporting of sink write failures.
func (b *Builder) InternalErrorsToStderr(enable bool) *Builder {
	b.cfg.InternalErrorsToStderr = enable
	return b
}

// Sampler replaces the memory/disk usage sampler.
func (b *Builder) Sampler(s UsageSampler) *Builder {
	b.sampler = s
	return b
}

// Clock replaces the time source of the timestamp column.
func (b *Builder) Clock(now func() time.Time) *Builder {
	b.now = now
	return b
}

// ExitFunc replaces os.Exit for OutcomeFatal.
// It runs after the logger lock is released and may call back into the logger.
func (b *Builder) ExitFunc(exit func(code int)) *Builder {
	b.exit = exit
	return b
}

// Example usage:
// logger, err := joblog.NewBuilder().
//
//	ConsoleTarget("stderr").
//	ReportDisk(true).
//	DiskPath("/scratch").
//	Build()
//
// if err == nil {
//
//	 _ = logger.Init("alignment", joblog.ConsoleSink(), joblog.FileSink("run.log"))
//	 defer logger.Close()
//	 logger.Info("Logger initialized successfully")
//
// }
