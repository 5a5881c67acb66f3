package compat

import (
	"fmt"

	"github.com/lixenwraith/joblog"
	"github.com/panjf2000/gnet/v2/pkg/logging"
)

var _ logging.Logger = (*GnetAdapter)(nil)

// GnetAdapter wraps joblog.Logger to implement the gnet logging.Logger interface.
// gnet debug messages are logged as INFO since joblog has no debug severity.
type GnetAdapter struct {
	logger       *joblog.Logger
	fatalHandler func(msg string) // Customizable fatal behavior, nil exits through the logger
}

// NewGnetAdapter creates a new gnet-compatible logger adapter
func NewGnetAdapter(logger *joblog.Logger, opts ...GnetOption) *GnetAdapter {
	adapter := &GnetAdapter{
		logger: logger,
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// GnetOption allows customizing adapter behavior
type GnetOption func(*GnetAdapter)

// WithFatalHandler replaces process termination on Fatalf.
// The message is still logged as a recoverable ERROR before the handler runs.
func WithFatalHandler(handler func(string)) GnetOption {
	return func(a *GnetAdapter) {
		a.fatalHandler = handler
	}
}

// Debugf logs at info level with printf-style formatting
func (a *GnetAdapter) Debugf(format string, args ...any) {
	a.logger.Info(gnetSource, fmt.Sprintf(format, args...))
}

// Infof logs at info level with printf-style formatting
func (a *GnetAdapter) Infof(format string, args ...any) {
	a.logger.Info(gnetSource, fmt.Sprintf(format, args...))
}

// Warnf logs at warning level with printf-style formatting
func (a *GnetAdapter) Warnf(format string, args ...any) {
	a.logger.Warning(gnetSource, fmt.Sprintf(format, args...))
}

// Errorf logs at error level with printf-style formatting, the process continues
func (a *GnetAdapter) Errorf(format string, args ...any) {
	_ = a.logger.Error(joblog.OutcomeRecoverable, gnetSource, fmt.Sprintf(format, args...))
}

// Fatalf logs at error level and terminates the process, or calls the fatal handler if set
func (a *GnetAdapter) Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	if a.fatalHandler == nil {
		a.logger.Fatal(gnetSource, msg)
		return
	}

	_ = a.logger.Error(joblog.OutcomeRecoverable, gnetSource, msg)
	a.fatalHandler(msg)
}
