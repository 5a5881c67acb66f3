// FILE: lixenwraith/joblog/compat/fasthttp.go
package compat

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/joblog"
	"github.com/valyala/fasthttp"
)

var _ fasthttp.Logger = (*FastHTTPAdapter)(nil)

// FastHTTPAdapter wraps joblog.Logger to implement fasthttp Logger interface
type FastHTTPAdapter struct {
	logger           *joblog.Logger
	defaultSeverity  joblog.Severity
	severityDetector func(string) (joblog.Severity, bool) // Detects severity from message content
}

// NewFastHTTPAdapter creates a new fasthttp-compatible logger adapter
func NewFastHTTPAdapter(logger *joblog.Logger, opts ...FastHTTPOption) *FastHTTPAdapter {
	adapter := &FastHTTPAdapter{
		logger:           logger,
		defaultSeverity:  joblog.SeverityInfo,
		severityDetector: DetectSeverity,
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// FastHTTPOption allows customizing adapter behavior
type FastHTTPOption func(*FastHTTPAdapter)

// WithDefaultSeverity sets the severity for messages the detector does not classify
func WithDefaultSeverity(severity joblog.Severity) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.defaultSeverity = severity
	}
}

// WithSeverityDetector sets a custom function to detect severity from message content
func WithSeverityDetector(detector func(string) (joblog.Severity, bool)) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.severityDetector = detector
	}
}

// Printf implements fasthttp's Logger interface
func (a *FastHTTPAdapter) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	severity := a.defaultSeverity
	if a.severityDetector != nil {
		if detected, ok := a.severityDetector(msg); ok {
			severity = detected
		}
	}

	switch severity {
	case joblog.SeverityStatus:
		a.logger.Status(fasthttpSource, msg)
	case joblog.SeverityWarning:
		a.logger.Warning(fasthttpSource, msg)
	case joblog.SeverityError:
		_ = a.logger.Error(joblog.OutcomeRecoverable, fasthttpSource, msg)
	default:
		a.logger.Info(fasthttpSource, msg)
	}
}

// DetectSeverity classifies a message by keywords, reporting false when none match
func DetectSeverity(msg string) (joblog.Severity, bool) {
	msgLower := strings.ToLower(msg)

	if strings.Contains(msgLower, "error") ||
		strings.Contains(msgLower, "failed") ||
		strings.Contains(msgLower, "fatal") ||
		strings.Contains(msgLower, "panic") {
		return joblog.SeverityError, true
	}

	if strings.Contains(msgLower, "warn") ||
		strings.Contains(msgLower, "deprecated") {
		return joblog.SeverityWarning, true
	}

	return joblog.SeverityInfo, false
}
