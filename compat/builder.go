package compat

import (
	"fmt"

	"github.com/lixenwraith/joblog"
)

// Source tags prepended to adapted messages
const (
	gnetSource     = "[gnet]"
	fasthttpSource = "[fasthttp]"
)

// Builder provides a flexible way to create configured logger adapters for gnet and fasthttp
// It can use an existing *joblog.Logger instance or create a new one from a *joblog.Config
type Builder struct {
	logger *joblog.Logger
	logCfg *joblog.Config
	err    error
}

// NewBuilder creates a new adapter builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithLogger specifies an existing logger to use for the adapters
// If this is set WithConfig is ignored
func (b *Builder) WithLogger(l *joblog.Logger) *Builder {
	if l == nil {
		b.err = fmt.Errorf("joblog/compat: provided logger cannot be nil")
		return b
	}
	b.logger = l
	return b
}

// WithConfig provides a configuration for a new logger instance
// This is used only if an existing logger is NOT provided via WithLogger
// If neither is used, the package default logger is shared
func (b *Builder) WithConfig(cfg *joblog.Config) *Builder {
	b.logCfg = cfg
	return b
}

// getLogger resolves the logger to be used, creating one if necessary
func (b *Builder) getLogger() (*joblog.Logger, error) {
	if b.err != nil {
		return nil, b.err
	}

	if b.logger != nil {
		return b.logger, nil
	}

	if b.logCfg == nil {
		b.logger = joblog.Default()
		return b.logger, nil
	}

	l, err := joblog.NewBuilder().Config(b.logCfg).Build()
	if err != nil {
		return nil, err
	}

	// Cache the newly created logger for subsequent builds with this builder
	b.logger = l
	return l, nil
}

// BuildGnet creates a gnet adapter
func (b *Builder) BuildGnet(opts ...GnetOption) (*GnetAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewGnetAdapter(l, opts...), nil
}

// BuildFastHTTP creates a fasthttp adapter
func (b *Builder) BuildFastHTTP(opts ...FastHTTPOption) (*FastHTTPAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewFastHTTPAdapter(l, opts...), nil
}

// GetLogger returns the underlying *joblog.Logger instance
func (b *Builder) GetLogger() (*joblog.Logger, error) {
	return b.getLogger()
}

// --- Example Usage ---
//
//	appLogger := joblog.NewLogger()
//	_ = appLogger.Init("server", joblog.ConsoleSink(), joblog.FileSink("server.log"))
//
//	builder := compat.NewBuilder().WithLogger(appLogger)
//
//	gnetLogger, _ := builder.BuildGnet()
//	go gnet.Run(events, "tcp://:9000", gnet.WithLogger(gnetLogger))
//
//	fasthttpLogger, _ := builder.BuildFastHTTP()
//	server := &fasthttp.Server{Handler: handler, Logger: fasthttpLogger}
