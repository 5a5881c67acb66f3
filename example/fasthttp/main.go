// FILE: example/fasthttp/main.go
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/lixenwraith/joblog"
	"github.com/lixenwraith/joblog/compat"
	"github.com/valyala/fasthttp"
)

func main() {
	// Create and configure logger
	logger := joblog.NewLogger()
	err := logger.ApplyOverride(
		"console_target=stderr",
		"report_disk=true",
		"disk_path=.",
	)
	if err != nil {
		panic(err)
	}
	if err := logger.Init("server", joblog.ConsoleSink(), joblog.FileSink("fasthttp.log")); err != nil {
		panic(err)
	}
	defer logger.Close()

	// Create fasthttp adapter with custom severity detection
	fasthttpAdapter := compat.NewFastHTTPAdapter(
		logger,
		compat.WithDefaultSeverity(joblog.SeverityInfo),
		compat.WithSeverityDetector(customSeverityDetector),
	)

	// Configure fasthttp server
	server := &fasthttp.Server{
		Handler: requestHandler,
		Logger:  fasthttpAdapter,

		// Other server settings
		Name:              "MyServer",
		Concurrency:       fasthttp.DefaultConcurrency,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
		TCPKeepalive:      true,
		ReduceMemoryUsage: true,
	}

	logger.Status("listening on :8080")
	if err := server.ListenAndServe(":8080"); err != nil {
		logger.Fatal("server stopped:", err)
	}
}

func requestHandler(ctx *fasthttp.RequestCtx) {
	ctx.SetContentType("text/plain")
	fmt.Fprintf(ctx, "Hello, world! Path: %s\n", ctx.Path())
}

func customSeverityDetector(msg string) (joblog.Severity, bool) {
	// fasthttp reports refused connections as errors, they are only worth a warning here
	if strings.Contains(msg, "connection cannot be served") {
		return joblog.SeverityWarning, true
	}

	// Use default detection
	return compat.DetectSeverity(msg)
}
