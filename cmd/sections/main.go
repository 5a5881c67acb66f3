package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/lixenwraith/joblog"
)

const configFile = "sections_config.toml"

// Example TOML content
var tomlContent = `
# Example sections_config.toml
[joblog]
  console_target = "stdout"
  timestamp_format = "2006-01-02 15:04:05"
  indent = "  "
  report_disk = true
  disk_path = "."
  # Other settings use defaults
`

// Usage: sections [log-file]
// A missing argument or "-" logs to the console only.
func main() {
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		if err := os.WriteFile(configFile, []byte(tomlContent), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write example config: %v\n", err)
		}
	}

	logger, err := joblog.NewBuilder().ConfigFile(configFile).Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build logger: %v\n", err)
		os.Exit(1)
	}
	joblog.SetDefault(logger)

	sinks := []joblog.SinkRef{joblog.ConsoleSink()}
	if len(os.Args) > 1 {
		if file := joblog.ParseSink(os.Args[1]); file.Kind == joblog.SinkFile {
			sinks = append(sinks, file)
		}
	}

	if err := joblog.Init("pipeline", sinks...); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer joblog.Close()

	joblog.Info("writing to", joblog.ListSinks())

	err = joblog.Section("load", func() error {
		joblog.Status("reading", 3, "inputs")
		joblog.StartSection("validate")
		joblog.Warning("input", 2, "has no header, assuming defaults")
		return joblog.CompleteSection()
	})
	if err != nil {
		joblog.Fatal("load failed:", err)
	}

	joblog.StartSection("transform")
	if err := transform(map[string]int{"rows": 120, "skipped": 4}); err != nil {
		var userErr *joblog.UserError
		if errors.As(err, &userErr) {
			joblog.Info("continuing after:", userErr.Message)
		}
	}
	_ = joblog.CompleteSection()

	_ = joblog.CompleteSection()
}

// transform reports its counters and fails recoverably when rows were skipped
func transform(counters map[string]int) error {
	joblog.Info("counters", counters)
	if skipped := counters["skipped"]; skipped > 0 {
		return joblog.Errorf(joblog.OutcomeRecoverable, "%d rows skipped", skipped)
	}
	return nil
}
