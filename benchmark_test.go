package joblog

import (
	"io"
	"path/filepath"
	"testing"
	"time"
)

// newBenchLogger returns a console logger writing to io.Discard
func newBenchLogger(b *testing.B) *Logger {
	b.Helper()
	logger, err := NewBuilder().
		Console(io.Discard).
		Sampler(&fakeSampler{mem: 1, disk: 1}).
		Clock(func() time.Time { return testTime }).
		Build()
	if err != nil {
		b.Fatal(err)
	}
	if err := logger.Init("", ConsoleSink()); err != nil {
		b.Fatal(err)
	}
	return logger
}

// BenchmarkLoggerInfo benchmarks the performance of standard Info logging
func BenchmarkLoggerInfo(b *testing.B) {
	logger := newBenchLogger(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("benchmark message", i)
	}
}

// BenchmarkLoggerComposite benchmarks messages with composite arguments
func BenchmarkLoggerComposite(b *testing.B) {
	logger := newBenchLogger(b)
	fields := map[string]any{
		"user_id": 123,
		"action":  "benchmark",
		"value":   42.5,
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("benchmark", fields)
	}
}

// BenchmarkSections benchmarks a section pair around one record
func BenchmarkSections(b *testing.B) {
	logger := newBenchLogger(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.StartSection("bench")
		logger.Status("inside")
		_ = logger.CompleteSection()
	}
}

// BenchmarkFileSink benchmarks the open-append-close cycle of the file sink
func BenchmarkFileSink(b *testing.B) {
	logger := newBenchLogger(b)
	if err := logger.Init("", FileSink(filepath.Join(b.TempDir(), "bench.log"))); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("benchmark message", i)
	}
}

// BenchmarkConcurrentLogging benchmarks the logger's performance under concurrent load
func BenchmarkConcurrentLogging(b *testing.B) {
	logger, err := NewBuilder().
		Console(io.Discard).
		Sampler(RuntimeSampler{}).
		Build()
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			logger.Info("concurrent", i)
			i++
		}
	})
}
