// FILE: lixenwraith/joblog/interface_test.go
package joblog

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverityMethods(t *testing.T) {
	logger, console, _ := createTestLogger(t)
	initPlain(t, logger)

	logger.Status("copying", 3, "files")
	logger.Info("ratio", 0.25)
	logger.Warning("retry")
	logger.Statusf("%d/%d", 1, 2)
	logger.Infof("name=%s", "run")
	logger.Warningf("slow %dms", 40)

	expected := testStamp + "  STATUS copying 3 files\n" +
		testStamp + "    INFO ratio 0.25\n" +
		testStamp + " WARNING retry\n" +
		testStamp + "  STATUS 1/2\n" +
		testStamp + "    INFO name=run\n" +
		testStamp + " WARNING slow 40ms\n"
	assert.Equal(t, expected, console.String())
}

func TestErrorRecoverable(t *testing.T) {
	logger, console, _ := createTestLogger(t)
	initPlain(t, logger)
	logger.StartSection("A")
	console.Reset()

	err := logger.Error(OutcomeRecoverable, "disk", "full")

	require.Error(t, err)
	var userErr *UserError
	require.True(t, errors.As(err, &userErr))
	assert.Equal(t, "disk full", userErr.Message)
	assert.Equal(t, "disk full", err.Error())
	assert.ErrorIs(t, err, ErrUser)
	assert.Equal(t, testStamp+"     ERROR disk full\n", console.String(), "indented to the open section")

	err = logger.Errorf(OutcomeRecoverable, "code %d", 7)
	assert.Equal(t, "code 7", err.Error())
}

func TestErrorFatalWritesBlankLineToEverySink(t *testing.T) {
	var console bytes.Buffer
	recorder := &exitRecorder{}
	logPath := filepath.Join(t.TempDir(), "run.log")

	logger, err := NewBuilder().
		Console(&console).
		Sampler(&fakeSampler{}).
		Clock(func() time.Time { return testTime }).
		ExitFunc(recorder.exit).
		Build()
	require.NoError(t, err)
	initPlain(t, logger, ConsoleSink(), FileSink(logPath))

	logger.Fatal("boom")

	expected := testStamp + "   ERROR boom\n\n"
	assert.Equal(t, expected, console.String())
	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Equal(t, expected, string(content))
	assert.Equal(t, []int{1}, recorder.codes)

	logger.Fatalf("code %d", 2)
	assert.Equal(t, []int{1, 1}, recorder.codes)
}

func TestErrorAutoInitializes(t *testing.T) {
	logger, console, _ := createTestLogger(t)

	err := logger.Error(OutcomeRecoverable, "early")

	assert.Error(t, err)
	assert.True(t, logger.IsInitialized())
	assert.Contains(t, console.String(), "ERROR early\n")
}

func TestFileSinkWriteFailureKeepsConsole(t *testing.T) {
	logger, console, _ := createTestLogger(t)
	missing := filepath.Join(t.TempDir(), "missing", "run.log")
	initPlain(t, logger, ConsoleSink(), FileSink(missing))

	logger.Info("still here")

	assert.Equal(t, testStamp+"    INFO still here\n", console.String())
	_, err := os.Stat(missing)
	assert.True(t, os.IsNotExist(err))
}

const fatalChildEnv = "JOBLOG_FATAL_CHILD"

// TestFatalExitsProcess runs the fatal path in a child test binary
func TestFatalExitsProcess(t *testing.T) {
	if os.Getenv(fatalChildEnv) == "1" {
		logger, err := NewBuilder().Sampler(&fakeSampler{}).Build()
		if err != nil {
			os.Exit(3)
		}
		if err := logger.Init("", ConsoleSink(), FileSink(os.Getenv("JOBLOG_FATAL_FILE"))); err != nil {
			os.Exit(4)
		}
		logger.SetReportMemory(false)
		logger.Fatal("boom")
		os.Exit(5)
	}

	logPath := filepath.Join(t.TempDir(), "fatal.log")
	cmd := exec.Command(os.Args[0], "-test.run=^TestFatalExitsProcess$")
	cmd.Env = append(os.Environ(), fatalChildEnv+"=1", "JOBLOG_FATAL_FILE="+logPath)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	err := cmd.Run()

	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr), "child must exit with an error status, got %v", err)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.True(t, strings.HasSuffix(stdout.String(), " ERROR boom\n\n"), "stdout: %q", stdout.String())

	content, readErr := os.ReadFile(logPath)
	require.NoError(t, readErr)
	assert.True(t, strings.HasSuffix(string(content), " ERROR boom\n\n"), "file: %q", string(content))
}

func TestExitFuncMayUseLogger(t *testing.T) {
	var console bytes.Buffer
	var logger *Logger
	var codes []int

	logger, err := NewBuilder().
		Console(&console).
		Sampler(&fakeSampler{}).
		Clock(func() time.Time { return testTime }).
		ExitFunc(func(code int) {
			codes = append(codes, code)
			logger.Info("exiting with", code)
			logger.Close()
		}).
		TerminateOnSectionError(true).
		Build()
	require.NoError(t, err)
	initPlain(t, logger)

	done := make(chan struct{})
	go func() {
		defer close(done)
		logger.Fatal("boom")
		_ = logger.Init("", ConsoleSink())
		logger.SetReportMemory(false)
		_ = logger.CompleteSection()
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("exit function blocked on the logger lock")
	}

	assert.Equal(t, []int{1, 1}, codes)
	assert.Equal(t, testStamp+"   ERROR boom\n\n"+
		testStamp+"    INFO exiting with 1\n"+
		testStamp+"   ERROR no section to complete\n\n"+
		testStamp+"    INFO exiting with 1\n",
		console.String())
	assert.False(t, logger.IsInitialized())
}
