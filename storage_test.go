// FILE: lixenwraith/joblog/storage_test.go
package joblog

import (
	"os"
	"path/filepath"
	"runtime"
	"runtime/metrics"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")

	require.NoError(t, appendToFile(path, "one\n"))
	require.NoError(t, appendToFile(path, "two\n"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", string(content))

	err = appendToFile(filepath.Join(t.TempDir(), "missing", "run.log"), "x")
	assert.Error(t, err)
}

func TestFileSinkAppendsAcrossInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	require.NoError(t, os.WriteFile(path, []byte("previous run\n"), 0644))

	logger, _, _ := createTestLogger(t)
	initPlain(t, logger, FileSink(path))
	logger.Info("first")
	initPlain(t, logger, FileSink(path))
	logger.Info("second")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"previous run\n"+
			testStamp+"    INFO first\n"+
			testStamp+"    INFO second\n",
		string(content))
}

func TestGetDiskUsage(t *testing.T) {
	dir := t.TempDir()

	used, err := getDiskUsage(dir)
	require.NoError(t, err)
	assert.Greater(t, used, int64(0))

	_, err = getDiskUsage(filepath.Join(dir, "absent"))
	assert.ErrorIs(t, err, ErrSampling)
	assert.Contains(t, err.Error(), "does not exist")

	file := filepath.Join(dir, "plain.txt")
	require.NoError(t, os.WriteFile(file, nil, 0644))
	_, err = getDiskUsage(file)
	assert.ErrorIs(t, err, ErrSampling)
	assert.Contains(t, err.Error(), "is not a directory")
}

func TestRuntimeSampler(t *testing.T) {
	var sampler UsageSampler = RuntimeSampler{}

	mem, err := sampler.MemoryUsageGB()
	require.NoError(t, err)
	assert.Greater(t, mem, 0.0)
	assert.Less(t, mem, 1024.0)

	disk, err := sampler.DiskUsageGB(t.TempDir())
	require.NoError(t, err)
	assert.Greater(t, disk, 0.0)

	_, err = sampler.DiskUsageGB(filepath.Join(t.TempDir(), "absent"))
	assert.ErrorIs(t, err, ErrSampling)
}

func TestRuntimeSamplerMemoryMatchesMemStats(t *testing.T) {
	descs := metrics.All()
	found := false
	for _, d := range descs {
		if d.Name == totalMemoryMetric {
			found = true
			assert.Equal(t, metrics.KindUint64, d.Kind)
		}
	}
	require.True(t, found, "runtime must publish %s", totalMemoryMetric)

	mem, err := RuntimeSampler{}.MemoryUsageGB()
	require.NoError(t, err)

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	assert.InDelta(t, float64(memStats.Sys)/bytesPerGB, mem, 0.1)
}
