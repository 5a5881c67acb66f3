package joblog

import (
	"runtime/metrics"
)

// totalMemoryMetric is all memory mapped by the Go runtime, the same figure as MemStats.Sys
const totalMemoryMetric = "/memory/classes/total:bytes"

// UsageSampler reports the resource footprint shown at the start of each line.
// Errors are never surfaced to logging callers; a failed sample renders as a blank field.
type UsageSampler interface {
	// MemoryUsageGB returns the memory held by the process in GiB
	MemoryUsageGB() (float64, error)
	// DiskUsageGB returns the used space of the filesystem holding path in GiB.
	// path must exist and be a directory.
	DiskUsageGB(path string) (float64, error)
}

// RuntimeSampler samples the Go runtime and the filesystem.
type RuntimeSampler struct{}

// MemoryUsageGB returns the total bytes obtained from the OS by the Go runtime.
// It reads runtime/metrics, which unlike runtime.ReadMemStats does not stop the world.
func (RuntimeSampler) MemoryUsageGB() (float64, error) {
	sample := []metrics.Sample{{Name: totalMemoryMetric}}
	metrics.Read(sample)
	if sample[0].Value.Kind() != metrics.KindUint64 {
		return 0, fmtErrorf("metric %s unavailable: %w", totalMemoryMetric, ErrSampling)
	}
	return float64(sample[0].Value.Uint64()) / bytesPerGB, nil
}

// DiskUsageGB returns the used space of the filesystem holding path
func (RuntimeSampler) DiskUsageGB(path string) (float64, error) {
	used, err := getDiskUsage(path)
	if err != nil {
		return 0, err
	}
	return float64(used) / bytesPerGB, nil
}
