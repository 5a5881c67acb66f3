// FILE: storage.go
package joblog

import (
	"fmt"
	"os"
	"syscall"
)

// appendToFile opens the log file, appends text and closes it again.
// No handle is held between writes.
func appendToFile(path, text string) error {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open/create log file '%s': %w", path, err)
	}

	_, writeErr := file.WriteString(text)
	closeErr := file.Close()
	if writeErr != nil {
		return fmt.Errorf("failed to write log file '%s': %w", path, writeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close log file '%s': %w", path, closeErr)
	}
	return nil
}

// getDiskUsage returns the bytes in use on the filesystem holding dir
func getDiskUsage(dir string) (int64, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, fmtErrorf("directory '%s' does not exist for disk check: %w", dir, ErrSampling)
		}
		return 0, fmtErrorf("failed to stat directory '%s': %v: %w", dir, err, ErrSampling)
	}
	if !info.IsDir() {
		return 0, fmtErrorf("'%s' is not a directory: %w", dir, ErrSampling)
	}

	var stat syscall.Statfs_t
	if err := syscall.Statfs(dir, &stat); err != nil {
		return 0, fmtErrorf("failed to get disk stats for '%s': %v: %w", dir, err, ErrSampling)
	}
	usedBytes := (int64(stat.Blocks) - int64(stat.Bfree)) * int64(stat.Bsize)
	return usedBytes, nil
}
