// FILE: example/reconfig/main.go
package main

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/joblog"
)

// Simulate rapid reconfiguration while other goroutines log inside sections
func main() {
	var count atomic.Int64
	var wg sync.WaitGroup

	logger := joblog.NewLogger()
	if err := logger.Init("reconfig", joblog.ConsoleSink()); err != nil {
		fmt.Printf("Initial Init error: %v\n", err)
		return
	}

	for w := 0; w < 2; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				logger.Info("worker", id, "record", i)
				count.Add(1)
				time.Sleep(time.Millisecond)
			}
		}(w)
	}

	// Toggle the display while records are written
	for i := 0; i < 10; i++ {
		indent := fmt.Sprintf("indent=%q", indentOf(i%3+1))
		if err := logger.ApplyOverride(indent, fmt.Sprintf("report_disk=%t", i%2 == 0)); err != nil {
			fmt.Printf("Override error: %v\n", err)
		}
		logger.SetReportMemory(i%2 == 1)
		time.Sleep(5 * time.Millisecond)
	}

	wg.Wait()
	_ = logger.CompleteSection()
	fmt.Printf("Total records written: %d\n", count.Load())
}

// indentOf returns n indentation units of two spaces
func indentOf(n int) string {
	return fmt.Sprintf("%*s", n*2, "")
}
