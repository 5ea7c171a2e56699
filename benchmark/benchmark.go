// benchmark.go
// A reusable benchmarking module for ORF Buddy
// Measures execution time and memory usage for any wrapped tool run

package benchmark

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"
)

// Report holds the resource usage of one benchmarked run.
type Report struct {
	Label          string
	Elapsed        time.Duration
	AllocDeltaMB   float64
	TotalAllocMB   float64
	HeapMB         float64
	SysMB          float64
	GCCycles       uint32
	NumCPU         int
	GoroutinesFrom int
	GoroutinesTo   int
}

const mb = 1024.0 * 1024.0

// Measure runs f and returns its runtime and memory usage.
func Measure(label string, f func()) Report {
	runtime.GC() // Settle the heap before measuring
	var memStart, memEnd runtime.MemStats
	runtime.ReadMemStats(&memStart)
	startGoroutines := runtime.NumGoroutine()
	start := time.Now()

	f()

	elapsed := time.Since(start)
	runtime.ReadMemStats(&memEnd)

	return Report{
		Label:          label,
		Elapsed:        elapsed,
		AllocDeltaMB:   (float64(memEnd.Alloc) - float64(memStart.Alloc)) / mb, // Difference in live heap
		TotalAllocMB:   float64(memEnd.TotalAlloc-memStart.TotalAlloc) / mb,    // Everything allocated during the run
		HeapMB:         float64(memEnd.HeapAlloc) / mb,
		SysMB:          float64(memEnd.Sys) / mb,
		GCCycles:       memEnd.NumGC - memStart.NumGC,
		NumCPU:         runtime.NumCPU(),
		GoroutinesFrom: startGoroutines,
		GoroutinesTo:   runtime.NumGoroutine(),
	}
}

// WriteHeader prints the label and host information. It is written before
// the run starts so a tool that exits the process still leaves a header.
func WriteHeader(w io.Writer, label string) {
	fmt.Fprintf(w, "[Benchmark] Running: %s\n", label)
	fmt.Fprintln(w, "[Benchmark] Timestamp:", time.Now().Format(time.RFC1123))
	if host, err := os.Hostname(); err == nil {
		fmt.Fprintln(w, "[Benchmark] Hostname:", host)
	}
	fmt.Fprintln(w, "[Benchmark] Go Version:", runtime.Version())
	fmt.Fprintf(w, "[Benchmark] OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
}

// WriteReport prints the resource usage in r.
func WriteReport(w io.Writer, r Report) {
	fmt.Fprintf(w, "[Benchmark] Time Elapsed: %v\n", r.Elapsed)
	fmt.Fprintf(w, "[Benchmark] Memory Used: %.2f MB\n", r.AllocDeltaMB)
	fmt.Fprintf(w, "[Benchmark] Total Allocated: %.2f MB\n", r.TotalAllocMB)
	fmt.Fprintf(w, "[Benchmark] Peak Heap: %.2f MB\n", r.HeapMB)
	fmt.Fprintf(w, "[Benchmark] GC Cycles: %d\n", r.GCCycles)
	fmt.Fprintf(w, "[Benchmark] Total System Memory Allocated: %.2f MB\n", r.SysMB)
	fmt.Fprintf(w, "[Benchmark] CPU Cores: %d\n", r.NumCPU)
	fmt.Fprintf(w, "[Benchmark] Goroutines Started: %d → %d\n", r.GoroutinesFrom, r.GoroutinesTo)
	fmt.Fprintln(w, "[Benchmark] ----------------------------------------")
}

// Run prints the header, runs f, then reports its resource usage to stdout.
func Run(label string, f func()) {
	run(os.Stdout, label, f)
}

func run(w io.Writer, label string, f func()) {
	WriteHeader(w, label)
	WriteReport(w, Measure(label, f))
}
