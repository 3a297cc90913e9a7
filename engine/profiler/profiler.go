// Package profiler keeps a window of recent frame times and reads the
// runtime counters reported when the engine exits.
package profiler

import (
	"runtime"
	"slices"
	"time"

	"github.com/rs/zerolog"
)

// FrameTimes is a ring of the most recent frame durations.
type FrameTimes struct {
	ring  []time.Duration
	next  int
	full  bool
	total uint64
}

func NewFrameTimes(capacity int) *FrameTimes {
	if capacity <= 0 {
		capacity = 256
	}
	return &FrameTimes{ring: make([]time.Duration, capacity)}
}

// Add records one frame, overwriting the oldest once the ring is full.
func (f *FrameTimes) Add(d time.Duration) {
	f.ring[f.next] = d
	f.next++
	f.total++
	if f.next == len(f.ring) {
		f.next = 0
		f.full = true
	}
}

// Summary describes the frames currently in the ring.
type Summary struct {
	Frames uint64 // all frames ever added
	Window int    // frames summarised
	Mean   time.Duration
	P95    time.Duration
	Max    time.Duration
}

func (f *FrameTimes) Summary() Summary {
	n := f.next
	if f.full {
		n = len(f.ring)
	}
	s := Summary{Frames: f.total, Window: n}
	if n == 0 {
		return s
	}

	sorted := slices.Clone(f.ring[:n])
	slices.Sort(sorted)
	var sum time.Duration
	for _, d := range sorted {
		sum += d
	}
	s.Mean = sum / time.Duration(n)
	s.Max = sorted[n-1]
	s.P95 = sorted[(n*95-1)/100]
	return s
}

func (s Summary) MarshalZerologObject(e *zerolog.Event) {
	e.Uint64("count", s.Frames).
		Int("window", s.Window).
		Dur("mean", s.Mean).
		Dur("p95", s.P95).
		Dur("max", s.Max)
}

// Runtime is a snapshot of process counters.
type Runtime struct {
	HeapAlloc  uint64
	Mallocs    uint64
	Goroutines int
	CPUs       int
}

func ReadRuntime() Runtime {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return Runtime{
		HeapAlloc:  m.HeapAlloc,
		Mallocs:    m.Mallocs,
		Goroutines: runtime.NumGoroutine(),
		CPUs:       runtime.NumCPU(),
	}
}

func (r Runtime) MarshalZerologObject(e *zerolog.Event) {
	e.Uint64("heap_alloc", r.HeapAlloc).
		Uint64("mallocs", r.Mallocs).
		Int("goroutines", r.Goroutines).
		Int("cpus", r.CPUs)
}
