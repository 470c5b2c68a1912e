package profiler

import (
	"log"
	"runtime"
	"time"
)

// Profiler is the frame clock of the application loop.
// Each Tick measures the time since the previous frame, and when logging is enabled the
// frame rate and memory statistics are written to the log once per update interval.
type Profiler struct {
	now            func() time.Time
	logging        bool
	updateInterval time.Duration

	lastFrame time.Time

	frameCount     int
	lastReport     time.Time
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
}

// NewProfiler creates a new Profiler whose clock starts now.
// Update interval defaults to 1 second and logging is disabled.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerBuilderOption) *Profiler {
	p := &Profiler{
		now:            time.Now,
		updateInterval: time.Second,
	}
	for _, option := range options {
		option(p)
	}
	p.lastFrame = p.now()
	p.lastReport = p.lastFrame
	return p
}

// Tick should be called once per frame.
//
// Returns:
//   - float32: milliseconds elapsed since the previous Tick (or since creation)
//   - bool: true if stats were logged this tick
func (p *Profiler) Tick() (float32, bool) {
	currentTime := p.now()
	delta := float32(currentTime.Sub(p.lastFrame)) / float32(time.Millisecond)
	p.lastFrame = currentTime
	p.frameCount++

	elapsed := currentTime.Sub(p.lastReport)
	if elapsed < p.updateInterval {
		return delta, false
	}

	fps := float64(p.frameCount) / elapsed.Seconds()
	if p.logging {
		p.report(fps, elapsed)
	}
	p.frameCount = 0
	p.lastReport = currentTime
	return delta, p.logging
}

// report logs the frame rate together with heap usage, allocation rate and GC pauses.
func (p *Profiler) report(fps float64, elapsed time.Duration) {
	runtime.ReadMemStats(&p.memStats)
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	sysMB := float64(p.memStats.Sys) / 1024 / 1024
	allocRateMB := float64(p.memStats.TotalAlloc-p.lastTotalAlloc) / 1024 / 1024 / elapsed.Seconds()

	// PauseNs is a circular buffer of the last 256 GC pauses.
	gcCount := p.memStats.NumGC
	var lastPauseUs, maxPauseUs uint64
	if gcCount > 0 {
		lastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000
		startIdx := p.lastGCCount
		if gcCount-startIdx > 256 {
			startIdx = gcCount - 256
		}
		for i := startIdx; i < gcCount; i++ {
			maxPauseUs = max(maxPauseUs, p.memStats.PauseNs[i%256]/1000)
		}
	}

	log.Printf("[Profiler] FPS: %.2f | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (last: %d µs, max: %d µs) | Sys: %.2f MB",
		fps, allocMB, allocRateMB, gcCount, lastPauseUs, maxPauseUs, sysMB)

	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
}
