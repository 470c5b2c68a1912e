package profiler

import "time"

// ProfilerBuilderOption is a functional option for configuring a Profiler.
type ProfilerBuilderOption func(*Profiler)

// WithLogging enables or disables the periodic stats log line.
//
// Parameters:
//   - enabled: whether to log stats
//
// Returns:
//   - ProfilerBuilderOption: functional option to toggle logging
func WithLogging(enabled bool) ProfilerBuilderOption {
	return func(p *Profiler) {
		p.logging = enabled
	}
}

// WithUpdateInterval sets how often stats are reported.
//
// Parameters:
//   - interval: time between reports
//
// Returns:
//   - ProfilerBuilderOption: functional option to set the interval
func WithUpdateInterval(interval time.Duration) ProfilerBuilderOption {
	return func(p *Profiler) {
		p.updateInterval = interval
	}
}

// withClock replaces the time source.
func withClock(now func() time.Time) ProfilerBuilderOption {
	return func(p *Profiler) {
		p.now = now
	}
}
