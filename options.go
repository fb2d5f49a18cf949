package walktrace

import "time"

// RecorderOption configures a Recorder during creation.
// Use functional options to customize Recorder behavior.
//
// Example:
//
//	// Default: 3s countdown, 2px red trace, CSV to walk_trace.csv
//	rec := walktrace.NewRecorder()
//
//	// Custom exporter (dependency injection)
//	rec := walktrace.NewRecorder(walktrace.WithExporter(myExporter))
type RecorderOption func(*recorderOptions)

// recorderOptions holds optional configuration for Recorder creation.
type recorderOptions struct {
	countdown time.Duration
	style     TraceStyle
	exporter  Exporter
}

// defaultRecorderOptions returns the default recorder options.
func defaultRecorderOptions() recorderOptions {
	return recorderOptions{
		countdown: 3 * time.Second,
		style:     DefaultTraceStyle(),
		exporter:  &CSVExporter{},
	}
}

// WithCountdown sets the delay between the start toggle and the actual
// recording start. Non-positive durations are ignored.
func WithCountdown(d time.Duration) RecorderOption {
	return func(o *recorderOptions) {
		if d > 0 {
			o.countdown = d
		}
	}
}

// WithTraceStyle sets the stroke style used for the trajectory trace.
func WithTraceStyle(s TraceStyle) RecorderOption {
	return func(o *recorderOptions) {
		o.style = s
	}
}

// WithExporter sets the exporter invoked when a recording stops.
// Pass nil to discard finished sessions.
func WithExporter(e Exporter) RecorderOption {
	return func(o *recorderOptions) {
		o.exporter = e
	}
}
