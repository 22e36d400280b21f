package ports

import "github.com/calvers/audiorip/internal/domain"

// ProgressSink receives progress updates for a single in-flight job.
// A sink is private to the worker that owns the job.
type ProgressSink interface {
	// SetTotal makes the display determinate with the given total units.
	SetTotal(total int)
	// SetIndeterminate switches the display to elapsed-time-only mode.
	SetIndeterminate()
	// Advance moves the display forward by delta units.
	Advance(delta int)
	// Close releases the display row. Safe to call more than once.
	Close()
}

// ProgressBoard hands out per-job sinks and owns the aggregate display.
type ProgressBoard interface {
	// Slot binds a fresh sink to display row slot, labelled for the job.
	// Rows are reused: binding a row resets whatever job held it before.
	Slot(slot int, label string) ProgressSink
	// Record logs a completed job's result line and advances the
	// aggregate files-completed counter.
	Record(r domain.Result)
	// Close tears the whole display down.
	Close()
}
