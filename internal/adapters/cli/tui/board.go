package tui

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/calvers/audiorip/internal/domain"
	"github.com/calvers/audiorip/internal/ports"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const barWidth = 20

// row is the display state of one worker slot.
type row struct {
	label   string
	active  bool
	indet   bool
	total   int
	current int
	started time.Time
}

// Board renders the aggregate progress line plus one row per worker slot,
// redrawing in place with cursor movement. Workers update their own rows
// concurrently; a single mutex serializes all rendering.
type Board struct {
	mu         sync.Mutex
	out        io.Writer
	quiet      bool
	totalFiles int
	done       int
	rows       []row
	rendered   int // lines drawn by the previous render
	lastRender time.Time
	spinnerIdx int
	stop       chan struct{}
	closed     bool
}

// NewBoard creates a display for totalFiles jobs across slots worker rows,
// writing to out (os.Stdout when nil). Quiet mode suppresses the rows but
// still emits log lines.
func NewBoard(totalFiles, slots int, quiet bool, out io.Writer) *Board {
	if out == nil {
		out = os.Stdout
	}
	if slots < 1 {
		slots = 1
	}
	b := &Board{
		out:        out,
		quiet:      quiet,
		totalFiles: totalFiles,
		rows:       make([]row, slots),
		stop:       make(chan struct{}),
	}
	if !quiet {
		go b.tickLoop()
	}
	return b
}

// tickLoop animates the spinner and elapsed times for indeterminate rows.
func (b *Board) tickLoop() {
	ticker := time.NewTicker(120 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-b.stop:
			return
		case <-ticker.C:
			b.mu.Lock()
			b.spinnerIdx = (b.spinnerIdx + 1) % len(spinnerFrames)
			b.render(false)
			b.mu.Unlock()
		}
	}
}

// Slot binds display row slot to a new job and returns its sink.
func (b *Board) Slot(slot int, label string) ports.ProgressSink {
	b.mu.Lock()
	defer b.mu.Unlock()

	if slot < 0 || slot >= len(b.rows) {
		slot = 0
	}
	b.rows[slot] = row{label: label, active: true, indet: true, started: time.Now()}
	b.render(true)
	return &slotSink{board: b, slot: slot}
}

// Log prints one line above the progress rows and keeps it there.
func (b *Board) Log(line string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.clear()
	fmt.Fprintln(b.out, line)
	b.render(true)
}

// Record logs the per-job result line the moment the job completes and
// advances the aggregate counter.
func (b *Board) Record(r domain.Result) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.clear()
	if r.OK {
		fmt.Fprintf(b.out, "✅ %s (%s)\n", r.Source, FormatDuration(r.Elapsed))
	} else {
		fmt.Fprintf(b.out, "❌ %s: %s (%s)\n", r.Source, r.ErrMsg, FormatDuration(r.Elapsed))
	}
	b.done++
	b.render(true)
}

// Close clears the progress rows and stops the spinner. Logged lines stay.
func (b *Board) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	close(b.stop)
	b.clear()
}

// clear erases the rows drawn by the previous render. Caller holds the lock.
func (b *Board) clear() {
	if b.quiet || b.rendered == 0 {
		return
	}
	fmt.Fprintf(b.out, "\033[%dA", b.rendered)
	fmt.Fprint(b.out, "\033[J")
	b.rendered = 0
}

// render redraws the aggregate line and every active slot row in place.
// Caller holds the lock. Non-forced renders are throttled to avoid
// flickering under rapid progress events.
func (b *Board) render(force bool) {
	if b.quiet || b.closed {
		return
	}
	if !force && time.Since(b.lastRender) < 50*time.Millisecond {
		return
	}
	b.lastRender = time.Now()

	b.clear()

	lines := 1
	fmt.Fprintf(b.out, "Overall %s %d/%d files\n",
		renderBar(b.done, b.totalFiles, barWidth), b.done, b.totalFiles)

	for _, r := range b.rows {
		if !r.active {
			continue
		}
		if r.indet {
			fmt.Fprintf(b.out, "%s %s %s\n",
				spinnerFrames[b.spinnerIdx], r.label, FormatDuration(time.Since(r.started)))
		} else {
			pct := 0
			if r.total > 0 {
				pct = r.current * 100 / r.total
			}
			fmt.Fprintf(b.out, "%s %s %3d%%\n",
				r.label, renderBar(r.current, r.total, barWidth), pct)
		}
		lines++
	}

	b.rendered = lines
}

// slotSink is the per-job view onto one board row.
type slotSink struct {
	board *Board
	slot  int
}

func (s *slotSink) SetTotal(total int) {
	b := s.board
	b.mu.Lock()
	defer b.mu.Unlock()

	r := &b.rows[s.slot]
	r.indet = false
	r.total = total
	r.current = 0
	b.render(true)
}

func (s *slotSink) SetIndeterminate() {
	b := s.board
	b.mu.Lock()
	defer b.mu.Unlock()

	r := &b.rows[s.slot]
	r.indet = true
	r.total = 0
	b.render(true)
}

func (s *slotSink) Advance(delta int) {
	if delta <= 0 {
		return
	}
	b := s.board
	b.mu.Lock()
	defer b.mu.Unlock()

	r := &b.rows[s.slot]
	r.current += delta
	if r.total > 0 && r.current > r.total {
		r.current = r.total
	}
	b.render(false)
}

func (s *slotSink) Close() {
	b := s.board
	b.mu.Lock()
	defer b.mu.Unlock()

	b.rows[s.slot].active = false
	b.render(true)
}

// Ensure Board satisfies the port
var _ ports.ProgressBoard = (*Board)(nil)
