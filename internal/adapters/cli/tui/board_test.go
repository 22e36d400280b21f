package tui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/calvers/audiorip/internal/domain"
)

func TestBoardRendersSlotProgress(t *testing.T) {
	var buf bytes.Buffer
	b := NewBoard(3, 2, false, &buf)
	defer b.Close()

	sink := b.Slot(0, "clip.mp4")
	sink.SetTotal(100)
	sink.Advance(40)
	sink.Advance(25)

	out := buf.String()
	if !strings.Contains(out, "clip.mp4") {
		t.Errorf("output missing slot label: %q", out)
	}
	if !strings.Contains(out, "0/3 files") {
		t.Errorf("output missing aggregate line: %q", out)
	}
}

func TestBoardAdvanceClampsAtTotal(t *testing.T) {
	var buf bytes.Buffer
	b := NewBoard(1, 1, false, &buf)
	defer b.Close()

	sink := b.Slot(0, "a.mp4")
	sink.SetTotal(100)
	sink.Advance(150)

	b.mu.Lock()
	current := b.rows[0].current
	b.mu.Unlock()

	if current != 100 {
		t.Errorf("current = %d, want clamped to 100", current)
	}
}

func TestBoardIgnoresNonPositiveAdvance(t *testing.T) {
	var buf bytes.Buffer
	b := NewBoard(1, 1, false, &buf)
	defer b.Close()

	sink := b.Slot(0, "a.mp4")
	sink.SetTotal(100)
	sink.Advance(10)
	sink.Advance(0)
	sink.Advance(-5)

	b.mu.Lock()
	current := b.rows[0].current
	b.mu.Unlock()

	if current != 10 {
		t.Errorf("current = %d, want 10", current)
	}
}

func TestBoardLogKeepsLineAboveRows(t *testing.T) {
	var buf bytes.Buffer
	b := NewBoard(2, 1, false, &buf)
	defer b.Close()

	b.Log("Found 2 .mp4 file(s) to convert")
	b.Slot(0, "a.mp4")

	out := buf.String()
	if !strings.Contains(out, "Found 2 .mp4 file(s) to convert\n") {
		t.Errorf("output missing logged line: %q", out)
	}
	// The log line must come before the redrawn rows
	if strings.Index(out, "Found 2") > strings.Index(out, "Overall") {
		t.Errorf("log line rendered after progress rows: %q", out)
	}
}

func TestBoardRecordSuccessAndFailure(t *testing.T) {
	var buf bytes.Buffer
	b := NewBoard(2, 1, false, &buf)
	defer b.Close()

	b.Record(domain.Success("a.mp4", 1200*time.Millisecond))
	b.Record(domain.Failure("b.mp4", "Invalid data found", 500*time.Millisecond))

	out := buf.String()
	if !strings.Contains(out, "✅ a.mp4 (1.2s)") {
		t.Errorf("output missing success line: %q", out)
	}
	if !strings.Contains(out, "❌ b.mp4: Invalid data found (500ms)") {
		t.Errorf("output missing failure line: %q", out)
	}
	if !strings.Contains(out, "2/2 files") {
		t.Errorf("output missing updated aggregate: %q", out)
	}
}

func TestBoardQuietSuppressesRowsNotResults(t *testing.T) {
	var buf bytes.Buffer
	b := NewBoard(1, 1, true, &buf)
	defer b.Close()

	sink := b.Slot(0, "a.mp4")
	sink.SetTotal(100)
	sink.Advance(50)
	b.Record(domain.Failure("a.mp4", "boom", 500*time.Millisecond))

	out := buf.String()
	if strings.Contains(out, "Overall") {
		t.Errorf("quiet board should not render rows: %q", out)
	}
	if !strings.Contains(out, "❌ a.mp4: boom (500ms)") {
		t.Errorf("quiet board should still emit result lines: %q", out)
	}
}

func TestBoardSlotReuseResetsRow(t *testing.T) {
	var buf bytes.Buffer
	b := NewBoard(2, 1, false, &buf)
	defer b.Close()

	first := b.Slot(0, "a.mp4")
	first.SetTotal(100)
	first.Advance(80)
	first.Close()

	b.Slot(0, "b.mp4")

	b.mu.Lock()
	r := b.rows[0]
	b.mu.Unlock()

	if r.label != "b.mp4" || r.current != 0 || !r.indet || !r.active {
		t.Errorf("reused row = %+v, want fresh indeterminate row for b.mp4", r)
	}
}

func TestBoardCloseIsIdempotent(t *testing.T) {
	var buf bytes.Buffer
	b := NewBoard(1, 1, false, &buf)
	b.Close()
	b.Close() // must not panic or double-close the stop channel
}
