package ffmpeg

import (
	"context"
	"os/exec"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/calvers/audiorip/internal/ports"
)

// Prober reads container-level duration via ffprobe.
type Prober struct {
	Bin string // ffprobe binary, defaults to "ffprobe" on PATH
}

// NewProber creates an ffprobe-backed duration prober
func NewProber() *Prober {
	return &Prober{}
}

func (p *Prober) bin() string {
	if p.Bin != "" {
		return p.Bin
	}
	return "ffprobe"
}

// IsAvailable checks if ffprobe is installed.
func (p *Prober) IsAvailable() bool {
	_, err := exec.LookPath(p.bin())
	return err == nil
}

// ProbeDuration runs ffprobe once and parses the duration from stdout.
// Failures of any kind degrade to "duration unknown"; the caller falls
// back to an indeterminate progress display.
func (p *Prober) ProbeDuration(ctx context.Context, path string) (float64, bool) {
	cmd := exec.CommandContext(ctx, p.bin(),
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)

	out, err := cmd.Output()
	if err != nil {
		logrus.Debugf("ffprobe failed for %s: %v", path, err)
		return 0, false
	}

	return ParseDurationOutput(out)
}

// ParseDurationOutput converts raw ffprobe stdout into seconds.
// Exported for testing without a real ffprobe binary.
func ParseDurationOutput(out []byte) (float64, bool) {
	s := strings.TrimSpace(string(out))
	if s == "" {
		return 0, false
	}

	seconds, err := strconv.ParseFloat(s, 64)
	if err != nil || seconds <= 0 {
		return 0, false
	}
	return seconds, true
}

// Ensure Prober implements the port
var _ ports.DurationProber = (*Prober)(nil)
