package ffmpeg

import (
	"context"
	"path/filepath"
	"time"

	"github.com/calvers/audiorip/internal/domain"
	"github.com/calvers/audiorip/internal/ports"
)

const simSteps = 100

// Simulator is the dry-run strategy behind the FileConverter contract.
// It walks a determinate progress display from 0 to 100 in fixed steps
// and never touches the filesystem or spawns a subprocess.
type Simulator struct {
	StepDelay time.Duration
}

// NewSimulator creates a dry-run converter
func NewSimulator() *Simulator {
	return &Simulator{StepDelay: 5 * time.Millisecond}
}

func (s *Simulator) Convert(ctx context.Context, src string, sink ports.ProgressSink) domain.Result {
	start := time.Now()
	name := filepath.Base(src)
	defer sink.Close()

	sink.SetTotal(simSteps)
	for i := 0; i < simSteps; i++ {
		select {
		case <-ctx.Done():
			return domain.Failure(name, ctx.Err().Error(), time.Since(start))
		case <-time.After(s.StepDelay):
		}
		sink.Advance(1)
	}

	return domain.Success(name, time.Since(start))
}

// Ensure Simulator implements the port
var _ ports.FileConverter = (*Simulator)(nil)
