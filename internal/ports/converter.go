package ports

import (
	"context"

	"github.com/calvers/audiorip/internal/domain"
)

// FileConverter turns one input file into an audio-only output file.
// The real ffmpeg-backed converter and the dry-run simulator both satisfy
// this contract; the orchestrator cannot tell them apart.
type FileConverter interface {
	// Convert processes src and reports progress to sink. It never
	// returns an out-of-band error: every failure is folded into the
	// Result, and sink is closed on all paths.
	Convert(ctx context.Context, src string, sink ProgressSink) domain.Result
}
