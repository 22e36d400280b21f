package ports

import "context"

// DurationProber reports the total media duration of a file in seconds.
type DurationProber interface {
	// ProbeDuration returns (seconds, true) when the duration is known.
	// Any probe failure (missing tool, bad output, non-zero exit) is
	// reported as (0, false), never as a hard error: duration only feeds
	// the percentage display.
	ProbeDuration(ctx context.Context, path string) (float64, bool)
}
