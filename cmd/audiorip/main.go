// Command audiorip batch-converts video files to audio-only files by
// driving ffmpeg subprocesses in parallel with per-file progress bars.
package main

import (
	"os"

	"github.com/calvers/audiorip/internal/adapters/cli"
)

func main() {
	os.Exit(cli.Execute())
}
