package cli

import (
	"fmt"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/calvers/audiorip/internal/domain"
)

// NewCheckCmd creates the check subcommand
func NewCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check that ffmpeg and ffprobe are available",
		RunE:  runCheck,
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	fmt.Println()
	fmt.Println("Dependency status:")
	fmt.Println()

	ffmpegPath, ffmpegErr := exec.LookPath("ffmpeg")
	if ffmpegErr == nil {
		fmt.Printf("  ffmpeg:   found (%s)\n", ffmpegPath)
	} else {
		fmt.Println("  ffmpeg:   not found")
	}

	ffprobePath, ffprobeErr := exec.LookPath("ffprobe")
	if ffprobeErr == nil {
		fmt.Printf("  ffprobe:  found (%s)\n", ffprobePath)
	} else {
		// Conversion still works without ffprobe, progress is just
		// indeterminate
		fmt.Println("  ffprobe:  not found (progress bars will be indeterminate)")
	}
	fmt.Println()

	if ffmpegErr != nil {
		return domain.ErrFFmpegNotFound
	}
	return nil
}
