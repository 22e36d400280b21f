package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/calvers/audiorip/internal/adapters/cli/tui"
	"github.com/calvers/audiorip/internal/adapters/ffmpeg"
	"github.com/calvers/audiorip/internal/application"
	"github.com/calvers/audiorip/internal/domain"
	"github.com/calvers/audiorip/internal/ports"
)

var (
	// Global flags
	dryRunFlag      bool
	concurrencyFlag int
	keepFlag        bool
	pickFlag        bool
	quietFlag       bool
	verboseFlag     bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "audiorip [dir]",
		Short: "Convert video files to audio-only files in parallel",
		Long: `audiorip converts every video file in a directory to an audio-only
file, running conversions in parallel with per-file progress bars.

On success the original video is deleted and an audio file with the
same stem is left in its place. ffmpeg and ffprobe must be on PATH
(see 'audiorip check').

Example:
  audiorip              convert *.mp4 in the current directory
  audiorip ~/videos     convert in another directory
  audiorip --dry-run    simulate without touching anything`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logrus.SetOutput(os.Stderr)
			if verboseFlag {
				logrus.SetLevel(logrus.DebugLevel)
				logrus.SetFormatter(&logrus.TextFormatter{
					FullTimestamp:   true,
					TimestampFormat: "2006-01-02 15:04:05",
				})
			} else {
				logrus.SetLevel(logrus.WarnLevel)
			}
		},
		RunE: runRoot,
	}

	// Global flags
	rootCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Simulate without converting or deleting files")
	rootCmd.Flags().IntVarP(&concurrencyFlag, "concurrency", "c", 0, "Max concurrent workers (0 = one worker per file, max 50)")
	rootCmd.Flags().BoolVar(&keepFlag, "keep-originals", false, "Don't delete source files after conversion")
	rootCmd.Flags().BoolVar(&pickFlag, "pick", false, "Interactively choose which files to convert")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(NewCheckCmd())
	rootCmd.AddCommand(NewConfigCmd())

	return rootCmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ext := app.Config.Convert.InputExt
	files, err := Discover(app.Fs, dir, ext)
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", dir, err)
	}

	if len(files) == 0 {
		if !dryRunFlag {
			fmt.Printf("⚠️  No %s files found in %s\n", ext, dir)
			return nil
		}
		// Dry run over an empty directory still demonstrates the display
		fmt.Println("⚠️  No files found - simulating a sample batch")
		files = placeholderFiles(dir, ext)
	}

	if pickFlag {
		files, err = pickFiles(files)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			fmt.Println("Cancelled")
			return nil
		}
	}

	override := concurrencyFlag
	if override == 0 {
		override = app.Config.Defaults.Concurrency
	}
	workers := application.PoolSize(application.DetectCores(), len(files), override)
	logrus.Debugf("pool size %d for %d files", workers, len(files))

	rows := workers
	if len(files) < rows {
		rows = len(files)
	}
	board := tui.NewBoard(len(files), rows, quietFlag, nil)
	defer board.Close()

	if dryRunFlag {
		board.Log("🧪 DRY RUN MODE - no files will be converted or deleted")
	}
	board.Log(fmt.Sprintf("Found %d %s file(s) to convert", len(files), ext))
	board.Log(fmt.Sprintf("Using %d parallel workers\n", workers))

	var converter ports.FileConverter
	if dryRunFlag {
		converter = ffmpeg.NewSimulator()
	} else {
		keep := keepFlag || app.Config.Defaults.KeepOriginals
		converter = ffmpeg.NewConverter(app.Fs, app.Prober, app.Config.Convert, keep)
	}

	svc := application.NewBatchService(converter, board)
	summary := svc.Run(ctx, files, workers)
	board.Close()

	// An interrupt bypasses the summary entirely
	if ctx.Err() != nil {
		return domain.ErrInterrupted
	}

	printSummary(summary, dryRunFlag)

	if summary.Failed > 0 {
		return domain.ErrConversionsFailed
	}
	return nil
}

// pickFiles narrows the discovered files to an interactive selection.
func pickFiles(files []string) ([]string, error) {
	labels := make([]string, len(files))
	for i, f := range files {
		labels[i] = filepath.Base(f)
	}

	selected, err := tui.RunFilePicker("Select files to convert", labels)
	if err != nil {
		return nil, err
	}
	if selected == nil {
		return nil, nil
	}

	keep := make(map[string]bool, len(selected))
	for _, s := range selected {
		keep[s] = true
	}

	var out []string
	for _, f := range files {
		if keep[filepath.Base(f)] {
			out = append(out, f)
		}
	}
	return out, nil
}

// Execute runs the CLI and returns the process exit status.
func Execute() int {
	err := NewRootCmd().Execute()
	if err == nil {
		return 0
	}

	switch {
	case errors.Is(err, domain.ErrConversionsFailed):
		// Failures are already listed in the summary block
		return 1
	case errors.Is(err, domain.ErrInterrupted):
		fmt.Fprintln(os.Stderr, "\n⚠️  Interrupted")
		return 130
	default:
		fmt.Fprintf(os.Stderr, "audiorip: %v\n", err)
		return 1
	}
}
