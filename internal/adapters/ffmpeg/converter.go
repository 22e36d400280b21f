package ffmpeg

import (
	"bufio"
	"context"
	"io"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/calvers/audiorip/internal/config"
	"github.com/calvers/audiorip/internal/domain"
	"github.com/calvers/audiorip/internal/ports"
)

// fallbackError is reported when ffmpeg exits non-zero without printing
// anything usable on its diagnostic stream.
const fallbackError = "ffmpeg error"

// Converter implements ports.FileConverter by driving an ffmpeg subprocess.
// Progress is read from ffmpeg's machine-readable -progress stream, which
// is multiplexed onto stderr alongside error-level diagnostics.
type Converter struct {
	fs     afero.Fs
	prober ports.DurationProber

	Bin           string // ffmpeg binary, defaults to "ffmpeg" on PATH
	Codec         string
	Quality       string
	OutputExt     string
	KeepOriginals bool
}

// NewConverter creates an ffmpeg-backed converter
func NewConverter(fs afero.Fs, prober ports.DurationProber, cfg config.ConvertConfig, keepOriginals bool) *Converter {
	return &Converter{
		fs:            fs,
		prober:        prober,
		Codec:         cfg.Codec,
		Quality:       cfg.Quality,
		OutputExt:     cfg.OutputExt,
		KeepOriginals: keepOriginals,
	}
}

func (c *Converter) bin() string {
	if c.Bin != "" {
		return c.Bin
	}
	return "ffmpeg"
}

// IsAvailable checks if ffmpeg is installed.
func (c *Converter) IsAvailable() bool {
	_, err := exec.LookPath(c.bin())
	return err == nil
}

// OutputPath returns the audio output path for a source file: same
// directory, same stem, audio extension.
func OutputPath(src, outputExt string) string {
	return strings.TrimSuffix(src, filepath.Ext(src)) + outputExt
}

// Convert runs one conversion job to completion. Every failure mode is
// folded into the returned Result; the sink is closed on all paths.
func (c *Converter) Convert(ctx context.Context, src string, sink ports.ProgressSink) domain.Result {
	start := time.Now()
	name := filepath.Base(src)
	defer sink.Close()

	fail := func(msg string) domain.Result {
		return domain.Failure(name, msg, time.Since(start))
	}

	dst := OutputPath(src, c.OutputExt)

	total, known := c.prober.ProbeDuration(ctx, src)
	if known {
		sink.SetTotal(100)
	} else {
		sink.SetIndeterminate()
	}

	args := []string{
		"-i", src,
		"-vn",
		"-c:a", c.Codec,
		"-q:a", c.Quality,
		"-progress", "pipe:2",
		"-nostats",
		"-loglevel", "error",
		dst,
	}
	logrus.Debugf("running %s %s", c.bin(), strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, c.bin(), args...)
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fail(err.Error())
	}
	if err := cmd.Start(); err != nil {
		return fail(err.Error())
	}

	// Blocks this worker until ffmpeg closes its diagnostic stream.
	diags := ScanProgress(stderr, total, sink)

	if err := cmd.Wait(); err != nil {
		msg := strings.Join(diags, "\n")
		if msg == "" {
			msg = fallbackError
		}
		return fail(msg)
	}

	if !c.KeepOriginals {
		if err := c.fs.Remove(src); err != nil {
			return fail(err.Error())
		}
	}

	return domain.Success(name, time.Since(start))
}

// ScanProgress reads ffmpeg's stderr line by line until the stream closes.
// out_time_ms lines (microseconds, despite the name) become percentage
// advances against totalSeconds; remaining key=value progress fields are
// skipped; anything else is collected as diagnostic text for the failure
// message. Exported for testing against canned streams.
func ScanProgress(r io.Reader, totalSeconds float64, sink ports.ProgressSink) []string {
	var diags []string
	lastPct := 0

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		if val, ok := strings.CutPrefix(line, "out_time_ms="); ok {
			if totalSeconds <= 0 {
				continue
			}
			us, err := strconv.ParseInt(val, 10, 64)
			if err != nil {
				logrus.Debugf("unparseable progress value %q", val)
				continue
			}
			seconds := float64(us) / 1e6
			pct := int(seconds / totalSeconds * 100)
			if pct > 100 {
				pct = 100
			}
			if pct > lastPct {
				sink.Advance(pct - lastPct)
				lastPct = pct
			}
			continue
		}

		if strings.Contains(line, "=") {
			continue // other progress fields (frame=, speed=, progress=, …)
		}

		diags = append(diags, line)
	}

	return diags
}

// Ensure Converter implements the port
var _ ports.FileConverter = (*Converter)(nil)
