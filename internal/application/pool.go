package application

import (
	"os/exec"
	"runtime"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// DetectCores returns the machine's core count. On macOS it asks sysctl
// first; any failure falls through to runtime.NumCPU, then to 4.
func DetectCores() int {
	if runtime.GOOS == "darwin" {
		if out, err := exec.Command("sysctl", "-n", "hw.ncpu").Output(); err == nil {
			if n, err := strconv.Atoi(strings.TrimSpace(string(out))); err == nil && n > 0 {
				return n
			}
		}
		logrus.Debug("sysctl core-count query failed, falling back to runtime")
	}

	if n := runtime.NumCPU(); n > 0 {
		return n
	}
	return 4
}

// PoolSize decides the worker count for a batch. With no override the
// pool is max(cores, files): never fewer workers than files, so every
// job starts immediately and per-slot progress rows stay stable. A
// positive override caps the pool instead, queuing jobs beyond it.
func PoolSize(cores, files, override int) int {
	if override > 0 {
		if override > 50 {
			override = 50
		}
		return override
	}

	workers := cores
	if files > workers {
		workers = files
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}
