package domain

import "time"

// Result is the outcome of converting a single input file. Exactly one
// Result is produced per discovered file, success or failure.
type Result struct {
	Source  string // base name of the input file
	OK      bool
	ErrMsg  string // non-empty iff OK is false
	Elapsed time.Duration
}

// Success builds a successful result for a source file.
func Success(source string, elapsed time.Duration) Result {
	return Result{Source: source, OK: true, Elapsed: elapsed}
}

// Failure builds a failed result carrying an error message.
func Failure(source, errMsg string, elapsed time.Duration) Result {
	if errMsg == "" {
		errMsg = "unknown error"
	}
	return Result{Source: source, ErrMsg: errMsg, Elapsed: elapsed}
}

// Summary aggregates the results of a whole batch run.
type Summary struct {
	Succeeded int
	Failed    int
	Total     time.Duration // wall time for the whole run

	// Timing stats over successful results only. Valid when Succeeded > 0.
	Avg         time.Duration
	Fastest     time.Duration
	FastestName string
	Slowest     time.Duration
	SlowestName string

	Failures []Result
}

// Summarize computes the batch summary from per-file results and the
// overall wall time. Fastest/slowest ties are broken by source name,
// matching min/max over (elapsed, name) pairs.
func Summarize(results []Result, total time.Duration) Summary {
	s := Summary{Total: total}

	var sum time.Duration
	for _, r := range results {
		if !r.OK {
			s.Failed++
			s.Failures = append(s.Failures, r)
			continue
		}

		s.Succeeded++
		sum += r.Elapsed

		if s.Succeeded == 1 {
			s.Fastest, s.FastestName = r.Elapsed, r.Source
			s.Slowest, s.SlowestName = r.Elapsed, r.Source
			continue
		}
		if r.Elapsed < s.Fastest || (r.Elapsed == s.Fastest && r.Source < s.FastestName) {
			s.Fastest, s.FastestName = r.Elapsed, r.Source
		}
		if r.Elapsed > s.Slowest || (r.Elapsed == s.Slowest && r.Source > s.SlowestName) {
			s.Slowest, s.SlowestName = r.Elapsed, r.Source
		}
	}

	if s.Succeeded > 0 {
		s.Avg = sum / time.Duration(s.Succeeded)
	}
	return s
}
