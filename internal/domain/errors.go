package domain

import "errors"

var (
	// Dependency errors
	ErrFFmpegNotFound = errors.New("ffmpeg not found")

	// Batch errors
	ErrConversionsFailed = errors.New("one or more conversions failed")
	ErrInterrupted       = errors.New("interrupted")
)
