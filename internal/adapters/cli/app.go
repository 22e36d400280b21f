package cli

import (
	"github.com/spf13/afero"

	"github.com/calvers/audiorip/internal/adapters/ffmpeg"
	"github.com/calvers/audiorip/internal/config"
	"github.com/calvers/audiorip/internal/ports"
)

// App holds all application dependencies
type App struct {
	Config *config.Config
	Fs     afero.Fs
	Prober ports.DurationProber
}

// NewApp creates and wires up all dependencies
func NewApp() (*App, error) {
	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &App{
		Config: cfg,
		Fs:     afero.NewOsFs(),
		Prober: ffmpeg.NewProber(),
	}, nil
}

var globalApp *App

// GetApp returns the global app instance, creating it if needed
func GetApp() (*App, error) {
	if globalApp == nil {
		app, err := NewApp()
		if err != nil {
			return nil, err
		}
		globalApp = app
	}
	return globalApp, nil
}
