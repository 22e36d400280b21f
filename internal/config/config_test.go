package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Convert.InputExt != ".mp4" {
		t.Errorf("Default input ext = %s, want .mp4", cfg.Convert.InputExt)
	}
	if cfg.Convert.OutputExt != ".m4a" {
		t.Errorf("Default output ext = %s, want .m4a", cfg.Convert.OutputExt)
	}
	if cfg.Convert.Codec != "aac" {
		t.Errorf("Default codec = %s, want aac", cfg.Convert.Codec)
	}
	if cfg.Convert.Quality != "2" {
		t.Errorf("Default quality = %s, want 2", cfg.Convert.Quality)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() error = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"missing dot", func(c *Config) { c.Convert.InputExt = "mp4" }, true},
		{"empty output ext", func(c *Config) { c.Convert.OutputExt = "" }, true},
		{"same extensions", func(c *Config) { c.Convert.OutputExt = ".mp4" }, true},
		{"empty codec", func(c *Config) { c.Convert.Codec = "" }, true},
		{"negative concurrency", func(c *Config) { c.Defaults.Concurrency = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Save_Load(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	cfg := DefaultConfig()
	cfg.Convert.Codec = "libmp3lame"
	cfg.Convert.OutputExt = ".mp3"

	err := cfg.Save(configPath)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if loaded.Convert.Codec != "libmp3lame" {
		t.Errorf("Loaded codec = %s, want libmp3lame", loaded.Convert.Codec)
	}
	if loaded.Convert.OutputExt != ".mp3" {
		t.Errorf("Loaded output ext = %s, want .mp3", loaded.Convert.OutputExt)
	}
}

func TestLoad_Missing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() of missing file should return defaults, got error %v", err)
	}
	if cfg.Convert.InputExt != ".mp4" {
		t.Errorf("Missing config should yield defaults, got %+v", cfg)
	}
}

func TestAppDir(t *testing.T) {
	dir := AppDir()
	if dir == "" {
		t.Error("AppDir() returned empty string")
	}

	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".audiorip")
	if dir != expected {
		t.Errorf("AppDir() = %s, want %s", dir, expected)
	}
}
