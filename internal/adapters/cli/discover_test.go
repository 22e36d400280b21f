package cli

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

func seedFs(t *testing.T, names ...string) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	for _, name := range names {
		if err := afero.WriteFile(fsys, name, []byte("x"), 0644); err != nil {
			t.Fatalf("seed %s: %v", name, err)
		}
	}
	return fsys
}

func TestDiscoverMatchesExtension(t *testing.T) {
	fsys := seedFs(t,
		"work/b.mp4",
		"work/a.mp4",
		"work/notes.txt",
		"work/song.m4a",
		"work/nested/c.mp4", // not discovered: no recursion
	)

	files, err := Discover(fsys, "work", ".mp4")
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	want := []string{filepath.Join("work", "a.mp4"), filepath.Join("work", "b.mp4")}
	if len(files) != len(want) {
		t.Fatalf("files = %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("files[%d] = %q, want %q (sorted order)", i, files[i], want[i])
		}
	}
}

func TestDiscoverCaseInsensitive(t *testing.T) {
	fsys := seedFs(t, "d/CLIP.MP4", "d/other.Mp4")

	files, err := Discover(fsys, "d", ".mp4")
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(files) != 2 {
		t.Errorf("files = %v, want both case variants", files)
	}
}

func TestDiscoverEmptyDir(t *testing.T) {
	fsys := afero.NewMemMapFs()
	if err := fsys.MkdirAll("empty", 0755); err != nil {
		t.Fatal(err)
	}

	files, err := Discover(fsys, "empty", ".mp4")
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(files) != 0 {
		t.Errorf("files = %v, want none", files)
	}
}

func TestDiscoverMissingDir(t *testing.T) {
	fsys := afero.NewMemMapFs()

	if _, err := Discover(fsys, "nope", ".mp4"); err == nil {
		t.Error("Discover() on a missing directory should error")
	}
}

func TestPlaceholderFiles(t *testing.T) {
	files := placeholderFiles(".", ".mp4")

	if len(files) != 5 {
		t.Fatalf("placeholders = %d, want 5", len(files))
	}
	if filepath.Base(files[0]) != "sample_video_1.mp4" {
		t.Errorf("first placeholder = %q, want sample_video_1.mp4", files[0])
	}
}
