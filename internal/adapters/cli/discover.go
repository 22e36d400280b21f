package cli

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// Discover lists the files in dir whose extension matches ext
// (case-insensitive), sorted for deterministic submission order.
// It does not recurse.
func Discover(fsys afero.Fs, dir, ext string) ([]string, error) {
	entries, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ext) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}

	sort.Strings(files)
	return files, nil
}

// placeholderFiles synthesizes input names for a dry run over an empty
// directory, so the progress display has something to demonstrate.
func placeholderFiles(dir, ext string) []string {
	files := make([]string, 0, 5)
	for i := 1; i <= 5; i++ {
		files = append(files, filepath.Join(dir, fmt.Sprintf("sample_video_%d%s", i, ext)))
	}
	return files
}
