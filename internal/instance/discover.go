package instance

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/andromedak2/cevrp/internal/model"
)

// Discover lists instance files (by extension) under dir, sorted by name,
// for the CLI's interactive selection mode (spec.md §6 "interactive
// selection").
func Discover(dir string, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if ext != "" && filepath.Ext(e.Name()) != ext {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// Load opens path and parses it as an instance file.
func Load(path string) (*model.Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}
