package gen

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/go-cmp/cmp"

	"github.com/YuniqueUnic/pathc/internal/fspath"
)

// Generate runs the full pipeline: read the manifest at fp, scan sources, render, and write the
// generated files next to the manifest.
func Generate(fp fspath.Local) error {
	m, files, err := pipeline(fp)
	if err != nil {
		return err
	}
	for _, file := range files {
		target := filepath.Join(m.Dir, file.Name)
		if err := os.WriteFile(target, []byte(file.Contents), 0644); err != nil {
			return err
		}
		slog.Info("Wrote generated file.", slog.String("path", target))
	}
	return nil
}

// Check re-renders the manifest's files and diffs them against what is on disk, returning one
// human-readable mismatch per missing or out-of-date file.
func Check(fp fspath.Local) ([]string, error) {
	m, files, err := pipeline(fp)
	if err != nil {
		return nil, err
	}
	var mismatches []string
	for _, file := range files {
		target := filepath.Join(m.Dir, file.Name)
		data, err := os.ReadFile(target)
		if errors.Is(err, fs.ErrNotExist) {
			mismatches = append(mismatches, fmt.Sprintf("%s: missing, run pathc gen", file.Name))
			continue
		}
		if err != nil {
			return nil, err
		}
		if diff := cmp.Diff(file.Contents, string(data)); diff != "" {
			mismatches = append(mismatches, fmt.Sprintf("%s: stale (-want +got):\n%s", file.Name, diff))
		}
	}
	return mismatches, nil
}

func pipeline(fp fspath.Local) (*Manifest, []File, error) {
	m, err := ReadManifest(fp)
	if err != nil {
		return nil, nil, err
	}
	consts, err := Scan(m)
	if err != nil {
		return nil, nil, err
	}
	files, err := Render(m, consts)
	if err != nil {
		return nil, nil, err
	}
	return m, files, nil
}
