package gen

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gobwas/glob"

	"github.com/YuniqueUnic/pathc/internal/except"
	"github.com/YuniqueUnic/pathc/internal/fspath"
)

// directivePrefix marks constant definitions embedded in scanned sources, in the form
// `//pathc:const Name = expression`.
const directivePrefix = "//pathc:const"

var errInvalidDirective = errors.New("invalid directive")

// fileSystem is swapped out for testing.
var fileSystem = os.DirFS("/")

// Scan returns the manifest's inline constants followed by directive constants gathered from
// sources matching its glob patterns, ordered by file path then line.
func Scan(m *Manifest) ([]Const, error) {
	consts := slices.Clone(m.Consts)
	if len(m.Sources) == 0 {
		return consts, nil
	}
	slog.Debug("Scanning sources...", slog.String("dir", m.Dir))

	globs := make([]glob.Glob, len(m.Sources))
	for i, pattern := range m.Sources {
		compiled, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("%w: bad source pattern %q: %v", ErrInvalidManifest, pattern, err)
		}
		globs[i] = compiled
	}

	root := unabs(m.Dir)
	var found int
	if err := fs.WalkDir(fileSystem, root, func(fpath fspath.POSIX, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		rel := strings.TrimPrefix(fpath, root+"/")
		if !slices.ContainsFunc(globs, func(g glob.Glob) bool { return g.Match(rel) }) {
			return nil
		}
		scanned, err := scanFile(fpath, rel)
		if err != nil {
			return err
		}
		found += len(scanned)
		consts = append(consts, scanned...)
		return nil
	}); err != nil {
		return nil, err
	}

	slog.Info(fmt.Sprintf("Found %v directive constant(s).", found))
	return consts, nil
}

func scanFile(fpath, rel fspath.POSIX) ([]Const, error) {
	data, err := fs.ReadFile(fileSystem, fpath)
	if err != nil {
		return nil, err
	}
	var consts []Const
	for i, line := range strings.Split(string(data), "\n") {
		cst, ok, err := parseDirective(line)
		if err != nil {
			return nil, fmt.Errorf("%w (%s:%d)", err, rel, i+1)
		}
		if ok {
			consts = append(consts, cst)
		}
	}
	return consts, nil
}

func parseDirective(line string) (Const, bool, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(line), directivePrefix)
	if !ok || rest == "" || (rest[0] != ' ' && rest[0] != '\t') {
		return Const{}, false, nil
	}
	name, expr, found := strings.Cut(rest, "=")
	if !found {
		return Const{}, false, fmt.Errorf("%w: missing =", errInvalidDirective)
	}
	cst := Const{Name: strings.TrimSpace(name), Path: strings.TrimSpace(expr)}
	if cst.Name == "" || cst.Path == "" {
		return Const{}, false, fmt.Errorf("%w: empty name or expression", errInvalidDirective)
	}
	return cst, true, nil
}

func unabs(fpath fspath.Local) fspath.POSIX {
	absPath, err := filepath.Abs(fpath)
	except.Must(err == nil, "can't make path %v absolute: %v", fpath, err)
	return filepath.ToSlash(strings.TrimPrefix(absPath, string(filepath.Separator)))
}
