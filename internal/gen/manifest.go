// Package gen compiles constant path expressions into generated Go source files. It is the
// build-time counterpart of the runtime pathc API: expressions come from a manifest and from
// //pathc:const directives in scanned sources, and come out as plain string constants which
// compose with Go's constant concatenation.
package gen

import (
	"errors"
	"fmt"
	"go/token"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/YuniqueUnic/pathc/internal/except"
	"github.com/YuniqueUnic/pathc/internal/fspath"
)

const defaultName = ".pathc.yaml"

var (
	// ErrMissingManifest is returned when no manifest file can be read.
	ErrMissingManifest = errors.New("missing manifest")
	// ErrInvalidManifest is returned when the manifest contents are unusable.
	ErrInvalidManifest = errors.New("invalid manifest")
)

// Manifest configures one generation run.
type Manifest struct {
	// Package is the package clause of generated files. Required.
	Package string `yaml:"package"`
	// Output is the base name of generated files, without the .go extension. Defaults to
	// "paths_gen".
	Output string `yaml:"output"`
	// Separator selects the joining flavor: os (the default), slash, or backslash. The os flavor
	// emits one build-tagged file per platform family.
	Separator string `yaml:"separator"`
	// Consts lists constants defined inline.
	Consts []Const `yaml:"consts"`
	// Sources lists glob patterns of files scanned for //pathc:const directives, relative to the
	// manifest directory.
	Sources []string `yaml:"sources"`

	// Dir is the directory the manifest was loaded from. Scans run and outputs are written
	// relative to it.
	Dir fspath.Local `yaml:"-"`
}

// Const is one named path constant.
type Const struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// ReadManifest loads and validates a manifest. Directory paths resolve to the default manifest
// name inside them.
func ReadManifest(fp fspath.Local) (*Manifest, error) {
	info, err := os.Stat(fp)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingManifest, err)
	}
	if info.IsDir() {
		fp = filepath.Join(fp, defaultName)
	}
	data, err := os.ReadFile(fp)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingManifest, err)
	}
	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	manifest.Dir = filepath.Dir(fp)
	if err := manifest.validate(); err != nil {
		return nil, err
	}
	return &manifest, nil
}

func (m *Manifest) validate() error {
	if m.Package == "" || !token.IsIdentifier(m.Package) {
		return fmt.Errorf("%w: bad package name %q", ErrInvalidManifest, m.Package)
	}
	if m.Output == "" {
		m.Output = "paths_gen"
	}
	if m.Separator == "" {
		m.Separator = fspath.FlavorOS.String()
	}
	if _, err := fspath.FlavorString(m.Separator); err != nil {
		return fmt.Errorf("%w: bad separator %q", ErrInvalidManifest, m.Separator)
	}
	if len(m.Consts) == 0 && len(m.Sources) == 0 {
		return fmt.Errorf("%w: no consts and no sources", ErrInvalidManifest)
	}
	return nil
}

// Flavor returns the manifest's separator flavor. The manifest must have been validated.
func (m *Manifest) Flavor() fspath.Flavor {
	flavor, err := fspath.FlavorString(m.Separator)
	except.Require(err)
	return flavor
}
