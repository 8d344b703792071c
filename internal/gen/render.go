package gen

import (
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"strconv"
	"strings"

	pathc "github.com/YuniqueUnic/pathc"
	"github.com/YuniqueUnic/pathc/internal/fspath"
	"github.com/YuniqueUnic/pathc/internal/syntax"
)

// File is one generated source file, named relative to the manifest directory.
type File struct {
	Name     fspath.Local
	Contents string
}

const header = "// Code generated by pathc. DO NOT EDIT."

var (
	errBadConstName   = errors.New("bad constant name")
	errDuplicateConst = errors.New("duplicate constant name")
)

// Render compiles the constants into the manifest's generated files. The os flavor yields one
// build-tagged file per platform family, so each compilation target sees its own separator.
func Render(m *Manifest, consts []Const) ([]File, error) {
	if len(consts) == 0 {
		return nil, fmt.Errorf("%w: no constants to generate", ErrInvalidManifest)
	}
	if err := checkNames(consts); err != nil {
		return nil, err
	}
	if flavor := m.Flavor(); flavor != fspath.FlavorOS {
		contents, err := renderFile(m.Package, consts, flavor, "")
		if err != nil {
			return nil, err
		}
		return []File{{Name: m.Output + ".go", Contents: contents}}, nil
	}
	unix, err := renderFile(m.Package, consts, fspath.FlavorSlash, "//go:build !windows")
	if err != nil {
		return nil, err
	}
	windows, err := renderFile(m.Package, consts, fspath.FlavorBackslash, "//go:build windows")
	if err != nil {
		return nil, err
	}
	return []File{
		{Name: m.Output + "_unix.go", Contents: unix},
		{Name: m.Output + "_windows.go", Contents: windows},
	}, nil
}

func renderFile(pkg string, consts []Const, flavor fspath.Flavor, constraint string) (string, error) {
	var sb strings.Builder
	sb.WriteString(header + "\n")
	if constraint != "" {
		sb.WriteString("\n" + constraint + "\n")
	}
	sb.WriteString("\npackage " + pkg + "\n\nconst (\n")
	for _, cst := range consts {
		fp, err := compile(cst.Path, flavor)
		if err != nil {
			return "", fmt.Errorf("constant %s: %w", cst.Name, err)
		}
		fmt.Fprintf(&sb, "\t%s = %s\n", cst.Name, strconv.Quote(fp))
	}
	sb.WriteString(")\n")

	formatted, err := format.Source([]byte(sb.String()))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	return string(formatted), nil
}

// compile joins one expression with buffer semantics, so generated constants match what Join
// produces at run time for the same flavor. Interpolation is rejected: constants have no bind
// step.
func compile(expr string, flavor fspath.Flavor) (fspath.Local, error) {
	segs, err := syntax.Parse(expr)
	if err != nil {
		return "", err
	}
	texts, err := syntax.Render(segs)
	if err != nil {
		return "", err
	}
	buf := pathc.NewBuffer(flavor)
	for _, text := range texts {
		buf.Push(text)
	}
	return buf.String(), nil
}

func checkNames(consts []Const) error {
	seen := make(map[string]struct{}, len(consts))
	for _, cst := range consts {
		if !token.IsIdentifier(cst.Name) {
			return fmt.Errorf("%w: %q", errBadConstName, cst.Name)
		}
		if _, ok := seen[cst.Name]; ok {
			return fmt.Errorf("%w: %s", errDuplicateConst, cst.Name)
		}
		seen[cst.Name] = struct{}{}
	}
	return nil
}
