// Package pathc joins textual path segments into platform-correct paths.
//
// Expressions list segments separated by `/` or `,`, which may be bare identifiers, dotted names,
// quoted literals, or {name} interpolations:
//
//	p := pathc.MustJoin(`vendor / dll / windivert.c`, nil)
//	q := pathc.MustJoin(`"my folder" , {base} , file.txt`, pathc.Vars{"base": dir})
//
// Join resolves everything immediately; Build returns the intermediate Buffer for further pushes.
// Constant paths are compiled ahead of time by the pathc command instead, which emits plain string
// constants suitable for further constant concatenation.
package pathc

import (
	"github.com/YuniqueUnic/pathc/internal/except"
	"github.com/YuniqueUnic/pathc/internal/fspath"
	"github.com/YuniqueUnic/pathc/internal/syntax"
)

// Flavor selects the separator segments are joined with.
type Flavor = fspath.Flavor

const (
	// FlavorOS joins with the separator of the platform the program runs on.
	FlavorOS = fspath.FlavorOS
	// FlavorSlash always joins with forward slashes.
	FlavorSlash = fspath.FlavorSlash
	// FlavorBackslash always joins with backslashes, with Windows volume and UNC semantics.
	FlavorBackslash = fspath.FlavorBackslash
)

var (
	// ErrSyntax is wrapped by all errors returned for malformed expressions.
	ErrSyntax = syntax.ErrSyntax
	// ErrUnknownVar is wrapped when an expression references a variable missing from Vars.
	ErrUnknownVar = syntax.ErrUnknownVar
)

// Vars holds interpolation values by name. Values may be strings, fmt.Stringer implementations, or
// func() string thunks, which are invoked exactly once, in left-to-right segment order; anything
// else is formatted with fmt.Sprint.
type Vars map[string]any

// Join parses the expression, resolves interpolations against vars, and joins the segments with
// the host platform separator.
func Join(expr string, vars Vars) (fspath.Local, error) {
	buf, err := Build(expr, vars)
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// MustJoin is Join for expressions known good at authoring time. It panics on error.
func MustJoin(expr string, vars Vars) fspath.Local {
	fp, err := Join(expr, vars)
	except.Must(err == nil, "bad path expression %q: %v", expr, err)
	return fp
}

// Build parses the expression and returns the owned path buffer holding its segments, ready for
// further pushes.
func Build(expr string, vars Vars) (*Buffer, error) {
	buf := NewBuffer(FlavorOS)
	if err := buf.PushExpr(expr, vars); err != nil {
		return nil, err
	}
	return buf, nil
}
