// Package fspath defines path representations and separator flavors shared across pathc.
package fspath

import (
	"path/filepath"
	"strings"
)

// Local is a machine-dependent path representation. It is the format expected by functions in the
// path/filepath module, and the format produced by buffers joining with FlavorOS.
type Local = string

// POSIX is a forward-slash delimited path representation. It is the format expected by functions in
// the path module.
type POSIX = string

// Flavor selects the separator used when joining path segments.
type Flavor int

//go:generate go run github.com/dmarkham/enumer -type=Flavor -trimprefix Flavor -transform snake
const (
	// FlavorOS joins with the separator of the platform the program runs on.
	FlavorOS Flavor = iota
	// FlavorSlash always joins with forward slashes.
	FlavorSlash
	// FlavorBackslash always joins with backslashes, with Windows volume and UNC semantics.
	FlavorBackslash
)

// Separator returns the joining character of the flavor.
func (f Flavor) Separator() byte {
	switch f {
	case FlavorSlash:
		return '/'
	case FlavorBackslash:
		return '\\'
	default:
		return filepath.Separator
	}
}

// IsAbs returns true iff the segment is an absolute-path marker for the flavor: a rooted path for
// slash-separated flavors, and additionally a drive prefix (`C:\`) or UNC prefix (`\\server`) for
// FlavorBackslash.
func (f Flavor) IsAbs(fpath Local) bool {
	if f.Separator() == '\\' {
		if strings.HasPrefix(fpath, "\\") || strings.HasPrefix(fpath, "/") {
			return true
		}
		return len(fpath) >= 3 && isDriveLetter(fpath[0]) && fpath[1] == ':' && isSeparatorByte(fpath[2])
	}
	return strings.HasPrefix(fpath, "/")
}

// EndsInSeparator returns true iff the path already terminates with a separator the flavor
// recognizes, such as the root markers `/` and `C:\`.
func (f Flavor) EndsInSeparator(fpath Local) bool {
	if fpath == "" {
		return false
	}
	last := fpath[len(fpath)-1]
	if f.Separator() == '\\' {
		return isSeparatorByte(last)
	}
	return last == '/'
}

func isDriveLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isSeparatorByte(c byte) bool {
	return c == '/' || c == '\\'
}
