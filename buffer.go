package pathc

import (
	"github.com/YuniqueUnic/pathc/internal/fspath"
	"github.com/YuniqueUnic/pathc/internal/syntax"
)

// Buffer is an owned, growable path assembled one segment at a time. The zero value joins with the
// host platform separator.
type Buffer struct {
	flavor fspath.Flavor
	path   fspath.Local
}

// NewBuffer returns an empty buffer joining with the flavor's separator.
func NewBuffer(flavor Flavor) *Buffer {
	return &Buffer{flavor: flavor}
}

// Push appends one segment. Empty segments are skipped. Pushing an absolute segment resets the
// buffer to it, and no separator is inserted after a segment that already ends in one, so root
// markers such as `/` and `C:\` join cleanly.
func (b *Buffer) Push(seg string) {
	if seg == "" {
		return
	}
	if b.path == "" || b.flavor.IsAbs(seg) {
		b.path = seg
		return
	}
	if !b.flavor.EndsInSeparator(b.path) {
		b.path += string(b.flavor.Separator())
	}
	b.path += seg
}

// PushExpr parses the expression, resolves interpolations against vars, and pushes every segment
// in order.
func (b *Buffer) PushExpr(expr string, vars Vars) error {
	segs, err := syntax.Parse(expr)
	if err != nil {
		return err
	}
	texts, err := syntax.Bind(segs, vars)
	if err != nil {
		return err
	}
	for _, text := range texts {
		b.Push(text)
	}
	return nil
}

// String returns the joined path.
func (b *Buffer) String() fspath.Local {
	return b.path
}

// Len returns the length of the joined path in bytes.
func (b *Buffer) Len() int {
	return len(b.path)
}

// Reset empties the buffer, keeping its flavor.
func (b *Buffer) Reset() {
	b.path = ""
}
