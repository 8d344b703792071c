// Package syntax implements the path segment expression grammar.
//
// Concepts:
//
// * Expression => ordered list of segments separated by `/` or `,`
// * Segment => identifier, dotted chain, quoted literal, or {variable} interpolation
// * Binding => resolving interpolations against caller-supplied values
//
// Operations:
//
// * Parse an expression into segments
// * Bind segments to their final text (runtime variant)
// * Render segments without interpolation (constant variant)
package syntax

// Kind classifies the syntactic form of a parsed segment.
type Kind int

//go:generate go run github.com/dmarkham/enumer -type=Kind -trimprefix Kind -transform snake
const (
	// Bare or dotted identifier, rendered as its literal text.
	KindIdent Kind = iota
	// Quoted string literal, rendered after unquoting.
	KindQuoted
	// {name} interpolation, resolved at bind time.
	KindVar
)

// Segment is one atomic unit of a path between separators.
type Segment struct {
	Kind Kind
	// Text is the rendered text of ident and string segments, and the variable name of var
	// segments.
	Text string
}
