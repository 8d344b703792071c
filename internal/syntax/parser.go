package syntax

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrSyntax is wrapped by all errors returned for malformed expressions.
var ErrSyntax = errors.New("invalid path expression")

// Parse compiles an expression into its ordered segments. Separators are `/` and `,`, which may be
// mixed; doubled or leading separators are skipped. An expression with no segments is an error, as
// are two segments with no separator between them.
func Parse(expr string) ([]Segment, error) {
	p := &parser{input: expr}
	return p.run()
}

type parser struct {
	input string
	pos   int
	segs  []Segment
	// sealed is set once a segment completes, and cleared by the next separator. It rejects
	// adjacent segments such as `a "b"`.
	sealed bool
}

func (p *parser) run() ([]Segment, error) {
	for {
		p.skipSpaces()
		if p.pos >= len(p.input) {
			break
		}
		var err error
		switch c := p.input[p.pos]; {
		case c == '/' || c == ',':
			p.pos++
			p.sealed = false
		case c == '"':
			err = p.scanString()
		case c == '{':
			err = p.scanVar()
		case isIdentStart(c):
			err = p.scanIdent()
		default:
			err = p.errorf("unexpected character %q at offset %d", c, p.pos)
		}
		if err != nil {
			return nil, err
		}
	}
	if len(p.segs) == 0 {
		return nil, p.errorf("empty expression")
	}
	return p.segs, nil
}

func (p *parser) skipSpaces() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

func (p *parser) seal(seg Segment) error {
	if p.sealed {
		return p.errorf("missing separator before %q at offset %d", seg.Text, p.pos)
	}
	p.segs = append(p.segs, seg)
	p.sealed = true
	return nil
}

// scanString consumes a double-quoted literal, honoring Go escape sequences.
func (p *parser) scanString() error {
	start := p.pos
	i := p.pos + 1
	for i < len(p.input) {
		switch p.input[i] {
		case '\\':
			i += 2
		case '"':
			lit := p.input[start : i+1]
			text, err := strconv.Unquote(lit)
			if err != nil {
				return p.errorf("bad string literal %s", lit)
			}
			p.pos = i + 1
			return p.seal(Segment{Kind: KindQuoted, Text: text})
		default:
			i++
		}
	}
	return p.errorf("unterminated string literal at offset %d", start)
}

// scanVar consumes a `{name}` interpolation.
func (p *parser) scanVar() error {
	rest := p.input[p.pos:]
	end := strings.IndexByte(rest, '}')
	if end < 0 {
		return p.errorf("unterminated interpolation at offset %d", p.pos)
	}
	name := strings.TrimSpace(rest[1:end])
	if !isIdentName(name) {
		return p.errorf("invalid interpolation {%s} at offset %d", name, p.pos)
	}
	p.pos += end + 1
	return p.seal(Segment{Kind: KindVar, Text: name})
}

// scanIdent consumes a bare identifier or a dotted chain such as `backup.tar.gz`, which counts as
// a single segment.
func (p *parser) scanIdent() error {
	start := p.pos
	i := p.pos
loop:
	for i < len(p.input) {
		switch c := p.input[i]; {
		case isIdentByte(c):
			i++
		case c == '.':
			if i+1 >= len(p.input) || !isIdentByte(p.input[i+1]) {
				return p.errorf("dangling dot in segment at offset %d", i)
			}
			i += 2
		default:
			break loop
		}
	}
	p.pos = i
	return p.seal(Segment{Kind: KindIdent, Text: p.input[start:i]})
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrSyntax, fmt.Sprintf(format, args...))
}

func isIdentStart(c byte) bool {
	return c == '_' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isIdentByte(c byte) bool {
	return isIdentStart(c) || '0' <= c && c <= '9'
}

// isIdentName reports whether the name is a valid variable reference.
func isIdentName(name string) bool {
	if name == "" || !isIdentStart(name[0]) {
		return false
	}
	for i := 1; i < len(name); i++ {
		if !isIdentByte(name[i]) {
			return false
		}
	}
	return true
}
