package syntax

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownVar is wrapped when an interpolation references a name absent from the bound
	// variables.
	ErrUnknownVar = errors.New("unknown variable")
	// ErrConstExpr is wrapped when an interpolation appears in a constant path expression.
	ErrConstExpr = errors.New("interpolation not allowed in constant path")
)

// Bind resolves segments to their final text, in left-to-right order. Interpolated func values are
// invoked exactly once, when their segment is reached.
func Bind(segs []Segment, vars map[string]any) ([]string, error) {
	texts := make([]string, 0, len(segs))
	for _, seg := range segs {
		text := seg.Text
		if seg.Kind == KindVar {
			val, ok := vars[seg.Text]
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrUnknownVar, seg.Text)
			}
			text = renderValue(val)
		}
		texts = append(texts, text)
	}
	return texts, nil
}

// Render is the constant-variant binding: identifiers and literals only.
func Render(segs []Segment) ([]string, error) {
	texts := make([]string, 0, len(segs))
	for _, seg := range segs {
		if seg.Kind == KindVar {
			return nil, fmt.Errorf("%w: {%s}", ErrConstExpr, seg.Text)
		}
		texts = append(texts, seg.Text)
	}
	return texts, nil
}

func renderValue(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case func() string:
		return v()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
