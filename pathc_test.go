package pathc

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sep joins the pieces with the host separator, mirroring what FlavorOS should produce.
func sep(pieces ...string) string {
	return strings.Join(pieces, string(filepath.Separator))
}

func TestJoin(t *testing.T) {
	t.Run("identifiers", func(t *testing.T) {
		got, err := Join("vendor / include", nil)
		require.NoError(t, err)
		assert.Equal(t, sep("vendor", "include"), got)
	})

	t.Run("dotted identifiers stay single segments", func(t *testing.T) {
		got, err := Join("vendor, dll, windivert.c", nil)
		require.NoError(t, err)
		assert.Equal(t, sep("vendor", "dll", "windivert.c"), got)
	})

	t.Run("quoted literals", func(t *testing.T) {
		got, err := Join(`"my folder" / "sub folder" / file.txt`, nil)
		require.NoError(t, err)
		assert.Equal(t, sep("my folder", "sub folder", "file.txt"), got)
	})

	t.Run("interpolation", func(t *testing.T) {
		got, err := Join("{base} / dll / file.txt", Vars{"base": "vendor"})
		require.NoError(t, err)
		assert.Equal(t, sep("vendor", "dll", "file.txt"), got)
	})

	t.Run("functions evaluate once left to right", func(t *testing.T) {
		var calls int
		got, err := Join("{a} / {b}", Vars{
			"a": func() string { calls++; return "first" },
			"b": func() string { calls++; assert.Equal(t, 2, calls); return "second" },
		})
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
		assert.Equal(t, sep("first", "second"), got)
	})

	t.Run("unknown variable", func(t *testing.T) {
		got, err := Join("{base} / dll", Vars{"other": "x"})
		assert.Empty(t, got)
		require.ErrorIs(t, err, ErrUnknownVar)
	})

	t.Run("syntax error", func(t *testing.T) {
		got, err := Join("", nil)
		assert.Empty(t, got)
		require.ErrorIs(t, err, ErrSyntax)
	})
}

func TestJoin_AbsoluteMarker(t *testing.T) {
	if filepath.Separator != '/' {
		t.Skip("POSIX root marker")
	}
	got, err := Join(`"/" , test , data , windivert.c`, nil)
	require.NoError(t, err)
	assert.Equal(t, "/test/data/windivert.c", got)
	assert.False(t, strings.HasPrefix(got, "//"))
}

func TestMustJoin(t *testing.T) {
	assert.Equal(t, sep("config", "app.toml"), MustJoin("config / app.toml", nil))
	require.Panics(t, func() {
		MustJoin("a *", nil)
	})
}

func TestBuild(t *testing.T) {
	buf, err := Build("vendor / dll", nil)
	require.NoError(t, err)
	buf.Push("windivert.def")
	assert.Equal(t, sep("vendor", "dll", "windivert.def"), buf.String())
}
