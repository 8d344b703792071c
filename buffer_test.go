package pathc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferPush(t *testing.T) {
	for _, tc := range []struct {
		name   string
		flavor Flavor
		segs   []string
		want   string
	}{
		{
			name:   "relative",
			flavor: FlavorSlash,
			segs:   []string{"vendor", "dll", "windivert.c"},
			want:   "vendor/dll/windivert.c",
		},
		{
			name:   "root marker first",
			flavor: FlavorSlash,
			segs:   []string{"/", "test", "data", "windivert.c"},
			want:   "/test/data/windivert.c",
		},
		{
			name:   "absolute segment replaces",
			flavor: FlavorSlash,
			segs:   []string{"vendor", "/etc", "conf"},
			want:   "/etc/conf",
		},
		{
			name:   "empty segments skipped",
			flavor: FlavorSlash,
			segs:   []string{"", "a", "", "b"},
			want:   "a/b",
		},
		{
			name:   "spaces preserved",
			flavor: FlavorSlash,
			segs:   []string{"my folder", "sub folder", "file.txt"},
			want:   "my folder/sub folder/file.txt",
		},
		{
			name:   "drive letter",
			flavor: FlavorBackslash,
			segs:   []string{`C:\`, "Program Files", "Windivert", "driver.sys"},
			want:   `C:\Program Files\Windivert\driver.sys`,
		},
		{
			name:   "unc prefix",
			flavor: FlavorBackslash,
			segs:   []string{`\\server`, "share dir", "file.txt"},
			want:   `\\server\share dir\file.txt`,
		},
		{
			name:   "drive replaces",
			flavor: FlavorBackslash,
			segs:   []string{"vendor", `D:\`, "data"},
			want:   `D:\data`,
		},
		{
			name:   "drive is a plain segment for slashes",
			flavor: FlavorSlash,
			segs:   []string{"vendor", `C:\`, "data"},
			want:   `vendor/C:\/data`,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			buf := NewBuffer(tc.flavor)
			for _, seg := range tc.segs {
				buf.Push(seg)
			}
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestBufferPushExpr(t *testing.T) {
	t.Run("appends to existing contents", func(t *testing.T) {
		buf := NewBuffer(FlavorSlash)
		buf.Push("root")
		require.NoError(t, buf.PushExpr("sub / file.txt", nil))
		assert.Equal(t, "root/sub/file.txt", buf.String())
	})

	t.Run("untouched on bind error", func(t *testing.T) {
		buf := NewBuffer(FlavorSlash)
		buf.Push("root")
		require.ErrorIs(t, buf.PushExpr("a / {missing}", nil), ErrUnknownVar)
		assert.Equal(t, "root", buf.String())
	})
}

func TestBufferReset(t *testing.T) {
	buf := NewBuffer(FlavorSlash)
	buf.Push("a")
	assert.Equal(t, 1, buf.Len())
	buf.Reset()
	assert.Zero(t, buf.Len())
	buf.Push("b")
	assert.Equal(t, "b", buf.String())
}
