package fspath

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlavorSeparator(t *testing.T) {
	assert.Equal(t, byte('/'), FlavorSlash.Separator())
	assert.Equal(t, byte('\\'), FlavorBackslash.Separator())
	assert.Equal(t, byte(filepath.Separator), FlavorOS.Separator())
}

func TestFlavorIsAbs(t *testing.T) {
	for _, tc := range []struct {
		flavor Flavor
		fpath  string
		want   bool
	}{
		{FlavorSlash, "/", true},
		{FlavorSlash, "/etc", true},
		{FlavorSlash, "etc", false},
		{FlavorSlash, "C:\\", false},
		{FlavorBackslash, "\\\\server", true},
		{FlavorBackslash, "\\rooted", true},
		{FlavorBackslash, "/rooted", true},
		{FlavorBackslash, "C:\\", true},
		{FlavorBackslash, "c:/", true},
		{FlavorBackslash, "C:", false},
		{FlavorBackslash, "vendor", false},
		{FlavorBackslash, "1:\\", false},
	} {
		t.Run(tc.flavor.String()+" "+tc.fpath, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.flavor.IsAbs(tc.fpath))
		})
	}
}

func TestFlavorEndsInSeparator(t *testing.T) {
	assert.True(t, FlavorSlash.EndsInSeparator("/"))
	assert.True(t, FlavorSlash.EndsInSeparator("a/"))
	assert.False(t, FlavorSlash.EndsInSeparator(""))
	assert.False(t, FlavorSlash.EndsInSeparator("a"))
	assert.False(t, FlavorSlash.EndsInSeparator("C:\\"))
	assert.True(t, FlavorBackslash.EndsInSeparator("C:\\"))
	assert.True(t, FlavorBackslash.EndsInSeparator("C:/"))
}

func TestFlavorString(t *testing.T) {
	for _, flavor := range FlavorValues() {
		got, err := FlavorString(flavor.String())
		require.NoError(t, err)
		assert.Equal(t, flavor, got)
	}
	_, err := FlavorString("tab")
	require.Error(t, err)
}
