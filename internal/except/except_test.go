package except

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMust(t *testing.T) {
	t.Run("no-op", func(t *testing.T) {
		Must(true, "ok")
	})

	t.Run("panic", func(t *testing.T) {
		require.Panics(t, func() {
			Must(false, "panic")
		})
	})
}

func TestRequire(t *testing.T) {
	t.Run("no-op", func(t *testing.T) {
		Require(nil)
	})

	t.Run("panic", func(t *testing.T) {
		require.Panics(t, func() {
			Require(errors.New("boom"))
		})
	})
}

func TestLogErrAttr(t *testing.T) {
	assert.Equal(t, slog.String("err", "boom"), LogErrAttr(errors.New("boom")))
	assert.Equal(t, slog.Group("err"), LogErrAttr(nil))
}
