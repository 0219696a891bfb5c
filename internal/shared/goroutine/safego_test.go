package goroutine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/travelease/callcenter/internal/shared/logger"
)

func TestGo(t *testing.T) {
	log := logger.NewNopLogger()

	t.Run("success closes without error", func(t *testing.T) {
		err, ok := <-Go(log, "ok", func() error { return nil })
		assert.False(t, ok)
		assert.NoError(t, err)
	})

	t.Run("error is delivered", func(t *testing.T) {
		boom := errors.New("boom")
		assert.ErrorIs(t, <-Go(log, "fail", func() error { return boom }), boom)
	})

	t.Run("panic becomes an error", func(t *testing.T) {
		err := <-Go(log, "worker", func() error { panic("bad state") })
		assert.EqualError(t, err, "worker panicked: bad state")
	})
}
