//go:build unit

package errs_test

import (
	stderrors "errors"
	"testing"

	"stayfinder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkAndIs(t *testing.T) {
	sentinel := stderrors.New("sentinel")

	t.Run("marked error matches the sentinel", func(t *testing.T) {
		err := errs.Mark(errs.New("boom"), sentinel)

		assert.True(t, errs.Is(err, sentinel))
		// the mark is attached outside the Unwrap chain
		assert.False(t, stderrors.Is(err, sentinel))
	})

	t.Run("wrapping keeps the mark visible", func(t *testing.T) {
		err := errs.Wrap(errs.Mark(errs.New("boom"), sentinel), "context")
		assert.True(t, errs.Is(err, sentinel))
	})

	t.Run("plain sentinel matches itself", func(t *testing.T) {
		assert.True(t, errs.Is(sentinel, sentinel))
		assert.True(t, errs.Is(errs.Wrap(sentinel, "context"), sentinel))
	})

	t.Run("unrelated errors do not match", func(t *testing.T) {
		err := errs.Mark(errs.New("boom"), sentinel)
		assert.False(t, errs.Is(err, stderrors.New("other")))
	})

	t.Run("marking nil yields the sentinel itself", func(t *testing.T) {
		err := errs.Mark(nil, sentinel)
		require.Error(t, err)
		assert.True(t, errs.Is(err, sentinel))
	})
}
