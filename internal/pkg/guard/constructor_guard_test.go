package guard_test

import (
	"errors"
	"testing"

	"github.com/thtta/farmlend/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed guard passes", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		require.NoError(t, g.Validate(errors.New("should not be returned")))
	})

	t.Run("zero value fails with provided error", func(t *testing.T) {
		var g guard.ConstructorGuard
		errNotConstructed := errors.New("command must be created via its constructor")
		assert.Equal(t, errNotConstructed, g.Validate(errNotConstructed))
	})

	t.Run("zero value falls back to default error", func(t *testing.T) {
		var g guard.ConstructorGuard
		assert.Equal(t, guard.ErrDefaultConstructorGuard, g.Validate(nil))
	})
}
