package kernel_test

import (
	"testing"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/kernel"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewActor(t *testing.T) {
	t.Run("should create owner actor", func(t *testing.T) {
		a, err := kernel.NewActor(kernel.Owner, 7)

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.True(t, a.Is(kernel.Owner))
		assert.Equal(t, int64(7), a.ID())
		assert.Equal(t, "owner:7", a.String())
	})

	t.Run("should require positive id", func(t *testing.T) {
		_, err := kernel.NewActor(kernel.DeliveryPartner, 0)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject unknown role", func(t *testing.T) {
		_, err := kernel.NewActor(kernel.UnknownRole, 1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("system actor carries no id", func(t *testing.T) {
		a, err := kernel.NewActor(kernel.System, 99)

		require.NoError(t, err)
		assert.Equal(t, kernel.SystemActor(), a)
		assert.Equal(t, "system", a.String())
	})

	t.Run("zero value actor is invalid", func(t *testing.T) {
		var a kernel.Actor

		require.Error(t, a.Validate())
	})
}

func TestParseRole(t *testing.T) {
	for _, role := range []kernel.Role{kernel.Owner, kernel.Customer, kernel.DeliveryPartner, kernel.System} {
		parsed, err := kernel.ParseRole(role.String())

		require.NoError(t, err)
		assert.Equal(t, role, parsed)
	}

	_, err := kernel.ParseRole("unknown")
	require.Error(t, err)
}
