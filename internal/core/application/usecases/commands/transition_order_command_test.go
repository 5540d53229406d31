package commands_test

import (
	"testing"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/application/usecases/commands"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/kernel"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/order"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransitionOrderCommand(t *testing.T) {
	owner := mustActor(t, kernel.Owner, 1)

	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewTransitionOrderCommand(42, order.Ready, owner, "ignored")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, int64(42), cmd.OrderID())
		assert.Equal(t, order.Ready, cmd.Target())
		assert.Empty(t, cmd.RejectionReason())
	})

	t.Run("rejection keeps trimmed reason", func(t *testing.T) {
		cmd, err := commands.NewTransitionOrderCommand(42, order.Rejected, owner, "  closed early ")

		require.NoError(t, err)
		assert.Equal(t, "closed early", cmd.RejectionReason())
	})

	t.Run("rejection without reason", func(t *testing.T) {
		for _, reason := range []string{"", "   "} {
			_, err := commands.NewTransitionOrderCommand(42, order.Rejected, owner, reason)

			require.ErrorIs(t, err, errs.ErrValueIsRequired)
			assert.Contains(t, err.Error(), "rejection_reason")
		}
	})

	t.Run("invalid input", func(t *testing.T) {
		_, err := commands.NewTransitionOrderCommand(0, order.Unknown, kernel.Actor{}, "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "order_id")
		assert.Contains(t, err.Error(), "status")
		assert.Contains(t, err.Error(), "role")
	})

	t.Run("new is not a target", func(t *testing.T) {
		_, err := commands.NewTransitionOrderCommand(42, order.New, owner, "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var cmd commands.TransitionOrderCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrTransitionOrderCommandIsNotConstructed)
	})
}
