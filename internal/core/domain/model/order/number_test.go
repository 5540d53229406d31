package order_test

import (
	"regexp"
	"testing"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderNumber(t *testing.T) {
	pattern := regexp.MustCompile(`^[A-Z0-9]{10}$`)
	seen := make(map[string]struct{})

	for range 200 {
		number, err := order.NewOrderNumber()

		require.NoError(t, err)
		assert.Regexp(t, pattern, number)
		require.NoError(t, order.ValidateOrderNumber(number))
		seen[number] = struct{}{}
	}
	assert.Greater(t, len(seen), 190)
}

func TestValidateOrderNumber(t *testing.T) {
	require.Error(t, order.ValidateOrderNumber(""))
	require.Error(t, order.ValidateOrderNumber("ABC"))
	require.Error(t, order.ValidateOrderNumber("abcdefghij"))
	require.Error(t, order.ValidateOrderNumber("ABCDE-GHIJ"))
	require.NoError(t, order.ValidateOrderNumber("ABCDE12345"))
}
