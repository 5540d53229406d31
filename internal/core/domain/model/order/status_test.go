package order_test

import (
	"encoding/json"
	"testing"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/order"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allStatuses() []order.Status {
	return []order.Status{
		order.New, order.Accepted, order.Preparing, order.Ready, order.PickedUp,
		order.Released, order.Delivered, order.Rejected, order.Cancelled,
	}
}

func TestStatus_String(t *testing.T) {
	expected := map[order.Status]string{
		order.New:       "new",
		order.Accepted:  "accepted",
		order.Preparing: "preparing",
		order.Ready:     "ready",
		order.PickedUp:  "picked_up",
		order.Released:  "released",
		order.Delivered: "delivered",
		order.Rejected:  "rejected",
		order.Cancelled: "cancelled",
		order.Unknown:   "unknown",
		order.Status(42): "unknown",
	}
	for status, name := range expected {
		assert.Equal(t, name, status.String())
	}
}

func TestParseStatus(t *testing.T) {
	for _, status := range allStatuses() {
		parsed, err := order.ParseStatus(status.String())

		require.NoError(t, err)
		assert.Equal(t, status, parsed)
	}

	_, err := order.ParseStatus("pickedup")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = order.ParseStatus("unknown")
	require.Error(t, err)
}

func TestStatus_Validate(t *testing.T) {
	for _, status := range allStatuses() {
		require.NoError(t, status.Validate())
	}
	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(10).Validate())
}

func TestStatus_CanTransitionTo(t *testing.T) {
	allowed := map[order.Status][]order.Status{
		order.New:       {order.Accepted, order.Rejected, order.Cancelled},
		order.Accepted:  {order.Preparing, order.Cancelled},
		order.Preparing: {order.Ready, order.Cancelled},
		order.Ready:     {order.Released, order.PickedUp, order.Cancelled},
		order.Released:  {order.PickedUp, order.Cancelled},
		order.PickedUp:  {order.Delivered, order.Cancelled},
	}

	for _, from := range allStatuses() {
		for _, to := range allStatuses() {
			err := from.CanTransitionTo(to)
			if contains(allowed[from], to) {
				assert.NoError(t, err, "%s -> %s should be allowed", from, to)
				continue
			}
			require.Error(t, err, "%s -> %s should be rejected", from, to)
			require.ErrorIs(t, err, errs.ErrInvalidTransition)
			assert.Contains(t, err.Error(), "current status is "+from.String())
		}
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	for _, status := range allStatuses() {
		terminal := status == order.Delivered || status == order.Rejected || status == order.Cancelled
		assert.Equal(t, terminal, status.IsTerminal(), status.String())
	}
}

func TestStatus_TransitionTo(t *testing.T) {
	next, err := order.Ready.TransitionTo(order.PickedUp)
	require.NoError(t, err)
	assert.Equal(t, order.PickedUp, next)

	next, err = order.Delivered.TransitionTo(order.Cancelled)
	require.Error(t, err)
	assert.Equal(t, order.Unknown, next)
	assert.EqualError(t, err, "invalid transition: cannot move order to cancelled: current status is delivered")
}

func TestStatus_JSON(t *testing.T) {
	raw, err := json.Marshal(map[string]order.Status{"status": order.PickedUp})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"picked_up"}`, string(raw))

	var decoded map[string]order.Status
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, order.PickedUp, decoded["status"])
}

func TestBucket(t *testing.T) {
	t.Run("should map buckets to statuses", func(t *testing.T) {
		assert.Equal(t, []order.Status{order.New}, order.BucketNew.Statuses())
		assert.ElementsMatch(t,
			[]order.Status{order.Accepted, order.Preparing, order.Ready, order.PickedUp, order.Released},
			order.BucketOngoing.Statuses())
		assert.ElementsMatch(t,
			[]order.Status{order.Delivered, order.Rejected, order.Cancelled},
			order.BucketCompleted.Statuses())
	})

	t.Run("should cover every status exactly once", func(t *testing.T) {
		seen := map[order.Status]int{}
		for _, b := range []order.Bucket{order.BucketNew, order.BucketOngoing, order.BucketCompleted} {
			for _, s := range b.Statuses() {
				seen[s]++
			}
		}
		for _, s := range allStatuses() {
			assert.Equal(t, 1, seen[s], s.String())
		}
	})

	t.Run("should limit only the completed bucket", func(t *testing.T) {
		assert.Equal(t, 50, order.BucketCompleted.Limit())
		assert.Equal(t, 0, order.BucketNew.Limit())
	})

	t.Run("should parse known buckets only", func(t *testing.T) {
		b, err := order.ParseBucket("ongoing")
		require.NoError(t, err)
		assert.Equal(t, order.BucketOngoing, b)

		_, err = order.ParseBucket("archived")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func contains(statuses []order.Status, s order.Status) bool {
	for _, candidate := range statuses {
		if candidate == s {
			return true
		}
	}
	return false
}

func TestStatus_TimestampField(t *testing.T) {
	assert.Equal(t, "accepted_at", order.Accepted.TimestampField())
	assert.Equal(t, "picked_up_at", order.PickedUp.TimestampField())
	assert.Equal(t, "completed_at", order.Cancelled.TimestampField())
	assert.Empty(t, order.New.TimestampField())
}
