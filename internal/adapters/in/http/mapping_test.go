package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/kernel"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/order"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stamp(base time.Time, minutes int) *time.Time {
	t := base.Add(time.Duration(minutes)*time.Minute + time.Duration(minutes)*time.Microsecond)
	return &t
}

func int64Ptr(v int64) *int64 { return &v }

func TestToOrder_EnvelopeRoundTrip(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	base := time.Date(2025, 3, 14, 12, 30, 15, 123456000, time.UTC)
	reason := "Kitchen closed"

	delivered := order.Timeline{
		AcceptedAt:  stamp(base, 1),
		PreparingAt: stamp(base, 2),
		ReadyAt:     stamp(base, 3),
		PickedUpAt:  stamp(base, 4),
		DeliveredAt: stamp(base, 5),
		CompletedAt: stamp(base, 5),
	}
	viaRelease := order.Timeline{
		AcceptedAt:  stamp(base.In(ist), 1),
		PreparingAt: stamp(base.In(ist), 2),
		ReadyAt:     stamp(base.In(ist), 3),
		ReleasedAt:  stamp(base.In(ist), 4),
		PickedUpAt:  stamp(base.In(ist), 6),
		DeliveredAt: stamp(base.In(ist), 9),
		CompletedAt: stamp(base.In(ist), 9),
	}
	rejected := order.Timeline{
		RejectedAt: stamp(base, 1),
	}

	tests := []struct {
		name     string
		snapshot order.Snapshot
	}{
		{
			name:     "delivered",
			snapshot: order.Snapshot{
				ID:                7,
				OrderNumber:       "AB12CD34EF",
				RestaurantID:      3,
				CustomerID:        int64Ptr(11),
				DeliveryPartnerID: int64Ptr(21),
				Status:            order.Delivered,
				Total:             kernel.MustNewMoney("450.00"),
				DeliveryFee:       kernel.MustNewMoney("30.00"),
				Tax:               kernel.MustNewMoney("20.00"),
				Discount:          kernel.MustNewMoney("0.00"),
				PaymentMethod:     "cod",
				PaymentStatus:     "paid",
				Timeline:          delivered,
				CreatedAt:         base,
				UpdatedAt:         *delivered.DeliveredAt,
			},
		},
		{
			name:     "delivered after release in another zone",
			snapshot: order.Snapshot{
				ID:                8,
				OrderNumber:       "ZX98YW76VU",
				RestaurantID:      3,
				CustomerID:        int64Ptr(12),
				DeliveryPartnerID: int64Ptr(22),
				Status:            order.Delivered,
				Total:             kernel.MustNewMoney("1234.50"),
				DeliveryFee:       kernel.MustNewMoney("40.00"),
				Tax:               kernel.MustNewMoney("56.88"),
				Discount:          kernel.MustNewMoney("10.05"),
				PaymentMethod:     "online",
				PaymentStatus:     "paid",
				Timeline:          viaRelease,
				CreatedAt:         base.In(ist),
				UpdatedAt:         *viaRelease.DeliveredAt,
			},
		},
		{
			name:     "rejected",
			snapshot: order.Snapshot{
				ID:              9,
				OrderNumber:     "QQ11RR22SS",
				RestaurantID:    3,
				CustomerID:      int64Ptr(13),
				Status:          order.Rejected,
				Total:           kernel.MustNewMoney("0.10"),
				DeliveryFee:     kernel.MustNewMoney("0.00"),
				Tax:             kernel.MustNewMoney("0.01"),
				Discount:        kernel.MustNewMoney("0.00"),
				RejectionReason: &reason,
				Timeline:        rejected,
				CreatedAt:       base,
				UpdatedAt:       *rejected.RejectedAt,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.snapshot
			require.NoError(t, s.Timeline.Validate(s.Status, s.CreatedAt))

			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
			require.NoError(t, ok(c, http.StatusOK, "Order fetched", toOrder(s)))

			var decoded struct {
				Success bool          `json:"success"`
				Message string        `json:"message"`
				Data    servers.Order `json:"data"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
			got := decoded.Data

			assert.True(t, decoded.Success)
			assert.Equal(t, "Order fetched", decoded.Message)
			assert.Equal(t, s.ID, got.Id)
			assert.Equal(t, s.OrderNumber, got.OrderNumber)
			assert.Equal(t, s.Status.String(), string(got.Status))
			assert.Equal(t, s.CustomerID, got.CustomerId)
			assert.Equal(t, s.DeliveryPartnerID, got.DeliveryPartnerId)
			assert.Equal(t, s.RejectionReason, got.RejectionReason)

			assert.Equal(t, s.Total.String(), got.TotalAmount)
			require.NotNil(t, got.DeliveryFee)
			require.NotNil(t, got.TaxAmount)
			require.NotNil(t, got.DiscountAmount)
			assert.Equal(t, s.DeliveryFee.String(), *got.DeliveryFee)
			assert.Equal(t, s.Tax.String(), *got.TaxAmount)
			assert.Equal(t, s.Discount.String(), *got.DiscountAmount)

			assert.True(t, s.CreatedAt.Equal(got.CreatedAt))
			assert.True(t, s.UpdatedAt.Equal(got.UpdatedAt))

			require.NotNil(t, got.Timeline)
			pairs := map[string][2]*time.Time{
				"accepted_at":  {s.Timeline.AcceptedAt, got.Timeline.AcceptedAt},
				"preparing_at": {s.Timeline.PreparingAt, got.Timeline.PreparingAt},
				"ready_at":     {s.Timeline.ReadyAt, got.Timeline.ReadyAt},
				"released_at":  {s.Timeline.ReleasedAt, got.Timeline.ReleasedAt},
				"picked_up_at": {s.Timeline.PickedUpAt, got.Timeline.PickedUpAt},
				"delivered_at": {s.Timeline.DeliveredAt, got.Timeline.DeliveredAt},
				"rejected_at":  {s.Timeline.RejectedAt, got.Timeline.RejectedAt},
				"completed_at": {s.Timeline.CompletedAt, got.Timeline.CompletedAt},
			}
			for field, p := range pairs {
				if p[0] == nil {
					assert.Nil(t, p[1], field)
					continue
				}
				require.NotNil(t, p[1], field)
				assert.True(t, p[0].Equal(*p[1]), "%s: want %s, got %s", field, p[0], p[1])
			}

			if s.Status == order.Delivered {
				assert.True(t, got.Timeline.CompletedAt.Equal(*got.Timeline.DeliveredAt))
			}

			for _, amount := range []string{got.TotalAmount, *got.DeliveryFee, *got.TaxAmount, *got.DiscountAmount} {
				parsed, err := kernel.NewMoney(amount)
				require.NoError(t, err)
				assert.Equal(t, amount, parsed.String())
			}
		})
	}
}
