package queries_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	postgres_adapter "github.com/satheeshkumar89/fastfoodie-backend/internal/adapters/out/postgres"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/adapters/out/postgres/pgtest"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/application/usecases/queries"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/kernel"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/notification"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/order"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/services"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

const (
	ownerID    = int64(7)
	customerID = int64(9)
	partnerID  = int64(21)
)

// QueriesIntegrationTestSuite seeds one restaurant with an order in each
// interesting status and reads it back through the query handlers.
type QueriesIntegrationTestSuite struct {
	suite.Suite
	pg      *pgtest.Database
	factory *postgres_adapter.GormUnitOfWorkFactory

	restaurantID int64
	menuItemID   int64
	base         time.Time
	orders       map[string]int64
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(pg.DB)
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	if suite.pg != nil {
		suite.Require().NoError(suite.pg.Terminate(context.Background()))
	}
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())

	var err error
	suite.restaurantID, err = suite.pg.SeedRestaurant(ownerID, "Spice Route", true)
	suite.Require().NoError(err)
	suite.menuItemID, err = suite.pg.SeedMenuItem(suite.restaurantID, "Paneer Tikka", "250.00", "200.00", true)
	suite.Require().NoError(err)

	suite.base = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	suite.orders = make(map[string]int64)

	// Created one minute apart in this order.
	suite.seed(0, "new", order.New)
	suite.seed(1, "accepted", order.Accepted)
	suite.seed(2, "ready", order.Ready)
	suite.seed(3, "released", order.Released)
	suite.seed(4, "picked_up", order.PickedUp)
	suite.seed(5, "delivered", order.Delivered)
	suite.seed(6, "rejected", order.Rejected)
}

// seed stores an order created at base+index minutes and walks it to target.
func (suite *QueriesIntegrationTestSuite) seed(index int, name string, target order.Status) {
	ctx := suite.T().Context()
	createdAt := suite.base.Add(time.Duration(index) * time.Minute)

	line, err := order.NewLine(suite.menuItemID, 2, kernel.MustNewMoney("200.00"), "")
	suite.Require().NoError(err)
	charges, err := services.DefaultChargeCalculator().Calculate([]order.Line{line})
	suite.Require().NoError(err)
	customer := customerID
	o, err := order.NewOrder(fmt.Sprintf("ORD20250314SEED%04d", index), order.Details{
		RestaurantID:    suite.restaurantID,
		CustomerID:      &customer,
		CustomerName:    "Asha",
		DeliveryAddress: "12 Park Street",
	}, []order.Line{line}, charges, createdAt)
	suite.Require().NoError(err)

	repo := suite.factory.Create().OrderRepository()
	suite.Require().NoError(repo.Add(ctx, o))
	suite.orders[name] = o.ID()

	var path []order.Status
	switch target {
	case order.Accepted:
		path = []order.Status{order.Accepted}
	case order.Ready:
		path = []order.Status{order.Accepted, order.Preparing, order.Ready}
	case order.Released:
		path = []order.Status{order.Accepted, order.Preparing, order.Ready, order.Released}
	case order.PickedUp:
		path = []order.Status{order.Accepted, order.Preparing, order.Ready, order.PickedUp}
	case order.Delivered:
		path = []order.Status{order.Accepted, order.Preparing, order.Ready, order.PickedUp, order.Delivered}
	case order.Rejected:
		path = []order.Status{order.Rejected}
	}

	at := createdAt
	for _, next := range path {
		at = at.Add(10 * time.Second)
		previous := o.Status()
		suite.Require().NoError(suite.apply(o, next, at))
		suite.Require().NoError(repo.Update(ctx, o, previous))
	}
}

func (suite *QueriesIntegrationTestSuite) apply(o *order.Order, next order.Status, at time.Time) error {
	//nolint:exhaustive // only the statuses used by seed
	switch next {
	case order.Accepted:
		return o.Accept(at)
	case order.Preparing:
		return o.StartPreparing(at)
	case order.Ready:
		return o.MarkReady(at)
	case order.Released:
		return o.Release(at)
	case order.PickedUp:
		return o.PickUp(partnerID, at)
	case order.Delivered:
		return o.Deliver(partnerID, at)
	case order.Rejected:
		return o.Reject("kitchen closed", at)
	default:
		return fmt.Errorf("unexpected status %s", next)
	}
}

func (suite *QueriesIntegrationTestSuite) ids(summaries []queries.OrderSummary) []int64 {
	out := make([]int64, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, s.ID)
	}
	return out
}

func (suite *QueriesIntegrationTestSuite) actor(role kernel.Role, id int64) kernel.Actor {
	a, err := kernel.NewActor(role, id)
	suite.Require().NoError(err)
	return a
}

func (suite *QueriesIntegrationTestSuite) TestRestaurantBuckets() {
	ctx := suite.T().Context()
	handler := queries.NewGetRestaurantOrdersQueryHandler(suite.pg.DB)

	testCases := []struct {
		bucket order.Bucket
		want   []string
	}{
		{order.BucketNew, []string{"new"}},
		{order.BucketOngoing, []string{"accepted", "ready", "released", "picked_up"}},
		{order.BucketCompleted, []string{"rejected", "delivered"}},
	}

	for _, tc := range testCases {
		suite.Run(string(tc.bucket), func() {
			query, err := queries.NewGetRestaurantOrdersQuery(ownerID, tc.bucket)
			suite.Require().NoError(err)

			got, err := handler.Handle(ctx, query)
			suite.Require().NoError(err)

			want := make([]int64, 0, len(tc.want))
			for _, name := range tc.want {
				want = append(want, suite.orders[name])
			}
			suite.Equal(want, suite.ids(got))
		})
	}
}

func (suite *QueriesIntegrationTestSuite) TestRestaurantBuckets_SummaryColumns() {
	query, err := queries.NewGetRestaurantOrdersQuery(ownerID, order.BucketNew)
	suite.Require().NoError(err)

	got, err := queries.NewGetRestaurantOrdersQueryHandler(suite.pg.DB).Handle(suite.T().Context(), query)
	suite.Require().NoError(err)
	suite.Require().Len(got, 1)

	s := got[0]
	suite.Equal("Spice Route", s.RestaurantName)
	suite.Equal(2, s.ItemCount)
	suite.Equal("460.00", s.Total.String())
	suite.Equal(order.New, s.Status)
	suite.True(suite.base.Equal(s.CreatedAt))
}

func (suite *QueriesIntegrationTestSuite) TestRestaurantBuckets_OwnerWithoutRestaurant() {
	query, err := queries.NewGetRestaurantOrdersQuery(8, order.BucketNew)
	suite.Require().NoError(err)

	_, err = queries.NewGetRestaurantOrdersQueryHandler(suite.pg.DB).Handle(suite.T().Context(), query)

	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestOwnerRestaurant() {
	handler := queries.NewGetOwnerRestaurantQueryHandler(suite.pg.DB)

	query, err := queries.NewGetOwnerRestaurantQuery(ownerID)
	suite.Require().NoError(err)
	got, err := handler.Handle(suite.T().Context(), query)
	suite.Require().NoError(err)
	suite.Equal(suite.restaurantID, got)

	query, err = queries.NewGetOwnerRestaurantQuery(8)
	suite.Require().NoError(err)
	_, err = handler.Handle(suite.T().Context(), query)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestAvailableDeliveryOrders() {
	got, err := queries.NewGetAvailableDeliveryOrdersQueryHandler(suite.pg.DB).
		Handle(suite.T().Context(), queries.NewGetAvailableDeliveryOrdersQuery())
	suite.Require().NoError(err)

	suite.Equal([]int64{suite.orders["ready"], suite.orders["released"]}, suite.ids(got))
}

func (suite *QueriesIntegrationTestSuite) TestPartnerOrders() {
	ctx := suite.T().Context()
	handler := queries.NewGetPartnerOrdersQueryHandler(suite.pg.DB)

	active, err := queries.NewGetPartnerOrdersQuery(partnerID, queries.PartnerActive)
	suite.Require().NoError(err)
	got, err := handler.Handle(ctx, active)
	suite.Require().NoError(err)
	suite.Equal([]int64{suite.orders["picked_up"]}, suite.ids(got))

	completed, err := queries.NewGetPartnerOrdersQuery(partnerID, queries.PartnerCompleted)
	suite.Require().NoError(err)
	got, err = handler.Handle(ctx, completed)
	suite.Require().NoError(err)
	suite.Equal([]int64{suite.orders["delivered"]}, suite.ids(got))

	other, err := queries.NewGetPartnerOrdersQuery(22, queries.PartnerActive)
	suite.Require().NoError(err)
	got, err = handler.Handle(ctx, other)
	suite.Require().NoError(err)
	suite.Empty(got)
}

func (suite *QueriesIntegrationTestSuite) TestCustomerOrders_NewestFirst() {
	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	suite.Require().NoError(err)

	got, err := queries.NewGetCustomerOrdersQueryHandler(suite.pg.DB).Handle(suite.T().Context(), query)
	suite.Require().NoError(err)

	suite.Require().Len(got, 7)
	suite.Equal(suite.orders["rejected"], got[0].ID)
	suite.Equal(suite.orders["new"], got[6].ID)
}

func (suite *QueriesIntegrationTestSuite) TestOrderDetails() {
	ctx := suite.T().Context()
	handler := queries.NewGetOrderDetailsQueryHandler(suite.pg.DB)
	orderID := suite.orders["picked_up"]

	query, err := queries.NewGetOrderDetailsQuery(orderID, suite.actor(kernel.Owner, ownerID))
	suite.Require().NoError(err)
	details, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(orderID, details.ID)
	suite.Equal(ownerID, details.RestaurantOwnerID)
	suite.Equal(order.PickedUp, details.Status)
	suite.Require().NotNil(details.DeliveryPartnerID)
	suite.Equal(partnerID, *details.DeliveryPartnerID)
	suite.Equal("400.00", details.Subtotal.String())
	suite.Equal("40.00", details.DeliveryFee.String())
	suite.Equal("20.00", details.Tax.String())
	suite.Require().Len(details.Items, 1)
	suite.Equal("Paneer Tikka", details.Items[0].Name)
	suite.Equal("400.00", details.Items[0].Total.String())
	suite.NotNil(details.Timeline.PickedUpAt)
	suite.Nil(details.Timeline.DeliveredAt)

	forPartner, err := queries.NewGetOrderDetailsQuery(orderID, suite.actor(kernel.DeliveryPartner, partnerID))
	suite.Require().NoError(err)
	_, err = handler.Handle(ctx, forPartner)
	suite.NoError(err)

	forOtherPartner, err := queries.NewGetOrderDetailsQuery(orderID, suite.actor(kernel.DeliveryPartner, 22))
	suite.Require().NoError(err)
	_, err = handler.Handle(ctx, forOtherPartner)
	suite.ErrorIs(err, errs.ErrForbidden)

	forOtherOwner, err := queries.NewGetOrderDetailsQuery(orderID, suite.actor(kernel.Owner, 8))
	suite.Require().NoError(err)
	_, err = handler.Handle(ctx, forOtherOwner)
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	missing, err := queries.NewGetOrderDetailsQuery(404, kernel.SystemActor())
	suite.Require().NoError(err)
	_, err = handler.Handle(ctx, missing)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestRejectedOrderDetails() {
	query, err := queries.NewGetOrderDetailsQuery(suite.orders["rejected"], suite.actor(kernel.Customer, customerID))
	suite.Require().NoError(err)

	details, err := queries.NewGetOrderDetailsQueryHandler(suite.pg.DB).Handle(suite.T().Context(), query)
	suite.Require().NoError(err)

	suite.Equal(order.Rejected, details.Status)
	suite.Require().NotNil(details.RejectionReason)
	suite.Equal("kitchen closed", *details.RejectionReason)
	suite.NotNil(details.Timeline.RejectedAt)
}

func (suite *QueriesIntegrationTestSuite) TestTrackOrder() {
	ctx := suite.T().Context()
	handler := queries.NewTrackOrderQueryHandler(suite.pg.DB)

	query, err := queries.NewTrackOrderQuery(suite.orders["delivered"], customerID)
	suite.Require().NoError(err)
	tracking, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal("Spice Route", tracking.RestaurantName)
	suite.Equal(order.Delivered, tracking.Status)
	suite.Equal("460.00", tracking.Total.String())
	suite.Require().Len(tracking.Steps, 5)
	suite.True(tracking.Steps[4].IsCompleted)
	suite.True(tracking.Steps[4].IsCurrent)
	suite.False(tracking.Steps[2].IsCompleted, "delivered without release skips the hand-over step")

	notMine, err := queries.NewTrackOrderQuery(suite.orders["delivered"], 10)
	suite.Require().NoError(err)
	_, err = handler.Handle(ctx, notMine)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestListNotifications() {
	ctx := suite.T().Context()
	repo := suite.factory.Create().NotificationRepository()
	customer, err := notification.CustomerRecipient(customerID)
	suite.Require().NoError(err)
	owner, err := notification.OwnerRecipient(ownerID)
	suite.Require().NoError(err)
	orderID := suite.orders["new"]

	for i, r := range []notification.Recipient{customer, owner, customer} {
		n, newErr := notification.NewNotification(r, fmt.Sprintf("title %d", i), "body",
			notification.KindOrderUpdate, &orderID, suite.base.Add(time.Duration(i)*time.Minute))
		suite.Require().NoError(newErr)
		suite.Require().NoError(repo.Add(ctx, n))
	}

	query, err := queries.NewListNotificationsQuery(customer)
	suite.Require().NoError(err)
	got, err := queries.NewListNotificationsQueryHandler(suite.pg.DB).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(got, 2)
	suite.Equal("title 2", got[0].Title)
	suite.Equal("title 0", got[1].Title)
	suite.False(got[0].IsRead)
	suite.Equal(notification.KindOrderUpdate, got[0].Kind)
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(QueriesIntegrationTestSuite))
}
