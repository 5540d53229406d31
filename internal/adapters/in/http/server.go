package http

import (
	"context"
	"net/http"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/application/usecases/commands"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/application/usecases/queries"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/kernel"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/notification"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/order"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/generated/servers"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type (
	OrderTransitioner interface {
		Handle(ctx context.Context, cmd commands.TransitionOrderCommand) (order.Snapshot, error)
	}
	OrderPlacer interface {
		Handle(ctx context.Context, cmd commands.PlaceOrderCommand) (order.Snapshot, error)
	}
	NotificationMarker interface {
		Handle(ctx context.Context, cmd commands.MarkNotificationReadCommand) error
	}
	DeviceTokenRegistrar interface {
		Handle(ctx context.Context, cmd commands.RegisterDeviceTokenCommand) error
	}
	RestaurantOrdersLister interface {
		Handle(ctx context.Context, query queries.GetRestaurantOrdersQuery) ([]queries.OrderSummary, error)
	}
	AvailableOrdersLister interface {
		Handle(ctx context.Context, query queries.GetAvailableDeliveryOrdersQuery) ([]queries.OrderSummary, error)
	}
	PartnerOrdersLister interface {
		Handle(ctx context.Context, query queries.GetPartnerOrdersQuery) ([]queries.OrderSummary, error)
	}
	CustomerOrdersLister interface {
		Handle(ctx context.Context, query queries.GetCustomerOrdersQuery) ([]queries.OrderSummary, error)
	}
	OrderDetailsGetter interface {
		Handle(ctx context.Context, query queries.GetOrderDetailsQuery) (queries.OrderDetails, error)
	}
	OrderTracker interface {
		Handle(ctx context.Context, query queries.TrackOrderQuery) (queries.OrderTracking, error)
	}
	NotificationsLister interface {
		Handle(ctx context.Context, query queries.ListNotificationsQuery) ([]queries.NotificationView, error)
	}
	OwnerRestaurantResolver interface {
		Handle(ctx context.Context, query queries.GetOwnerRestaurantQuery) (int64, error)
	}
)

// Handlers are the use cases the HTTP surface exposes.
type Handlers struct {
	TransitionOrder      OrderTransitioner
	PlaceOrder           OrderPlacer
	MarkNotificationRead NotificationMarker
	RegisterDeviceToken  DeviceTokenRegistrar

	RestaurantOrders RestaurantOrdersLister
	AvailableOrders  AvailableOrdersLister
	PartnerOrders    PartnerOrdersLister
	CustomerOrders   CustomerOrdersLister
	OrderDetails     OrderDetailsGetter
	TrackOrder       OrderTracker
	Notifications    NotificationsLister
	OwnerRestaurant  OwnerRestaurantResolver
}

// Server implements servers.ServerInterface.
type Server struct {
	h      Handlers
	live   LiveRegistry
	logger *zap.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(h Handlers, live LiveRegistry, logger *zap.Logger) *Server {
	return &Server{
		h:      h,
		live:   live,
		logger: logger.With(zap.String("component", "http")),
	}
}

// Restaurant dashboard.

func (s *Server) GetNewOrders(c echo.Context) error {
	return s.restaurantOrders(c, order.BucketNew)
}

func (s *Server) GetOngoingOrders(c echo.Context) error {
	return s.restaurantOrders(c, order.BucketOngoing)
}

func (s *Server) GetCompletedOrders(c echo.Context) error {
	return s.restaurantOrders(c, order.BucketCompleted)
}

func (s *Server) restaurantOrders(c echo.Context, bucket order.Bucket) error {
	actor, err := requireRole(c, kernel.Owner)
	if err != nil {
		return err
	}

	query, err := queries.NewGetRestaurantOrdersQuery(actor.ID(), bucket)
	if err != nil {
		return err
	}

	summaries, err := s.h.RestaurantOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, "Orders retrieved", toSummaries(summaries))
}

func (s *Server) GetOrder(c echo.Context, orderID servers.OrderID) error {
	return s.orderDetails(c, orderID, kernel.Owner)
}

func (s *Server) AcceptOrder(c echo.Context, orderID servers.OrderID) error {
	return s.transition(c, orderID, kernel.Owner, order.Accepted, "", "Order accepted")
}

func (s *Server) StartPreparingOrder(c echo.Context, orderID servers.OrderID) error {
	return s.transition(c, orderID, kernel.Owner, order.Preparing, "", "Order is being prepared")
}

func (s *Server) MarkOrderReady(c echo.Context, orderID servers.OrderID) error {
	return s.transition(c, orderID, kernel.Owner, order.Ready, "", "Order is ready")
}

func (s *Server) ReleaseOrder(c echo.Context, orderID servers.OrderID) error {
	return s.transition(c, orderID, kernel.Owner, order.Released, "", "Order released")
}

func (s *Server) RejectOrder(c echo.Context, orderID servers.OrderID) error {
	var body servers.RejectOrderJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}
	return s.transition(c, orderID, kernel.Owner, order.Rejected, body.RejectionReason, "Order rejected")
}

// Delivery partner.

func (s *Server) GetAvailableDeliveryOrders(c echo.Context) error {
	if _, err := requireRole(c, kernel.DeliveryPartner); err != nil {
		return err
	}

	summaries, err := s.h.AvailableOrders.Handle(c.Request().Context(), queries.NewGetAvailableDeliveryOrdersQuery())
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, "Available orders retrieved", toSummaries(summaries))
}

func (s *Server) GetActiveDeliveryOrders(c echo.Context) error {
	return s.partnerOrders(c, queries.PartnerActive)
}

func (s *Server) GetCompletedDeliveryOrders(c echo.Context) error {
	return s.partnerOrders(c, queries.PartnerCompleted)
}

func (s *Server) partnerOrders(c echo.Context, scope queries.PartnerScope) error {
	actor, err := requireRole(c, kernel.DeliveryPartner)
	if err != nil {
		return err
	}

	query, err := queries.NewGetPartnerOrdersQuery(actor.ID(), scope)
	if err != nil {
		return err
	}

	summaries, err := s.h.PartnerOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, "Orders retrieved", toSummaries(summaries))
}

func (s *Server) GetDeliveryOrder(c echo.Context, orderID servers.OrderID) error {
	return s.orderDetails(c, orderID, kernel.DeliveryPartner)
}

func (s *Server) ClaimDeliveryOrder(c echo.Context, orderID servers.OrderID) error {
	return s.transition(c, orderID, kernel.DeliveryPartner, order.PickedUp, "", "Order picked up")
}

func (s *Server) CompleteDeliveryOrder(c echo.Context, orderID servers.OrderID) error {
	return s.transition(c, orderID, kernel.DeliveryPartner, order.Delivered, "", "Order delivered")
}

// Customer.

func (s *Server) PlaceOrder(c echo.Context) error {
	actor, err := requireRole(c, kernel.Customer)
	if err != nil {
		return err
	}

	var body servers.PlaceOrderJSONRequestBody
	if err = c.Bind(&body); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}

	items := make([]commands.PlaceOrderItem, 0, len(body.Items))
	for _, i := range body.Items {
		items = append(items, commands.PlaceOrderItem{
			MenuItemID:   i.MenuItemId,
			Quantity:     i.Quantity,
			Instructions: deref(i.SpecialInstructions),
		})
	}

	cmd, err := commands.NewPlaceOrderCommand(commands.PlaceOrderParams{
		CustomerID:          actor.ID(),
		CustomerName:        deref(body.CustomerName),
		CustomerPhone:       deref(body.CustomerPhone),
		RestaurantID:        body.RestaurantId,
		Items:               items,
		DeliveryAddress:     body.DeliveryAddress,
		PaymentMethod:       deref(body.PaymentMethod),
		SpecialInstructions: deref(body.SpecialInstructions),
	})
	if err != nil {
		return err
	}

	placed, err := s.h.PlaceOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ok(c, http.StatusCreated, "Order placed", toOrder(placed))
}

func (s *Server) GetCustomerOrders(c echo.Context) error {
	actor, err := requireRole(c, kernel.Customer)
	if err != nil {
		return err
	}

	query, err := queries.NewGetCustomerOrdersQuery(actor.ID())
	if err != nil {
		return err
	}

	summaries, err := s.h.CustomerOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, "Orders retrieved", toSummaries(summaries))
}

func (s *Server) GetCustomerOrder(c echo.Context, orderID servers.OrderID) error {
	return s.orderDetails(c, orderID, kernel.Customer)
}

func (s *Server) TrackOrder(c echo.Context, orderID servers.OrderID) error {
	actor, err := requireRole(c, kernel.Customer)
	if err != nil {
		return err
	}

	query, err := queries.NewTrackOrderQuery(orderID, actor.ID())
	if err != nil {
		return err
	}

	tracking, err := s.h.TrackOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, "Order tracking retrieved", toTracking(tracking))
}

// Notifications, for every role.

func (s *Server) GetNotifications(c echo.Context) error {
	recipient, err := recipientFrom(c)
	if err != nil {
		return err
	}

	query, err := queries.NewListNotificationsQuery(recipient)
	if err != nil {
		return err
	}

	views, err := s.h.Notifications.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, "Notifications retrieved", toNotifications(views))
}

func (s *Server) MarkNotificationRead(c echo.Context, notificationID int64) error {
	recipient, err := recipientFrom(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewMarkNotificationReadCommand(notificationID, recipient)
	if err != nil {
		return err
	}

	if err = s.h.MarkNotificationRead.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return ok(c, http.StatusOK, "Notification marked as read", nil)
}

func (s *Server) RegisterDeviceToken(c echo.Context) error {
	recipient, err := recipientFrom(c)
	if err != nil {
		return err
	}

	var body servers.RegisterDeviceTokenJSONRequestBody
	if err = c.Bind(&body); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}

	cmd, err := commands.NewRegisterDeviceTokenCommand(recipient, body.Token, string(body.DeviceType))
	if err != nil {
		return err
	}

	if err = s.h.RegisterDeviceToken.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return ok(c, http.StatusOK, "Device token registered", nil)
}

func (s *Server) orderDetails(c echo.Context, orderID int64, role kernel.Role) error {
	actor, err := requireRole(c, role)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderDetailsQuery(orderID, actor)
	if err != nil {
		return err
	}

	details, err := s.h.OrderDetails.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, "Order retrieved", toDetails(details))
}

func (s *Server) transition(
	c echo.Context,
	orderID int64,
	role kernel.Role,
	target order.Status,
	rejectionReason string,
	message string,
) error {
	actor, err := requireRole(c, role)
	if err != nil {
		return err
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, target, actor, rejectionReason)
	if err != nil {
		return err
	}

	updated, err := s.h.TransitionOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, message, toOrder(updated))
}

func recipientFrom(c echo.Context) (notification.Recipient, error) {
	actor, err := actorFrom(c)
	if err != nil {
		return notification.Recipient{}, err
	}
	return notification.RecipientFromActor(actor)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
