package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/application/usecases/queries"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/kernel"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/generated/servers"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/live"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const controlWriteTimeout = 5 * time.Second

// LiveRegistry is the part of live.Hub the stream endpoint needs.
type LiveRegistry interface {
	Register(restaurantID int64, s live.Session)
	Unregister(restaurantID int64, id kernel.UUID) bool
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Dashboards are served from other origins; the token authenticates.
	CheckOrigin: func(*http.Request) bool { return true },
}

// GetOrdersLive upgrades to a WebSocket and streams the events of the owner's
// restaurant until the client goes away. The token was verified by Auth.
func (s *Server) GetOrdersLive(c echo.Context, _ servers.GetOrdersLiveParams) error {
	actor, err := requireRole(c, kernel.Owner)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOwnerRestaurantQuery(actor.ID())
	if err != nil {
		return err
	}
	restaurantID, err := s.h.OwnerRestaurant.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		s.logger.Debug("WebSocket upgrade failed", zap.Error(err))
		return nil
	}

	session := newWSSession(conn)
	s.live.Register(restaurantID, session)
	defer func() {
		s.live.Unregister(restaurantID, session.ID())
		_ = session.Close()
	}()

	s.logger.Debug("Live session opened",
		zap.Int64("restaurant_id", restaurantID),
		zap.String("session_id", session.ID().String()))

	session.readLoop()
	return nil
}

// wsSession implements live.Session over a gorilla connection. gorilla
// allows one concurrent writer, so data frames are serialized by writeMu.
type wsSession struct {
	id   kernel.UUID
	conn *websocket.Conn

	writeMu   sync.Mutex
	closeOnce sync.Once
}

func newWSSession(conn *websocket.Conn) *wsSession {
	return &wsSession{id: kernel.NewUUID(), conn: conn}
}

func (w *wsSession) ID() kernel.UUID {
	return w.id
}

func (w *wsSession) SendJSON(ctx context.Context, v any) error {
	w.writeMu.Lock()
	defer w.writeMu.Unlock()

	w.setWriteDeadline(ctx)
	return w.conn.WriteJSON(v)
}

func (w *wsSession) Ping(ctx context.Context) error {
	deadline, found := ctx.Deadline()
	if !found {
		deadline = time.Now().Add(controlWriteTimeout)
	}
	return w.conn.WriteControl(websocket.PingMessage, nil, deadline)
}

func (w *wsSession) Close() error {
	var err error
	w.closeOnce.Do(func() {
		err = w.conn.Close()
	})
	return err
}

func (w *wsSession) sendText(msg string) error {
	w.writeMu.Lock()
	defer w.writeMu.Unlock()

	w.setWriteDeadline(context.Background())
	return w.conn.WriteMessage(websocket.TextMessage, []byte(msg))
}

func (w *wsSession) setWriteDeadline(ctx context.Context) {
	deadline, found := ctx.Deadline()
	if !found {
		deadline = time.Now().Add(controlWriteTimeout)
	}
	_ = w.conn.SetWriteDeadline(deadline)
}

// readLoop answers the client's text "ping" and returns when the connection
// fails or is closed from either side.
func (w *wsSession) readLoop() {
	for {
		messageType, data, err := w.conn.ReadMessage()
		if err != nil {
			return
		}
		if messageType == websocket.TextMessage && string(data) == "ping" {
			if err = w.sendText("pong"); err != nil {
				return
			}
		}
	}
}
