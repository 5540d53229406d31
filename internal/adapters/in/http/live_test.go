package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/live"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func dialLive(t *testing.T, serverURL, token string) (*websocket.Conn, *http.Response, error) {
	t.Helper()
	url := "ws" + strings.TrimPrefix(serverURL, "http") + "/orders/live?token=" + token
	return websocket.DefaultDialer.DialContext(t.Context(), url, nil)
}

func TestOrdersLive_StreamsRestaurantEvents(t *testing.T) {
	f := newFixture()
	f.ownerRestaurant.On("Handle", mock.Anything, mock.Anything).Return(int64(5), nil)
	srv := httptest.NewServer(f.router)
	defer srv.Close()

	conn, _, err := dialLive(t, srv.URL, signedToken(t, jwt.MapClaims{"owner_id": 7}))
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return f.hub.Count(5) == 1 }, time.Second, 10*time.Millisecond)

	f.hub.BroadcastOrder(t.Context(), acceptedSnapshot())

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var ev struct {
		Type  string         `json:"type"`
		Order map[string]any `json:"order"`
	}
	require.NoError(t, conn.ReadJSON(&ev))
	assert.Equal(t, live.EventOrderAccepted, ev.Type)
	assert.Equal(t, "AB12CD34EF", ev.Order["order_number"])

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("ping")))
	messageType, data, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, websocket.TextMessage, messageType)
	assert.Equal(t, "pong", string(data))

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return f.hub.Count(5) == 0 }, time.Second, 10*time.Millisecond)
}

func TestOrdersLive_RequiresOwner(t *testing.T) {
	f := newFixture()
	srv := httptest.NewServer(f.router)
	defer srv.Close()

	_, resp, err := dialLive(t, srv.URL, signedToken(t, jwt.MapClaims{"customer_id": 11}))

	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	require.NotNil(t, resp)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	f.ownerRestaurant.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestOrdersLive_RejectsInvalidToken(t *testing.T) {
	f := newFixture()
	srv := httptest.NewServer(f.router)
	defer srv.Close()

	_, resp, err := dialLive(t, srv.URL, "bogus")

	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	require.NotNil(t, resp)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
