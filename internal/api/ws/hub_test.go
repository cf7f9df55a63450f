package ws

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, hub *Hub) string {
	t.Helper()

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		id := hub.Register(conn)
		defer hub.Unregister(id)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestHub_Broadcast(t *testing.T) {
	hub := NewHub()
	url := newTestServer(t, hub)

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.ConnectionCount() == 1 }, time.Second, 10*time.Millisecond)

	hub.Broadcast("area.created", map[string]string{"slug": "keputih"})

	conn.SetReadDeadline(time.Now().Add(time.Second))
	var msg struct {
		Type string            `json:"type"`
		Data map[string]string `json:"data"`
	}
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "area.created", msg.Type)
	assert.Equal(t, "keputih", msg.Data["slug"])
}

func TestHub_UnregisterOnClose(t *testing.T) {
	hub := NewHub()
	url := newTestServer(t, hub)

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	require.Eventually(t, func() bool { return hub.ConnectionCount() == 1 }, time.Second, 10*time.Millisecond)

	conn.Close()
	assert.Eventually(t, func() bool { return hub.ConnectionCount() == 0 }, time.Second, 10*time.Millisecond)
}

func TestHub_BroadcastWithoutSubscribers(t *testing.T) {
	hub := NewHub()
	assert.NotPanics(t, func() {
		hub.Broadcast("place.created", nil)
	})
}

func TestHub_Ping(t *testing.T) {
	hub := NewHub()
	url := newTestServer(t, hub)

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	pinged := make(chan struct{}, 1)
	conn.SetPingHandler(func(string) error {
		select {
		case pinged <- struct{}{}:
		default:
		}
		return nil
	})
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	require.Eventually(t, func() bool { return hub.ConnectionCount() == 1 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, 0, hub.Ping())

	select {
	case <-pinged:
	case <-time.After(time.Second):
		t.Fatal("ping not received")
	}
}
