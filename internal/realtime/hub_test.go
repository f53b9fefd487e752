package realtime

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dialClient upgrades one server-side connection into the hub and returns
// the matching client-side connection.
func dialClient(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()

	upgrader := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.AddClient(conn)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { conn.Close() })

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)
	return conn
}

func TestBroadcastJSONDeliversToClient(t *testing.T) {
	hub := NewHub()
	conn := dialClient(t, hub)

	hub.BroadcastJSON(map[string]string{"topic": "profile"})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var got map[string]string
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, "profile", got["topic"])
}

// Mutations fire from HTTP handler goroutines and the upload pipeline at
// once, so broadcasts must tolerate concurrent publishers on one connection.
func TestBroadcastJSONConcurrentPublishers(t *testing.T) {
	hub := NewHub()
	conn := dialClient(t, hub)

	const publishers = 2
	const perPublisher = 500
	const total = publishers * perPublisher

	received := make(chan int, 1)
	go func() {
		n := 0
		_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
		for n < total {
			var msg map[string]string
			if err := conn.ReadJSON(&msg); err != nil {
				break
			}
			n++
		}
		received <- n
	}()

	var wg sync.WaitGroup
	for p := 0; p < publishers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perPublisher; i++ {
				hub.BroadcastJSON(map[string]string{"topic": "notifications"})
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, total, <-received)
	assert.Equal(t, 1, hub.ClientCount())
}

func TestBroadcastJSONDropsClosedClients(t *testing.T) {
	hub := NewHub()
	conn := dialClient(t, hub)
	conn.Close()

	// The write to a closed connection fails and evicts the client.
	require.Eventually(t, func() bool {
		hub.BroadcastJSON(map[string]string{"topic": "settings"})
		return hub.ClientCount() == 0
	}, 2*time.Second, 10*time.Millisecond)
}
