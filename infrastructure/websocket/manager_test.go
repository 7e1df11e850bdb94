package websocket

import (
	"errors"
	"os"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school-cms/pkg/logger"
)

func TestMain(m *testing.M) {
	dir, _ := os.MkdirTemp("", "ws-logs")
	logger.Init(dir, false)
	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

type fakeConn struct {
	mu       sync.Mutex
	messages []Message
	fail     bool
}

func (f *fakeConn) WriteJSON(v interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("connection closed")
	}
	f.messages = append(f.messages, v.(Message))
	return nil
}

func TestBroadcastDropsBrokenClients(t *testing.T) {
	hub := NewHub()
	healthy := &fakeConn{}
	broken := &fakeConn{fail: true}

	hub.RegisterClient(healthy, uuid.New())
	hub.RegisterClient(broken, uuid.New())
	require.Equal(t, 2, hub.ClientCount())

	delivered := hub.Broadcast("notification", map[string]string{"title": "New contact message"})

	assert.Equal(t, 1, delivered)
	assert.Equal(t, 1, hub.ClientCount())
	require.Len(t, healthy.messages, 1)
	assert.Equal(t, "notification", healthy.messages[0].Type)
}

func TestHandleMessagePing(t *testing.T) {
	hub := NewHub()
	conn := &fakeConn{}
	hub.RegisterClient(conn, uuid.New())

	hub.HandleMessage(conn, []byte(`{"type":"ping"}`))
	hub.HandleMessage(conn, []byte(`not json`))
	hub.HandleMessage(conn, []byte(`{"type":"hello"}`))

	require.Len(t, conn.messages, 1)
	assert.Equal(t, "pong", conn.messages[0].Type)

	hub.UnregisterClient(conn)
	assert.Zero(t, hub.ClientCount())
}
