package realtime

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) *Hub {
	t.Helper()

	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	return hub
}

func registerClient(t *testing.T, hub *Hub, userID string) *Client {
	t.Helper()

	client := NewClient(hub, nil, userID)
	hub.register <- client

	require.Eventually(t, func() bool {
		return hub.IsOnline(userID)
	}, time.Second, 5*time.Millisecond)

	return client
}

func TestSendToUserDeliversToEveryConnection(t *testing.T) {
	hub := startHub(t)

	first := registerClient(t, hub, "alice")
	second := registerClient(t, hub, "alice")

	event, err := NewEvent(EventReceiveNotification, map[string]string{"title": "hello"})
	require.NoError(t, err)

	hub.SendToUser("alice", event)

	for _, client := range []*Client{first, second} {
		select {
		case payload := <-client.send:
			var got Event
			require.NoError(t, json.Unmarshal(payload, &got))
			assert.Equal(t, EventReceiveNotification, got.Type)
		case <-time.After(time.Second):
			t.Fatal("expected a delivery")
		}
	}
}

func TestSendToOfflineUserIsDropped(t *testing.T) {
	hub := startHub(t)

	event, err := NewEvent(EventReceiveMessage, map[string]string{"content": "hi"})
	require.NoError(t, err)

	// Nobody is listening; the call must simply return.
	hub.SendToUser("ghost", event)
	assert.False(t, hub.IsOnline("ghost"))
}

func TestUnregisterClosesSendChannel(t *testing.T) {
	hub := startHub(t)

	client := registerClient(t, hub, "alice")
	hub.unregister <- client

	require.Eventually(t, func() bool {
		return !hub.IsOnline("alice")
	}, time.Second, 5*time.Millisecond)

	_, open := <-client.send
	assert.False(t, open)
}

func TestSendToUserSkipsFullBuffers(t *testing.T) {
	hub := startHub(t)

	client := registerClient(t, hub, "alice")

	event, err := NewEvent(EventReceiveMessage, map[string]string{"content": "x"})
	require.NoError(t, err)

	// Nobody drains the channel, so everything past the buffer is dropped
	// without blocking.
	for i := 0; i < sendBufferSize+10; i++ {
		hub.SendToUser("alice", event)
	}

	assert.Len(t, client.send, sendBufferSize)
}
