package websocket

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"storefront-be/internal/dto"
	"storefront-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub(nil, logger.NewNopLogger())
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)
	return hub
}

func registered(t *testing.T, hub *Hub, key string) *Client {
	t.Helper()
	c := &Client{Hub: hub, Key: key, Send: make(chan []byte, 2)}
	hub.register <- c
	require.Eventually(t, func() bool { return hub.Connected(key) > 0 }, time.Second, 5*time.Millisecond)
	return c
}

func TestHub_SendReachesOnlyThatUser(t *testing.T) {
	hub := startHub(t)
	alice, bob := uuid.New(), uuid.New()
	ca := registered(t, hub, UserKey(alice))
	cb := registered(t, hub, UserKey(bob))

	hub.Send(alice, dto.NotificationMessage{UserId: alice, Title: "Added to cart", Message: "2 items added"})

	select {
	case raw := <-ca.Send:
		var env struct {
			Type string                  `json:"type"`
			Data dto.NotificationMessage `json:"data"`
		}
		require.NoError(t, json.Unmarshal(raw, &env))
		assert.Equal(t, MessageNotification, env.Type)
		assert.Equal(t, "2 items added", env.Data.Message)
	case <-time.After(time.Second):
		t.Fatal("no message for alice")
	}
	assert.Empty(t, cb.Send)
}

func TestHub_FullBufferDropsClient(t *testing.T) {
	hub := startHub(t)
	user := uuid.New()
	c := registered(t, hub, UserKey(user))

	for i := 0; i < 3; i++ {
		hub.Send(user, dto.NotificationMessage{Message: "x"})
	}

	require.Eventually(t, func() bool { return hub.Connected(UserKey(user)) == 0 }, time.Second, 5*time.Millisecond)
	n := 0
	for range c.Send {
		n++
	}
	assert.Equal(t, 2, n)
}

func TestClient_Offer(t *testing.T) {
	c := &Client{Send: make(chan []byte, 1)}
	assert.True(t, c.Offer([]byte("a")))
	assert.False(t, c.Offer([]byte("b")))
}
