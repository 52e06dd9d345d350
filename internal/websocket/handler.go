package websocket

import (
	"github.com/gofiber/websocket/v2"
)

// ServeWs registers the socket under key and blocks until the peer goes
// away. attach, when given, runs after registration and returns a detach
// func that is called before the client is unregistered.
func ServeWs(hub *Hub, c *websocket.Conn, key string, attach func(*Client) func()) {
	client := &Client{Hub: hub, Conn: c, Key: key, Send: make(chan []byte, sendBuffer)}
	hub.register <- client

	detach := func() {}
	if attach != nil {
		detach = attach(client)
	}

	go client.writePump()
	client.readPump()

	detach()
	hub.unregister <- client
	c.Close()
}
