package realtime

import (
	"time"

	"github.com/gorilla/websocket"
)

// Client is one open realtime connection. Send is drained by the write
// pump; the hub never writes to the socket directly.
type Client struct {
	ID       string
	Conn     *websocket.Conn
	Send     chan []byte
	LastPong time.Time
}

func NewClient(id string, conn *websocket.Conn) *Client {
	return &Client{
		ID:       id,
		Conn:     conn,
		Send:     make(chan []byte, 32),
		LastPong: time.Now(),
	}
}

// WritePump serializes all socket writes for this client. Returns when
// Send is closed or a write fails.
func (c *Client) WritePump() {
	defer c.Conn.Close()
	for msg := range c.Send {
		c.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
		if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}
