package client

import (
	"log"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// SendQueueSize bounds how far a slow spectator may fall behind
const SendQueueSize = 64

// Client is one websocket spectator with its outbound queue
type Client struct {
	ID        string
	Conn      *websocket.Conn
	SendQueue chan []byte
}

func New(conn *websocket.Conn) *Client {
	return &Client{
		ID:        uuid.New().String()[:8],
		Conn:      conn,
		SendQueue: make(chan []byte, SendQueueSize),
	}
}

// WritePump drains the send queue onto the socket until the queue is
// closed or a write fails. onError runs once on a failed write.
func (c *Client) WritePump(onError func(*Client)) {
	for msg := range c.SendQueue {
		if err := c.Conn.WriteMessage(websocket.BinaryMessage, msg); err != nil {
			log.Printf("Write error for client %s: %v", c.ID, err)
			onError(c)
			return
		}
	}
}
