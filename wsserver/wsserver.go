package wsserver

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/mo-shahab/pong-arcade/client"
)

// WebSocketHandler streams the running game to spectators. It is both a
// render sink and a scoreboard for the engine; spectators only read.
type WebSocketHandler struct {
	Upgrader    websocket.Upgrader
	Connections map[string]*client.Client
	Mu          sync.Mutex

	lastScore []byte
}

// NewWebSocketHandler creates a new WebSocket handler
func NewWebSocketHandler() *WebSocketHandler {
	return &WebSocketHandler{
		Upgrader:    websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
		Connections: make(map[string]*client.Client),
	}
}

func (wsh *WebSocketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := wsh.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Error %s when connecting to the socket", err)
		return
	}

	c := client.New(conn)

	wsh.Mu.Lock()
	wsh.Connections[c.ID] = c
	if wsh.lastScore != nil {
		c.SendQueue <- wsh.lastScore
	}
	log.Printf("Spectator %s connected, total: %d", c.ID, len(wsh.Connections))
	wsh.Mu.Unlock()

	go c.WritePump(wsh.disconnect)

	// Spectators have nothing to say; reading only notices the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			wsh.disconnect(c)
			return
		}
	}
}

// Count returns the number of connected spectators
func (wsh *WebSocketHandler) Count() int {
	wsh.Mu.Lock()
	defer wsh.Mu.Unlock()
	return len(wsh.Connections)
}

// Close drops every spectator
func (wsh *WebSocketHandler) Close() {
	wsh.Mu.Lock()
	clients := make([]*client.Client, 0, len(wsh.Connections))
	for _, c := range wsh.Connections {
		clients = append(clients, c)
	}
	wsh.Mu.Unlock()

	for _, c := range clients {
		wsh.disconnect(c)
	}
}

func (wsh *WebSocketHandler) disconnect(c *client.Client) {
	wsh.Mu.Lock()
	defer wsh.Mu.Unlock()

	if _, exists := wsh.Connections[c.ID]; !exists {
		return
	}

	close(c.SendQueue)
	delete(wsh.Connections, c.ID)
	c.Conn.Close()

	log.Printf("Spectator %s disconnected, total: %d", c.ID, len(wsh.Connections))
}

func (wsh *WebSocketHandler) broadcastToAll(message []byte) {
	wsh.Mu.Lock()
	defer wsh.Mu.Unlock()

	for _, c := range wsh.Connections {
		select {
		case c.SendQueue <- message:
		default:
			log.Printf("Dropping message, send queue full for client %s", c.ID)
		}
	}
}
