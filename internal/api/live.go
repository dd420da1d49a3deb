package api

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// WebSocket upgrader configuration
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

// hub fans recompute results out to connected dashboard clients so an
// open recipe view refreshes as soon as a save lands, without polling.
type hub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]bool
}

func newHub() *hub {
	return &hub{conns: make(map[*websocket.Conn]bool)}
}

// recostEvent is pushed whenever a recipe's derived costs are
// recomputed
type recostEvent struct {
	Type         string  `json:"type"`
	RecipeID     uint    `json:"recipeId"`
	Recipe       string  `json:"recipe"`
	MaterialCost float64 `json:"materialCost"`
	RetailCost   float64 `json:"retailCost"`
	StorePrice   float64 `json:"storePrice"`
	SkippedLines int     `json:"skippedLines"`
}

func (h *hub) handleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	h.mu.Lock()
	h.conns[conn] = true
	h.mu.Unlock()

	// Read loop exists only to observe the close; clients never send.
	go func() {
		defer func() {
			h.mu.Lock()
			delete(h.conns, conn)
			h.mu.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// broadcast sends an event to every connected client, dropping
// connections that fail to accept the write.
func (h *hub) broadcast(event interface{}) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal broadcast event: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			delete(h.conns, conn)
			conn.Close()
		}
	}
}
