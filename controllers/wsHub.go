package controllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"oushodcloud-web/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Message is the event envelope pushed to connected admin dashboards.
type Message struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

// Hub tracks the websocket connections of open admin dashboards and fans out
// new-order and new-demo-request events so their tables refresh live.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
	logger  *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]bool),
		logger:  logger,
	}
}

func (h *Hub) HandleWebSocket() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			h.logger.Error("websocket upgrade failed", zap.Error(err))
			return
		}
		defer conn.Close()

		h.mu.Lock()
		h.clients[conn] = true
		h.mu.Unlock()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.mu.Lock()
				delete(h.clients, conn)
				h.mu.Unlock()
				break
			}
		}
	}
}

// NotifyNewOrder sends a "newOrder" event with the full order.
func (h *Hub) NotifyNewOrder(order models.Order) {
	h.broadcast(Message{Event: "newOrder", Payload: order})
}

// NotifyNewDemoRequest sends a "newDemoRequest" event with the full request.
func (h *Hub) NotifyNewDemoRequest(request models.DemoRequest) {
	h.broadcast(Message{Event: "newDemoRequest", Payload: request})
}

func (h *Hub) broadcast(message Message) {
	messageBytes, err := json.Marshal(message)
	if err != nil {
		h.logger.Error("failed to marshal websocket message", zap.Error(err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		if err := client.WriteMessage(websocket.TextMessage, messageBytes); err != nil {
			h.logger.Warn("dropping dead websocket client", zap.Error(err))
			client.Close()
			delete(h.clients, client)
		}
	}
}
