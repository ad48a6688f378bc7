package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/stovefree/stove-engine-go/internal/game"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WSMessage is the envelope sent to spectator clients.
type WSMessage struct {
	Type   string `json:"type"`
	GameID string `json:"game_id,omitempty"`
	Data   any    `json:"data,omitempty"`
}

// RecordView is the JSON shape of one history record on the wire.
type RecordView struct {
	Kind     string               `json:"kind"`
	EntityID int                  `json:"entity_id"`
	Tag      int                  `json:"tag,omitempty"`
	OldValue int                  `json:"old_value,omitempty"`
	Value    int                  `json:"value,omitempty"`
	CardID   string               `json:"card_id,omitempty"`
	Tags     map[game.GameTag]int `json:"tags,omitempty"`
}

// Client is one connected spectator.
type Client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// Hub fans history records out to all connected spectators.
type Hub struct {
	logger     *zap.Logger
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	mu         sync.RWMutex
}

// NewHub creates an empty spectator hub.
func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		logger:     logger,
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// Run pumps the hub until the context is canceled.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.logger.Info("spectator connected", zap.String("client_id", client.id))

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			h.logger.Info("spectator disconnected", zap.String("client_id", client.id))

		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// BroadcastRecord pushes one history record to every spectator.
func (h *Hub) BroadcastRecord(gameID string, rec game.HistoryRecord) {
	view := RecordView{
		Kind:     rec.Kind.String(),
		EntityID: rec.EntityID,
		Tag:      int(rec.Tag),
		OldValue: rec.OldValue,
		Value:    rec.Value,
		CardID:   rec.CardID,
		Tags:     rec.Tags,
	}
	msg, err := json.Marshal(WSMessage{Type: "history_record", GameID: gameID, Data: view})
	if err != nil {
		h.logger.Error("marshal record", zap.Error(err))
		return
	}
	h.broadcast <- msg
}

// ClientCount reports the number of connected spectators.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// ServeWS upgrades an HTTP request to a spectator stream.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	client := &Client{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan []byte, 64),
	}
	h.register <- client

	go client.writePump(h)
	go client.readPump(h)
}

// writePump drains the send channel onto the socket.
func (c *Client) writePump(h *Hub) {
	defer c.conn.Close()
	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			h.logger.Debug("spectator write failed",
				zap.String("client_id", c.id),
				zap.Error(err),
			)
			return
		}
	}
}

// readPump discards inbound frames and unregisters on close. Spectators are
// read-only.
func (c *Client) readPump(h *Hub) {
	defer func() {
		select {
		case h.unregister <- c:
		case <-h.done:
		}
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
