package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"storefront-be/internal/dto"
	"storefront-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const clusterChannel = "storefront_cluster_events"

const (
	MessageNotification = "notification"
	MessageBundle       = "bundle"
)

func UserKey(userID uuid.UUID) string { return "user:" + userID.String() }

func BundleKey(bundleID string) string { return "bundle:" + bundleID }

// Envelope is the JSON frame written to every socket.
type Envelope struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type clusterMessage struct {
	Target  string          `json:"target"`
	Message json.RawMessage `json:"message"`
}

// Hub tracks sockets by key. A key is either a user (notifications) or a
// bundle view (snapshots). Messages for users are mirrored to other
// instances through Redis.
type Hub struct {
	clients    map[string][]*Client
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex

	rdb    *redis.Client
	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[string][]*Client),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run(ctx context.Context) {
	if h.rdb != nil {
		go h.subscribeToRedis(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.Key] = append(h.clients[client.Key], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"key": client.Key})

		case client := <-h.unregister:
			h.mu.Lock()
			clients := h.clients[client.Key]
			for i, c := range clients {
				if c == client {
					h.clients[client.Key] = append(clients[:i], clients[i+1:]...)
					close(client.Send)
					break
				}
			}
			if len(h.clients[client.Key]) == 0 {
				delete(h.clients, client.Key)
			}
			h.mu.Unlock()
			h.logger.Info("Hub", "Client unregistered", map[string]interface{}{"key": client.Key})
		}
	}
}

// Send delivers a notification to every socket of userID on any instance.
func (h *Hub) Send(userID uuid.UUID, notification dto.NotificationMessage) {
	data, err := json.Marshal(Envelope{Type: MessageNotification, Data: notification})
	if err != nil {
		h.logger.Error("Hub", "Failed to encode notification", map[string]interface{}{"error": err.Error()})
		return
	}

	key := UserKey(userID)
	if h.rdb == nil {
		h.deliverLocal(key, data)
		return
	}

	// Every instance, including this one, delivers from the cluster channel.
	payload, _ := json.Marshal(clusterMessage{Target: key, Message: data})
	if err := h.rdb.Publish(context.Background(), clusterChannel, payload).Err(); err != nil {
		h.logger.Warn("Hub", "Cluster publish failed, delivering locally", map[string]interface{}{"error": err.Error()})
		h.deliverLocal(key, data)
	}
}

// Connected reports how many local sockets are open for key.
func (h *Hub) Connected(key string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[key])
}

func (h *Hub) deliverLocal(key string, data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.clients[key] {
		if !client.Offer(data) {
			h.logger.Warn("Hub", "Client send buffer full, dropping connection", map[string]interface{}{"key": key})
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
}

func (h *Hub) subscribeToRedis(ctx context.Context) {
	pubsub := h.rdb.Subscribe(ctx, clusterChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var payload clusterMessage
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			log.Printf("[WARN] Cluster message parse error: %v", err)
			continue
		}
		h.deliverLocal(payload.Target, payload.Message)
	}
}
