package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

type FeedClient struct {
	Conn *websocket.Conn
}

// FeedHub fans community events out to every connected client.
type FeedHub struct {
	mu      sync.RWMutex
	clients map[*FeedClient]struct{}
}

func NewFeedHub() *FeedHub {
	return &FeedHub{clients: make(map[*FeedClient]struct{})}
}

func (h *FeedHub) Register(c *FeedClient) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *FeedHub) Unregister(c *FeedClient) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
	_ = c.Conn.Close()
}

func (h *FeedHub) Broadcast(payload any) {
	msg, _ := json.Marshal(payload)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}
