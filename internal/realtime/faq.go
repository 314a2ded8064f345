package realtime

import (
	"context"
	"encoding/json"
	"time"

	"backend-faq/internal/faqstore"

	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"
)

// Conn is the part of a websocket connection the hub writes to.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// FAQHub fans FAQ change events out to every connected admin client.
type FAQHub struct {
	Register   chan Conn
	Unregister chan Conn
	Broadcast  chan []byte
	clients    map[Conn]bool
	done       chan struct{}
	log        *zap.Logger
}

type FAQUpdate struct {
	Type string `json:"type"`
	faqstore.Change
	Timestamp string `json:"timestamp"`
}

func NewFAQHub(log *zap.Logger) *FAQHub {
	return &FAQHub{
		Register:   make(chan Conn),
		Unregister: make(chan Conn),
		Broadcast:  make(chan []byte, 16),
		clients:    make(map[Conn]bool),
		done:       make(chan struct{}),
		log:        log,
	}
}

// Run owns the client set until ctx is cancelled, then closes every client.
func (h *FAQHub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				c.Close()
				delete(h.clients, c)
			}
			return
		case c := <-h.Register:
			h.clients[c] = true
			h.log.Debug("faq ws client registered", zap.Int("clients", len(h.clients)))
		case c := <-h.Unregister:
			if h.clients[c] {
				delete(h.clients, c)
				c.Close()
			}
			h.log.Debug("faq ws client unregistered", zap.Int("clients", len(h.clients)))
		case msg := <-h.Broadcast:
			for c := range h.clients {
				if err := c.WriteMessage(websocket.TextMessage, msg); err != nil {
					h.log.Warn("faq ws write failed, dropping client", zap.Error(err))
					delete(h.clients, c)
					c.Close()
				}
			}
		}
	}
}

// Join registers c and reports false when the hub has already stopped.
func (h *FAQHub) Join(c Conn) bool {
	select {
	case h.Register <- c:
		return true
	case <-h.done:
		return false
	}
}

func (h *FAQHub) Leave(c Conn) {
	select {
	case h.Unregister <- c:
	case <-h.done:
	}
}

// Publish is a store notifier: it encodes the change and queues it for
// broadcast without blocking the caller when the queue is full.
func (h *FAQHub) Publish(change faqstore.Change) {
	msg, err := json.Marshal(FAQUpdate{
		Type:      "faq_update",
		Change:    change,
		Timestamp: time.Now().Format(time.RFC3339),
	})
	if err != nil {
		h.log.Error("encoding faq update", zap.Error(err))
		return
	}
	select {
	case h.Broadcast <- msg:
	default:
		h.log.Warn("faq ws broadcast queue full, update dropped", zap.String("action", string(change.Action)))
	}
}
