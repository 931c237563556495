package ws

import (
	"log/slog"
	"sync"

	"github.com/cwrk-planet/classroom-scheduler/internal/service"
)

type Conn interface {
	Send(msg Message) error
	Close() error
	Topic() string
}

// Hub раздаёт события сервисов подписчикам топика. Реализует service.Notifier.
type Hub struct {
	mu     sync.RWMutex
	topics map[string]map[Conn]struct{} // topic -> set of connections
}

var _ service.Notifier = (*Hub)(nil)

func NewHub() *Hub {
	return &Hub{topics: make(map[string]map[Conn]struct{})}
}

func (h *Hub) Add(c Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ts, ok := h.topics[c.Topic()]
	if !ok {
		ts = make(map[Conn]struct{})
		h.topics[c.Topic()] = ts
	}
	ts[c] = struct{}{}
}

func (h *Hub) Remove(c Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ts, ok := h.topics[c.Topic()]; ok {
		delete(ts, c)
		if len(ts) == 0 {
			delete(h.topics, c.Topic())
		}
	}
}

func (h *Hub) Subscribers(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.topics[topic])
}

func (h *Hub) Broadcast(topic string, msg Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.topics[topic] {
		if err := c.Send(msg); err != nil { // best-effort
			slog.Debug("ws send dropped", slog.String("topic", topic), slog.String("type", msg.Type), slog.Any("err", err))
		}
	}
}

func (h *Hub) Publish(ev service.Event) {
	h.Broadcast(ev.Topic, Message{Type: ev.Type, Payload: ev.Payload})
}
