package broadcast

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/iwtcode/cncSimulator/internal/domain/models"
	"github.com/iwtcode/cncSimulator/internal/middleware/logging"
)

// subscriberBuffer - сколько тиков подписчик может отстать, прежде чем кадры начнут теряться.
const subscriberBuffer = 4

type subscriber struct {
	updates chan []models.MachineSnapshot
	dropped int
}

// Hub раздает снимки каждого тика подписчикам потока (SSE).
// Медленный подписчик теряет кадры, тикер никогда не блокируется.
type Hub struct {
	mu     sync.RWMutex
	subs   map[string]*subscriber
	logger *logging.Logger
}

func NewHub(logger *logging.Logger) *Hub {
	return &Hub{
		subs:   make(map[string]*subscriber),
		logger: logger.WithPrefix("HUB"),
	}
}

func (h *Hub) Name() string {
	return "sse"
}

// Subscribe регистрирует подписчика. cancel можно вызывать многократно.
func (h *Hub) Subscribe() (string, <-chan []models.MachineSnapshot, func()) {
	id := uuid.New().String()
	sub := &subscriber{updates: make(chan []models.MachineSnapshot, subscriberBuffer)}

	h.mu.Lock()
	h.subs[id] = sub
	h.mu.Unlock()
	h.logger.Debug("Subscriber added", "subscriberID", id)

	var once sync.Once
	cancel := func() {
		once.Do(func() { h.remove(id) })
	}
	return id, sub.updates, cancel
}

func (h *Hub) remove(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	sub, ok := h.subs[id]
	if !ok {
		return
	}
	delete(h.subs, id)
	close(sub.updates)
	h.logger.Debug("Subscriber removed", "subscriberID", id, "dropped", sub.dropped)
}

func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Publish отправляет снимки всем подписчикам без ожидания.
func (h *Hub) Publish(_ context.Context, snapshots []models.MachineSnapshot) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, sub := range h.subs {
		select {
		case sub.updates <- snapshots:
		default:
			sub.dropped++
		}
	}
	return nil
}

// Close отключает всех подписчиков.
func (h *Hub) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, sub := range h.subs {
		close(sub.updates)
		delete(h.subs, id)
	}
	return nil
}
