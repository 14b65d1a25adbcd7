package fleet_service

import (
	"context"
	"sync"
	"time"

	"github.com/iwtcode/cncSimulator/internal/domain/models"
	"github.com/iwtcode/cncSimulator/internal/interfaces"
	"github.com/iwtcode/cncSimulator/internal/middleware/logging"
	apperrors "github.com/iwtcode/cncSimulator/pkg/errors"
)

// Ticker - единственный писатель состояния парка. Каждый период он
// продвигает все станки на фиксированный dt и раздает снимки издателям.
type Ticker struct {
	registry   *Registry
	publishers []interfaces.SnapshotPublisher
	logger     *logging.Logger
	interval   time.Duration

	mu     sync.Mutex
	tickMu sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewTicker(registry *Registry, publishers []interfaces.SnapshotPublisher, interval time.Duration, logger *logging.Logger) *Ticker {
	return &Ticker{
		registry:   registry,
		publishers: publishers,
		logger:     logger.WithPrefix("TICKER"),
		interval:   interval,
	}
}

func (t *Ticker) IsRunning() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.runningUnsafe()
}

func (t *Ticker) runningUnsafe() bool {
	if t.done == nil {
		return false
	}
	select {
	case <-t.done:
		return false
	default:
		return true
	}
}

func (t *Ticker) Start(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.runningUnsafe() {
		return apperrors.ErrTickerRunning
	}

	loopCtx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	t.done = make(chan struct{})

	go t.loop(loopCtx, t.done)
	return nil
}

// Stop останавливает тикер и дожидается завершения текущего тика.
func (t *Ticker) Stop() {
	t.mu.Lock()
	cancel, done := t.cancel, t.done
	t.cancel = nil
	t.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (t *Ticker) loop(ctx context.Context, done chan struct{}) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	defer close(done)

	t.logger.Info("Ticker started", "interval", t.interval, "machines", t.registry.Len())
	defer t.logger.Info("Ticker stopped")

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.TickOnce(ctx)
		}
	}
}

// TickOnce выполняет один тик над всем парком и публикует результат.
// Отклоненный тик станка логируется, предыдущее состояние остается в силе.
func (t *Ticker) TickOnce(ctx context.Context) []models.MachineSnapshot {
	t.tickMu.Lock()
	defer t.tickMu.Unlock()

	if err := t.registry.Advance(t.interval.Seconds()); err != nil {
		t.logger.Error("Tick rejected", "error", err)
	}

	snapshots := t.registry.List()
	t.publish(ctx, snapshots)
	return snapshots
}

func (t *Ticker) publish(ctx context.Context, snapshots []models.MachineSnapshot) {
	for _, p := range t.publishers {
		pubCtx, cancel := context.WithTimeout(ctx, t.interval)
		if err := p.Publish(pubCtx, snapshots); err != nil {
			t.logger.Warn("Failed to publish snapshots", "publisher", p.Name(), "error", err)
		}
		cancel()
	}
}
