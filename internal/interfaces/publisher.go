package interfaces

import (
	"context"

	"github.com/iwtcode/cncSimulator/internal/domain/models"
)

// SnapshotPublisher определяет контракт для отправки снимков парка во внешние системы.
// Publish вызывается тикером после каждого тика вне блокировок станков.
type SnapshotPublisher interface {
	Name() string
	Publish(ctx context.Context, snapshots []models.MachineSnapshot) error
	Close() error
}
